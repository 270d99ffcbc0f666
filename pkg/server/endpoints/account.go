package endpoints

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"contactbook/pkg/server"
	"contactbook/pkg/server/session"
	"contactbook/pkg/server/store"
)

// loginFailedMessage is deliberately the same for an unknown username
// and a wrong password, so the form never confirms which accounts exist.
const loginFailedMessage = "User not found."

// RegisterAccountEndpoints registers the sign-in, registration and
// sign-out endpoints.
func RegisterAccountEndpoints(s *server.Server) {
	s.Router.HandleFunc("/account/login", handleLoginForm(s)).Methods("GET")
	s.Router.HandleFunc("/account/login", handleLogin(s, s.Users, s.Sessions)).Methods("POST")
	s.Router.HandleFunc("/account/register", handleRegisterForm(s)).Methods("GET")
	s.Router.HandleFunc("/account/register", handleRegister(s, s.Users, s.Sessions)).Methods("POST")
	s.Router.HandleFunc("/account/logout", handleLogout(s.Sessions)).Methods("POST")
}

func handleLoginForm(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r, "Sign in")
		data.Model = LoginForm{ReturnURL: r.URL.Query().Get("returnUrl")}
		s.Views.Render(w, http.StatusOK, "login.html", data)
	}
}

func handleLogin(s *server.Server, users store.UserStore, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(s, w, r, http.StatusBadRequest, "Bad request", "The submitted form could not be read.")
			return
		}
		form := LoginForm{
			Login:     r.PostFormValue("login"),
			Password:  r.PostFormValue("password"),
			ReturnURL: r.PostFormValue("returnUrl"),
		}

		renderFailure := func(msgs ...string) {
			data := pageData(w, r, "Sign in")
			data.Model = form
			data.Errors = msgs
			s.Views.Render(w, http.StatusOK, "login.html", data)
		}

		if err := validate.Struct(form); err != nil {
			renderFailure(validationMessages(err)...)
			return
		}

		ok, err := users.VerifyPassword(form.Login, form.Password)
		if err != nil {
			log.WithError(err).Error("login: password verification failed")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}
		if !ok {
			renderFailure(loginFailedMessage)
			return
		}

		if err := sessions.SignIn(w, form.Login, false); err != nil {
			log.WithError(err).Error("login: could not issue session")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}

		target := "/"
		if isLocalURL(form.ReturnURL) {
			target = form.ReturnURL
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}

func handleRegisterForm(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r, "Register")
		data.Model = RegisterForm{}
		s.Views.Render(w, http.StatusOK, "register.html", data)
	}
}

func handleRegister(s *server.Server, users store.UserStore, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, violations, ok := createUserFromForm(s, w, r, users)
		if !ok {
			return
		}
		if len(violations) > 0 {
			data := pageData(w, r, "Register")
			data.Model = form
			data.Errors = violations
			s.Views.Render(w, http.StatusOK, "register.html", data)
			return
		}

		// A freshly registered user is signed in right away, with a
		// session-scoped cookie rather than a persistent one.
		if err := sessions.SignIn(w, form.Login, false); err != nil {
			log.WithError(err).Error("register: could not issue session")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// createUserFromForm parses and validates the registration form and, if
// it passes, attempts to create the user. It returns ok=false only when
// a response has already been written (parse or store failure). Policy
// and validation problems come back as violations with ok=true.
func createUserFromForm(s *server.Server, w http.ResponseWriter, r *http.Request, users store.UserStore) (RegisterForm, []string, bool) {
	if err := r.ParseForm(); err != nil {
		renderError(s, w, r, http.StatusBadRequest, "Bad request", "The submitted form could not be read.")
		return RegisterForm{}, nil, false
	}
	form := RegisterForm{
		Login:           r.PostFormValue("login"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}

	if err := validate.Struct(form); err != nil {
		return form, validationMessages(err), true
	}

	_, violations, err := users.CreateUser(form.Login, form.Password)
	if err != nil {
		log.WithError(err).WithField("username", form.Login).Error("could not create user")
		renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
		return form, nil, false
	}
	return form, violations, true
}

func handleLogout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.SignOut(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// RegisterHomeEndpoints registers the landing page.
func RegisterHomeEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleHome(s)).Methods("GET")
}

func handleHome(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Views.Render(w, http.StatusOK, "home.html", pageData(w, r, "Contact Book"))
	}
}
