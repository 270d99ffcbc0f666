package endpoints

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"contactbook/pkg/identity"
	"contactbook/pkg/server"
	"contactbook/pkg/server/flash"
	"contactbook/pkg/server/middleware"
	"contactbook/pkg/server/store"
)

// roleUndeterminedSentinel stands in for the caller's role list when it
// cannot be read from the store. The panel still renders.
const roleUndeterminedSentinel = "Role undetermined"

// RegisterAdminEndpoints registers the administration panel and its
// role and user management actions. Everything under /account/admin
// requires the administrator role.
func RegisterAdminEndpoints(s *server.Server) {
	admin := s.Router.PathPrefix("/account/admin").Subrouter()
	admin.Use(middleware.RequireRole(identity.AdminRole))

	admin.HandleFunc("", handleAdminPanel(s, s.Users)).Methods("GET")
	admin.HandleFunc("/roles", handleCreateRole(s.Users)).Methods("POST")
	admin.HandleFunc("/roles/assign", handleAssignRole(s, s.Users)).Methods("POST")
	admin.HandleFunc("/roles/revoke", handleRevokeRole(s, s.Users)).Methods("POST")
	admin.HandleFunc("/users/delete", handleDeleteUser(s, s.Users)).Methods("POST")
	admin.HandleFunc("/register", handleAdminRegisterForm(s)).Methods("GET")
	admin.HandleFunc("/register", handleAdminRegister(s, s.Users)).Methods("POST")
}

func handleAdminPanel(s *server.Server, users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r, "Administration")

		id, _ := identity.Get(r.Context())
		roles, err := users.RolesForUser(id.Username)
		if err != nil || len(roles) == 0 {
			if err != nil {
				log.WithError(err).WithField("username", id.Username).Error("admin panel: could not load caller roles")
			}
			roles = []string{roleUndeterminedSentinel}
		}

		allUsers, err := users.ListUsers()
		if err != nil {
			log.WithError(err).Error("admin panel: could not list users")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}
		admins, err := users.UsersInRole(identity.AdminRole)
		if err != nil {
			log.WithError(err).Error("admin panel: could not list administrators")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}

		data.Bag = map[string]interface{}{
			"Roles":    roles,
			"AllUsers": allUsers,
			"Admins":   admins,
		}
		s.Views.Render(w, http.StatusOK, "admin.html", data)
	}
}

func handleCreateRole(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleName := r.PostFormValue("roleName")

		values := flash.Values{}
		created := false
		if roleName != "" {
			exists, err := users.RoleExists(roleName)
			switch {
			case err != nil:
				log.WithError(err).WithField("role", roleName).Error("could not check role")
				values["RoleCreateMessage"] = "The role could not be created."
			case exists:
				values["RoleCreateMessage"] = "Role already exists"
			default:
				if err := users.CreateRole(roleName); err != nil {
					// The store error stays in the server log; the
					// operator only sees a generic failure message.
					log.WithError(err).WithField("role", roleName).Error("could not create role")
					values["RoleCreateMessage"] = "The role could not be created."
				} else {
					values["RoleCreateMessage"] = "Role created successfully!"
					created = true
				}
			}
		}
		values.SetBool("IsCreate", created)
		flash.Set(w, values)
		http.Redirect(w, r, "/account/admin", http.StatusFound)
	}
}

func handleAssignRole(s *server.Server, users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleName := r.PostFormValue("roleName")
		userName := r.PostFormValue("userName")

		user, err := users.FindUserByName(userName)
		if err != nil {
			log.WithError(err).WithField("username", userName).Error("assign role: could not look up user")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}
		roleExists, err := users.RoleExists(roleName)
		if err != nil {
			log.WithError(err).WithField("role", roleName).Error("assign role: could not check role")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}

		values := flash.Values{}
		roleAvailable := roleExists
		userAvailable := user != nil

		if roleExists {
			values["MessageRole"] = "Role is available to assign"
		} else {
			values["MessageRole"] = "Error: the specified role does not exist"
		}
		if user != nil {
			values["UserMessage"] = "User specified correctly"
		} else {
			values["UserMessage"] = "User does not exist"
		}

		if roleExists && user != nil {
			if err := users.AddUserToRole(userName, roleName); err != nil {
				log.WithError(err).WithFields(log.Fields{"username": userName, "role": roleName}).Error("could not assign role")
				renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
				return
			}
			values["SuccessMessage"] = "Role assigned successfully"
		}

		values.SetBool("isRoleAvailable", roleAvailable)
		values.SetBool("isUserAvailable", userAvailable)
		flash.Set(w, values)
		http.Redirect(w, r, "/account/admin", http.StatusFound)
	}
}

func handleRevokeRole(s *server.Server, users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleName := r.PostFormValue("roleName")
		userName := r.PostFormValue("userName")

		user, err := users.FindUserByName(userName)
		if err != nil {
			log.WithError(err).WithField("username", userName).Error("revoke role: could not look up user")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}
		roleExists, err := users.RoleExists(roleName)
		if err != nil {
			log.WithError(err).WithField("role", roleName).Error("revoke role: could not check role")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}

		values := flash.Values{}
		if roleExists {
			values["MessageDeleteRole"] = "Role is available to revoke"
		} else {
			values["MessageDeleteRole"] = "Error: the specified role does not exist"
		}
		if user != nil {
			values["UserDeleteMessage"] = "User specified correctly"
		} else {
			values["UserDeleteMessage"] = "User does not exist"
		}

		if roleExists && user != nil {
			if err := users.RemoveUserFromRole(userName, roleName); err != nil {
				log.WithError(err).WithFields(log.Fields{"username": userName, "role": roleName}).Error("could not revoke role")
				renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
				return
			}
			values["DeleteMessage"] = "Role revoked successfully"
		}

		values.SetBool("isRoleAvailable", roleExists)
		values.SetBool("isUserAvailable", user != nil)
		flash.Set(w, values)
		http.Redirect(w, r, "/account/admin", http.StatusFound)
	}
}

func handleDeleteUser(s *server.Server, users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userName := r.PostFormValue("userName")

		user, err := users.FindUserByName(userName)
		if err != nil {
			log.WithError(err).WithField("username", userName).Error("delete user: could not look up user")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		}

		values := flash.Values{}
		removed := false
		if user == nil {
			values["DeleteUserMessage"] = "User does not exist"
		} else if err := users.DeleteUser(userName); err != nil {
			log.WithError(err).WithField("username", userName).Error("could not delete user")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
			return
		} else {
			values["DeleteUserMessage"] = "User deleted successfully"
			removed = true
		}
		values.SetBool("IsRemoveUser", removed)
		flash.Set(w, values)
		http.Redirect(w, r, "/account/admin", http.StatusFound)
	}
}

func handleAdminRegisterForm(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r, "Register a user")
		data.Model = RegisterForm{}
		s.Views.Render(w, http.StatusOK, "admin_register.html", data)
	}
}

// handleAdminRegister creates an account on someone else's behalf. The
// administrator keeps their own session, so unlike self-registration no
// sign-in happens here and the form re-renders with the outcome.
func handleAdminRegister(s *server.Server, users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, violations, ok := createUserFromForm(s, w, r, users)
		if !ok {
			return
		}

		data := pageData(w, r, "Register a user")
		data.Model = form
		if len(violations) > 0 {
			data.Errors = violations
		} else {
			data.Flash = flash.Values{"UserCreateMessage": "User created successfully!"}
			data.Model = RegisterForm{}
		}
		s.Views.Render(w, http.StatusOK, "admin_register.html", data)
	}
}
