package endpoints

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"contactbook/pkg/model"
	"contactbook/pkg/server"
	"contactbook/pkg/server/middleware"
	"contactbook/pkg/server/store"
)

// RegisterContactEndpoints registers the contact book pages. Every
// contact page requires a signed-in user.
func RegisterContactEndpoints(s *server.Server) {
	contacts := s.Router.PathPrefix("/contacts").Subrouter()
	contacts.Use(middleware.RequireAuthenticated)

	contacts.HandleFunc("", handleContactList(s, s.Contacts)).Methods("GET")
	contacts.HandleFunc("", handleContactCreate(s, s.Contacts)).Methods("POST")
	contacts.HandleFunc("/new", handleContactNew(s)).Methods("GET")
	contacts.HandleFunc("/{id:[0-9]+}", handleContactDetails(s, s.Contacts)).Methods("GET")
	contacts.HandleFunc("/{id:[0-9]+}", handleContactUpdate(s, s.Contacts)).Methods("POST")
	contacts.HandleFunc("/{id:[0-9]+}/edit", handleContactEdit(s, s.Contacts)).Methods("GET")
	contacts.HandleFunc("/{id:[0-9]+}/delete", handleContactDelete(s, s.Contacts)).Methods("POST")
}

func handleContactList(s *server.Server, contacts store.ContactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := contacts.List()
		if err != nil {
			log.WithError(err).Error("could not list contacts")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "The contact list could not be loaded.")
			return
		}
		data := pageData(w, r, "Contacts")
		data.Model = list
		s.Views.Render(w, http.StatusOK, "contacts.html", data)
	}
}

func handleContactNew(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r, "New contact")
		data.Model = model.Contact{}
		s.Views.Render(w, http.StatusOK, "contact_new.html", data)
	}
}

func handleContactCreate(s *server.Server, contacts store.ContactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(s, w, r, http.StatusBadRequest, "Bad request", "The submitted form could not be read.")
			return
		}
		contact := contactFromForm(r)
		if err := contacts.Add(&contact); err != nil {
			log.WithError(err).Error("could not add contact")
			renderError(s, w, r, http.StatusInternalServerError, "Error", "The contact could not be saved.")
			return
		}
		http.Redirect(w, r, "/contacts", http.StatusFound)
	}
}

func handleContactDetails(s *server.Server, contacts store.ContactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := contactID(r)
		if !ok {
			renderError(s, w, r, http.StatusNotFound, "Not found", "No such contact.")
			return
		}
		contact, err := contacts.FindByID(id)
		if err != nil {
			renderContactError(s, w, r, err)
			return
		}
		data := pageData(w, r, "Contact details")
		data.Model = contact
		s.Views.Render(w, http.StatusOK, "contact_details.html", data)
	}
}

func handleContactEdit(s *server.Server, contacts store.ContactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := contactID(r)
		if !ok {
			renderError(s, w, r, http.StatusNotFound, "Not found", "No such contact.")
			return
		}
		contact, err := contacts.FindByID(id)
		if err != nil {
			renderContactError(s, w, r, err)
			return
		}
		data := pageData(w, r, "Edit contact")
		data.Model = contact
		s.Views.Render(w, http.StatusOK, "contact_edit.html", data)
	}
}

func handleContactUpdate(s *server.Server, contacts store.ContactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := contactID(r)
		if !ok {
			renderError(s, w, r, http.StatusNotFound, "Not found", "No such contact.")
			return
		}
		if err := r.ParseForm(); err != nil {
			renderError(s, w, r, http.StatusBadRequest, "Bad request", "The submitted form could not be read.")
			return
		}
		c := contactFromForm(r)
		err := contacts.Update(c.Name, c.Surname, c.FatherName, c.TelephoneNumber, c.ResidenceAddress, c.Description, id)
		if err != nil {
			renderContactError(s, w, r, err)
			return
		}
		http.Redirect(w, r, "/contacts", http.StatusFound)
	}
}

func handleContactDelete(s *server.Server, contacts store.ContactStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := contactID(r)
		if !ok {
			renderError(s, w, r, http.StatusNotFound, "Not found", "No such contact.")
			return
		}
		if err := contacts.Delete(id); err != nil {
			renderContactError(s, w, r, err)
			return
		}
		http.Redirect(w, r, "/contacts", http.StatusFound)
	}
}

func contactFromForm(r *http.Request) model.Contact {
	return model.Contact{
		Name:             r.PostFormValue("name"),
		Surname:          r.PostFormValue("surname"),
		FatherName:       r.PostFormValue("fatherName"),
		TelephoneNumber:  r.PostFormValue("telephoneNumber"),
		ResidenceAddress: r.PostFormValue("residenceAddress"),
		Description:      r.PostFormValue("description"),
	}
}

func renderContactError(s *server.Server, w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrContactNotFound) {
		renderError(s, w, r, http.StatusNotFound, "Not found", "No such contact.")
		return
	}
	log.WithError(err).Error("contact store failure")
	renderError(s, w, r, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
}
