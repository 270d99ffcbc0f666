package store

import (
	"errors"

	"contactbook/pkg/model"
)

// ErrContactNotFound reports a lookup for a contact identifier that is
// not in the store.
var ErrContactNotFound = errors.New("contact not found")

// ContactStore abstracts contact storage. Two interchangeable
// implementations exist: a direct database store (store/gorm) and a
// proxy to a remote contact API (store/remote). A deployment uses
// exactly one of them, selected at composition time.
type ContactStore interface {
	// List returns all contacts, order unspecified
	List() ([]model.Contact, error)

	// Add persists a new contact; the store assigns the identifier
	Add(contact *model.Contact) error

	// FindByID returns the contact with the identifier, or
	// ErrContactNotFound
	FindByID(id int) (*model.Contact, error)

	// Update replaces the named fields of the contact with the
	// identifier
	Update(name, surname, fatherName, telephoneNumber, residenceAddress, description string, id int) error

	// Delete removes the contact with the identifier
	Delete(id int) error
}
