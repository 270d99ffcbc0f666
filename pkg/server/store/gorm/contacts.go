package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contactbook/pkg/model"
	"contactbook/pkg/server/store"
)

// Ensure ContactStore implements store.ContactStore
var _ store.ContactStore = (*ContactStore)(nil)

// ContactStore implements store.ContactStore against the relational
// database. Every mutation commits immediately; there is no batching.
type ContactStore struct {
	db *gorm.DB
}

// NewContactStore creates a new ContactStore
func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// List returns all contacts
func (s *ContactStore) List() ([]model.Contact, error) {
	var contacts []model.Contact
	if err := s.db.Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Add persists a new contact; the database assigns the identifier
func (s *ContactStore) Add(contact *model.Contact) error {
	if err := s.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}
	return nil
}

// FindByID returns the contact with the identifier
func (s *ContactStore) FindByID(id int) (*model.Contact, error) {
	var contact model.Contact
	err := s.db.First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contact %d: %w", id, err)
	}
	return &contact, nil
}

// Update replaces the named fields of the contact with the identifier
func (s *ContactStore) Update(name, surname, fatherName, telephoneNumber, residenceAddress, description string, id int) error {
	tx := s.db.Model(&model.Contact{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":              name,
		"surname":           surname,
		"father_name":       fatherName,
		"telephone_number":  telephoneNumber,
		"residence_address": residenceAddress,
		"description":       description,
	})
	if tx.Error != nil {
		return fmt.Errorf("failed to update contact %d: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return store.ErrContactNotFound
	}
	return nil
}

// Delete removes the contact with the identifier
func (s *ContactStore) Delete(id int) error {
	if err := s.db.Delete(&model.Contact{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, err)
	}
	return nil
}
