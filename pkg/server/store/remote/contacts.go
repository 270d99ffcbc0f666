package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"contactbook/pkg/model"
	"contactbook/pkg/server/store"
)

// Ensure ContactStore implements store.ContactStore
var _ store.ContactStore = (*ContactStore)(nil)

// ContactStore implements store.ContactStore by proxying every call to
// a remote contact API as JSON over HTTP. There is no retry and no
// client-side timeout: a transport failure propagates to the caller of
// the request that triggered it.
type ContactStore struct {
	baseURL string
	client  *http.Client
}

// NewContactStore creates a ContactStore against the given base URL,
// e.g. "https://localhost:7286".
func NewContactStore(baseURL string) *ContactStore {
	return &ContactStore{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// List returns all contacts from GET /api/values
func (s *ContactStore) List() ([]model.Contact, error) {
	resp, err := s.client.Get(s.baseURL + "/api/values")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contact API returned %s", resp.Status)
	}

	var contacts []model.Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contact list: %w", err)
	}
	return contacts, nil
}

// Add posts the contact to POST /api/values
func (s *ContactStore) Add(contact *model.Contact) error {
	body, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("failed to encode contact: %w", err)
	}

	resp, err := s.client.Post(s.baseURL+"/api/values", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contact API returned %s", resp.Status)
	}
	return nil
}

// FindByID fetches GET /api/values/Details/{id}
func (s *ContactStore) FindByID(id int) (*model.Contact, error) {
	resp, err := s.client.Get(fmt.Sprintf("%s/api/values/Details/%d", s.baseURL, id))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, store.ErrContactNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contact API returned %s", resp.Status)
	}

	var contact model.Contact
	if err := json.NewDecoder(resp.Body).Decode(&contact); err != nil {
		return nil, fmt.Errorf("failed to decode contact: %w", err)
	}
	return &contact, nil
}

// Update posts the replacement fields to POST /api/values/ChangeContactById/{id}
func (s *ContactStore) Update(name, surname, fatherName, telephoneNumber, residenceAddress, description string, id int) error {
	contact := model.Contact{
		Name:             name,
		Surname:          surname,
		FatherName:       fatherName,
		TelephoneNumber:  telephoneNumber,
		ResidenceAddress: residenceAddress,
		Description:      description,
	}
	body, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("failed to encode contact: %w", err)
	}

	resp, err := s.client.Post(
		fmt.Sprintf("%s/api/values/ChangeContactById/%d", s.baseURL, id),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contact API returned %s", resp.Status)
	}
	return nil
}

// Delete issues DELETE /api/values/{id}
func (s *ContactStore) Delete(id int) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/values/%d", s.baseURL, id), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contact API returned %s", resp.Status)
	}
	return nil
}
