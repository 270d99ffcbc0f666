package endpoints

import (
	"github.com/stretchr/testify/mock"

	"contactbook/pkg/model"
)

// MockUserStore implements store.UserStore for testing using testify/mock
type MockUserStore struct {
	mock.Mock
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{}
}

func (m *MockUserStore) ListUsers() ([]model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) FindUserByName(name string) (*model.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) UsersInRole(roleName string) ([]model.User, error) {
	args := m.Called(roleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) RolesForUser(username string) ([]string, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserStore) RoleExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) CreateRole(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockUserStore) AddUserToRole(username, roleName string) error {
	args := m.Called(username, roleName)
	return args.Error(0)
}

func (m *MockUserStore) RemoveUserFromRole(username, roleName string) error {
	args := m.Called(username, roleName)
	return args.Error(0)
}

func (m *MockUserStore) DeleteUser(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

func (m *MockUserStore) CreateUser(username, password string) (*model.User, []string, error) {
	args := m.Called(username, password)
	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	var violations []string
	if args.Get(1) != nil {
		violations = args.Get(1).([]string)
	}
	return user, violations, args.Error(2)
}

func (m *MockUserStore) VerifyPassword(username, password string) (bool, error) {
	args := m.Called(username, password)
	return args.Bool(0), args.Error(1)
}

// MockContactStore implements store.ContactStore for testing using testify/mock
type MockContactStore struct {
	mock.Mock
}

func NewMockContactStore() *MockContactStore {
	return &MockContactStore{}
}

func (m *MockContactStore) List() ([]model.Contact, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactStore) Add(contact *model.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactStore) FindByID(id int) (*model.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactStore) Update(name, surname, fatherName, telephoneNumber, residenceAddress, description string, id int) error {
	args := m.Called(name, surname, fatherName, telephoneNumber, residenceAddress, description, id)
	return args.Error(0)
}

func (m *MockContactStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
