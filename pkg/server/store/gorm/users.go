package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contactbook/pkg/identity"
	"contactbook/pkg/model"
	"contactbook/pkg/server/store"
)

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// UserStore implements store.UserStore using GORM
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ListUsers returns every account
func (s *UserStore) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindUserByName looks up an account by normalized username
func (s *UserStore) FindUserByName(name string) (*model.User, error) {
	var user model.User
	err := s.db.Where("normalized_username = ?", identity.Normalize(name)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", name, err)
	}
	return &user, nil
}

// UsersInRole returns the accounts holding the named role
func (s *UserStore) UsersInRole(roleName string) ([]model.User, error) {
	var users []model.User
	err := s.db.Raw(`
		SELECT u.* FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		JOIN roles r ON r.id = ur.role_id
		WHERE r.normalized_name = ?
		ORDER BY u.username
	`, identity.Normalize(roleName)).Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users in role %q: %w", roleName, err)
	}
	return users, nil
}

// RolesForUser returns the role names assigned to an account
func (s *UserStore) RolesForUser(username string) ([]string, error) {
	var names []string
	err := s.db.Raw(`
		SELECT r.name FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		JOIN users u ON u.id = ur.user_id
		WHERE u.normalized_username = ?
		ORDER BY r.name
	`, identity.Normalize(username)).Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for %q: %w", username, err)
	}
	return names, nil
}

// RoleExists checks if a role exists
func (s *UserStore) RoleExists(name string) (bool, error) {
	var exists bool
	err := s.db.Raw(`SELECT EXISTS(SELECT 1 FROM roles WHERE normalized_name = ?)`,
		identity.Normalize(name)).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role %q: %w", name, err)
	}
	return exists, nil
}

// CreateRole creates a role
func (s *UserStore) CreateRole(name string) error {
	role := model.Role{Name: name, NormalizedName: identity.Normalize(name)}
	if err := s.db.Create(&role).Error; err != nil {
		return fmt.Errorf("failed to create role %q: %w", name, err)
	}
	return nil
}

// AddUserToRole grants a role to an account. Granting an already held
// role is a no-op.
func (s *UserStore) AddUserToRole(username, roleName string) error {
	err := s.db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		SELECT u.id, r.id FROM users u, roles r
		WHERE u.normalized_username = ? AND r.normalized_name = ?
		ON CONFLICT DO NOTHING
	`, identity.Normalize(username), identity.Normalize(roleName)).Error
	if err != nil {
		return fmt.Errorf("failed to add %q to role %q: %w", username, roleName, err)
	}
	return nil
}

// RemoveUserFromRole revokes a role from an account
func (s *UserStore) RemoveUserFromRole(username, roleName string) error {
	err := s.db.Exec(`
		DELETE FROM user_roles ur
		USING users u, roles r
		WHERE ur.user_id = u.id AND ur.role_id = r.id
		  AND u.normalized_username = ? AND r.normalized_name = ?
	`, identity.Normalize(username), identity.Normalize(roleName)).Error
	if err != nil {
		return fmt.Errorf("failed to remove %q from role %q: %w", username, roleName, err)
	}
	return nil
}

// DeleteUser removes an account. Role links go with it via the schema's
// ON DELETE CASCADE.
func (s *UserStore) DeleteUser(username string) error {
	err := s.db.Exec(`DELETE FROM users WHERE normalized_username = ?`,
		identity.Normalize(username)).Error
	if err != nil {
		return fmt.Errorf("failed to delete user %q: %w", username, err)
	}
	return nil
}

// CreateUser creates an account with the given password. Policy and
// uniqueness violations come back as descriptions, not as an error.
func (s *UserStore) CreateUser(username, password string) (*model.User, []string, error) {
	violations := identity.ValidatePassword(password)

	existing, err := s.FindUserByName(username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		violations = append(violations, fmt.Sprintf("Username '%s' is already taken.", username))
	}

	if len(violations) > 0 {
		return nil, violations, nil
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:           username,
		NormalizedUsername: identity.Normalize(username),
		PasswordHash:       hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return &user, nil, nil
}

// VerifyPassword checks a password attempt against the stored hash.
// Unknown accounts verify as false.
func (s *UserStore) VerifyPassword(username, password string) (bool, error) {
	user, err := s.FindUserByName(username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return identity.CheckPassword(user.PasswordHash, password), nil
}
