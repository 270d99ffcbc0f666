package store

import "contactbook/pkg/model"

// UserStore abstracts user, role and membership storage. It is the
// application's identity boundary: handlers never touch the user tables
// directly.
type UserStore interface {
	// ListUsers returns every account
	ListUsers() ([]model.User, error)

	// FindUserByName looks up an account by (normalized) username.
	// Returns (nil, nil) when no such account exists.
	FindUserByName(name string) (*model.User, error)

	// UsersInRole returns the accounts holding the named role
	UsersInRole(roleName string) ([]model.User, error)

	// RolesForUser returns the role names assigned to an account
	RolesForUser(username string) ([]string, error)

	// RoleExists checks if a role exists by (normalized) name
	RoleExists(name string) (bool, error)

	// CreateRole creates a role
	CreateRole(name string) error

	// AddUserToRole grants a role to an account. Granting an already
	// held role is a no-op.
	AddUserToRole(username, roleName string) error

	// RemoveUserFromRole revokes a role from an account
	RemoveUserFromRole(username, roleName string) error

	// DeleteUser removes an account and, via the schema, its role links
	DeleteUser(username string) error

	// CreateUser creates an account with the given password. On policy
	// or uniqueness violations it returns the full list of violation
	// descriptions and no user.
	CreateUser(username, password string) (*model.User, []string, error)

	// VerifyPassword checks a password attempt against the stored hash.
	// Unknown accounts verify as false, not as an error.
	VerifyPassword(username, password string) (bool, error)
}
