package identity

import (
	"context"
	"strings"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// AdminRole is the role name that grants access to the administration
// pages.
const AdminRole = "Admin"

// Identity represents the authenticated identity for a request.
type Identity struct {
	// Username is the account name as stored
	Username string
	// Roles holds the names of the roles assigned to the account
	Roles []string
}

// HasRole reports whether the identity holds the named role.
// Role names compare by normalized form.
func (i *Identity) HasRole(name string) bool {
	want := Normalize(name)
	for _, r := range i.Roles {
		if Normalize(r) == want {
			return true
		}
	}
	return false
}

// Normalize produces the canonical form of a username or role name used
// for uniqueness and lookups.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
