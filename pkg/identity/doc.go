// Package identity provides the authenticated identity for contactbook
// requests, the username/role name normalization rules, and the account
// password policy.
//
// # Basic Usage
//
//	// Store in request context (done by the session middleware)
//	ctx = identity.Set(ctx, &identity.Identity{Username: "alice", Roles: roles})
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//	if ok && id.HasRole(identity.AdminRole) { ... }
//
// # Passwords
//
// ValidatePassword applies the account password policy and returns all
// violations at once. HashPassword/CheckPassword wrap bcrypt.
package identity
