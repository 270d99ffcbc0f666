// Package middleware provides the HTTP middleware that turns a session
// cookie into a request identity and gates pages on authentication and
// role membership.
package middleware

import (
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"contactbook/pkg/identity"
	"contactbook/pkg/server/session"
	"contactbook/pkg/server/store"
)

// SessionAuthenticator resolves the session cookie into an Identity on
// the request context. Requests without a valid session pass through
// anonymously.
type SessionAuthenticator struct {
	Sessions *session.Manager
	Users    store.UserStore
}

// NewSessionAuthenticator creates a new SessionAuthenticator
func NewSessionAuthenticator(sessions *session.Manager, users store.UserStore) *SessionAuthenticator {
	return &SessionAuthenticator{Sessions: sessions, Users: users}
}

// Middleware returns an HTTP middleware that populates the request
// identity from the session cookie.
func (a *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := a.Sessions.Resolve(r)
		if username == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.Users.FindUserByName(username)
		if err != nil {
			log.WithError(err).Warn("failed to resolve session user")
			next.ServeHTTP(w, r)
			return
		}
		if user == nil {
			// Account deleted while the session cookie was still live
			next.ServeHTTP(w, r)
			return
		}

		roles, err := a.Users.RolesForUser(user.Username)
		if err != nil {
			log.WithError(err).Warn("failed to load roles for session user")
			roles = nil
		}

		id := &identity.Identity{Username: user.Username, Roles: roles}
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// RequireAuthenticated redirects anonymous requests to the login page,
// carrying the original path as the post-login redirect target.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identity.Get(r.Context()); !ok {
			target := "/account/login?returnUrl=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a page on role membership. Anonymous callers are
// sent to the login page; authenticated callers without the role get a
// 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := identity.Get(r.Context())
			if !id.HasRole(role) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
