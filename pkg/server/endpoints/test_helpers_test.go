package endpoints

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"contactbook/pkg/model"
	"contactbook/pkg/server"
	"contactbook/pkg/server/flash"
	"contactbook/pkg/server/session"
	"contactbook/pkg/server/views"
)

var testSessionKey = []byte("0123456789abcdef0123456789abcdef")

// newTestServer wires a server around mock stores and registers every
// endpoint on it.
func newTestServer(t *testing.T, users *MockUserStore, contacts *MockContactStore) *server.Server {
	t.Helper()

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	sessions := session.NewManager(testSessionKey, time.Hour)
	s := server.NewServer(nil, users, contacts, sessions, renderer, "127.0.0.1:0")
	RegisterAll(s)
	return s
}

// expectSignedIn arranges the mock so the session middleware resolves
// username to an account holding the given roles.
func expectSignedIn(users *MockUserStore, username string, roles []string) {
	users.On("FindUserByName", username).Return(&model.User{ID: 1, Username: username}, nil)
	users.On("RolesForUser", username).Return(roles, nil)
}

// sessionCookie issues a session cookie for username using the server's
// own session manager.
func sessionCookie(t *testing.T, s *server.Server, username string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	require.NoError(t, s.Sessions.SignIn(w, username, false))
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("sign-in did not set a session cookie")
	return nil
}

// postForm performs a form POST against the server's router.
func postForm(s *server.Server, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func get(s *server.Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// flashValues decodes the flash cookie a response sets.
func flashValues(t *testing.T, w *httptest.ResponseRecorder) flash.Values {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name != flash.CookieName || c.MaxAge < 0 {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(c.Value)
		require.NoError(t, err)
		var values flash.Values
		require.NoError(t, json.Unmarshal(raw, &values))
		return values
	}
	t.Fatal("response did not set a flash cookie")
	return nil
}
