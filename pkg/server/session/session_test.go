package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSignInResolve(t *testing.T) {
	m := NewManager([]byte("test-key"), time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, "alice", false))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Zero(t, cookies[0].MaxAge, "non-persistent session is a browser-session cookie")

	assert.Equal(t, "alice", m.Resolve(requestWithCookies(t, w)))
}

func TestPersistentSignIn(t *testing.T) {
	m := NewManager([]byte("test-key"), time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, "alice", true))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestResolveNoCookie(t *testing.T) {
	m := NewManager([]byte("test-key"), time.Hour)
	assert.Empty(t, m.Resolve(httptest.NewRequest("GET", "/", nil)))
}

func TestResolveWrongKey(t *testing.T) {
	m := NewManager([]byte("test-key"), time.Hour)
	other := NewManager([]byte("other-key"), time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, "alice", false))

	assert.Empty(t, other.Resolve(requestWithCookies(t, w)))
}

func TestResolveExpired(t *testing.T) {
	m := NewManager([]byte("test-key"), -time.Minute)

	w := httptest.NewRecorder()
	require.NoError(t, m.SignIn(w, "alice", false))

	assert.Empty(t, m.Resolve(requestWithCookies(t, w)))
}

func TestSignOut(t *testing.T) {
	m := NewManager([]byte("test-key"), time.Hour)

	w := httptest.NewRecorder()
	m.SignOut(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
