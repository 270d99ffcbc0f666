package endpoints

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/pkg/model"
	"contactbook/pkg/server/session"
)

func TestLoginFormCarriesReturnURL(t *testing.T) {
	users := NewMockUserStore()
	s := newTestServer(t, users, NewMockContactStore())

	w := get(s, "/account/login?returnUrl=%2Fcontacts")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="/contacts"`)
}

func TestLoginSuccessRedirectsToReturnURL(t *testing.T) {
	users := NewMockUserStore()
	users.On("VerifyPassword", "alice", "S3cret!x").Return(true, nil)
	s := newTestServer(t, users, NewMockContactStore())

	w := postForm(s, "/account/login", url.Values{
		"login":     {"alice"},
		"password":  {"S3cret!x"},
		"returnUrl": {"/contacts"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/contacts", w.Header().Get("Location"))
	assert.True(t, hasSessionCookie(w.Result().Cookies()))
	users.AssertExpectations(t)
}

func TestLoginIgnoresExternalReturnURL(t *testing.T) {
	users := NewMockUserStore()
	users.On("VerifyPassword", "alice", "S3cret!x").Return(true, nil)
	s := newTestServer(t, users, NewMockContactStore())

	for _, target := range []string{
		"https://evil.example/",
		"//evil.example/",
		`/\evil.example`,
		"",
	} {
		w := postForm(s, "/account/login", url.Values{
			"login":     {"alice"},
			"password":  {"S3cret!x"},
			"returnUrl": {target},
		})

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"), "returnUrl %q", target)
	}
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	users := NewMockUserStore()
	users.On("VerifyPassword", "ghost", "whatever1!").Return(false, nil)
	users.On("VerifyPassword", "alice", "wrong-pass").Return(false, nil)
	s := newTestServer(t, users, NewMockContactStore())

	for _, creds := range []url.Values{
		{"login": {"ghost"}, "password": {"whatever1!"}},
		{"login": {"alice"}, "password": {"wrong-pass"}},
	} {
		w := postForm(s, "/account/login", creds)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), loginFailedMessage)
		assert.False(t, hasSessionCookie(w.Result().Cookies()))
	}
}

func TestLoginValidatesForm(t *testing.T) {
	users := NewMockUserStore()
	s := newTestServer(t, users, NewMockContactStore())

	w := postForm(s, "/account/login", url.Values{"login": {""}, "password": {""}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Username is required.")
	users.AssertNotCalled(t, "VerifyPassword")
}

func TestRegisterSignsInNewUser(t *testing.T) {
	users := NewMockUserStore()
	users.On("CreateUser", "bob", "12345Qq!").
		Return(&model.User{ID: 7, Username: "bob"}, nil, nil)
	s := newTestServer(t, users, NewMockContactStore())

	w := postForm(s, "/account/register", url.Values{
		"login":           {"bob"},
		"password":        {"12345Qq!"},
		"confirmPassword": {"12345Qq!"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := findSessionCookie(w.Result().Cookies())
	require.NotNil(t, cookie)
	// Session-scoped cookie, not a persistent one
	assert.Equal(t, 0, cookie.MaxAge)
	users.AssertExpectations(t)
}

func TestRegisterReportsPolicyViolations(t *testing.T) {
	users := NewMockUserStore()
	users.On("CreateUser", "bob", "short").
		Return(nil, []string{"Passwords must be at least 6 characters."}, nil)
	s := newTestServer(t, users, NewMockContactStore())

	w := postForm(s, "/account/register", url.Values{
		"login":           {"bob"},
		"password":        {"short"},
		"confirmPassword": {"short"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords must be at least 6 characters.")
	assert.False(t, hasSessionCookie(w.Result().Cookies()))
}

func TestRegisterRejectsMismatchedConfirmation(t *testing.T) {
	users := NewMockUserStore()
	s := newTestServer(t, users, NewMockContactStore())

	w := postForm(s, "/account/register", url.Values{
		"login":           {"bob"},
		"password":        {"12345Qq!"},
		"confirmPassword": {"12345Qq?"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The password and confirmation password do not match.")
	users.AssertNotCalled(t, "CreateUser")
}

func TestLogoutClearsSession(t *testing.T) {
	users := NewMockUserStore()
	expectSignedIn(users, "alice", []string{})
	s := newTestServer(t, users, NewMockContactStore())

	w := postForm(s, "/account/logout", nil, sessionCookie(t, s, "alice"))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := findSessionCookie(w.Result().Cookies())
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestHomePageRendersForAnonymous(t *testing.T) {
	s := newTestServer(t, NewMockUserStore(), NewMockContactStore())

	w := get(s, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Log in")
}

func TestUnknownPageRendersNotFound(t *testing.T) {
	s := newTestServer(t, NewMockUserStore(), NewMockContactStore())

	w := get(s, "/no-such-page")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "The page you requested does not exist.")
}

func TestHelpPageRendersMarkdown(t *testing.T) {
	s := newTestServer(t, NewMockUserStore(), NewMockContactStore())

	w := get(s, "/help")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Contact Book help</h1>")
}

func hasSessionCookie(cookies []*http.Cookie) bool {
	return findSessionCookie(cookies) != nil
}

func findSessionCookie(cookies []*http.Cookie) *http.Cookie {
	for _, c := range cookies {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
