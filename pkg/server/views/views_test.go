package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/pkg/identity"
	"contactbook/pkg/server/flash"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{"home.html", "admin.html", "contacts.html", "error.html"} {
		assert.Contains(t, r.pages, page)
	}
	assert.NotContains(t, r.pages, "layout.html")
}

func TestRenderAnonymous(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "home.html", &Data{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "log in")
	assert.NotContains(t, w.Body.String(), "Administration")
}

func TestRenderAdminNavigation(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "home.html", &Data{
		Identity: &identity.Identity{Username: "alice", Roles: []string{"Admin"}},
	})

	assert.Contains(t, w.Body.String(), "Administration")
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRenderFlashAndErrors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	values := flash.Values{"RoleCreateMessage": "Role created successfully"}
	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "admin.html", &Data{
		Identity: &identity.Identity{Username: "alice", Roles: []string{"Admin"}},
		Flash:    values,
		Bag:      map[string]interface{}{"Roles": []string{"Admin"}},
	})

	assert.Contains(t, w.Body.String(), "Role created successfully")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "nope.html", &Data{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
