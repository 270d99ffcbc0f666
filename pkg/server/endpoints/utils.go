package endpoints

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"contactbook/pkg/identity"
	"contactbook/pkg/server"
	"contactbook/pkg/server/flash"
	"contactbook/pkg/server/views"
)

// pageData assembles the common view data for a request: the caller's
// identity and any flash values from the preceding redirect. Taking the
// flash here clears its cookie, so each value renders exactly once.
func pageData(w http.ResponseWriter, r *http.Request, title string) *views.Data {
	id, _ := identity.Get(r.Context())
	return &views.Data{
		Title:    title,
		Identity: id,
		Flash:    flash.Take(w, r),
	}
}

// isLocalURL reports whether target is a same-origin path. Redirecting
// after login only to local paths is the open-redirect guard: absolute
// URLs, scheme-relative URLs ("//evil.example") and backslash variants
// are all rejected.
func isLocalURL(target string) bool {
	if target == "" {
		return false
	}
	if !strings.HasPrefix(target, "/") {
		return false
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	return true
}

// renderError renders the shared error page with the given status.
func renderError(s *server.Server, w http.ResponseWriter, r *http.Request, status int, title, message string) {
	data := pageData(w, r, title)
	data.Model = message
	s.Views.Render(w, status, "error.html", data)
}

// contactID extracts the {id} route variable.
func contactID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}
