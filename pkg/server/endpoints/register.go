package endpoints

import (
	"net/http"

	"contactbook/pkg/server"
	"contactbook/pkg/server/middleware"
)

// RegisterAll registers every page and action on the server, along with
// the session middleware that resolves the caller's identity.
func RegisterAll(s *server.Server) {
	auth := middleware.NewSessionAuthenticator(s.Sessions, s.Users)
	s.Router.Use(auth.Middleware)

	RegisterHomeEndpoints(s)
	RegisterAccountEndpoints(s)
	RegisterAdminEndpoints(s)
	RegisterContactEndpoints(s)
	RegisterHelpEndpoint(s)

	// Static files
	RegisterStaticFiles(s)

	s.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderError(s, w, r, http.StatusNotFound, "Not found", "The page you requested does not exist.")
	})
}
