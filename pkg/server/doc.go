// Package server provides the HTTP server for the contact book
// application.
//
// It uses gorilla/mux for routing, a session middleware for cookie
// authentication, and server-side HTML rendering through pkg/server/views.
//
// # Server Setup
//
//	srv := server.NewServer(db, users, contacts, sessions, renderer, addr)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Users: the identity boundary (accounts, roles, memberships)
//   - Contacts: the active contact store (database or remote API)
//   - Sessions: signed session cookie manager
//   - Views: HTML template renderer
//   - Router: HTTP request router
//   - DB: database connection
//
// # Endpoints
//
// Pages are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
package server
