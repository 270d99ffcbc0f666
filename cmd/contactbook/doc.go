// Contact Book is a server-rendered web application for keeping a
// shared address book behind username and password sign-in, with
// role-based administration.
//
// # Architecture
//
// The application is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: page and form handlers
//   - pkg/server/store: storage interfaces, with GORM and remote-API
//     implementations underneath
//   - pkg/server/session: signed session cookies
//   - pkg/server/views: HTML templates
//   - pkg/identity: password policy and request identity
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//   - pkg/bootstrap: first-start database seeding
//
// # Quick Start
//
//	# Run database migrations
//	contactbook db migrate
//
//	# Start the server (seeds the Admin account on first start)
//	contactbook server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - CONTACTBOOK_SESSION_KEY: secret that signs session cookies
//   - CONTACTBOOK_CONTACT_BACKEND: "database" or "api"
//   - CONTACTBOOK_CONTACT_API_URL: base URL of the remote contact API
//   - CONTACTBOOK_LOG_LEVEL: log level (debug, info, warn, error)
//   - CONTACTBOOK_BIND_ADDRESS, PORT: listen address
package main
