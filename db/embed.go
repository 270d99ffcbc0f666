// Package db carries the SQL migration files so they can be embedded
// into the binary for production builds.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
