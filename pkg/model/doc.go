// Package model defines the database models for the contact book.
//
// This package contains GORM models that map to the PostgreSQL schema
// created by the migrations in db/migrations.
//
// # Core Models
//
//   - User: accounts that can sign in (username + bcrypt password hash)
//   - Role: named authorization groups, uniqueness by normalized name
//   - UserRole: many-to-many link between users and roles
//   - Contact: person records managed by the contact store
package model
