// Package bootstrap seeds a fresh database with the built-in
// administrator account so a new deployment is usable immediately.
package bootstrap

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"contactbook/pkg/identity"
)

// The built-in administrator. The password is a well-known default and
// should be rotated right after the first sign-in.
const (
	DefaultAdminUsername = "Admin"
	DefaultAdminPassword = "12345Qq!"
)

// Seed ensures the administrator account, the Admin role and the
// membership between them exist. Each step runs in its own transaction
// and only fires when its table is still empty, so re-running Seed
// against a populated database changes nothing and a partially seeded
// database heals on the next start.
func Seed(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := seedAdminRole(db); err != nil {
		return fmt.Errorf("failed to seed admin role: %w", err)
	}
	if err := seedAdminMembership(db); err != nil {
		return fmt.Errorf("failed to seed admin membership: %w", err)
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw(`SELECT count(*) FROM users`).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := identity.HashPassword(DefaultAdminPassword)
		if err != nil {
			return err
		}
		err = tx.Exec(`
			INSERT INTO users (id, username, normalized_username, password_hash, created_at)
			VALUES (1, ?, ?, ?, now())
		`, DefaultAdminUsername, identity.Normalize(DefaultAdminUsername), hash).Error
		if err != nil {
			return err
		}

		// The explicit id bypasses the sequence, realign it so the
		// next registration doesn't collide
		if err := tx.Exec(`SELECT setval('users_id_seq', (SELECT max(id) FROM users))`).Error; err != nil {
			return err
		}

		log.WithField("username", DefaultAdminUsername).Info("seeded administrator account")
		return nil
	})
}

func seedAdminRole(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw(`SELECT count(*) FROM roles`).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		err := tx.Exec(`
			INSERT INTO roles (id, name, normalized_name)
			VALUES (1, ?, ?)
		`, identity.AdminRole, identity.Normalize(identity.AdminRole)).Error
		if err != nil {
			return err
		}
		if err := tx.Exec(`SELECT setval('roles_id_seq', (SELECT max(id) FROM roles))`).Error; err != nil {
			return err
		}

		log.WithField("role", identity.AdminRole).Info("seeded administrator role")
		return nil
	})
}

// seedAdminMembership links the first account to the first role. On a
// fresh database that is the seeded administrator and the Admin role.
func seedAdminMembership(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw(`SELECT count(*) FROM user_roles`).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		return tx.Exec(`
			INSERT INTO user_roles (user_id, role_id)
			SELECT u.id, r.id
			FROM (SELECT min(id) AS id FROM users) u,
			     (SELECT min(id) AS id FROM roles) r
			WHERE u.id IS NOT NULL AND r.id IS NOT NULL
			ON CONFLICT DO NOTHING
		`).Error
	})
}
