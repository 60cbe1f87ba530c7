package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"lorasite/internal/models"
)

// bootstrapOnce guards the default-admin provisioning so it runs at most
// once per process lifetime, even if EnsureDefaultAdmin is called from
// multiple places.
var bootstrapOnce sync.Once

// EnsureDefaultAdmin provisions the default admin account when the users
// table is empty. It is idempotent and a no-op once any user exists.
func EnsureDefaultAdmin(db *sql.DB) error {
	var err error
	bootstrapOnce.Do(func() {
		err = createDefaultAdminIfEmpty(db)
	})
	return err
}

// CreateDefaultAdmin inserts the default admin unconditionally of the
// sync.Once guard. Used by the login bootstrap rule, which must be able to
// recreate the account later in the process lifetime if the table has been
// emptied since startup.
func CreateDefaultAdmin(db *sql.DB) error {
	return createDefaultAdminIfEmpty(db)
}

func createDefaultAdminIfEmpty(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("bootstrap check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(models.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
	`, models.DefaultAdminEmail, string(hash), "Admin", models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("bootstrap insert admin: %w", err)
	}

	slog.Info("default admin provisioned", "email", models.DefaultAdminEmail)
	return nil
}
