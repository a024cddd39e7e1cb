package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"skill-matrix/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// AdminUserSeeder creates the initial ADMIN account from
// ADMIN_USERNAME/ADMIN_PASSWORD. Skipped when no password is configured;
// never overwrites an existing user.
type AdminUserSeeder struct{}

func (AdminUserSeeder) Name() string { return "admin_user" }

func (AdminUserSeeder) Run(ctx context.Context, db database.DB) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if strings.TrimSpace(password) == "" {
		return nil
	}

	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if username == "" {
		username = "admin"
	}

	if err := EnsureTableColumns(ctx, db, "users", "id", "username", "password_hash", "role"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO users (id, username, password_hash, role)
		 VALUES (gen_random_uuid(), $1, $2, 'ADMIN')
		 ON CONFLICT (username) DO NOTHING`,
		username,
		string(hash),
	)
	return err
}
