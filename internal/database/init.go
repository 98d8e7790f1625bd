package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oneclicktag/oneclicktag/internal/database/schema"
	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/crypto"
)

// InitializeDatabase creates all necessary database tables if they don't exist
func InitializeDatabase(db *sql.DB, rootEmail, rootPassword string) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Seed the root tenant and its admin so a fresh install is usable
	if rootEmail != "" && rootPassword != "" {
		if err := seedRootTenant(db, rootEmail, rootPassword); err != nil {
			return err
		}
	}

	return nil
}

func seedRootTenant(db *sql.DB, rootEmail, rootPassword string) error {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", rootEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check root user existence: %w", err)
	}
	if exists {
		return nil
	}

	now := time.Now().UTC()
	tenant := &domain.Tenant{
		ID:        uuid.New().String(),
		Name:      "Default",
		Slug:      "default",
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = db.Exec(`
		INSERT INTO tenants (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO NOTHING
	`, tenant.ID, tenant.Name, tenant.Slug, tenant.CreatedAt, tenant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create root tenant: %w", err)
	}

	// The ON CONFLICT above may have kept an earlier tenant row
	if err := db.QueryRow("SELECT id FROM tenants WHERE slug = $1", tenant.Slug).Scan(&tenant.ID); err != nil {
		return fmt.Errorf("failed to load root tenant: %w", err)
	}

	passwordHash, err := crypto.HashPassword(rootPassword)
	if err != nil {
		return fmt.Errorf("failed to hash root password: %w", err)
	}

	rootUser := &domain.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Email:        rootEmail,
		Name:         "Root User",
		Role:         domain.UserRoleAdmin,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err = db.Exec(`
		INSERT INTO users (id, tenant_id, email, name, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		rootUser.ID,
		rootUser.TenantID,
		rootUser.Email,
		rootUser.Name,
		rootUser.Role,
		rootUser.PasswordHash,
		rootUser.CreatedAt,
		rootUser.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create root user: %w", err)
	}

	return nil
}

// CleanDatabase drops all tables in reverse order
func CleanDatabase(db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	return nil
}
