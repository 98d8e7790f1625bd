package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new PostgreSQL site settings repository
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSettings(ctx context.Context, tenantID string) (*domain.SiteSettings, error) {
	query := `
		SELECT tenant_id, consent_expiry_days, banner_delay_ms, email_triggers, newsletter_double_opt_in, created_at, updated_at
		FROM site_settings
		WHERE tenant_id = $1
	`
	row := r.db.QueryRowContext(ctx, query, tenantID)
	settings, err := domain.ScanSiteSettings(row)
	if err == sql.ErrNoRows {
		// Tenants without a settings row run on defaults
		return domain.DefaultSiteSettings(tenantID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return settings, nil
}

func (r *settingsRepository) UpsertSettings(ctx context.Context, settings *domain.SiteSettings) error {
	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	triggers, err := json.Marshal(settings.EmailTriggers)
	if err != nil {
		return fmt.Errorf("failed to marshal email triggers: %w", err)
	}

	query := `
		INSERT INTO site_settings (tenant_id, consent_expiry_days, banner_delay_ms, email_triggers, newsletter_double_opt_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id) DO UPDATE
		SET consent_expiry_days = $2, banner_delay_ms = $3, email_triggers = $4,
			newsletter_double_opt_in = $5, updated_at = $7
	`
	_, err = r.db.ExecContext(ctx, query,
		settings.TenantID,
		settings.ConsentExpiryDays,
		settings.BannerDelayMs,
		triggers,
		settings.NewsletterDoubleOptIn,
		settings.CreatedAt,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert site settings: %w", err)
	}
	return nil
}
