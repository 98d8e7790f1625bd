package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_settings_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain SettingsRepository
//go:generate mockgen -destination mocks/mock_settings_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain SettingsService

// Site settings defaults applied when a tenant has no settings row
const (
	DefaultConsentExpiryDays = 180
	DefaultBannerDelayMs     = 2000
)

// SiteSettings holds per-tenant behavior toggles: cookie banner policy
// and which email triggers are administratively enabled.
type SiteSettings struct {
	TenantID          string `json:"tenant_id"`
	ConsentExpiryDays int    `json:"consent_expiry_days"`
	BannerDelayMs     int    `json:"banner_delay_ms"`

	// Keyed by email template type; a missing key means enabled
	EmailTriggers map[EmailTemplateType]bool `json:"email_triggers,omitempty"`

	NewsletterDoubleOptIn bool `json:"newsletter_double_opt_in"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the settings used before a tenant saves any
func DefaultSiteSettings(tenantID string) *SiteSettings {
	return &SiteSettings{
		TenantID:          tenantID,
		ConsentExpiryDays: DefaultConsentExpiryDays,
		BannerDelayMs:     DefaultBannerDelayMs,
	}
}

// IsTriggerEnabled reports whether a templated trigger may send
func (s *SiteSettings) IsTriggerEnabled(templateType EmailTemplateType) bool {
	if s.EmailTriggers == nil {
		return true
	}
	enabled, ok := s.EmailTriggers[templateType]
	if !ok {
		return true
	}
	return enabled
}

// Validate ensures the settings values are usable
func (s *SiteSettings) Validate() error {
	if s.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if s.ConsentExpiryDays < 1 {
		return fmt.Errorf("consent_expiry_days must be at least 1")
	}
	if s.BannerDelayMs < 0 {
		return fmt.Errorf("banner_delay_ms must not be negative")
	}
	return nil
}

// ScanSiteSettings scans a settings row from the database
func ScanSiteSettings(scanner interface {
	Scan(dest ...interface{}) error
}) (*SiteSettings, error) {
	var (
		s        SiteSettings
		triggers []byte
		double   sql.NullBool
	)
	if err := scanner.Scan(
		&s.TenantID,
		&s.ConsentExpiryDays,
		&s.BannerDelayMs,
		&triggers,
		&double,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(triggers) > 0 {
		if err := json.Unmarshal(triggers, &s.EmailTriggers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal email triggers: %w", err)
		}
	}
	s.NewsletterDoubleOptIn = double.Bool

	return &s, nil
}

// UpdateSiteSettingsRequest replaces the tenant settings row
type UpdateSiteSettingsRequest struct {
	TenantID          string `json:"tenant_id"`
	ConsentExpiryDays int    `json:"consent_expiry_days"`
	BannerDelayMs     int    `json:"banner_delay_ms"`

	EmailTriggers map[EmailTemplateType]bool `json:"email_triggers,omitempty"`

	NewsletterDoubleOptIn bool `json:"newsletter_double_opt_in"`
}

func (r *UpdateSiteSettingsRequest) Validate() (*SiteSettings, error) {
	settings := &SiteSettings{
		TenantID:              r.TenantID,
		ConsentExpiryDays:     r.ConsentExpiryDays,
		BannerDelayMs:         r.BannerDelayMs,
		EmailTriggers:         r.EmailTriggers,
		NewsletterDoubleOptIn: r.NewsletterDoubleOptIn,
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid update settings request: %w", err)
	}
	return settings, nil
}

// SettingsService manages the tenant settings row. Admin only.
type SettingsService interface {
	GetSettings(ctx context.Context, tenantID string) (*SiteSettings, error)
	UpdateSettings(ctx context.Context, req *UpdateSiteSettingsRequest) (*SiteSettings, error)
}

// SettingsRepository provides persistence for site settings
type SettingsRepository interface {
	// GetSettings returns the tenant settings row, or defaults when the
	// tenant never saved any
	GetSettings(ctx context.Context, tenantID string) (*SiteSettings, error)
	// UpsertSettings inserts or replaces the tenant settings row
	UpsertSettings(ctx context.Context, settings *SiteSettings) error
}
