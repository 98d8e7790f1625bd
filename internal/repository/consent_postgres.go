package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

type consentRepository struct {
	db *sql.DB
}

// NewConsentRepository creates a new PostgreSQL consent repository
func NewConsentRepository(db *sql.DB) domain.ConsentRepository {
	return &consentRepository{db: db}
}

func (r *consentRepository) UpsertConsent(ctx context.Context, record *domain.ConsentRecord) error {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	// Re-submitting the banner refreshes the existing record
	query := `
		INSERT INTO consent_records (id, tenant_id, anonymous_id, necessary, analytics, marketing, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tenant_id, anonymous_id) DO UPDATE
		SET necessary = $4, analytics = $5, marketing = $6, user_agent = $7, updated_at = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.TenantID,
		record.AnonymousID,
		record.Necessary,
		record.Analytics,
		record.Marketing,
		record.UserAgent,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert consent record: %w", err)
	}
	return nil
}

func (r *consentRepository) GetConsentByAnonymousID(ctx context.Context, tenantID, anonymousID string) (*domain.ConsentRecord, error) {
	query := `
		SELECT id, tenant_id, anonymous_id, necessary, analytics, marketing, user_agent, created_at, updated_at
		FROM consent_records
		WHERE tenant_id = $1 AND anonymous_id = $2
	`
	row := r.db.QueryRowContext(ctx, query, tenantID, anonymousID)
	record, err := domain.ScanConsentRecord(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrConsentNotFound{Message: "consent record not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consent record: %w", err)
	}
	return record, nil
}
