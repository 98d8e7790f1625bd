package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

const trackingColumns = `id, tenant_id, customer_id, name, type, description,
	selector, url_pattern, config, destinations,
	ga4_event_name, ga4_event_params, ads_conversion_value,
	status, conversion_action_id, last_error, created_at, updated_at`

type trackingRepository struct {
	db *sql.DB
}

// NewTrackingRepository creates a new PostgreSQL tracking repository
func NewTrackingRepository(db *sql.DB) domain.TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) CreateTracking(ctx context.Context, tracking *domain.Tracking) error {
	now := time.Now().UTC()
	tracking.CreatedAt = now
	tracking.UpdatedAt = now

	config, err := json.Marshal(tracking.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking config: %w", err)
	}
	eventParams, err := json.Marshal(tracking.GA4EventParams)
	if err != nil {
		return fmt.Errorf("failed to marshal GA4 event params: %w", err)
	}

	destinations := make([]string, 0, len(tracking.Destinations))
	for _, d := range tracking.Destinations {
		destinations = append(destinations, string(d))
	}

	query := `
		INSERT INTO trackings (
			id, tenant_id, customer_id, name, type, description,
			selector, url_pattern, config, destinations,
			ga4_event_name, ga4_event_params, ads_conversion_value,
			status, conversion_action_id, last_error, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err = r.db.ExecContext(ctx, query,
		tracking.ID,
		tracking.TenantID,
		tracking.CustomerID,
		tracking.Name,
		tracking.Type,
		tracking.Description,
		tracking.Selector,
		tracking.URLPattern,
		config,
		pq.Array(destinations),
		tracking.GA4EventName,
		eventParams,
		tracking.AdsConversionValue,
		tracking.Status,
		tracking.ConversionActionID,
		tracking.LastError,
		tracking.CreatedAt,
		tracking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create tracking: %w", err)
	}
	return nil
}

func (r *trackingRepository) GetTrackingByID(ctx context.Context, tenantID, id string) (*domain.Tracking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trackings
		WHERE tenant_id = $1 AND id = $2
	`, trackingColumns)

	row := r.db.QueryRowContext(ctx, query, tenantID, id)
	tracking, err := domain.ScanTracking(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrTrackingNotFound{Message: "tracking not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking: %w", err)
	}
	return tracking, nil
}

func (r *trackingRepository) ListTrackingsByCustomer(ctx context.Context, tenantID, customerID string) ([]*domain.Tracking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM trackings
		WHERE tenant_id = $1 AND customer_id = $2
		ORDER BY created_at DESC
	`, trackingColumns)

	rows, err := r.db.QueryContext(ctx, query, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trackings: %w", err)
	}
	defer rows.Close()

	trackings := make([]*domain.Tracking, 0)
	for rows.Next() {
		tracking, err := domain.ScanTracking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracking: %w", err)
		}
		trackings = append(trackings, tracking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trackings: %w", err)
	}
	return trackings, nil
}

func (r *trackingRepository) UpdateTracking(ctx context.Context, tracking *domain.Tracking) error {
	tracking.UpdatedAt = time.Now().UTC()

	config, err := json.Marshal(tracking.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking config: %w", err)
	}
	eventParams, err := json.Marshal(tracking.GA4EventParams)
	if err != nil {
		return fmt.Errorf("failed to marshal GA4 event params: %w", err)
	}

	destinations := make([]string, 0, len(tracking.Destinations))
	for _, d := range tracking.Destinations {
		destinations = append(destinations, string(d))
	}

	query := `
		UPDATE trackings
		SET name = $3, description = $4, selector = $5, url_pattern = $6, config = $7,
			destinations = $8, ga4_event_name = $9, ga4_event_params = $10, ads_conversion_value = $11,
			status = $12, conversion_action_id = $13, last_error = $14, updated_at = $15
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		tracking.TenantID,
		tracking.ID,
		tracking.Name,
		tracking.Description,
		tracking.Selector,
		tracking.URLPattern,
		config,
		pq.Array(destinations),
		tracking.GA4EventName,
		eventParams,
		tracking.AdsConversionValue,
		tracking.Status,
		tracking.ConversionActionID,
		tracking.LastError,
		tracking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update tracking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrTrackingNotFound{Message: "tracking not found"}
	}
	return nil
}

func (r *trackingRepository) DeleteTracking(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM trackings WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete tracking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrTrackingNotFound{Message: "tracking not found"}
	}
	return nil
}
