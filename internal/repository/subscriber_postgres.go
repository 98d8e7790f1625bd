package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

type subscriberRepository struct {
	db *sql.DB
}

// NewSubscriberRepository creates a new PostgreSQL subscriber repository
func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) UpsertSubscriber(ctx context.Context, subscriber *domain.Subscriber) error {
	now := time.Now().UTC()
	subscriber.CreatedAt = now
	subscriber.UpdatedAt = now

	// Re-subscribing clears a previous unsubscribe
	query := `
		INSERT INTO subscribers (id, tenant_id, email, opted_in, unsubscribed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULL, $5, $6)
		ON CONFLICT (tenant_id, email) DO UPDATE
		SET opted_in = $4, unsubscribed_at = NULL, updated_at = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		subscriber.ID,
		subscriber.TenantID,
		subscriber.Email,
		subscriber.OptedIn,
		subscriber.CreatedAt,
		subscriber.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert subscriber: %w", err)
	}
	return nil
}

func (r *subscriberRepository) Unsubscribe(ctx context.Context, tenantID, email string) error {
	query := `
		UPDATE subscribers
		SET opted_in = FALSE, unsubscribed_at = $3, updated_at = $3
		WHERE tenant_id = $1 AND LOWER(email) = LOWER($2)
	`
	// Unknown emails are a no-op, unsubscribe links must never error
	if _, err := r.db.ExecContext(ctx, query, tenantID, email, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

func (r *subscriberRepository) ListSendableRecipients(ctx context.Context, tenantID string) ([]string, error) {
	query := `
		SELECT email
		FROM subscribers
		WHERE tenant_id = $1 AND opted_in = TRUE AND unsubscribed_at IS NULL
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		recipients = append(recipients, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipients: %w", err)
	}
	return recipients, nil
}
