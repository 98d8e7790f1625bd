package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

const emailLogColumns = `id, tenant_id, recipient, subject, template_type, status, error, customer_id, created_at, sent_at`

type emailLogRepository struct {
	db *sql.DB
}

// NewEmailLogRepository creates a new PostgreSQL email log repository
func NewEmailLogRepository(db *sql.DB) domain.EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) CreateEmailLog(ctx context.Context, log *domain.EmailLog) error {
	log.CreatedAt = time.Now().UTC()
	if log.Status == "" {
		log.Status = domain.EmailLogStatusPending
	}

	query := `
		INSERT INTO email_logs (id, tenant_id, recipient, subject, template_type, status, error, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.TenantID,
		log.Recipient,
		log.Subject,
		log.TemplateType,
		log.Status,
		log.Error,
		log.CustomerID,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create email log: %w", err)
	}
	return nil
}

func (r *emailLogRepository) UpdateEmailLogStatus(ctx context.Context, tenantID, id string, status domain.EmailLogStatus, sendError string) error {
	// sent_at is only set on the SENT transition
	var sentAt *time.Time
	if status == domain.EmailLogStatusSent {
		now := time.Now().UTC()
		sentAt = &now
	}

	query := `
		UPDATE email_logs
		SET status = $3, error = $4, sent_at = COALESCE($5, sent_at)
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query, tenantID, id, status, sendError, sentAt)
	if err != nil {
		return fmt.Errorf("failed to update email log status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("email log not found")
	}
	return nil
}

func (r *emailLogRepository) ListEmailLogs(ctx context.Context, params *domain.EmailLogListParams) ([]*domain.EmailLog, int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	conditions := sq.And{sq.Eq{"tenant_id": params.TenantID}}
	if params.Status != "" {
		conditions = append(conditions, sq.Eq{"status": params.Status})
	}
	if params.Recipient != "" {
		conditions = append(conditions, sq.ILike{"recipient": "%" + params.Recipient + "%"})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("email_logs").Where(conditions).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count email logs: %w", err)
	}

	offset := (params.Page - 1) * params.Limit
	listQuery, listArgs, err := psql.Select(emailLogColumns).
		From("email_logs").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.EmailLog, 0)
	for rows.Next() {
		log, err := domain.ScanEmailLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan email log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate email logs: %w", err)
	}

	return logs, total, nil
}
