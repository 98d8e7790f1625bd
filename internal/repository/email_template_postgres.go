package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

type emailTemplateRepository struct {
	db *sql.DB
}

// NewEmailTemplateRepository creates a new PostgreSQL email template repository
func NewEmailTemplateRepository(db *sql.DB) domain.EmailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

func (r *emailTemplateRepository) UpsertTemplate(ctx context.Context, template *domain.EmailTemplate) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	variables, err := json.Marshal(template.AvailableVariables)
	if err != nil {
		return fmt.Errorf("failed to marshal available variables: %w", err)
	}

	// One template per (tenant, type): a second upsert replaces the
	// first. RETURNING echoes the persisted id and created_at so an
	// updated row keeps its original identity in the response.
	query := `
		INSERT INTO email_templates (
			id, tenant_id, type, subject, html_content, text_content, is_active,
			available_variables, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tenant_id, type) DO UPDATE
		SET subject = $4, html_content = $5, text_content = $6, is_active = $7,
			available_variables = $8, updated_at = $10
		RETURNING id, created_at
	`
	err = r.db.QueryRowContext(ctx, query,
		template.ID,
		template.TenantID,
		template.Type,
		template.Subject,
		template.HTMLContent,
		template.TextContent,
		template.IsActive,
		variables,
		template.CreatedAt,
		template.UpdatedAt,
	).Scan(&template.ID, &template.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert email template: %w", err)
	}
	return nil
}

func (r *emailTemplateRepository) GetTemplateByType(ctx context.Context, tenantID string, templateType domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	query := `
		SELECT id, tenant_id, type, subject, html_content, text_content, is_active,
			available_variables, created_at, updated_at
		FROM email_templates
		WHERE tenant_id = $1 AND type = $2
	`
	row := r.db.QueryRowContext(ctx, query, tenantID, templateType)
	template, err := domain.ScanEmailTemplate(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrEmailTemplateNotFound{Message: "email template not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}
	return template, nil
}

func (r *emailTemplateRepository) ListTemplates(ctx context.Context, tenantID string) ([]*domain.EmailTemplate, error) {
	query := `
		SELECT id, tenant_id, type, subject, html_content, text_content, is_active,
			available_variables, created_at, updated_at
		FROM email_templates
		WHERE tenant_id = $1
		ORDER BY type ASC
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	defer rows.Close()

	templates := make([]*domain.EmailTemplate, 0)
	for rows.Next() {
		template, err := domain.ScanEmailTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email template: %w", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate email templates: %w", err)
	}
	return templates, nil
}

func (r *emailTemplateRepository) DeleteTemplate(ctx context.Context, tenantID string, templateType domain.EmailTemplateType) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM email_templates WHERE tenant_id = $1 AND type = $2`, tenantID, templateType)
	if err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrEmailTemplateNotFound{Message: "email template not found"}
	}
	return nil
}
