package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_email_template_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain EmailTemplateRepository
//go:generate mockgen -destination mocks/mock_email_template_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain EmailTemplateService

// EmailTemplateType names the purpose of a template. Templates are
// keyed uniquely by type within a tenant.
type EmailTemplateType string

const (
	EmailTemplateWelcome           EmailTemplateType = "WELCOME"
	EmailTemplatePasswordReset     EmailTemplateType = "PASSWORD_RESET"
	EmailTemplateEmailVerification EmailTemplateType = "EMAIL_VERIFICATION"
	EmailTemplateLeadNotification  EmailTemplateType = "LEAD_NOTIFICATION"
	EmailTemplateTrackingActive    EmailTemplateType = "TRACKING_ACTIVE"
	EmailTemplateTrackingFailed    EmailTemplateType = "TRACKING_FAILED"
	EmailTemplateNewsletter        EmailTemplateType = "NEWSLETTER"
	EmailTemplateTrialEnding       EmailTemplateType = "TRIAL_ENDING"
	EmailTemplateInvoice           EmailTemplateType = "INVOICE"
)

func (t EmailTemplateType) Validate() error {
	switch t {
	case EmailTemplateWelcome, EmailTemplatePasswordReset, EmailTemplateEmailVerification,
		EmailTemplateLeadNotification, EmailTemplateTrackingActive, EmailTemplateTrackingFailed,
		EmailTemplateNewsletter, EmailTemplateTrialEnding, EmailTemplateInvoice:
		return nil
	}
	return fmt.Errorf("invalid email template type: %s", t)
}

// EmailTemplate holds the subject and bodies for one template type.
// Placeholders use {{variable}} syntax; AvailableVariables documents
// them for the admin UI.
type EmailTemplate struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	Type        EmailTemplateType `json:"type"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"html_content"`
	TextContent string            `json:"text_content,omitempty"`
	IsActive    bool              `json:"is_active"`

	AvailableVariables map[string]string `json:"available_variables,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate ensures the template has all required fields
func (t *EmailTemplate) Validate() error {
	if t.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if t.HTMLContent == "" {
		return fmt.Errorf("html_content is required")
	}
	return nil
}

// ScanEmailTemplate scans a template from the database
func ScanEmailTemplate(scanner interface {
	Scan(dest ...interface{}) error
}) (*EmailTemplate, error) {
	var (
		t         EmailTemplate
		text      sql.NullString
		variables []byte
	)
	if err := scanner.Scan(
		&t.ID,
		&t.TenantID,
		&t.Type,
		&t.Subject,
		&t.HTMLContent,
		&text,
		&t.IsActive,
		&variables,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.TextContent = text.String
	if len(variables) > 0 {
		if err := json.Unmarshal(variables, &t.AvailableVariables); err != nil {
			return nil, fmt.Errorf("failed to unmarshal available variables: %w", err)
		}
	}

	return &t, nil
}

// UpsertEmailTemplateRequest creates or replaces the template for a type
type UpsertEmailTemplateRequest struct {
	TenantID    string            `json:"tenant_id"`
	Type        EmailTemplateType `json:"type"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"html_content"`
	TextContent string            `json:"text_content,omitempty"`
	IsActive    bool              `json:"is_active"`

	AvailableVariables map[string]string `json:"available_variables,omitempty"`
}

func (r *UpsertEmailTemplateRequest) Validate() (*EmailTemplate, error) {
	template := &EmailTemplate{
		TenantID:           r.TenantID,
		Type:               r.Type,
		Subject:            r.Subject,
		HTMLContent:        r.HTMLContent,
		TextContent:        r.TextContent,
		IsActive:           r.IsActive,
		AvailableVariables: r.AvailableVariables,
	}
	if err := template.Validate(); err != nil {
		return nil, fmt.Errorf("invalid upsert email template request: %w", err)
	}
	return template, nil
}

// EmailTemplateService manages the tenant template set. All operations
// require admin access.
type EmailTemplateService interface {
	UpsertTemplate(ctx context.Context, req *UpsertEmailTemplateRequest) (*EmailTemplate, error)
	GetTemplate(ctx context.Context, tenantID string, templateType EmailTemplateType) (*EmailTemplate, error)
	ListTemplates(ctx context.Context, tenantID string) ([]*EmailTemplate, error)
	DeleteTemplate(ctx context.Context, tenantID string, templateType EmailTemplateType) error
}

// EmailTemplateRepository provides persistence for email templates
type EmailTemplateRepository interface {
	// UpsertTemplate inserts or replaces the template for its type
	UpsertTemplate(ctx context.Context, template *EmailTemplate) error
	GetTemplateByType(ctx context.Context, tenantID string, templateType EmailTemplateType) (*EmailTemplate, error)
	ListTemplates(ctx context.Context, tenantID string) ([]*EmailTemplate, error)
	DeleteTemplate(ctx context.Context, tenantID string, templateType EmailTemplateType) error
}

// ErrEmailTemplateNotFound is returned when no template exists for a type
type ErrEmailTemplateNotFound struct {
	Message string
}

func (e *ErrEmailTemplateNotFound) Error() string {
	return e.Message
}
