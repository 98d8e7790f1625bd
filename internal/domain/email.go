package domain

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination mocks/mock_email_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain EmailService

// Bulk sending parameters: recipients are partitioned into fixed-size
// batches sent concurrently within a batch, with a fixed delay between
// batches. BulkEmailConcurrency caps how many sends run at once, below
// the batch size so a batch never saturates the SMTP connection pool.
const (
	BulkEmailBatchSize    = 10
	BulkEmailConcurrency  = 5
	BulkEmailMaxErrors    = 10
	BulkEmailDelaySeconds = 1
)

// SendEmailRequest asks for one templated email
type SendEmailRequest struct {
	TenantID  string                 `json:"tenant_id"`
	Type      EmailTemplateType      `json:"type"`
	To        string                 `json:"to"`
	Variables map[string]interface{} `json:"variables,omitempty"`

	// Optional customer reference recorded on the email log
	CustomerID *string `json:"customer_id,omitempty"`
}

func (r *SendEmailRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid send email request: tenant_id is required")
	}
	if err := r.Type.Validate(); err != nil {
		return fmt.Errorf("invalid send email request: %w", err)
	}
	if r.To == "" {
		return fmt.Errorf("invalid send email request: to is required")
	}
	return nil
}

// SendEmailResult reports the outcome of one send. Transport failures
// surface here, never as an error return: the caller decides whether
// to retry.
type SendEmailResult struct {
	Success bool   `json:"success"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
	LogID   string `json:"log_id,omitempty"`
}

// BulkSendRequest asks for a templated email to many recipients. When
// Recipients is empty the opted-in, non-unsubscribed subscribers of the
// tenant are used.
type BulkSendRequest struct {
	TenantID   string                 `json:"tenant_id"`
	Type       EmailTemplateType      `json:"type"`
	Recipients []string               `json:"recipients,omitempty"`
	Variables  map[string]interface{} `json:"variables,omitempty"`
}

func (r *BulkSendRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid bulk send request: tenant_id is required")
	}
	if err := r.Type.Validate(); err != nil {
		return fmt.Errorf("invalid bulk send request: %w", err)
	}
	return nil
}

// BulkSendResult aggregates a bulk send run. Sent+Failed always equals
// Total; Errors carries at most the first BulkEmailMaxErrors messages.
type BulkSendResult struct {
	Total  int      `json:"total"`
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

// EmailService renders and sends templated emails
type EmailService interface {
	// SendTemplatedEmail loads the active template for the type, renders
	// it and attempts delivery, logging the attempt. A missing or
	// inactive template yields a skipped result, not an error.
	SendTemplatedEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResult, error)

	// SendTriggeredEmail behaves like SendTemplatedEmail but silently
	// skips when the trigger is administratively disabled in the tenant
	// site settings.
	SendTriggeredEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResult, error)

	// SendBulk fans a templated email out to many recipients in fixed
	// batches with an inter-batch delay.
	SendBulk(ctx context.Context, req *BulkSendRequest) (*BulkSendResult, error)

	// ListEmailLogs returns one page of send history. Admin only.
	ListEmailLogs(ctx context.Context, params *EmailLogListParams) (*EmailLogListResponse, error)
}
