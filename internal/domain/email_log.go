package domain

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

//go:generate mockgen -destination mocks/mock_email_log_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain EmailLogRepository

// EmailLogStatus tracks one send attempt: a log row is created PENDING
// before the transport attempt and moved to SENT or FAILED after.
type EmailLogStatus string

const (
	EmailLogStatusPending EmailLogStatus = "PENDING"
	EmailLogStatusSent    EmailLogStatus = "SENT"
	EmailLogStatusFailed  EmailLogStatus = "FAILED"
)

func (s EmailLogStatus) Validate() error {
	switch s {
	case EmailLogStatusPending, EmailLogStatusSent, EmailLogStatusFailed:
		return nil
	}
	return fmt.Errorf("invalid email log status: %s", s)
}

// EmailLog is an append-only record of a send attempt
type EmailLog struct {
	ID           string            `json:"id"`
	TenantID     string            `json:"tenant_id"`
	Recipient    string            `json:"recipient"`
	Subject      string            `json:"subject"`
	TemplateType EmailTemplateType `json:"template_type,omitempty"`
	Status       EmailLogStatus    `json:"status"`
	Error        string            `json:"error,omitempty"`
	CustomerID   *string           `json:"customer_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
}

// ScanEmailLog scans an email log from the database
func ScanEmailLog(scanner interface {
	Scan(dest ...interface{}) error
}) (*EmailLog, error) {
	var (
		l            EmailLog
		templateType sql.NullString
		sendError    sql.NullString
		customerID   sql.NullString
		sentAt       sql.NullTime
	)
	if err := scanner.Scan(
		&l.ID,
		&l.TenantID,
		&l.Recipient,
		&l.Subject,
		&templateType,
		&l.Status,
		&sendError,
		&customerID,
		&l.CreatedAt,
		&sentAt,
	); err != nil {
		return nil, err
	}

	l.TemplateType = EmailTemplateType(templateType.String)
	l.Error = sendError.String
	if customerID.Valid {
		l.CustomerID = &customerID.String
	}
	if sentAt.Valid {
		l.SentAt = &sentAt.Time
	}

	return &l, nil
}

// EmailLogListParams filters a paginated email log listing
type EmailLogListParams struct {
	TenantID  string         `json:"tenant_id"`
	Status    EmailLogStatus `json:"status,omitempty"`
	Recipient string         `json:"recipient,omitempty"`
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
}

func (p *EmailLogListParams) FromURLParams(queryParams url.Values) error {
	p.TenantID = queryParams.Get("tenant_id")
	if p.TenantID == "" {
		return fmt.Errorf("invalid list email logs request: tenant_id is required")
	}

	if status := queryParams.Get("status"); status != "" {
		p.Status = EmailLogStatus(status)
		if err := p.Status.Validate(); err != nil {
			return fmt.Errorf("invalid list email logs request: %w", err)
		}
	}
	p.Recipient = queryParams.Get("recipient")

	p.Page = 1
	if page := queryParams.Get("page"); page != "" {
		value, err := strconv.Atoi(page)
		if err != nil || value < 1 {
			return fmt.Errorf("invalid list email logs request: page must be a positive integer")
		}
		p.Page = value
	}

	p.Limit = 50
	if limit := queryParams.Get("limit"); limit != "" {
		value, err := strconv.Atoi(limit)
		if err != nil || value < 1 {
			return fmt.Errorf("invalid list email logs request: limit must be a positive integer")
		}
		p.Limit = value
	}
	if p.Limit > 100 {
		p.Limit = 100
	}

	return nil
}

// EmailLogListResponse is one page of email logs
type EmailLogListResponse struct {
	Logs       []*EmailLog `json:"logs"`
	Pagination Pagination  `json:"pagination"`
}

// EmailLogRepository provides persistence for email logs
type EmailLogRepository interface {
	CreateEmailLog(ctx context.Context, log *EmailLog) error
	// UpdateEmailLogStatus moves a log row to SENT or FAILED, recording
	// the transport error text on failure
	UpdateEmailLogStatus(ctx context.Context, tenantID, id string, status EmailLogStatus, sendError string) error
	ListEmailLogs(ctx context.Context, params *EmailLogListParams) ([]*EmailLog, int, error)
}
