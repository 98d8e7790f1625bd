package domain

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

//go:generate mockgen -destination mocks/mock_consent_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain ConsentRepository
//go:generate mockgen -destination mocks/mock_consent_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain ConsentService

// ConsentRecord is the anonymized server mirror of the client cookie
// banner decision, keyed by a client-generated anonymous id. Necessary
// consent is always true; only analytics and marketing are choices.
type ConsentRecord struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	AnonymousID string    `json:"anonymous_id"`
	Necessary   bool      `json:"necessary"`
	Analytics   bool      `json:"analytics"`
	Marketing   bool      `json:"marketing"`
	UserAgent   string    `json:"user_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScanConsentRecord scans a consent record from the database
func ScanConsentRecord(scanner interface {
	Scan(dest ...interface{}) error
}) (*ConsentRecord, error) {
	var c ConsentRecord
	if err := scanner.Scan(
		&c.ID,
		&c.TenantID,
		&c.AnonymousID,
		&c.Necessary,
		&c.Analytics,
		&c.Marketing,
		&c.UserAgent,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// RecordConsentRequest is posted by the cookie banner. Unauthenticated.
type RecordConsentRequest struct {
	TenantID    string `json:"tenant_id"`
	AnonymousID string `json:"anonymous_id"`
	Analytics   bool   `json:"analytics"`
	Marketing   bool   `json:"marketing"`
}

func (r *RecordConsentRequest) Validate() (*ConsentRecord, error) {
	if r.TenantID == "" {
		return nil, fmt.Errorf("invalid record consent request: tenant_id is required")
	}
	if r.AnonymousID == "" {
		return nil, fmt.Errorf("invalid record consent request: anonymous_id is required")
	}
	if len(r.AnonymousID) > 64 {
		return nil, fmt.Errorf("invalid record consent request: anonymous_id length must be at most 64")
	}

	return &ConsentRecord{
		TenantID:    r.TenantID,
		AnonymousID: r.AnonymousID,
		Necessary:   true,
		Analytics:   r.Analytics,
		Marketing:   r.Marketing,
	}, nil
}

// ConsentPolicyRequest asks for the tenant banner policy
type ConsentPolicyRequest struct {
	TenantID string `json:"tenant_id"`
}

func (r *ConsentPolicyRequest) FromURLParams(queryParams url.Values) error {
	r.TenantID = queryParams.Get("tenant_id")
	if r.TenantID == "" {
		return fmt.Errorf("invalid consent policy request: tenant_id is required")
	}
	return nil
}

// ConsentPolicy tells the client banner how to behave; expiry is
// enforced client-side against the stored consent timestamp.
type ConsentPolicy struct {
	ExpiryDays    int `json:"expiry_days"`
	BannerDelayMs int `json:"banner_delay_ms"`
}

// ConsentService records banner decisions and serves the banner policy.
// Both operations are public, the banner runs before any login.
type ConsentService interface {
	RecordConsent(ctx context.Context, req *RecordConsentRequest, userAgent string) (*ConsentRecord, error)
	GetPolicy(ctx context.Context, tenantID string) (*ConsentPolicy, error)
}

// ConsentRepository provides persistence for consent records
type ConsentRepository interface {
	// UpsertConsent inserts or refreshes the record keyed by
	// (tenant_id, anonymous_id)
	UpsertConsent(ctx context.Context, record *ConsentRecord) error
	GetConsentByAnonymousID(ctx context.Context, tenantID, anonymousID string) (*ConsentRecord, error)
}

// ErrConsentNotFound is returned when no consent record exists for an
// anonymous id
type ErrConsentNotFound struct {
	Message string
}

func (e *ErrConsentNotFound) Error() string {
	return e.Message
}
