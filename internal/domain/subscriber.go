package domain

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_subscriber_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain SubscriberRepository
//go:generate mockgen -destination mocks/mock_subscriber_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain SubscriberService

// Subscriber is a newsletter recipient. Bulk sends go to subscribers
// that are opted in and have not unsubscribed.
type Subscriber struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenant_id"`
	Email          string     `json:"email"`
	OptedIn        bool       `json:"opted_in"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsSendable reports whether the subscriber may receive bulk email
func (s *Subscriber) IsSendable() bool {
	return s.OptedIn && s.UnsubscribedAt == nil
}

// SubscribeRequest adds a subscriber. Unauthenticated.
type SubscribeRequest struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
}

func (r *SubscribeRequest) Validate() (*Subscriber, error) {
	if r.TenantID == "" {
		return nil, fmt.Errorf("invalid subscribe request: tenant_id is required")
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		return nil, fmt.Errorf("invalid subscribe request: email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid subscribe request: invalid email format")
	}

	return &Subscriber{
		TenantID: r.TenantID,
		Email:    email,
		OptedIn:  true,
	}, nil
}

// UnsubscribeRequest marks a subscriber as unsubscribed. Unauthenticated.
type UnsubscribeRequest struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
}

func (r *UnsubscribeRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid unsubscribe request: tenant_id is required")
	}
	if r.Email == "" {
		return fmt.Errorf("invalid unsubscribe request: email is required")
	}
	return nil
}

// SubscriberService handles public newsletter opt-in and opt-out
type SubscriberService interface {
	Subscribe(ctx context.Context, req *SubscribeRequest) (*Subscriber, error)
	Unsubscribe(ctx context.Context, req *UnsubscribeRequest) error
}

// SubscriberRepository provides persistence for subscribers
type SubscriberRepository interface {
	// UpsertSubscriber inserts or re-activates the subscriber for its email
	UpsertSubscriber(ctx context.Context, subscriber *Subscriber) error
	// Unsubscribe records an unsubscribe; missing emails are a no-op
	Unsubscribe(ctx context.Context, tenantID, email string) error
	// ListSendableRecipients returns the emails of opted-in,
	// non-unsubscribed subscribers
	ListSendableRecipients(ctx context.Context, tenantID string) ([]string, error)
}
