package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_tenant_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain TenantRepository

// Tenant is the isolation boundary: every other entity is scoped to
// exactly one tenant. Tenants are created at signup and never merged
// or split.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs validation on the tenant fields
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("invalid tenant: name is required")
	}
	if len(t.Name) > 255 {
		return fmt.Errorf("invalid tenant: name length must be between 1 and 255")
	}
	if t.Slug == "" {
		return fmt.Errorf("invalid tenant: slug is required")
	}
	if !govalidator.IsAlphanumeric(t.Slug) {
		return fmt.Errorf("invalid tenant: slug must be alphanumeric")
	}
	if len(t.Slug) > 32 {
		return fmt.Errorf("invalid tenant: slug length must be between 1 and 32")
	}
	return nil
}

// ScanTenant scans a tenant from the database
func ScanTenant(scanner interface {
	Scan(dest ...interface{}) error
}) (*Tenant, error) {
	var t Tenant
	if err := scanner.Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// TenantRepository provides persistence for tenants
type TenantRepository interface {
	CreateTenant(ctx context.Context, tenant *Tenant) error
	GetTenantByID(ctx context.Context, id string) (*Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error)
	ListTenants(ctx context.Context) ([]*Tenant, error)
}

// ErrTenantNotFound is returned when a tenant is not found
type ErrTenantNotFound struct {
	Message string
}

func (e *ErrTenantNotFound) Error() string {
	return e.Message
}
