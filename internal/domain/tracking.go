package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/lib/pq"
)

//go:generate mockgen -destination mocks/mock_tracking_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain TrackingService
//go:generate mockgen -destination mocks/mock_tracking_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain TrackingRepository

// TrackingStatus reflects the asynchronous sync state of a tracking
// rule against the Google APIs. The sync itself happens out-of-process;
// the status field is the reconciliation point.
type TrackingStatus string

const (
	TrackingStatusPending  TrackingStatus = "PENDING"
	TrackingStatusCreating TrackingStatus = "CREATING"
	TrackingStatusActive   TrackingStatus = "ACTIVE"
	TrackingStatusFailed   TrackingStatus = "FAILED"
	TrackingStatusPaused   TrackingStatus = "PAUSED"
	TrackingStatusSyncing  TrackingStatus = "SYNCING"
)

func (s TrackingStatus) Validate() error {
	switch s {
	case TrackingStatusPending, TrackingStatusCreating, TrackingStatusActive,
		TrackingStatusFailed, TrackingStatusPaused, TrackingStatusSyncing:
		return nil
	}
	return fmt.Errorf("invalid tracking status: %s", s)
}

// TrackingDestination names the platform a tracking rule fires to
type TrackingDestination string

const (
	DestinationGA4       TrackingDestination = "GA4"
	DestinationGoogleAds TrackingDestination = "GOOGLE_ADS"
	DestinationBoth      TrackingDestination = "BOTH"
)

func (d TrackingDestination) Validate() error {
	switch d {
	case DestinationGA4, DestinationGoogleAds, DestinationBoth:
		return nil
	}
	return fmt.Errorf("invalid tracking destination: %s", d)
}

// Tracking represents one tracking rule configured for a customer
type Tracking struct {
	ID          string       `json:"id"`
	TenantID    string       `json:"tenant_id"`
	CustomerID  string       `json:"customer_id"`
	Name        string       `json:"name"`
	Type        TrackingType `json:"type"`
	Description string       `json:"description,omitempty"`

	// Which of these are required depends on Type, per the taxonomy
	Selector   string                 `json:"selector,omitempty"`
	URLPattern string                 `json:"url_pattern,omitempty"`
	Config     map[string]interface{} `json:"config,omitempty"`

	Destinations       []TrackingDestination  `json:"destinations"`
	GA4EventName       string                 `json:"ga4_event_name,omitempty"`
	GA4EventParams     map[string]interface{} `json:"ga4_event_params,omitempty"`
	AdsConversionValue *float64               `json:"ads_conversion_value,omitempty"`

	Status             TrackingStatus `json:"status"`
	ConversionActionID *string        `json:"conversion_action_id,omitempty"`
	LastError          *string        `json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks structural fields and the type-specific requirements
// from the taxonomy table.
func (t *Tracking) Validate() error {
	if t.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if t.CustomerID == "" {
		return fmt.Errorf("customer_id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(t.Name) > 255 {
		return fmt.Errorf("name length must be between 1 and 255")
	}

	if len(t.Destinations) == 0 {
		return fmt.Errorf("at least one destination is required")
	}
	for _, d := range t.Destinations {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	if t.Status == "" {
		t.Status = TrackingStatusPending
	}
	if err := t.Status.Validate(); err != nil {
		return err
	}

	if t.AdsConversionValue != nil && *t.AdsConversionValue < 0 {
		return fmt.Errorf("ads_conversion_value must not be negative")
	}

	return ValidateTrackingFields(t.Type, t.Selector, t.URLPattern, t.Config)
}

// For database scanning
type dbTracking struct {
	ID                 string
	TenantID           string
	CustomerID         string
	Name               string
	Type               string
	Description        sql.NullString
	Selector           sql.NullString
	URLPattern         sql.NullString
	Config             []byte
	Destinations       pq.StringArray
	GA4EventName       sql.NullString
	GA4EventParams     []byte
	AdsConversionValue sql.NullFloat64
	Status             string
	ConversionActionID sql.NullString
	LastError          sql.NullString
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ScanTracking scans a tracking rule from the database
func ScanTracking(scanner interface {
	Scan(dest ...interface{}) error
}) (*Tracking, error) {
	var dbt dbTracking
	if err := scanner.Scan(
		&dbt.ID,
		&dbt.TenantID,
		&dbt.CustomerID,
		&dbt.Name,
		&dbt.Type,
		&dbt.Description,
		&dbt.Selector,
		&dbt.URLPattern,
		&dbt.Config,
		&dbt.Destinations,
		&dbt.GA4EventName,
		&dbt.GA4EventParams,
		&dbt.AdsConversionValue,
		&dbt.Status,
		&dbt.ConversionActionID,
		&dbt.LastError,
		&dbt.CreatedAt,
		&dbt.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t := &Tracking{
		ID:           dbt.ID,
		TenantID:     dbt.TenantID,
		CustomerID:   dbt.CustomerID,
		Name:         dbt.Name,
		Type:         TrackingType(dbt.Type),
		Description:  dbt.Description.String,
		Selector:     dbt.Selector.String,
		URLPattern:   dbt.URLPattern.String,
		GA4EventName: dbt.GA4EventName.String,
		Status:       TrackingStatus(dbt.Status),
		CreatedAt:    dbt.CreatedAt,
		UpdatedAt:    dbt.UpdatedAt,
	}

	for _, d := range dbt.Destinations {
		t.Destinations = append(t.Destinations, TrackingDestination(d))
	}
	if len(dbt.Config) > 0 {
		if err := json.Unmarshal(dbt.Config, &t.Config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tracking config: %w", err)
		}
	}
	if len(dbt.GA4EventParams) > 0 {
		if err := json.Unmarshal(dbt.GA4EventParams, &t.GA4EventParams); err != nil {
			return nil, fmt.Errorf("failed to unmarshal GA4 event params: %w", err)
		}
	}
	if dbt.AdsConversionValue.Valid {
		t.AdsConversionValue = &dbt.AdsConversionValue.Float64
	}
	if dbt.ConversionActionID.Valid {
		t.ConversionActionID = &dbt.ConversionActionID.String
	}
	if dbt.LastError.Valid {
		t.LastError = &dbt.LastError.String
	}

	return t, nil
}

// Request/Response types

type CreateTrackingRequest struct {
	TenantID    string       `json:"tenant_id"`
	CustomerID  string       `json:"customer_id"`
	Name        string       `json:"name"`
	Type        TrackingType `json:"type"`
	Description string       `json:"description,omitempty"`

	Selector   string                 `json:"selector,omitempty"`
	URLPattern string                 `json:"url_pattern,omitempty"`
	Config     map[string]interface{} `json:"config,omitempty"`

	Destinations       []TrackingDestination  `json:"destinations"`
	GA4EventName       string                 `json:"ga4_event_name,omitempty"`
	GA4EventParams     map[string]interface{} `json:"ga4_event_params,omitempty"`
	AdsConversionValue *float64               `json:"ads_conversion_value,omitempty"`
}

func (r *CreateTrackingRequest) Validate() (*Tracking, error) {
	tracking := &Tracking{
		TenantID:           r.TenantID,
		CustomerID:         r.CustomerID,
		Name:               r.Name,
		Type:               r.Type,
		Description:        r.Description,
		Selector:           r.Selector,
		URLPattern:         r.URLPattern,
		Config:             r.Config,
		Destinations:       r.Destinations,
		GA4EventName:       r.GA4EventName,
		GA4EventParams:     r.GA4EventParams,
		AdsConversionValue: r.AdsConversionValue,
		Status:             TrackingStatusPending,
	}

	// Taxonomy default applies when the caller names no GA4 event
	if tracking.GA4EventName == "" {
		if metadata, ok := GetTrackingTypeMetadata(r.Type); ok {
			tracking.GA4EventName = metadata.DefaultEventName
		}
	}

	if err := tracking.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	return tracking, nil
}

type UpdateTrackingRequest struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`

	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	Selector   *string                `json:"selector,omitempty"`
	URLPattern *string                `json:"url_pattern,omitempty"`
	Config     map[string]interface{} `json:"config,omitempty"`

	Destinations       *[]TrackingDestination `json:"destinations,omitempty"`
	GA4EventName       *string                `json:"ga4_event_name,omitempty"`
	GA4EventParams     map[string]interface{} `json:"ga4_event_params,omitempty"`
	AdsConversionValue *float64               `json:"ads_conversion_value,omitempty"`
}

func (r *UpdateTrackingRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid update tracking request: tenant_id is required")
	}
	if r.ID == "" {
		return fmt.Errorf("invalid update tracking request: id is required")
	}
	return nil
}

// Apply mutates tracking with the provided fields. The whole rule is
// re-validated against the taxonomy afterwards by the service.
func (r *UpdateTrackingRequest) Apply(tracking *Tracking) {
	if r.Name != nil {
		tracking.Name = *r.Name
	}
	if r.Description != nil {
		tracking.Description = *r.Description
	}
	if r.Selector != nil {
		tracking.Selector = *r.Selector
	}
	if r.URLPattern != nil {
		tracking.URLPattern = *r.URLPattern
	}
	if r.Config != nil {
		tracking.Config = r.Config
	}
	if r.Destinations != nil {
		tracking.Destinations = *r.Destinations
	}
	if r.GA4EventName != nil {
		tracking.GA4EventName = *r.GA4EventName
	}
	if r.GA4EventParams != nil {
		tracking.GA4EventParams = r.GA4EventParams
	}
	if r.AdsConversionValue != nil {
		tracking.AdsConversionValue = r.AdsConversionValue
	}
}

type UpdateTrackingStatusRequest struct {
	TenantID string         `json:"tenant_id"`
	ID       string         `json:"id"`
	Status   TrackingStatus `json:"status"`
	Error    string         `json:"error,omitempty"`

	// Set when the Google Ads sync created a conversion action
	ConversionActionID *string `json:"conversion_action_id,omitempty"`
}

func (r *UpdateTrackingStatusRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid update tracking status request: tenant_id is required")
	}
	if r.ID == "" {
		return fmt.Errorf("invalid update tracking status request: id is required")
	}
	if err := r.Status.Validate(); err != nil {
		return fmt.Errorf("invalid update tracking status request: %w", err)
	}
	return nil
}

type ListTrackingsRequest struct {
	TenantID   string `json:"tenant_id"`
	CustomerID string `json:"customer_id"`
}

func (r *ListTrackingsRequest) FromURLParams(queryParams url.Values) error {
	r.TenantID = queryParams.Get("tenant_id")
	r.CustomerID = queryParams.Get("customer_id")

	if r.TenantID == "" {
		return fmt.Errorf("invalid list trackings request: tenant_id is required")
	}
	if r.CustomerID == "" {
		return fmt.Errorf("invalid list trackings request: customer_id is required")
	}
	return nil
}

// TrackingService provides operations for managing tracking rules
type TrackingService interface {
	CreateTracking(ctx context.Context, req *CreateTrackingRequest) (*Tracking, error)
	GetTracking(ctx context.Context, tenantID, id string) (*Tracking, error)
	ListTrackingsByCustomer(ctx context.Context, tenantID, customerID string) ([]*Tracking, error)
	UpdateTracking(ctx context.Context, req *UpdateTrackingRequest) (*Tracking, error)
	UpdateTrackingStatus(ctx context.Context, req *UpdateTrackingStatusRequest) (*Tracking, error)
	DeleteTracking(ctx context.Context, tenantID, id string) error
	GetTaxonomy(ctx context.Context) []TrackingTypeInfo
}

// TrackingRepository provides persistence for tracking rules
type TrackingRepository interface {
	CreateTracking(ctx context.Context, tracking *Tracking) error
	GetTrackingByID(ctx context.Context, tenantID, id string) (*Tracking, error)
	ListTrackingsByCustomer(ctx context.Context, tenantID, customerID string) ([]*Tracking, error)
	UpdateTracking(ctx context.Context, tracking *Tracking) error
	DeleteTracking(ctx context.Context, tenantID, id string) error
}

// ErrTrackingNotFound is returned when a tracking rule is not found
// within the requesting tenant
type ErrTrackingNotFound struct {
	Message string
}

func (e *ErrTrackingNotFound) Error() string {
	return e.Message
}
