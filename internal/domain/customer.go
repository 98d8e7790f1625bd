package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

//go:generate mockgen -destination mocks/mock_customer_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain CustomerService
//go:generate mockgen -destination mocks/mock_customer_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain CustomerRepository

const (
	// CustomerSlugLength is the length of generated customer slugs
	CustomerSlugLength = 8
	// CustomerSlugMaxAttempts bounds slug collision retries before
	// creation fails
	CustomerSlugMaxAttempts = 10
)

// CustomerStatus is the lifecycle status of a customer
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusInactive  CustomerStatus = "INACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
)

// Validate ensures the status is one of the known values
func (s CustomerStatus) Validate() error {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusSuspended:
		return nil
	}
	return fmt.Errorf("invalid customer status: %s", s)
}

// Customer represents an end-customer of a tenant
type Customer struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id"`
	Slug      string         `json:"slug"`
	Email     string         `json:"email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	FullName  string         `json:"full_name"`
	Company   string         `json:"company,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Website   string         `json:"website,omitempty"`
	Status    CustomerStatus `json:"status"`
	Tags      []string       `json:"tags"`

	// Free-form per-tenant attributes
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`

	// Linked Google resources, reconciled out-of-process
	GoogleAccountID     *string  `json:"google_account_id,omitempty"`
	GTMContainerID      *string  `json:"gtm_container_id,omitempty"`
	GTMWorkspaceID      *string  `json:"gtm_workspace_id,omitempty"`
	GA4PropertyIDs      []string `json:"ga4_property_ids"`
	GoogleAdsAccountIDs []string `json:"google_ads_account_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeFullName derives the stored full name from its parts.
// The result is always trimmed, also when one part is empty.
func ComputeFullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// Validate ensures that the customer has all required fields
func (c *Customer) Validate() error {
	if c.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("invalid email format")
	}
	if len(c.FirstName) > 255 || len(c.LastName) > 255 {
		return fmt.Errorf("name length must be at most 255")
	}
	if c.Status == "" {
		c.Status = CustomerStatusActive
	}
	if err := c.Status.Validate(); err != nil {
		return err
	}
	return nil
}

// For database scanning
type dbCustomer struct {
	ID              string
	TenantID        string
	Slug            string
	Email           string
	FirstName       string
	LastName        string
	FullName        string
	Company         sql.NullString
	Phone           sql.NullString
	Website         sql.NullString
	Status          string
	Tags            pq.StringArray
	CustomFields    []byte
	GoogleAccountID sql.NullString
	GTMContainerID  sql.NullString
	GTMWorkspaceID  sql.NullString
	GA4PropertyIDs  pq.StringArray
	AdsAccountIDs   pq.StringArray
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ScanCustomer scans a customer from the database
func ScanCustomer(scanner interface {
	Scan(dest ...interface{}) error
}) (*Customer, error) {
	var dbc dbCustomer
	if err := scanner.Scan(
		&dbc.ID,
		&dbc.TenantID,
		&dbc.Slug,
		&dbc.Email,
		&dbc.FirstName,
		&dbc.LastName,
		&dbc.FullName,
		&dbc.Company,
		&dbc.Phone,
		&dbc.Website,
		&dbc.Status,
		&dbc.Tags,
		&dbc.CustomFields,
		&dbc.GoogleAccountID,
		&dbc.GTMContainerID,
		&dbc.GTMWorkspaceID,
		&dbc.GA4PropertyIDs,
		&dbc.AdsAccountIDs,
		&dbc.CreatedAt,
		&dbc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c := &Customer{
		ID:                  dbc.ID,
		TenantID:            dbc.TenantID,
		Slug:                dbc.Slug,
		Email:               dbc.Email,
		FirstName:           dbc.FirstName,
		LastName:            dbc.LastName,
		FullName:            dbc.FullName,
		Company:             dbc.Company.String,
		Phone:               dbc.Phone.String,
		Website:             dbc.Website.String,
		Status:              CustomerStatus(dbc.Status),
		Tags:                dbc.Tags,
		GA4PropertyIDs:      dbc.GA4PropertyIDs,
		GoogleAdsAccountIDs: dbc.AdsAccountIDs,
		CreatedAt:           dbc.CreatedAt,
		UpdatedAt:           dbc.UpdatedAt,
	}

	if len(dbc.CustomFields) > 0 {
		if err := json.Unmarshal(dbc.CustomFields, &c.CustomFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal custom fields: %w", err)
		}
	}
	if dbc.GoogleAccountID.Valid {
		c.GoogleAccountID = &dbc.GoogleAccountID.String
	}
	if dbc.GTMContainerID.Valid {
		c.GTMContainerID = &dbc.GTMContainerID.String
	}
	if dbc.GTMWorkspaceID.Valid {
		c.GTMWorkspaceID = &dbc.GTMWorkspaceID.String
	}

	return c, nil
}

// Request/Response types

type CreateCustomerRequest struct {
	TenantID  string         `json:"tenant_id"`
	Email     string         `json:"email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Company   string         `json:"company,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Website   string         `json:"website,omitempty"`
	Status    CustomerStatus `json:"status,omitempty"`
	Tags      []string       `json:"tags,omitempty"`

	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`

	GoogleAccountID     *string  `json:"google_account_id,omitempty"`
	GTMContainerID      *string  `json:"gtm_container_id,omitempty"`
	GTMWorkspaceID      *string  `json:"gtm_workspace_id,omitempty"`
	GA4PropertyIDs      []string `json:"ga4_property_ids,omitempty"`
	GoogleAdsAccountIDs []string `json:"google_ads_account_ids,omitempty"`
}

func (r *CreateCustomerRequest) Validate() (*Customer, error) {
	if r.TenantID == "" {
		return nil, fmt.Errorf("invalid create customer request: tenant_id is required")
	}

	customer := &Customer{
		TenantID:            r.TenantID,
		Email:               strings.ToLower(strings.TrimSpace(r.Email)),
		FirstName:           strings.TrimSpace(r.FirstName),
		LastName:            strings.TrimSpace(r.LastName),
		Company:             r.Company,
		Phone:               r.Phone,
		Website:             r.Website,
		Status:              r.Status,
		Tags:                r.Tags,
		CustomFields:        r.CustomFields,
		GoogleAccountID:     r.GoogleAccountID,
		GTMContainerID:      r.GTMContainerID,
		GTMWorkspaceID:      r.GTMWorkspaceID,
		GA4PropertyIDs:      r.GA4PropertyIDs,
		GoogleAdsAccountIDs: r.GoogleAdsAccountIDs,
	}
	customer.FullName = ComputeFullName(customer.FirstName, customer.LastName)

	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create customer request: %w", err)
	}

	return customer, nil
}

// UpdateCustomerRequest is a partial update: only non-nil fields are applied.
type UpdateCustomerRequest struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`

	Email     *string         `json:"email,omitempty"`
	FirstName *string         `json:"first_name,omitempty"`
	LastName  *string         `json:"last_name,omitempty"`
	Company   *string         `json:"company,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	Website   *string         `json:"website,omitempty"`
	Status    *CustomerStatus `json:"status,omitempty"`
	Tags      *[]string       `json:"tags,omitempty"`

	// Merged into the existing map when provided, never replaced wholesale
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`

	GoogleAccountID     *string   `json:"google_account_id,omitempty"`
	GTMContainerID      *string   `json:"gtm_container_id,omitempty"`
	GTMWorkspaceID      *string   `json:"gtm_workspace_id,omitempty"`
	GA4PropertyIDs      *[]string `json:"ga4_property_ids,omitempty"`
	GoogleAdsAccountIDs *[]string `json:"google_ads_account_ids,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid update customer request: tenant_id is required")
	}
	if r.ID == "" {
		return fmt.Errorf("invalid update customer request: id is required")
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			return fmt.Errorf("invalid update customer request: invalid email format")
		}
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return fmt.Errorf("invalid update customer request: %w", err)
		}
	}
	return nil
}

// EmailChanged reports whether the patch carries a different email than
// the customer currently has.
func (r *UpdateCustomerRequest) EmailChanged(current *Customer) bool {
	return r.Email != nil && strings.ToLower(strings.TrimSpace(*r.Email)) != current.Email
}

// Apply mutates customer with the provided fields. The full name is
// recomputed only when a name field was provided; custom fields are
// merged key by key only when the patch carries them.
func (r *UpdateCustomerRequest) Apply(customer *Customer) {
	if r.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}

	nameTouched := false
	if r.FirstName != nil {
		customer.FirstName = strings.TrimSpace(*r.FirstName)
		nameTouched = true
	}
	if r.LastName != nil {
		customer.LastName = strings.TrimSpace(*r.LastName)
		nameTouched = true
	}
	if nameTouched {
		customer.FullName = ComputeFullName(customer.FirstName, customer.LastName)
	}

	if r.Company != nil {
		customer.Company = *r.Company
	}
	if r.Phone != nil {
		customer.Phone = *r.Phone
	}
	if r.Website != nil {
		customer.Website = *r.Website
	}
	if r.Status != nil {
		customer.Status = *r.Status
	}
	if r.Tags != nil {
		customer.Tags = *r.Tags
	}

	if r.CustomFields != nil {
		if customer.CustomFields == nil {
			customer.CustomFields = make(map[string]interface{}, len(r.CustomFields))
		}
		for key, value := range r.CustomFields {
			customer.CustomFields[key] = value
		}
	}

	if r.GoogleAccountID != nil {
		customer.GoogleAccountID = r.GoogleAccountID
	}
	if r.GTMContainerID != nil {
		customer.GTMContainerID = r.GTMContainerID
	}
	if r.GTMWorkspaceID != nil {
		customer.GTMWorkspaceID = r.GTMWorkspaceID
	}
	if r.GA4PropertyIDs != nil {
		customer.GA4PropertyIDs = *r.GA4PropertyIDs
	}
	if r.GoogleAdsAccountIDs != nil {
		customer.GoogleAdsAccountIDs = *r.GoogleAdsAccountIDs
	}
}

// Sortable customer list columns
var customerSortFields = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"email":      "email",
	"full_name":  "full_name",
	"company":    "company",
}

// CustomerListParams carries filters, sort and pagination for a list query
type CustomerListParams struct {
	TenantID string `json:"tenant_id"`

	// Case-insensitive substring search across name, email and company
	Search string `json:"search,omitempty"`
	// Exact status match
	Status CustomerStatus `json:"status,omitempty"`
	// Has-some intersection: a customer matches when its tag set
	// intersects the requested set
	Tags []string `json:"tags,omitempty"`
	// Filter on presence of a linked Google account
	GoogleLinked *bool `json:"google_linked,omitempty"`

	CreatedFrom *time.Time `json:"created_from,omitempty"`
	CreatedTo   *time.Time `json:"created_to,omitempty"`

	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// FromURLParams parses and validates list parameters from query params
func (p *CustomerListParams) FromURLParams(queryParams url.Values) error {
	p.TenantID = queryParams.Get("tenant_id")
	if p.TenantID == "" {
		return fmt.Errorf("invalid list customers request: tenant_id is required")
	}

	p.Search = queryParams.Get("search")

	if status := queryParams.Get("status"); status != "" {
		p.Status = CustomerStatus(status)
		if err := p.Status.Validate(); err != nil {
			return fmt.Errorf("invalid list customers request: %w", err)
		}
	}

	if tags, ok := queryParams["tags"]; ok {
		p.Tags = tags
	}

	if linked := queryParams.Get("google_linked"); linked != "" {
		value, err := strconv.ParseBool(linked)
		if err != nil {
			return fmt.Errorf("invalid list customers request: google_linked must be a boolean")
		}
		p.GoogleLinked = &value
	}

	if from := queryParams.Get("created_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return fmt.Errorf("invalid list customers request: created_from must be RFC3339")
		}
		p.CreatedFrom = &t
	}
	if to := queryParams.Get("created_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return fmt.Errorf("invalid list customers request: created_to must be RFC3339")
		}
		p.CreatedTo = &t
	}

	p.SortBy = queryParams.Get("sort_by")
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	if _, ok := customerSortFields[p.SortBy]; !ok {
		return fmt.Errorf("invalid list customers request: unknown sort field %q", p.SortBy)
	}

	p.SortOrder = strings.ToLower(queryParams.Get("sort_order"))
	switch p.SortOrder {
	case "":
		p.SortOrder = "desc"
	case "asc", "desc":
	default:
		return fmt.Errorf("invalid list customers request: sort_order must be asc or desc")
	}

	p.Page = 1
	if page := queryParams.Get("page"); page != "" {
		value, err := strconv.Atoi(page)
		if err != nil || value < 1 {
			return fmt.Errorf("invalid list customers request: page must be a positive integer")
		}
		p.Page = value
	}

	p.Limit = 20
	if limit := queryParams.Get("limit"); limit != "" {
		value, err := strconv.Atoi(limit)
		if err != nil || value < 1 {
			return fmt.Errorf("invalid list customers request: limit must be a positive integer")
		}
		p.Limit = value
	}
	if p.Limit > 100 {
		p.Limit = 100
	}

	return nil
}

// SortColumn returns the SQL column for the requested sort field
func (p *CustomerListParams) SortColumn() string {
	if column, ok := customerSortFields[p.SortBy]; ok {
		return column
	}
	return "created_at"
}

// CustomerListResponse is one page of customers plus the applied query echo
type CustomerListResponse struct {
	Customers  []*Customer        `json:"customers"`
	Pagination Pagination         `json:"pagination"`
	Filters    CustomerListParams `json:"filters"`
}

// Bulk operation types. Bulk variants iterate sequentially and collect
// per-item outcomes; one item's failure never aborts the batch.

type BulkCustomerItemResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type BulkCustomerResult struct {
	Total     int                      `json:"total"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
	Results   []BulkCustomerItemResult `json:"results"`
}

type BulkCreateCustomersRequest struct {
	TenantID  string                  `json:"tenant_id"`
	Customers []CreateCustomerRequest `json:"customers"`
}

func (r *BulkCreateCustomersRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid bulk create request: tenant_id is required")
	}
	if len(r.Customers) == 0 {
		return fmt.Errorf("invalid bulk create request: customers is required")
	}
	return nil
}

type BulkUpdateCustomersRequest struct {
	TenantID  string                  `json:"tenant_id"`
	Customers []UpdateCustomerRequest `json:"customers"`
}

func (r *BulkUpdateCustomersRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid bulk update request: tenant_id is required")
	}
	if len(r.Customers) == 0 {
		return fmt.Errorf("invalid bulk update request: customers is required")
	}
	return nil
}

type BulkDeleteCustomersRequest struct {
	TenantID string   `json:"tenant_id"`
	IDs      []string `json:"ids"`
}

func (r *BulkDeleteCustomersRequest) Validate() error {
	if r.TenantID == "" {
		return fmt.Errorf("invalid bulk delete request: tenant_id is required")
	}
	if len(r.IDs) == 0 {
		return fmt.Errorf("invalid bulk delete request: ids is required")
	}
	return nil
}

// CustomerStats aggregates per-tenant customer counts
type CustomerStats struct {
	Total             int                    `json:"total"`
	ByStatus          map[CustomerStatus]int `json:"by_status"`
	GoogleLinked      int                    `json:"google_linked"`
	CreatedLast30Days int                    `json:"created_last_30_days"`
}

// CustomerService provides operations for managing customers
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*Customer, error)
	UpdateCustomer(ctx context.Context, req *UpdateCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, tenantID, id string) error
	ListCustomers(ctx context.Context, params *CustomerListParams) (*CustomerListResponse, error)
	BulkCreateCustomers(ctx context.Context, req *BulkCreateCustomersRequest) (*BulkCustomerResult, error)
	BulkUpdateCustomers(ctx context.Context, req *BulkUpdateCustomersRequest) (*BulkCustomerResult, error)
	BulkDeleteCustomers(ctx context.Context, req *BulkDeleteCustomersRequest) (*BulkCustomerResult, error)
	GetCustomerStats(ctx context.Context, tenantID string) (*CustomerStats, error)
}

// CustomerRepository provides persistence for customers
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *Customer) error
	GetCustomerByID(ctx context.Context, tenantID, id string) (*Customer, error)
	GetCustomerByEmail(ctx context.Context, tenantID, email string) (*Customer, error)
	IsSlugTaken(ctx context.Context, slug string) (bool, error)
	UpdateCustomer(ctx context.Context, customer *Customer) error
	DeleteCustomer(ctx context.Context, tenantID, id string) error
	ListCustomers(ctx context.Context, params *CustomerListParams) ([]*Customer, int, error)
	GetCustomerStats(ctx context.Context, tenantID string) (*CustomerStats, error)
}

// ErrCustomerNotFound is returned when a customer is not found within
// the requesting tenant
type ErrCustomerNotFound struct {
	Message string
}

func (e *ErrCustomerNotFound) Error() string {
	return e.Message
}

// ErrEmailConflict is returned when a customer email already exists in
// the tenant. Emails are unique per tenant, not globally.
type ErrEmailConflict struct {
	Email string
}

func (e *ErrEmailConflict) Error() string {
	return fmt.Sprintf("customer with email %s already exists in this tenant", e.Email)
}

// ErrInvalidCustomerData is returned when customer data cannot be
// persisted, e.g. slug generation ran out of attempts
type ErrInvalidCustomerData struct {
	Message string
}

func (e *ErrInvalidCustomerData) Error() string {
	return e.Message
}
