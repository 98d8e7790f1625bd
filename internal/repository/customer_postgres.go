package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

const customerColumns = `id, tenant_id, slug, email, first_name, last_name, full_name,
	company, phone, website, status, tags, custom_fields,
	google_account_id, gtm_container_id, gtm_workspace_id, ga4_property_ids, google_ads_account_ids,
	created_at, updated_at`

type customerRepository struct {
	db *sql.DB
}

// The unique index is the last line of defense against a racing insert
// slipping past the service-level email check.
func isEmailUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "email")
}

// NewCustomerRepository creates a new PostgreSQL customer repository
func NewCustomerRepository(db *sql.DB) domain.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	customFields, err := json.Marshal(customer.CustomFields)
	if err != nil {
		return fmt.Errorf("failed to marshal custom fields: %w", err)
	}

	query := `
		INSERT INTO customers (
			id, tenant_id, slug, email, first_name, last_name, full_name,
			company, phone, website, status, tags, custom_fields,
			google_account_id, gtm_container_id, gtm_workspace_id, ga4_property_ids, google_ads_account_ids,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err = r.db.ExecContext(ctx, query,
		customer.ID,
		customer.TenantID,
		customer.Slug,
		customer.Email,
		customer.FirstName,
		customer.LastName,
		customer.FullName,
		customer.Company,
		customer.Phone,
		customer.Website,
		customer.Status,
		pq.Array(customer.Tags),
		customFields,
		customer.GoogleAccountID,
		customer.GTMContainerID,
		customer.GTMWorkspaceID,
		pq.Array(customer.GA4PropertyIDs),
		pq.Array(customer.GoogleAdsAccountIDs),
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		if isEmailUniqueViolation(err) {
			return &domain.ErrEmailConflict{Email: customer.Email}
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM customers
		WHERE tenant_id = $1 AND id = $2
	`, customerColumns)

	row := r.db.QueryRowContext(ctx, query, tenantID, id)
	customer, err := domain.ScanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrCustomerNotFound{Message: "customer not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (r *customerRepository) GetCustomerByEmail(ctx context.Context, tenantID, email string) (*domain.Customer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM customers
		WHERE tenant_id = $1 AND LOWER(email) = LOWER($2)
	`, customerColumns)

	row := r.db.QueryRowContext(ctx, query, tenantID, email)
	customer, err := domain.ScanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrCustomerNotFound{Message: "customer not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return customer, nil
}

// Slugs are unique across tenants, they appear in public URLs
func (r *customerRepository) IsSlugTaken(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()

	customFields, err := json.Marshal(customer.CustomFields)
	if err != nil {
		return fmt.Errorf("failed to marshal custom fields: %w", err)
	}

	query := `
		UPDATE customers
		SET email = $3, first_name = $4, last_name = $5, full_name = $6,
			company = $7, phone = $8, website = $9, status = $10, tags = $11, custom_fields = $12,
			google_account_id = $13, gtm_container_id = $14, gtm_workspace_id = $15,
			ga4_property_ids = $16, google_ads_account_ids = $17, updated_at = $18
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		customer.TenantID,
		customer.ID,
		customer.Email,
		customer.FirstName,
		customer.LastName,
		customer.FullName,
		customer.Company,
		customer.Phone,
		customer.Website,
		customer.Status,
		pq.Array(customer.Tags),
		customFields,
		customer.GoogleAccountID,
		customer.GTMContainerID,
		customer.GTMWorkspaceID,
		pq.Array(customer.GA4PropertyIDs),
		pq.Array(customer.GoogleAdsAccountIDs),
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrCustomerNotFound{Message: "customer not found"}
	}
	return nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrCustomerNotFound{Message: "customer not found"}
	}
	return nil
}

func (r *customerRepository) ListCustomers(ctx context.Context, params *domain.CustomerListParams) ([]*domain.Customer, int, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	conditions := sq.And{sq.Eq{"tenant_id": params.TenantID}}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"company": pattern},
		})
	}
	if params.Status != "" {
		conditions = append(conditions, sq.Eq{"status": params.Status})
	}
	if len(params.Tags) > 0 {
		// Overlap: the customer has at least one of the requested tags
		conditions = append(conditions, sq.Expr("tags && ?", pq.Array(params.Tags)))
	}
	if params.GoogleLinked != nil {
		if *params.GoogleLinked {
			conditions = append(conditions, sq.NotEq{"google_account_id": nil})
		} else {
			conditions = append(conditions, sq.Eq{"google_account_id": nil})
		}
	}
	if params.CreatedFrom != nil {
		conditions = append(conditions, sq.GtOrEq{"created_at": *params.CreatedFrom})
	}
	if params.CreatedTo != nil {
		conditions = append(conditions, sq.LtOrEq{"created_at": *params.CreatedTo})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("customers").Where(conditions).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	offset := (params.Page - 1) * params.Limit
	listQuery, listArgs, err := psql.Select(customerColumns).
		From("customers").
		Where(conditions).
		OrderBy(fmt.Sprintf("%s %s", params.SortColumn(), params.SortOrder)).
		Limit(uint64(params.Limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := domain.ScanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, total, nil
}

func (r *customerRepository) GetCustomerStats(ctx context.Context, tenantID string) (*domain.CustomerStats, error) {
	stats := &domain.CustomerStats{
		ByStatus: make(map[domain.CustomerStatus]int),
	}

	query := `
		SELECT status, COUNT(*)
		FROM customers
		WHERE tenant_id = $1
		GROUP BY status
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan customer stats: %w", err)
		}
		stats.ByStatus[domain.CustomerStatus(status)] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE google_account_id IS NOT NULL),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '30 days')
		FROM customers
		WHERE tenant_id = $1
	`, tenantID).Scan(&stats.GoogleLinked, &stats.CreatedLast30Days)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer counters: %w", err)
	}

	return stats, nil
}
