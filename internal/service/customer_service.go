package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

const slugCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateSlug returns a random slug of CustomerSlugLength characters
func generateSlug() string {
	b := make([]byte, domain.CustomerSlugLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(slugCharset))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(fmt.Sprintf("failed to read random bytes: %v", err))
		}
		b[i] = slugCharset[n.Int64()]
	}
	return string(b)
}

type CustomerService struct {
	repo        domain.CustomerRepository
	authService domain.AuthService
	logger      logger.Logger

	// Replaced in tests to force slug collisions
	slugFn func() string
}

func NewCustomerService(repo domain.CustomerRepository, authService domain.AuthService, logger logger.Logger) *CustomerService {
	return &CustomerService{
		repo:        repo,
		authService: authService,
		logger:      logger,
		slugFn:      generateSlug,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.Customer, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	customer, err := req.Validate()
	if err != nil {
		return nil, asValidationError(err)
	}

	if err := s.ensureEmailAvailable(ctx, customer.TenantID, customer.Email, ""); err != nil {
		return nil, err
	}

	slug, err := s.generateUniqueSlug(ctx)
	if err != nil {
		return nil, err
	}
	customer.ID = uuid.New().String()
	customer.Slug = slug

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		s.logger.WithField("customer_id", customer.ID).Error(fmt.Sprintf("Failed to create customer: %v", err))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// ensureEmailAvailable enforces per-tenant email uniqueness. excludeID
// lets an update keep its own email.
func (s *CustomerService) ensureEmailAvailable(ctx context.Context, tenantID, email, excludeID string) error {
	existing, err := s.repo.GetCustomerByEmail(ctx, tenantID, email)
	if err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return nil
		}
		s.logger.Error(fmt.Sprintf("Failed to check customer email: %v", err))
		return fmt.Errorf("failed to check customer email: %w", err)
	}
	if existing.ID == excludeID {
		return nil
	}
	return &domain.ErrEmailConflict{Email: email}
}

func (s *CustomerService) generateUniqueSlug(ctx context.Context) (string, error) {
	for attempt := 0; attempt < domain.CustomerSlugMaxAttempts; attempt++ {
		slug := s.slugFn()
		taken, err := s.repo.IsSlugTaken(ctx, slug)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to check slug: %v", err))
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
	}
	return "", &domain.ErrInvalidCustomerData{Message: "failed to generate a unique slug"}
}

func (s *CustomerService) GetCustomer(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	customer, err := s.repo.GetCustomerByID(ctx, tenantID, id)
	if err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return nil, err
		}
		s.logger.WithField("customer_id", id).Error(fmt.Sprintf("Failed to get customer: %v", err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, req *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	customer, err := s.repo.GetCustomerByID(ctx, req.TenantID, req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return nil, err
		}
		s.logger.WithField("customer_id", req.ID).Error(fmt.Sprintf("Failed to get customer: %v", err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if req.EmailChanged(customer) {
		if err := s.ensureEmailAvailable(ctx, req.TenantID, *req.Email, customer.ID); err != nil {
			return nil, err
		}
	}

	req.Apply(customer)

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return nil, err
		}
		s.logger.WithField("customer_id", customer.ID).Error(fmt.Sprintf("Failed to update customer: %v", err))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, tenantID, id string) error {
	_, err := s.authService.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteCustomer(ctx, tenantID, id); err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return err
		}
		s.logger.WithField("customer_id", id).Error(fmt.Sprintf("Failed to delete customer: %v", err))
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, params *domain.CustomerListParams) (*domain.CustomerListResponse, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, params.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	customers, total, err := s.repo.ListCustomers(ctx, params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list customers: %v", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &domain.CustomerListResponse{
		Customers:  customers,
		Pagination: domain.NewPagination(params.Page, params.Limit, total),
		Filters:    *params,
	}, nil
}

// Bulk operations run sequentially: one bad row is reported in its slot
// and the rest of the batch continues.

func (s *CustomerService) BulkCreateCustomers(ctx context.Context, req *domain.BulkCreateCustomersRequest) (*domain.BulkCustomerResult, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	result := &domain.BulkCustomerResult{Total: len(req.Customers)}
	for i := range req.Customers {
		item := req.Customers[i]
		item.TenantID = req.TenantID

		customer, err := s.CreateCustomer(ctx, &item)
		if err != nil {
			result.Failed++
			result.Results = append(result.Results, domain.BulkCustomerItemResult{
				Index: i, Error: err.Error(),
			})
			continue
		}
		result.Succeeded++
		result.Results = append(result.Results, domain.BulkCustomerItemResult{
			Index: i, Success: true, ID: customer.ID,
		})
	}
	return result, nil
}

func (s *CustomerService) BulkUpdateCustomers(ctx context.Context, req *domain.BulkUpdateCustomersRequest) (*domain.BulkCustomerResult, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	result := &domain.BulkCustomerResult{Total: len(req.Customers)}
	for i := range req.Customers {
		item := req.Customers[i]
		item.TenantID = req.TenantID

		customer, err := s.UpdateCustomer(ctx, &item)
		if err != nil {
			result.Failed++
			result.Results = append(result.Results, domain.BulkCustomerItemResult{
				Index: i, Error: err.Error(),
			})
			continue
		}
		result.Succeeded++
		result.Results = append(result.Results, domain.BulkCustomerItemResult{
			Index: i, Success: true, ID: customer.ID,
		})
	}
	return result, nil
}

func (s *CustomerService) BulkDeleteCustomers(ctx context.Context, req *domain.BulkDeleteCustomersRequest) (*domain.BulkCustomerResult, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	result := &domain.BulkCustomerResult{Total: len(req.IDs)}
	for i, id := range req.IDs {
		if err := s.DeleteCustomer(ctx, req.TenantID, id); err != nil {
			result.Failed++
			result.Results = append(result.Results, domain.BulkCustomerItemResult{
				Index: i, Error: err.Error(),
			})
			continue
		}
		result.Succeeded++
		result.Results = append(result.Results, domain.BulkCustomerItemResult{
			Index: i, Success: true, ID: id,
		})
	}
	return result, nil
}

func (s *CustomerService) GetCustomerStats(ctx context.Context, tenantID string) (*domain.CustomerStats, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	stats, err := s.repo.GetCustomerStats(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get customer stats: %v", err))
		return nil, fmt.Errorf("failed to get customer stats: %w", err)
	}
	return stats, nil
}
