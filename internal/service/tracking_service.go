package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type TrackingService struct {
	repo         domain.TrackingRepository
	customerRepo domain.CustomerRepository
	authService  domain.AuthService
	logger       logger.Logger
}

func NewTrackingService(repo domain.TrackingRepository, customerRepo domain.CustomerRepository, authService domain.AuthService, logger logger.Logger) *TrackingService {
	return &TrackingService{
		repo:         repo,
		customerRepo: customerRepo,
		authService:  authService,
		logger:       logger,
	}
}

func (s *TrackingService) CreateTracking(ctx context.Context, req *domain.CreateTrackingRequest) (*domain.Tracking, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	tracking, err := req.Validate()
	if err != nil {
		return nil, err
	}

	// The rule must point at a customer of the same tenant
	if _, err := s.customerRepo.GetCustomerByID(ctx, req.TenantID, req.CustomerID); err != nil {
		if _, ok := err.(*domain.ErrCustomerNotFound); ok {
			return nil, err
		}
		s.logger.WithField("customer_id", req.CustomerID).Error(fmt.Sprintf("Failed to get customer: %v", err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	tracking.ID = uuid.New().String()

	if err := s.repo.CreateTracking(ctx, tracking); err != nil {
		s.logger.WithField("tracking_id", tracking.ID).Error(fmt.Sprintf("Failed to create tracking: %v", err))
		return nil, fmt.Errorf("failed to create tracking: %w", err)
	}
	return tracking, nil
}

func (s *TrackingService) GetTracking(ctx context.Context, tenantID, id string) (*domain.Tracking, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	tracking, err := s.repo.GetTrackingByID(ctx, tenantID, id)
	if err != nil {
		if _, ok := err.(*domain.ErrTrackingNotFound); ok {
			return nil, err
		}
		s.logger.WithField("tracking_id", id).Error(fmt.Sprintf("Failed to get tracking: %v", err))
		return nil, fmt.Errorf("failed to get tracking: %w", err)
	}
	return tracking, nil
}

func (s *TrackingService) ListTrackingsByCustomer(ctx context.Context, tenantID, customerID string) ([]*domain.Tracking, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	trackings, err := s.repo.ListTrackingsByCustomer(ctx, tenantID, customerID)
	if err != nil {
		s.logger.WithField("customer_id", customerID).Error(fmt.Sprintf("Failed to list trackings: %v", err))
		return nil, fmt.Errorf("failed to list trackings: %w", err)
	}
	return trackings, nil
}

func (s *TrackingService) UpdateTracking(ctx context.Context, req *domain.UpdateTrackingRequest) (*domain.Tracking, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	tracking, err := s.repo.GetTrackingByID(ctx, req.TenantID, req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrTrackingNotFound); ok {
			return nil, err
		}
		s.logger.WithField("tracking_id", req.ID).Error(fmt.Sprintf("Failed to get tracking: %v", err))
		return nil, fmt.Errorf("failed to get tracking: %w", err)
	}

	req.Apply(tracking)

	// The patched rule must still satisfy its type's taxonomy requirements
	if err := tracking.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.repo.UpdateTracking(ctx, tracking); err != nil {
		if _, ok := err.(*domain.ErrTrackingNotFound); ok {
			return nil, err
		}
		s.logger.WithField("tracking_id", tracking.ID).Error(fmt.Sprintf("Failed to update tracking: %v", err))
		return nil, fmt.Errorf("failed to update tracking: %w", err)
	}
	return tracking, nil
}

func (s *TrackingService) UpdateTrackingStatus(ctx context.Context, req *domain.UpdateTrackingStatusRequest) (*domain.Tracking, error) {
	_, err := s.authService.AuthenticateUserForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	tracking, err := s.repo.GetTrackingByID(ctx, req.TenantID, req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrTrackingNotFound); ok {
			return nil, err
		}
		s.logger.WithField("tracking_id", req.ID).Error(fmt.Sprintf("Failed to get tracking: %v", err))
		return nil, fmt.Errorf("failed to get tracking: %w", err)
	}

	tracking.Status = req.Status
	if req.ConversionActionID != nil {
		tracking.ConversionActionID = req.ConversionActionID
	}

	// FAILED records the sync error; any other transition clears it
	if req.Status == domain.TrackingStatusFailed {
		errText := req.Error
		tracking.LastError = &errText
	} else {
		tracking.LastError = nil
	}

	if err := s.repo.UpdateTracking(ctx, tracking); err != nil {
		if _, ok := err.(*domain.ErrTrackingNotFound); ok {
			return nil, err
		}
		s.logger.WithField("tracking_id", tracking.ID).Error(fmt.Sprintf("Failed to update tracking status: %v", err))
		return nil, fmt.Errorf("failed to update tracking status: %w", err)
	}
	return tracking, nil
}

func (s *TrackingService) DeleteTracking(ctx context.Context, tenantID, id string) error {
	_, err := s.authService.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteTracking(ctx, tenantID, id); err != nil {
		if _, ok := err.(*domain.ErrTrackingNotFound); ok {
			return err
		}
		s.logger.WithField("tracking_id", id).Error(fmt.Sprintf("Failed to delete tracking: %v", err))
		return fmt.Errorf("failed to delete tracking: %w", err)
	}
	return nil
}

// GetTaxonomy is static data, it needs no authentication: the form
// builder loads it before any tenant context exists.
func (s *TrackingService) GetTaxonomy(ctx context.Context) []domain.TrackingTypeInfo {
	return domain.ListTrackingTypes()
}
