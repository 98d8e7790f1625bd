package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/domain/mocks"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type trackingServiceDeps struct {
	repo         *mocks.MockTrackingRepository
	customerRepo *mocks.MockCustomerRepository
	auth         *mocks.MockAuthService
}

func newTrackingService(t *testing.T) (*TrackingService, *trackingServiceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &trackingServiceDeps{
		repo:         mocks.NewMockTrackingRepository(ctrl),
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		auth:         mocks.NewMockAuthService(ctrl),
	}
	return NewTrackingService(deps.repo, deps.customerRepo, deps.auth, logger.NewTestLogger(t)), deps
}

func trackingAuthOK(auth *mocks.MockAuthService, tenantID string) {
	auth.EXPECT().
		AuthenticateUserForTenant(gomock.Any(), tenantID).
		Return(&domain.User{ID: "user-1", TenantID: tenantID, Role: domain.UserRoleMember}, nil).
		AnyTimes()
}

func TestTrackingService_CreateTracking(t *testing.T) {
	req := &domain.CreateTrackingRequest{
		TenantID:     "tenant-1",
		CustomerID:   "cust-1",
		Name:         "Checkout purchase",
		Type:         domain.TrackingTypePurchase,
		URLPattern:   "/checkout/success*",
		Destinations: []domain.TrackingDestination{domain.DestinationBoth},
	}

	t.Run("success with taxonomy default event name", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		deps.customerRepo.EXPECT().
			GetCustomerByID(gomock.Any(), "tenant-1", "cust-1").
			Return(&domain.Customer{ID: "cust-1", TenantID: "tenant-1"}, nil)
		deps.repo.EXPECT().
			CreateTracking(gomock.Any(), gomock.Any()).
			Return(nil)

		tracking, err := service.CreateTracking(context.Background(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, tracking.ID)
		assert.Equal(t, "purchase", tracking.GA4EventName)
		assert.Equal(t, domain.TrackingStatusPending, tracking.Status)
	})

	t.Run("taxonomy requirement missing", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		bad := *req
		bad.URLPattern = ""
		_, err := service.CreateTracking(context.Background(), &bad)
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("customer not in tenant", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		deps.customerRepo.EXPECT().
			GetCustomerByID(gomock.Any(), "tenant-1", "cust-1").
			Return(nil, &domain.ErrCustomerNotFound{Message: "customer not found"})

		_, err := service.CreateTracking(context.Background(), req)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrCustomerNotFound{}, err)
	})
}

func TestTrackingService_UpdateTracking(t *testing.T) {
	current := func() *domain.Tracking {
		return &domain.Tracking{
			ID:           "track-1",
			TenantID:     "tenant-1",
			CustomerID:   "cust-1",
			Name:         "CTA click",
			Type:         domain.TrackingTypeButtonClick,
			Selector:     "#buy-now",
			Destinations: []domain.TrackingDestination{domain.DestinationGA4},
			GA4EventName: "click",
			Status:       domain.TrackingStatusActive,
		}
	}

	t.Run("patch keeps taxonomy valid", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		deps.repo.EXPECT().
			GetTrackingByID(gomock.Any(), "tenant-1", "track-1").
			Return(current(), nil)
		deps.repo.EXPECT().
			UpdateTracking(gomock.Any(), gomock.Any()).
			Return(nil)

		name := "Hero CTA click"
		updated, err := service.UpdateTracking(context.Background(), &domain.UpdateTrackingRequest{
			TenantID: "tenant-1",
			ID:       "track-1",
			Name:     &name,
		})
		require.NoError(t, err)
		assert.Equal(t, "Hero CTA click", updated.Name)
		assert.Equal(t, "#buy-now", updated.Selector)
	})

	t.Run("patch violating the taxonomy is rejected", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		deps.repo.EXPECT().
			GetTrackingByID(gomock.Any(), "tenant-1", "track-1").
			Return(current(), nil)

		empty := ""
		_, err := service.UpdateTracking(context.Background(), &domain.UpdateTrackingRequest{
			TenantID: "tenant-1",
			ID:       "track-1",
			Selector: &empty,
		})
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestTrackingService_UpdateTrackingStatus(t *testing.T) {
	current := func() *domain.Tracking {
		lastError := "quota exceeded"
		return &domain.Tracking{
			ID:           "track-1",
			TenantID:     "tenant-1",
			CustomerID:   "cust-1",
			Name:         "CTA click",
			Type:         domain.TrackingTypeButtonClick,
			Selector:     "#buy-now",
			Destinations: []domain.TrackingDestination{domain.DestinationGoogleAds},
			Status:       domain.TrackingStatusSyncing,
			LastError:    &lastError,
		}
	}

	t.Run("failed records the error", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		deps.repo.EXPECT().
			GetTrackingByID(gomock.Any(), "tenant-1", "track-1").
			Return(current(), nil)
		deps.repo.EXPECT().
			UpdateTracking(gomock.Any(), gomock.Any()).
			Return(nil)

		updated, err := service.UpdateTrackingStatus(context.Background(), &domain.UpdateTrackingStatusRequest{
			TenantID: "tenant-1",
			ID:       "track-1",
			Status:   domain.TrackingStatusFailed,
			Error:    "conversion action rejected",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TrackingStatusFailed, updated.Status)
		require.NotNil(t, updated.LastError)
		assert.Equal(t, "conversion action rejected", *updated.LastError)
	})

	t.Run("active clears the error and records the conversion action", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		deps.repo.EXPECT().
			GetTrackingByID(gomock.Any(), "tenant-1", "track-1").
			Return(current(), nil)
		deps.repo.EXPECT().
			UpdateTracking(gomock.Any(), gomock.Any()).
			Return(nil)

		conversionActionID := "customers/123/conversionActions/456"
		updated, err := service.UpdateTrackingStatus(context.Background(), &domain.UpdateTrackingStatusRequest{
			TenantID:           "tenant-1",
			ID:                 "track-1",
			Status:             domain.TrackingStatusActive,
			ConversionActionID: &conversionActionID,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TrackingStatusActive, updated.Status)
		assert.Nil(t, updated.LastError)
		require.NotNil(t, updated.ConversionActionID)
		assert.Equal(t, conversionActionID, *updated.ConversionActionID)
	})

	t.Run("invalid status", func(t *testing.T) {
		service, deps := newTrackingService(t)
		trackingAuthOK(deps.auth, "tenant-1")

		_, err := service.UpdateTrackingStatus(context.Background(), &domain.UpdateTrackingStatusRequest{
			TenantID: "tenant-1",
			ID:       "track-1",
			Status:   "SLEEPING",
		})
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestTrackingService_DeleteTracking(t *testing.T) {
	service, deps := newTrackingService(t)
	trackingAuthOK(deps.auth, "tenant-1")

	deps.repo.EXPECT().
		DeleteTracking(gomock.Any(), "tenant-1", "missing").
		Return(&domain.ErrTrackingNotFound{Message: "tracking not found"})

	err := service.DeleteTracking(context.Background(), "tenant-1", "missing")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrTrackingNotFound{}, err)
}

func TestTrackingService_GetTaxonomy(t *testing.T) {
	service, _ := newTrackingService(t)

	taxonomy := service.GetTaxonomy(context.Background())
	assert.Len(t, taxonomy, 30)
}
