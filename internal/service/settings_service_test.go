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

func newSettingsService(t *testing.T) (*SettingsService, *mocks.MockSettingsRepository, *mocks.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSettingsRepository(ctrl)
	auth := mocks.NewMockAuthService(ctrl)
	return NewSettingsService(repo, auth, logger.NewTestLogger(t)), repo, auth
}

func TestSettingsService_GetSettings(t *testing.T) {
	service, repo, auth := newSettingsService(t)
	adminOK(auth, "tenant-1")

	repo.EXPECT().
		GetSettings(gomock.Any(), "tenant-1").
		Return(domain.DefaultSiteSettings("tenant-1"), nil)

	settings, err := service.GetSettings(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConsentExpiryDays, settings.ConsentExpiryDays)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, repo, auth := newSettingsService(t)
		adminOK(auth, "tenant-1")

		repo.EXPECT().
			UpsertSettings(gomock.Any(), gomock.Any()).
			Return(nil)

		settings, err := service.UpdateSettings(context.Background(), &domain.UpdateSiteSettingsRequest{
			TenantID:          "tenant-1",
			ConsentExpiryDays: 30,
			BannerDelayMs:     0,
			EmailTriggers: map[domain.EmailTemplateType]bool{
				domain.EmailTemplateNewsletter: false,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 30, settings.ConsentExpiryDays)
		assert.False(t, settings.IsTriggerEnabled(domain.EmailTemplateNewsletter))
		assert.True(t, settings.IsTriggerEnabled(domain.EmailTemplateWelcome))
	})

	t.Run("invalid expiry", func(t *testing.T) {
		service, _, auth := newSettingsService(t)
		adminOK(auth, "tenant-1")

		_, err := service.UpdateSettings(context.Background(), &domain.UpdateSiteSettingsRequest{
			TenantID:          "tenant-1",
			ConsentExpiryDays: 0,
		})
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("non-admin", func(t *testing.T) {
		service, _, auth := newSettingsService(t)
		auth.EXPECT().
			AuthenticateAdminForTenant(gomock.Any(), "tenant-1").
			Return(nil, &domain.ErrForbidden{})

		_, err := service.UpdateSettings(context.Background(), &domain.UpdateSiteSettingsRequest{
			TenantID:          "tenant-1",
			ConsentExpiryDays: 30,
		})
		require.Error(t, err)
		var forbidden *domain.ErrForbidden
		assert.True(t, errors.As(err, &forbidden))
	})
}
