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

func newConsentService(t *testing.T) (*ConsentService, *mocks.MockConsentRepository, *mocks.MockSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockConsentRepository(ctrl)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)
	return NewConsentService(repo, settingsRepo, logger.NewTestLogger(t)), repo, settingsRepo
}

func TestConsentService_RecordConsent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, repo, _ := newConsentService(t)

		repo.EXPECT().
			UpsertConsent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *domain.ConsentRecord) error {
				assert.NotEmpty(t, record.ID)
				assert.True(t, record.Necessary)
				assert.True(t, record.Analytics)
				assert.False(t, record.Marketing)
				assert.Equal(t, "Mozilla/5.0", record.UserAgent)
				return nil
			})

		record, err := service.RecordConsent(context.Background(), &domain.RecordConsentRequest{
			TenantID:    "tenant-1",
			AnonymousID: "anon-1",
			Analytics:   true,
		}, "Mozilla/5.0")
		require.NoError(t, err)
		assert.Equal(t, "anon-1", record.AnonymousID)
	})

	t.Run("missing anonymous id", func(t *testing.T) {
		service, _, _ := newConsentService(t)

		_, err := service.RecordConsent(context.Background(), &domain.RecordConsentRequest{
			TenantID: "tenant-1",
		}, "")
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestConsentService_GetPolicy(t *testing.T) {
	t.Run("from saved settings", func(t *testing.T) {
		service, _, settingsRepo := newConsentService(t)

		settingsRepo.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(&domain.SiteSettings{
				TenantID:          "tenant-1",
				ConsentExpiryDays: 90,
				BannerDelayMs:     500,
			}, nil)

		policy, err := service.GetPolicy(context.Background(), "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, 90, policy.ExpiryDays)
		assert.Equal(t, 500, policy.BannerDelayMs)
	})

	t.Run("defaults when nothing saved", func(t *testing.T) {
		service, _, settingsRepo := newConsentService(t)

		settingsRepo.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(domain.DefaultSiteSettings("tenant-1"), nil)

		policy, err := service.GetPolicy(context.Background(), "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultConsentExpiryDays, policy.ExpiryDays)
		assert.Equal(t, domain.DefaultBannerDelayMs, policy.BannerDelayMs)
	})
}
