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

type subscriberServiceDeps struct {
	repo         *mocks.MockSubscriberRepository
	settingsRepo *mocks.MockSettingsRepository
	emailService *mocks.MockEmailService
}

func newSubscriberService(t *testing.T) (*SubscriberService, *subscriberServiceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &subscriberServiceDeps{
		repo:         mocks.NewMockSubscriberRepository(ctrl),
		settingsRepo: mocks.NewMockSettingsRepository(ctrl),
		emailService: mocks.NewMockEmailService(ctrl),
	}
	return NewSubscriberService(deps.repo, deps.settingsRepo, deps.emailService, logger.NewTestLogger(t)), deps
}

func TestSubscriberService_Subscribe(t *testing.T) {
	t.Run("single opt-in", func(t *testing.T) {
		service, deps := newSubscriberService(t)

		deps.settingsRepo.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(domain.DefaultSiteSettings("tenant-1"), nil)
		deps.repo.EXPECT().
			UpsertSubscriber(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, subscriber *domain.Subscriber) error {
				assert.NotEmpty(t, subscriber.ID)
				assert.True(t, subscriber.OptedIn)
				return nil
			})

		subscriber, err := service.Subscribe(context.Background(), &domain.SubscribeRequest{
			TenantID: "tenant-1",
			Email:    "  Jane.Doe@Example.com ",
		})
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", subscriber.Email)
		assert.True(t, subscriber.IsSendable())
	})

	t.Run("double opt-in triggers a verification email", func(t *testing.T) {
		service, deps := newSubscriberService(t)

		settings := domain.DefaultSiteSettings("tenant-1")
		settings.NewsletterDoubleOptIn = true
		deps.settingsRepo.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(settings, nil)
		deps.repo.EXPECT().
			UpsertSubscriber(gomock.Any(), gomock.Any()).
			Return(nil)
		deps.emailService.EXPECT().
			SendTriggeredEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.SendEmailRequest) (*domain.SendEmailResult, error) {
				assert.Equal(t, domain.EmailTemplateEmailVerification, req.Type)
				assert.Equal(t, "jane.doe@example.com", req.To)
				return &domain.SendEmailResult{Success: true}, nil
			})

		subscriber, err := service.Subscribe(context.Background(), &domain.SubscribeRequest{
			TenantID: "tenant-1",
			Email:    "jane.doe@example.com",
		})
		require.NoError(t, err)
		assert.False(t, subscriber.OptedIn)
		assert.False(t, subscriber.IsSendable())
	})

	t.Run("verification email failure does not fail the signup", func(t *testing.T) {
		service, deps := newSubscriberService(t)

		settings := domain.DefaultSiteSettings("tenant-1")
		settings.NewsletterDoubleOptIn = true
		deps.settingsRepo.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(settings, nil)
		deps.repo.EXPECT().
			UpsertSubscriber(gomock.Any(), gomock.Any()).
			Return(nil)
		deps.emailService.EXPECT().
			SendTriggeredEmail(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("smtp down"))

		_, err := service.Subscribe(context.Background(), &domain.SubscribeRequest{
			TenantID: "tenant-1",
			Email:    "jane.doe@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		service, _ := newSubscriberService(t)

		_, err := service.Subscribe(context.Background(), &domain.SubscribeRequest{
			TenantID: "tenant-1",
			Email:    "not-an-email",
		})
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestSubscriberService_Unsubscribe(t *testing.T) {
	t.Run("normalizes the email", func(t *testing.T) {
		service, deps := newSubscriberService(t)

		deps.repo.EXPECT().
			Unsubscribe(gomock.Any(), "tenant-1", "jane.doe@example.com").
			Return(nil)

		err := service.Unsubscribe(context.Background(), &domain.UnsubscribeRequest{
			TenantID: "tenant-1",
			Email:    " Jane.Doe@Example.com ",
		})
		require.NoError(t, err)
	})

	t.Run("unknown email is a no-op", func(t *testing.T) {
		service, deps := newSubscriberService(t)

		deps.repo.EXPECT().
			Unsubscribe(gomock.Any(), "tenant-1", "ghost@example.com").
			Return(nil)

		err := service.Unsubscribe(context.Background(), &domain.UnsubscribeRequest{
			TenantID: "tenant-1",
			Email:    "ghost@example.com",
		})
		require.NoError(t, err)
	})
}
