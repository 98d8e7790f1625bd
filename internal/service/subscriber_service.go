package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

// SubscriberService handles the public newsletter endpoints. When the
// tenant enables double opt-in the subscriber starts opted out and a
// verification email is triggered instead.
type SubscriberService struct {
	repo         domain.SubscriberRepository
	settingsRepo domain.SettingsRepository
	emailService domain.EmailService
	logger       logger.Logger
}

func NewSubscriberService(repo domain.SubscriberRepository, settingsRepo domain.SettingsRepository, emailService domain.EmailService, logger logger.Logger) *SubscriberService {
	return &SubscriberService{
		repo:         repo,
		settingsRepo: settingsRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *SubscriberService) Subscribe(ctx context.Context, req *domain.SubscribeRequest) (*domain.Subscriber, error) {
	subscriber, err := req.Validate()
	if err != nil {
		return nil, asValidationError(err)
	}

	settings, err := s.settingsRepo.GetSettings(ctx, subscriber.TenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get site settings: %v", err))
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	if settings.NewsletterDoubleOptIn {
		subscriber.OptedIn = false
	}

	subscriber.ID = uuid.New().String()

	if err := s.repo.UpsertSubscriber(ctx, subscriber); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to upsert subscriber: %v", err))
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	// Best effort: a failed verification email never fails the signup,
	// the send is already recorded in the email log
	if settings.NewsletterDoubleOptIn {
		_, err := s.emailService.SendTriggeredEmail(ctx, &domain.SendEmailRequest{
			TenantID: subscriber.TenantID,
			Type:     domain.EmailTemplateEmailVerification,
			To:       subscriber.Email,
		})
		if err != nil {
			s.logger.WithField("email", subscriber.Email).Error(fmt.Sprintf("Failed to send verification email: %v", err))
		}
	}

	return subscriber, nil
}

func (s *SubscriberService) Unsubscribe(ctx context.Context, req *domain.UnsubscribeRequest) error {
	if err := req.Validate(); err != nil {
		return asValidationError(err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.repo.Unsubscribe(ctx, req.TenantID, email); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to unsubscribe: %v", err))
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}
