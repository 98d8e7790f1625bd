package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

// ConsentService stores cookie banner decisions. Records are keyed by a
// client-generated anonymous id and never tied to a customer.
type ConsentService struct {
	repo         domain.ConsentRepository
	settingsRepo domain.SettingsRepository
	logger       logger.Logger
}

func NewConsentService(repo domain.ConsentRepository, settingsRepo domain.SettingsRepository, logger logger.Logger) *ConsentService {
	return &ConsentService{
		repo:         repo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// RecordConsent is public, the banner runs before any login exists.
func (s *ConsentService) RecordConsent(ctx context.Context, req *domain.RecordConsentRequest, userAgent string) (*domain.ConsentRecord, error) {
	record, err := req.Validate()
	if err != nil {
		return nil, asValidationError(err)
	}

	record.ID = uuid.New().String()
	record.UserAgent = userAgent

	if err := s.repo.UpsertConsent(ctx, record); err != nil {
		s.logger.WithField("anonymous_id", record.AnonymousID).Error(fmt.Sprintf("Failed to record consent: %v", err))
		return nil, fmt.Errorf("failed to record consent: %w", err)
	}
	return record, nil
}

// GetPolicy serves the banner configuration for a tenant
func (s *ConsentService) GetPolicy(ctx context.Context, tenantID string) (*domain.ConsentPolicy, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get site settings: %v", err))
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	return &domain.ConsentPolicy{
		ExpiryDays:    settings.ConsentExpiryDays,
		BannerDelayMs: settings.BannerDelayMs,
	}, nil
}
