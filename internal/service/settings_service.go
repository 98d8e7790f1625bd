package service

import (
	"context"
	"fmt"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type SettingsService struct {
	repo        domain.SettingsRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewSettingsService(repo domain.SettingsRepository, authService domain.AuthService, logger logger.Logger) *SettingsService {
	return &SettingsService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *SettingsService) GetSettings(ctx context.Context, tenantID string) (*domain.SiteSettings, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	settings, err := s.repo.GetSettings(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get site settings: %v", err))
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, req *domain.UpdateSiteSettingsRequest) (*domain.SiteSettings, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	settings, err := req.Validate()
	if err != nil {
		return nil, asValidationError(err)
	}

	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to update site settings: %v", err))
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}
	return settings, nil
}
