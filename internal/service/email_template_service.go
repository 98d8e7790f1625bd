package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

// EmailTemplateService manages the per-tenant template set. Every
// operation requires admin access.
type EmailTemplateService struct {
	repo        domain.EmailTemplateRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewEmailTemplateService(repo domain.EmailTemplateRepository, authService domain.AuthService, logger logger.Logger) *EmailTemplateService {
	return &EmailTemplateService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *EmailTemplateService) UpsertTemplate(ctx context.Context, req *domain.UpsertEmailTemplateRequest) (*domain.EmailTemplate, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	template, err := req.Validate()
	if err != nil {
		return nil, asValidationError(err)
	}

	// The generated id only lands on insert. When the row already
	// exists the repository echoes back its persisted id and created_at.
	template.ID = uuid.New().String()

	if err := s.repo.UpsertTemplate(ctx, template); err != nil {
		s.logger.WithField("template_type", template.Type).Error(fmt.Sprintf("Failed to upsert email template: %v", err))
		return nil, fmt.Errorf("failed to upsert email template: %w", err)
	}
	return template, nil
}

func (s *EmailTemplateService) GetTemplate(ctx context.Context, tenantID string, templateType domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	template, err := s.repo.GetTemplateByType(ctx, tenantID, templateType)
	if err != nil {
		if _, ok := err.(*domain.ErrEmailTemplateNotFound); ok {
			return nil, err
		}
		s.logger.WithField("template_type", templateType).Error(fmt.Sprintf("Failed to get email template: %v", err))
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}
	return template, nil
}

func (s *EmailTemplateService) ListTemplates(ctx context.Context, tenantID string) ([]*domain.EmailTemplate, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	templates, err := s.repo.ListTemplates(ctx, tenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list email templates: %v", err))
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

func (s *EmailTemplateService) DeleteTemplate(ctx context.Context, tenantID string, templateType domain.EmailTemplateType) error {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteTemplate(ctx, tenantID, templateType); err != nil {
		if _, ok := err.(*domain.ErrEmailTemplateNotFound); ok {
			return err
		}
		s.logger.WithField("template_type", templateType).Error(fmt.Sprintf("Failed to delete email template: %v", err))
		return fmt.Errorf("failed to delete email template: %w", err)
	}
	return nil
}
