package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
	"github.com/oneclicktag/oneclicktag/pkg/mailer"
	"github.com/oneclicktag/oneclicktag/pkg/templates"
)

type EmailService struct {
	templateRepo   domain.EmailTemplateRepository
	logRepo        domain.EmailLogRepository
	subscriberRepo domain.SubscriberRepository
	settingsRepo   domain.SettingsRepository
	mailer         mailer.Mailer
	renderer       *templates.Renderer
	authService    domain.AuthService
	logger         logger.Logger

	// Overridden in tests to avoid real delays
	batchSize   int
	concurrency int
	delay       time.Duration
	sleep       func(time.Duration)
}

func NewEmailService(
	templateRepo domain.EmailTemplateRepository,
	logRepo domain.EmailLogRepository,
	subscriberRepo domain.SubscriberRepository,
	settingsRepo domain.SettingsRepository,
	m mailer.Mailer,
	renderer *templates.Renderer,
	authService domain.AuthService,
	logger logger.Logger,
) *EmailService {
	return &EmailService{
		templateRepo:   templateRepo,
		logRepo:        logRepo,
		subscriberRepo: subscriberRepo,
		settingsRepo:   settingsRepo,
		mailer:         m,
		renderer:       renderer,
		authService:    authService,
		logger:         logger,
		batchSize:      domain.BulkEmailBatchSize,
		concurrency:    domain.BulkEmailConcurrency,
		delay:          domain.BulkEmailDelaySeconds * time.Second,
		sleep:          time.Sleep,
	}
}

func (s *EmailService) SendTemplatedEmail(ctx context.Context, req *domain.SendEmailRequest) (*domain.SendEmailResult, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	return s.send(ctx, req)
}

// SendTriggeredEmail is called from inside the system on lifecycle
// events, it carries no user context and respects the tenant's trigger
// toggles.
func (s *EmailService) SendTriggeredEmail(ctx context.Context, req *domain.SendEmailRequest) (*domain.SendEmailResult, error) {
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	settings, err := s.settingsRepo.GetSettings(ctx, req.TenantID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to get site settings: %v", err))
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	if !settings.IsTriggerEnabled(req.Type) {
		return &domain.SendEmailResult{Skipped: true}, nil
	}

	return s.send(ctx, req)
}

// templateVariables merges the implicit defaults under the caller
// variables: email is always the recipient, name falls back to the
// local part of the address.
func templateVariables(to string, variables map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(variables)+2)
	merged["email"] = to
	if at := strings.Index(to, "@"); at > 0 {
		merged["name"] = to[:at]
	}
	for key, value := range variables {
		merged[key] = value
	}
	return merged
}

// send renders the active template for the type, logs a PENDING
// attempt, delivers and settles the log. A transport failure is
// reported in the result, not as an error return.
func (s *EmailService) send(ctx context.Context, req *domain.SendEmailRequest) (*domain.SendEmailResult, error) {
	notConfigured := &domain.SendEmailResult{
		Skipped: true,
		Error:   fmt.Sprintf("email template not configured: %s", req.Type),
	}

	template, err := s.templateRepo.GetTemplateByType(ctx, req.TenantID, req.Type)
	if err != nil {
		if _, ok := err.(*domain.ErrEmailTemplateNotFound); ok {
			return notConfigured, nil
		}
		s.logger.WithField("template_type", req.Type).Error(fmt.Sprintf("Failed to get email template: %v", err))
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}
	if !template.IsActive {
		return notConfigured, nil
	}

	variables := templateVariables(req.To, req.Variables)
	subject, htmlBody, textBody, err := s.renderer.RenderParts(template.Subject, template.HTMLContent, template.TextContent, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	log := &domain.EmailLog{
		ID:           uuid.New().String(),
		TenantID:     req.TenantID,
		Recipient:    req.To,
		Subject:      subject,
		TemplateType: req.Type,
		Status:       domain.EmailLogStatusPending,
		CustomerID:   req.CustomerID,
	}
	if err := s.logRepo.CreateEmailLog(ctx, log); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to create email log: %v", err))
		return nil, fmt.Errorf("failed to create email log: %w", err)
	}

	sendErr := s.mailer.Send(&mailer.Message{
		To:       req.To,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})

	if sendErr != nil {
		if err := s.logRepo.UpdateEmailLogStatus(ctx, req.TenantID, log.ID, domain.EmailLogStatusFailed, sendErr.Error()); err != nil {
			s.logger.WithField("log_id", log.ID).Error(fmt.Sprintf("Failed to update email log: %v", err))
		}
		return &domain.SendEmailResult{Error: sendErr.Error(), LogID: log.ID}, nil
	}

	if err := s.logRepo.UpdateEmailLogStatus(ctx, req.TenantID, log.ID, domain.EmailLogStatusSent, ""); err != nil {
		s.logger.WithField("log_id", log.ID).Error(fmt.Sprintf("Failed to update email log: %v", err))
	}
	return &domain.SendEmailResult{Success: true, LogID: log.ID}, nil
}

func (s *EmailService) ListEmailLogs(ctx context.Context, params *domain.EmailLogListParams) (*domain.EmailLogListResponse, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, params.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	logs, total, err := s.logRepo.ListEmailLogs(ctx, params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list email logs: %v", err))
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}

	return &domain.EmailLogListResponse{
		Logs:       logs,
		Pagination: domain.NewPagination(params.Page, params.Limit, total),
	}, nil
}

func (s *EmailService) SendBulk(ctx context.Context, req *domain.BulkSendRequest) (*domain.BulkSendResult, error) {
	_, err := s.authService.AuthenticateAdminForTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	recipients := req.Recipients
	if len(recipients) == 0 {
		recipients, err = s.subscriberRepo.ListSendableRecipients(ctx, req.TenantID)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to list recipients: %v", err))
			return nil, fmt.Errorf("failed to list recipients: %w", err)
		}
	}

	result := &domain.BulkSendResult{Total: len(recipients)}
	if len(recipients) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	sem := semaphore.NewWeighted(int64(s.concurrency))

	for start := 0; start < len(recipients); start += s.batchSize {
		end := start + s.batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batch := recipients[start:end]

		var wg sync.WaitGroup
		for _, recipient := range batch {
			recipient := recipient
			if err := sem.Acquire(ctx, 1); err != nil {
				return nil, fmt.Errorf("bulk send aborted: %w", err)
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)

				sendResult, err := s.send(ctx, &domain.SendEmailRequest{
					TenantID:  req.TenantID,
					Type:      req.Type,
					To:        recipient,
					Variables: req.Variables,
				})

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					result.Failed++
					if len(result.Errors) < domain.BulkEmailMaxErrors {
						result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", recipient, err))
					}
				case sendResult.Success:
					result.Sent++
				default:
					// Skipped (no active template) and transport failures
					// both count against the run
					result.Failed++
					if sendResult.Error != "" && len(result.Errors) < domain.BulkEmailMaxErrors {
						result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", recipient, sendResult.Error))
					}
				}
			}()
		}
		wg.Wait()

		// Rate limiting pause, skipped after the final batch
		if end < len(recipients) {
			s.sleep(s.delay)
		}
	}

	return result, nil
}
