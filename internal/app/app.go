package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/oneclicktag/oneclicktag/config"
	"github.com/oneclicktag/oneclicktag/internal/database"
	"github.com/oneclicktag/oneclicktag/internal/domain"
	httpHandler "github.com/oneclicktag/oneclicktag/internal/http"
	"github.com/oneclicktag/oneclicktag/internal/http/middleware"
	"github.com/oneclicktag/oneclicktag/internal/repository"
	"github.com/oneclicktag/oneclicktag/internal/service"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
	"github.com/oneclicktag/oneclicktag/pkg/mailer"
	"github.com/oneclicktag/oneclicktag/pkg/templates"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// Repositories
	tenantRepo        domain.TenantRepository
	userRepo          domain.UserRepository
	customerRepo      domain.CustomerRepository
	trackingRepo      domain.TrackingRepository
	emailTemplateRepo domain.EmailTemplateRepository
	emailLogRepo      domain.EmailLogRepository
	consentRepo       domain.ConsentRepository
	settingsRepo      domain.SettingsRepository
	subscriberRepo    domain.SubscriberRepository

	// Services
	authService          *service.AuthService
	customerService      *service.CustomerService
	trackingService      *service.TrackingService
	emailService         *service.EmailService
	emailTemplateService *service.EmailTemplateService
	consentService       *service.ConsentService
	settingsService      *service.SettingsService
	subscriberService    *service.SubscriberService

	mux    *http.ServeMux
	server *http.Server
}

// AppOption configures the App before initialization
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithMailer sets a custom mailer, used by tests to avoid SMTP
func WithMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithDB sets an existing database connection, used by tests
func WithDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{config: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLogger(cfg.LogLevel)
	}
	return a
}

// InitDB connects to the database and creates the schema if needed
func (a *App) InitDB() error {
	// Skip if DB already set (e.g., by tests)
	if a.db != nil {
		return nil
	}

	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, dbname %s, sslmode %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.DBName, a.config.Database.SSLMode))

	if err := database.EnsureDatabaseExists(database.GetPostgresDSN(&a.config.Database), a.config.Database.DBName); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	db, err := sql.Open("postgres", database.GetSystemDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db, a.config.RootEmail, a.config.RootPassword); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := database.GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	a.db = db
	return nil
}

// InitMailer initializes the mailer
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer for development")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		SMTPSecure:   a.config.SMTP.Secure,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	})
	a.logger.Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.tenantRepo = repository.NewTenantRepository(a.db)
	a.userRepo = repository.NewUserRepository(a.db)
	a.customerRepo = repository.NewCustomerRepository(a.db)
	a.trackingRepo = repository.NewTrackingRepository(a.db)
	a.emailTemplateRepo = repository.NewEmailTemplateRepository(a.db)
	a.emailLogRepo = repository.NewEmailLogRepository(a.db)
	a.consentRepo = repository.NewConsentRepository(a.db)
	a.settingsRepo = repository.NewSettingsRepository(a.db)
	a.subscriberRepo = repository.NewSubscriberRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.authService = service.NewAuthService(a.userRepo, a.config.JWTSecret, a.logger)
	a.customerService = service.NewCustomerService(a.customerRepo, a.authService, a.logger)
	a.trackingService = service.NewTrackingService(a.trackingRepo, a.customerRepo, a.authService, a.logger)
	a.emailService = service.NewEmailService(
		a.emailTemplateRepo,
		a.emailLogRepo,
		a.subscriberRepo,
		a.settingsRepo,
		a.mailer,
		templates.NewRenderer(),
		a.authService,
		a.logger,
	)
	a.emailTemplateService = service.NewEmailTemplateService(a.emailTemplateRepo, a.authService, a.logger)
	a.consentService = service.NewConsentService(a.consentRepo, a.settingsRepo, a.logger)
	a.settingsService = service.NewSettingsService(a.settingsRepo, a.authService, a.logger)
	a.subscriberService = service.NewSubscriberService(a.subscriberRepo, a.settingsRepo, a.emailService, a.logger)

	return nil
}

// InitHandlers builds the ServeMux and registers all routes
func (a *App) InitHandlers() error {
	a.mux = http.NewServeMux()

	authHandler := httpHandler.NewAuthHandler(a.authService, a.logger)
	customerHandler := httpHandler.NewCustomerHandler(a.customerService, a.logger)
	trackingHandler := httpHandler.NewTrackingHandler(a.trackingService, a.logger)
	emailTemplateHandler := httpHandler.NewEmailTemplateHandler(a.emailTemplateService, a.logger)
	emailHandler := httpHandler.NewEmailHandler(a.emailService, a.logger)
	settingsHandler := httpHandler.NewSettingsHandler(a.settingsService, a.logger)
	consentHandler := httpHandler.NewConsentHandler(a.consentService, a.logger)
	healthHandler := httpHandler.NewHealthHandler()

	authHandler.RegisterRoutes(a.mux)
	customerHandler.RegisterRoutes(a.mux)
	trackingHandler.RegisterRoutes(a.mux)
	emailTemplateHandler.RegisterRoutes(a.mux)
	emailHandler.RegisterRoutes(a.mux)
	settingsHandler.RegisterRoutes(a.mux)
	consentHandler.RegisterRoutes(a.mux)
	healthHandler.RegisterRoutes(a.mux)

	// The public signup form only exists while the early access list
	// is open
	if a.config.EarlyAccess {
		subscriberHandler := httpHandler.NewSubscriberHandler(a.subscriberService, a.logger)
		subscriberHandler.RegisterRoutes(a.mux)
	}

	return nil
}

// Initialize runs all initialization steps in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitMailer(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	return a.InitHandlers()
}

// GetMux returns the route multiplexer, used by tests
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the database handle, used by tests
func (a *App) GetDB() *sql.DB {
	return a.db
}

// Start starts the HTTP server and blocks until it stops
func (a *App) Start() error {
	var handler http.Handler = a.mux
	handler = middleware.Auth(a.authService)(handler)
	handler = middleware.CORS(a.config.CORSOrigin)(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info("Server starting")

	a.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown")

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}
