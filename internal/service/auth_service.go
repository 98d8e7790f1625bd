package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/crypto"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

// WithUser returns a context carrying the authenticated user. The auth
// middleware calls this after verifying the bearer token.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// TokenExpiry is how long issued bearer tokens stay valid
const TokenExpiry = 24 * time.Hour

type AuthService struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	logger    logger.Logger
}

func NewAuthService(userRepo domain.UserRepository, jwtSecret string, logger logger.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			// Same message as a wrong password, never leak which emails exist
			return nil, &domain.ErrUnauthorized{Message: "Invalid email or password"}
		}
		s.logger.Error(fmt.Sprintf("Failed to get user for login: %v", err))
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if !crypto.CheckPassword(user.PasswordHash, password) {
		return nil, &domain.ErrUnauthorized{Message: "Invalid email or password"}
	}

	token, err := s.signToken(user)
	if err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to sign token: %v", err))
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &domain.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"tenant_id": user.TenantID,
		"role":      string(user.Role),
		"iat":       now.Unix(),
		"exp":       now.Add(TokenExpiry).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, &domain.ErrUnauthorized{Message: "Invalid or expired token"}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &domain.ErrUnauthorized{Message: "Invalid or expired token"}
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, &domain.ErrUnauthorized{Message: "Invalid or expired token"}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, &domain.ErrUnauthorized{Message: "Invalid or expired token"}
		}
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to load token user: %v", err))
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	return user, nil
}

func (s *AuthService) AuthenticateUserFromContext(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, &domain.ErrUnauthorized{}
	}
	return user, nil
}

func (s *AuthService) AuthenticateUserForTenant(ctx context.Context, tenantID string) (*domain.User, error) {
	user, err := s.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	// Cross-tenant access looks identical to no access
	if tenantID == "" || user.TenantID != tenantID {
		return nil, &domain.ErrUnauthorized{}
	}
	return user, nil
}

func (s *AuthService) AuthenticateAdminForTenant(ctx context.Context, tenantID string) (*domain.User, error) {
	user, err := s.AuthenticateUserForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, &domain.ErrForbidden{}
	}
	return user, nil
}
