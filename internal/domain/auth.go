package domain

import (
	"context"
	"fmt"
	"net/mail"
	"time"
)

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain AuthService
//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/oneclicktag/oneclicktag/internal/domain UserRepository

// UserRole determines what a user may do within its tenant
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// User is an operator account belonging to a tenant
type User struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// ScanUser scans a user from the database
func ScanUser(scanner interface {
	Scan(dest ...interface{}) error
}) (*User, error) {
	var u User
	if err := scanner.Scan(
		&u.ID,
		&u.TenantID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// LoginRequest carries credentials for /api/auth.login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("invalid login request: email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid login request: invalid email format")
	}
	if r.Password == "" {
		return fmt.Errorf("invalid login request: password is required")
	}
	return nil
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthService authenticates requests and issues tokens
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	// VerifyToken parses a bearer token and loads the user it names
	VerifyToken(ctx context.Context, token string) (*User, error)

	// AuthenticateUserFromContext returns the user placed in the context
	// by the auth middleware
	AuthenticateUserFromContext(ctx context.Context) (*User, error)

	// AuthenticateUserForTenant ensures the context user belongs to the tenant
	AuthenticateUserForTenant(ctx context.Context, tenantID string) (*User, error)

	// AuthenticateAdminForTenant ensures the context user belongs to the
	// tenant and holds the admin role
	AuthenticateAdminForTenant(ctx context.Context, tenantID string) (*User, error)
}

// UserRepository provides persistence for users
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// ErrUserNotFound is returned when a user is not found
type ErrUserNotFound struct {
	Message string
}

func (e *ErrUserNotFound) Error() string {
	return e.Message
}
