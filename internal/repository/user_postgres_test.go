package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/repository/testutil"
)

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "email", "name", "role", "password_hash", "created_at", "updated_at",
	}).AddRow("user-1", "tenant-1", "admin@example.com", "Admin", "admin", "$2a$12$hash", now, now)
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)

	user := &domain.User{
		ID:           "user-1",
		TenantID:     "tenant-1",
		Email:        "admin@example.com",
		Name:         "Admin",
		Role:         domain.UserRoleAdmin,
		PasswordHash: "$2a$12$hash",
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("user-1", "tenant-1", "admin@example.com", "Admin", domain.UserRoleAdmin, "$2a$12$hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateUser(context.Background(), user))
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)
	now := time.Now().UTC()

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
			WithArgs("Admin@Example.COM").
			WillReturnRows(userRows(now))

		user, err := repo.GetUserByEmail(context.Background(), "Admin@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.True(t, user.IsAdmin())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
		assert.IsType(t, &domain.ErrUserNotFound{}, err)
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(userRows(now))

	user, err := repo.GetUserByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
}
