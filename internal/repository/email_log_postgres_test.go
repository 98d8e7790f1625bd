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

func TestEmailLogRepository_CreateEmailLog(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailLogRepository(db)

	log := &domain.EmailLog{
		ID:           "log-1",
		TenantID:     "tenant-1",
		Recipient:    "ada@example.com",
		Subject:      "Welcome Ada",
		TemplateType: domain.EmailTemplateWelcome,
	}

	mock.ExpectExec(`INSERT INTO email_logs`).
		WithArgs("log-1", "tenant-1", "ada@example.com", "Welcome Ada",
			domain.EmailTemplateWelcome, domain.EmailLogStatusPending, "", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateEmailLog(context.Background(), log)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailLogStatusPending, log.Status)
}

func TestEmailLogRepository_UpdateEmailLogStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailLogRepository(db)

	t.Run("sent sets sent_at", func(t *testing.T) {
		mock.ExpectExec(`UPDATE email_logs`).
			WithArgs("tenant-1", "log-1", domain.EmailLogStatusSent, "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateEmailLogStatus(context.Background(), "tenant-1", "log-1", domain.EmailLogStatusSent, "")
		require.NoError(t, err)
	})

	t.Run("failed records the transport error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE email_logs`).
			WithArgs("tenant-1", "log-2", domain.EmailLogStatusFailed, "connection refused", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateEmailLogStatus(context.Background(), "tenant-1", "log-2", domain.EmailLogStatusFailed, "connection refused")
		require.NoError(t, err)
	})

	t.Run("missing log", func(t *testing.T) {
		mock.ExpectExec(`UPDATE email_logs`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateEmailLogStatus(context.Background(), "tenant-1", "missing", domain.EmailLogStatusSent, "")
		require.Error(t, err)
	})
}

func TestEmailLogRepository_ListEmailLogs(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEmailLogRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	params := &domain.EmailLogListParams{
		TenantID: "tenant-1",
		Status:   domain.EmailLogStatusSent,
		Page:     1,
		Limit:    50,
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM email_logs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT (.+) FROM email_logs`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "recipient", "subject", "template_type", "status", "error", "customer_id", "created_at", "sent_at",
		}).AddRow("log-1", "tenant-1", "ada@example.com", "Welcome", "WELCOME", "SENT", nil, nil, now, now))

	logs, total, err := repo.ListEmailLogs(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.EmailLogStatusSent, logs[0].Status)
	require.NotNil(t, logs[0].SentAt)
}
