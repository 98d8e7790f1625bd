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

func TestConsentRepository_UpsertConsent(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewConsentRepository(db)

	record := &domain.ConsentRecord{
		ID:          "consent-1",
		TenantID:    "tenant-1",
		AnonymousID: "anon-abc",
		Necessary:   true,
		Analytics:   true,
		Marketing:   false,
		UserAgent:   "Mozilla/5.0",
	}

	mock.ExpectExec(`INSERT INTO consent_records`).
		WithArgs("consent-1", "tenant-1", "anon-abc", true, true, false, "Mozilla/5.0",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertConsent(context.Background(), record))
}

func TestConsentRepository_GetConsentByAnonymousID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewConsentRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := sqlmock.NewRows([]string{
		"id", "tenant_id", "anonymous_id", "necessary", "analytics", "marketing", "user_agent", "created_at", "updated_at",
	}).AddRow("consent-1", "tenant-1", "anon-abc", true, true, false, "", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM consent_records WHERE tenant_id = \$1 AND anonymous_id = \$2`).
		WithArgs("tenant-1", "anon-abc").
		WillReturnRows(rows)

	record, err := repo.GetConsentByAnonymousID(context.Background(), "tenant-1", "anon-abc")
	require.NoError(t, err)
	assert.True(t, record.Necessary)
	assert.True(t, record.Analytics)
	assert.False(t, record.Marketing)

	mock.ExpectQuery(`SELECT (.+) FROM consent_records`).
		WithArgs("tenant-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetConsentByAnonymousID(context.Background(), "tenant-1", "missing")
	require.Error(t, err)
	var notFound *domain.ErrConsentNotFound
	assert.ErrorAs(t, err, &notFound)
}
