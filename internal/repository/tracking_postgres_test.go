package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/repository/testutil"
)

func trackingRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "customer_id", "name", "type", "description",
		"selector", "url_pattern", "config", "destinations",
		"ga4_event_name", "ga4_event_params", "ads_conversion_value",
		"status", "conversion_action_id", "last_error", "created_at", "updated_at",
	}).AddRow(
		"track-1", "tenant-1", "cust-1", "Checkout purchase", "PURCHASE", nil,
		nil, "/checkout/thank-you", []byte(`{"currency":"EUR"}`), pq.StringArray{"GA4"},
		"purchase", []byte(`{}`), 49.90,
		"ACTIVE", "conv-123", nil, now, now,
	)
}

func TestTrackingRepository_CreateTracking(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTrackingRepository(db)

	tracking := &domain.Tracking{
		ID:           "track-1",
		TenantID:     "tenant-1",
		CustomerID:   "cust-1",
		Name:         "Checkout purchase",
		Type:         domain.TrackingTypePurchase,
		URLPattern:   "/checkout/thank-you",
		Destinations: []domain.TrackingDestination{domain.DestinationGA4},
		Status:       domain.TrackingStatusPending,
	}

	mock.ExpectExec(`INSERT INTO trackings`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateTracking(context.Background(), tracking))
	assert.False(t, tracking.CreatedAt.IsZero())
}

func TestTrackingRepository_GetTrackingByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTrackingRepository(db)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM trackings WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs("tenant-1", "track-1").
			WillReturnRows(trackingRows(now))

		tracking, err := repo.GetTrackingByID(context.Background(), "tenant-1", "track-1")
		require.NoError(t, err)
		assert.Equal(t, domain.TrackingTypePurchase, tracking.Type)
		assert.Equal(t, domain.TrackingStatusActive, tracking.Status)
		assert.Equal(t, "EUR", tracking.Config["currency"])
		assert.Equal(t, []domain.TrackingDestination{domain.DestinationGA4}, tracking.Destinations)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM trackings`).
			WithArgs("tenant-1", "missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetTrackingByID(context.Background(), "tenant-1", "missing")
		assert.IsType(t, &domain.ErrTrackingNotFound{}, err)
	})
}

func TestTrackingRepository_ListTrackingsByCustomer(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTrackingRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM trackings WHERE tenant_id = \$1 AND customer_id = \$2`).
		WithArgs("tenant-1", "cust-1").
		WillReturnRows(trackingRows(now))

	trackings, err := repo.ListTrackingsByCustomer(context.Background(), "tenant-1", "cust-1")
	require.NoError(t, err)
	require.Len(t, trackings, 1)
	assert.Equal(t, "track-1", trackings[0].ID)
}

func TestTrackingRepository_UpdateTracking(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTrackingRepository(db)

	tracking := &domain.Tracking{
		ID:       "track-1",
		TenantID: "tenant-1",
		Name:     "Renamed",
		Status:   domain.TrackingStatusPaused,
	}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(`UPDATE trackings`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateTracking(context.Background(), tracking))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE trackings`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateTracking(context.Background(), tracking)
		assert.IsType(t, &domain.ErrTrackingNotFound{}, err)
	})
}

func TestTrackingRepository_DeleteTracking(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTrackingRepository(db)

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM trackings WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs("tenant-1", "track-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteTracking(context.Background(), "tenant-1", "track-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM trackings`).
			WithArgs("tenant-1", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteTracking(context.Background(), "tenant-1", "missing")
		assert.IsType(t, &domain.ErrTrackingNotFound{}, err)
	})
}
