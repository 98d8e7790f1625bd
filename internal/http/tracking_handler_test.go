package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/domain/mocks"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

func setupTrackingHandler(t *testing.T) (*mocks.MockTrackingService, *TrackingHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockTrackingService(ctrl)
	return service, NewTrackingHandler(service, logger.NewTestLogger(t))
}

func TestTrackingHandler_HandleCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service, handler := setupTrackingHandler(t)

		service.EXPECT().
			CreateTracking(gomock.Any(), gomock.Any()).
			Return(&domain.Tracking{ID: "track-1", Status: domain.TrackingStatusPending}, nil)

		rec := postJSON(t, handler.handleCreate, "/api/trackings.create", map[string]interface{}{
			"tenant_id":   "tenant-1",
			"customer_id": "cust-1",
			"name":        "Checkout purchase",
			"type":        "PURCHASE",
			"url_pattern": "/checkout/thank-you",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("taxonomy violation maps to 400", func(t *testing.T) {
		service, handler := setupTrackingHandler(t)

		service.EXPECT().
			CreateTracking(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("urlPattern is required for PURCHASE trackings"))

		rec := postJSON(t, handler.handleCreate, "/api/trackings.create", map[string]interface{}{
			"tenant_id":   "tenant-1",
			"customer_id": "cust-1",
			"name":        "Checkout purchase",
			"type":        "PURCHASE",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("customer not found maps to 404", func(t *testing.T) {
		service, handler := setupTrackingHandler(t)

		service.EXPECT().
			CreateTracking(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ErrCustomerNotFound{Message: "customer not found"})

		rec := postJSON(t, handler.handleCreate, "/api/trackings.create", map[string]interface{}{
			"tenant_id":   "tenant-1",
			"customer_id": "missing",
			"name":        "Checkout purchase",
			"type":        "PURCHASE",
			"url_pattern": "/checkout/thank-you",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTrackingHandler_HandleList(t *testing.T) {
	service, handler := setupTrackingHandler(t)

	service.EXPECT().
		ListTrackingsByCustomer(gomock.Any(), "tenant-1", "cust-1").
		Return([]*domain.Tracking{{ID: "track-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/trackings.list?tenant_id=tenant-1&customer_id=cust-1", nil)
	rec := httptest.NewRecorder()
	handler.handleList(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrackingHandler_HandleUpdateStatus(t *testing.T) {
	service, handler := setupTrackingHandler(t)

	service.EXPECT().
		UpdateTrackingStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.UpdateTrackingStatusRequest) (*domain.Tracking, error) {
			assert.Equal(t, domain.TrackingStatusActive, req.Status)
			return &domain.Tracking{ID: "track-1", Status: domain.TrackingStatusActive}, nil
		})

	rec := postJSON(t, handler.handleUpdateStatus, "/api/trackings.updateStatus", map[string]interface{}{
		"tenant_id": "tenant-1",
		"id":        "track-1",
		"status":    "ACTIVE",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrackingHandler_HandleDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		service, handler := setupTrackingHandler(t)

		service.EXPECT().
			DeleteTracking(gomock.Any(), "tenant-1", "track-1").
			Return(nil)

		rec := postJSON(t, handler.handleDelete, "/api/trackings.delete", map[string]string{
			"tenant_id": "tenant-1",
			"id":        "track-1",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		_, handler := setupTrackingHandler(t)

		rec := postJSON(t, handler.handleDelete, "/api/trackings.delete", map[string]string{
			"tenant_id": "tenant-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackingHandler_HandleTaxonomy(t *testing.T) {
	service, handler := setupTrackingHandler(t)

	service.EXPECT().
		GetTaxonomy(gomock.Any()).
		Return([]domain.TrackingTypeInfo{
			{Type: domain.TrackingTypePurchase, Metadata: domain.TrackingTypeMetadata{Label: "Purchase", Category: "ecommerce"}},
		})

	req := httptest.NewRequest(http.MethodGet, "/api/trackings.taxonomy", nil)
	rec := httptest.NewRecorder()
	handler.handleTaxonomy(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]domain.TrackingTypeInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["types"], 1)
}
