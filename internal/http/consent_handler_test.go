package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/domain/mocks"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

func setupConsentHandler(t *testing.T) (*mocks.MockConsentService, *ConsentHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockConsentService(ctrl)
	return service, NewConsentHandler(service, logger.NewTestLogger(t))
}

func TestConsentHandler_HandleRecord(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service, handler := setupConsentHandler(t)

		service.EXPECT().
			RecordConsent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.ConsentRecord{ID: "consent-1", AnonymousID: "anon-1", Necessary: true}, nil)

		rec := postJSON(t, handler.handleRecord, "/api/consent.record", map[string]interface{}{
			"tenant_id":    "tenant-1",
			"anonymous_id": "anon-1",
			"analytics":    true,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		service, handler := setupConsentHandler(t)

		service.EXPECT().
			RecordConsent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("anonymous_id is required"))

		rec := postJSON(t, handler.handleRecord, "/api/consent.record", map[string]interface{}{
			"tenant_id": "tenant-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConsentHandler_HandlePolicy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, handler := setupConsentHandler(t)

		service.EXPECT().
			GetPolicy(gomock.Any(), "tenant-1").
			Return(&domain.ConsentPolicy{ExpiryDays: 180, BannerDelayMs: 2000}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/consent.policy?tenant_id=tenant-1", nil)
		rec := httptest.NewRecorder()
		handler.handlePolicy(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "180")
	})

	t.Run("missing tenant id", func(t *testing.T) {
		_, handler := setupConsentHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/consent.policy", nil)
		rec := httptest.NewRecorder()
		handler.handlePolicy(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
