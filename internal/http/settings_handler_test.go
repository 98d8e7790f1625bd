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

func setupSettingsHandler(t *testing.T) (*mocks.MockSettingsService, *SettingsHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockSettingsService(ctrl)
	return service, NewSettingsHandler(service, logger.NewTestLogger(t))
}

func TestSettingsHandler_HandleGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, handler := setupSettingsHandler(t)

		service.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(&domain.SiteSettings{TenantID: "tenant-1", ConsentExpiryDays: 180}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/settings.get?tenant_id=tenant-1", nil)
		rec := httptest.NewRecorder()
		handler.handleGet(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-admin maps to 403", func(t *testing.T) {
		service, handler := setupSettingsHandler(t)

		service.EXPECT().
			GetSettings(gomock.Any(), "tenant-1").
			Return(nil, &domain.ErrForbidden{})

		req := httptest.NewRequest(http.MethodGet, "/api/settings.get?tenant_id=tenant-1", nil)
		rec := httptest.NewRecorder()
		handler.handleGet(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin access required")
	})
}

func TestSettingsHandler_HandleUpdate(t *testing.T) {
	service, handler := setupSettingsHandler(t)

	service.EXPECT().
		UpdateSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.UpdateSiteSettingsRequest) (*domain.SiteSettings, error) {
			assert.Equal(t, "tenant-1", req.TenantID)
			return &domain.SiteSettings{TenantID: "tenant-1", NewsletterDoubleOptIn: true}, nil
		})

	rec := postJSON(t, handler.handleUpdate, "/api/settings.update", map[string]interface{}{
		"tenant_id":                "tenant-1",
		"newsletter_double_opt_in": true,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "newsletter_double_opt_in")
}
