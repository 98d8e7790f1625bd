package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/internal/domain/mocks"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

func setupSubscriberHandler(t *testing.T) (*mocks.MockSubscriberService, *SubscriberHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockSubscriberService(ctrl)
	return service, NewSubscriberHandler(service, logger.NewTestLogger(t))
}

func TestSubscriberHandler_HandleSubscribe(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service, handler := setupSubscriberHandler(t)

		service.EXPECT().
			Subscribe(gomock.Any(), gomock.Any()).
			Return(&domain.Subscriber{ID: "sub-1", Email: "jane@example.com", OptedIn: true}, nil)

		rec := postJSON(t, handler.handleSubscribe, "/api/subscribers.subscribe", map[string]string{
			"tenant_id": "tenant-1",
			"email":     "jane@example.com",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid email maps to 400", func(t *testing.T) {
		service, handler := setupSubscriberHandler(t)

		service.EXPECT().
			Subscribe(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("email is invalid"))

		rec := postJSON(t, handler.handleSubscribe, "/api/subscribers.subscribe", map[string]string{
			"tenant_id": "tenant-1",
			"email":     "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubscriberHandler_HandleUnsubscribe(t *testing.T) {
	service, handler := setupSubscriberHandler(t)

	service.EXPECT().
		Unsubscribe(gomock.Any(), gomock.Any()).
		Return(nil)

	rec := postJSON(t, handler.handleUnsubscribe, "/api/subscribers.unsubscribe", map[string]string{
		"tenant_id": "tenant-1",
		"email":     "jane@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "success")
}
