package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

// SubscriberHandler serves the public newsletter opt-in endpoints
type SubscriberHandler struct {
	service domain.SubscriberService
	logger  logger.Logger
}

func NewSubscriberHandler(service domain.SubscriberService, logger logger.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		service: service,
		logger:  logger,
	}
}

func (h *SubscriberHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/subscribers.subscribe", h.handleSubscribe)
	mux.HandleFunc("/api/subscribers.unsubscribe", h.handleUnsubscribe)
}

func (h *SubscriberHandler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subscriber, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to subscribe")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"subscriber": subscriber,
	})
}

func (h *SubscriberHandler) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UnsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), &req); err != nil {
		writeServiceError(w, err, "Failed to unsubscribe")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
