package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type SettingsHandler struct {
	service domain.SettingsService
	logger  logger.Logger
}

func NewSettingsHandler(service domain.SettingsService, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *SettingsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/settings.get", h.handleGet)
	mux.HandleFunc("/api/settings.update", h.handleUpdate)
}

func (h *SettingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}

	settings, err := h.service.GetSettings(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err, "Failed to get settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
	})
}

func (h *SettingsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateSiteSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to update settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
	})
}
