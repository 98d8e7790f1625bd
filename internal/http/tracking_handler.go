package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type TrackingHandler struct {
	service domain.TrackingService
	logger  logger.Logger
}

func NewTrackingHandler(service domain.TrackingService, logger logger.Logger) *TrackingHandler {
	return &TrackingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *TrackingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/trackings.list", h.handleList)
	mux.HandleFunc("/api/trackings.get", h.handleGet)
	mux.HandleFunc("/api/trackings.create", h.handleCreate)
	mux.HandleFunc("/api/trackings.update", h.handleUpdate)
	mux.HandleFunc("/api/trackings.delete", h.handleDelete)
	mux.HandleFunc("/api/trackings.updateStatus", h.handleUpdateStatus)
	mux.HandleFunc("/api/trackings.taxonomy", h.handleTaxonomy)
}

func (h *TrackingHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ListTrackingsRequest{}
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trackings, err := h.service.ListTrackingsByCustomer(r.Context(), req.TenantID, req.CustomerID)
	if err != nil {
		writeServiceError(w, err, "Failed to list trackings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trackings": trackings,
	})
}

func (h *TrackingHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing tracking ID", http.StatusBadRequest)
		return
	}

	tracking, err := h.service.GetTracking(r.Context(), tenantID, id)
	if err != nil {
		writeServiceError(w, err, "Failed to get tracking")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tracking": tracking,
	})
}

func (h *TrackingHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tracking, err := h.service.CreateTracking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to create tracking")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"tracking": tracking,
	})
}

func (h *TrackingHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tracking, err := h.service.UpdateTracking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to update tracking")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tracking": tracking,
	})
}

func (h *TrackingHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TenantID string `json:"tenant_id"`
		ID       string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TenantID == "" || req.ID == "" {
		WriteJSONError(w, "tenant_id and id are required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTracking(r.Context(), req.TenantID, req.ID); err != nil {
		writeServiceError(w, err, "Failed to delete tracking")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TrackingHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateTrackingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tracking, err := h.service.UpdateTrackingStatus(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to update tracking status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tracking": tracking,
	})
}

// handleTaxonomy is public: the tracking form builder needs the type
// catalog before any tenant is selected.
func (h *TrackingHandler) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"types": h.service.GetTaxonomy(r.Context()),
	})
}
