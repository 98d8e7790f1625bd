package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type EmailTemplateHandler struct {
	service domain.EmailTemplateService
	logger  logger.Logger
}

func NewEmailTemplateHandler(service domain.EmailTemplateService, logger logger.Logger) *EmailTemplateHandler {
	return &EmailTemplateHandler{
		service: service,
		logger:  logger,
	}
}

func (h *EmailTemplateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/emailTemplates.list", h.handleList)
	mux.HandleFunc("/api/emailTemplates.get", h.handleGet)
	mux.HandleFunc("/api/emailTemplates.upsert", h.handleUpsert)
	mux.HandleFunc("/api/emailTemplates.delete", h.handleDelete)
}

func (h *EmailTemplateHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}

	templates, err := h.service.ListTemplates(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err, "Failed to list email templates")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": templates,
	})
}

func (h *EmailTemplateHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}
	templateType := domain.EmailTemplateType(r.URL.Query().Get("type"))
	if err := templateType.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	template, err := h.service.GetTemplate(r.Context(), tenantID, templateType)
	if err != nil {
		writeServiceError(w, err, "Failed to get email template")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"template": template,
	})
}

func (h *EmailTemplateHandler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpsertEmailTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	template, err := h.service.UpsertTemplate(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to upsert email template")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"template": template,
	})
}

func (h *EmailTemplateHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		TenantID string                   `json:"tenant_id"`
		Type     domain.EmailTemplateType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TenantID == "" {
		WriteJSONError(w, "Missing tenant ID", http.StatusBadRequest)
		return
	}
	if err := req.Type.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTemplate(r.Context(), req.TenantID, req.Type); err != nil {
		writeServiceError(w, err, "Failed to delete email template")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
