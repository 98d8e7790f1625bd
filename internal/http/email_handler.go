package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type EmailHandler struct {
	service domain.EmailService
	logger  logger.Logger
}

func NewEmailHandler(service domain.EmailService, logger logger.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		logger:  logger,
	}
}

func (h *EmailHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/emails.send", h.handleSend)
	mux.HandleFunc("/api/emails.sendBulk", h.handleSendBulk)
	mux.HandleFunc("/api/emailLogs.list", h.handleListLogs)
}

func (h *EmailHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SendTemplatedEmail(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *EmailHandler) handleSendBulk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.BulkSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SendBulk(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to send bulk emails")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *EmailHandler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := &domain.EmailLogListParams{}
	if err := params.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListEmailLogs(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, "Failed to list email logs")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
