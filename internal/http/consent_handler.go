package http

import (
	"encoding/json"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

// ConsentHandler serves the cookie banner endpoints. Both are public:
// visitors consent before anyone logs in.
type ConsentHandler struct {
	service domain.ConsentService
	logger  logger.Logger
}

func NewConsentHandler(service domain.ConsentService, logger logger.Logger) *ConsentHandler {
	return &ConsentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ConsentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/consent.record", h.handleRecord)
	mux.HandleFunc("/api/consent.policy", h.handlePolicy)
}

func (h *ConsentHandler) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.RecordConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.service.RecordConsent(r.Context(), &req, r.UserAgent())
	if err != nil {
		writeServiceError(w, err, "Failed to record consent")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"consent": record,
	})
}

func (h *ConsentHandler) handlePolicy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.ConsentPolicyRequest{}
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	policy, err := h.service.GetPolicy(r.Context(), req.TenantID)
	if err != nil {
		writeServiceError(w, err, "Failed to get consent policy")
		return
	}

	writeJSON(w, http.StatusOK, policy)
}
