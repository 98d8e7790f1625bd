package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	"github.com/oneclicktag/oneclicktag/pkg/logger"
)

type AuthHandler struct {
	service domain.AuthService
	logger  logger.Logger
}

func NewAuthHandler(service domain.AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth.login", h.handleLogin)
	mux.HandleFunc("/api/auth.me", h.handleMe)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if _, ok := err.(*domain.ErrUnauthorized); ok {
			WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.logger.Error(fmt.Sprintf("Failed to login: %v", err))
		WriteJSONError(w, "Failed to login", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.service.AuthenticateUserFromContext(r.Context())
	if err != nil {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
