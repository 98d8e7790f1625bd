package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isNotFound(err error) bool {
	var (
		customer *domain.ErrCustomerNotFound
		tracking *domain.ErrTrackingNotFound
		template *domain.ErrEmailTemplateNotFound
		tenant   *domain.ErrTenantNotFound
		user     *domain.ErrUserNotFound
		consent  *domain.ErrConsentNotFound
	)
	return errors.As(err, &customer) ||
		errors.As(err, &tracking) ||
		errors.As(err, &template) ||
		errors.As(err, &tenant) ||
		errors.As(err, &user) ||
		errors.As(err, &consent)
}

// writeServiceError maps the well-known service error types to their
// status codes; anything unrecognized is a 500 with the fallback message
// so internals never leak to the client.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		unauthorized *domain.ErrUnauthorized
		forbidden    *domain.ErrForbidden
		conflict     *domain.ErrEmailConflict
		validation   domain.ValidationError
	)
	switch {
	case errors.As(err, &unauthorized):
		WriteJSONError(w, unauthorized.Error(), http.StatusUnauthorized)
	case errors.As(err, &forbidden):
		WriteJSONError(w, forbidden.Error(), http.StatusForbidden)
	case isNotFound(err):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &conflict):
		WriteJSONError(w, conflict.Error(), http.StatusConflict)
	case errors.As(err, &validation):
		WriteJSONError(w, validation.Error(), http.StatusBadRequest)
	default:
		WriteJSONError(w, fallback, http.StatusInternalServerError)
	}
}
