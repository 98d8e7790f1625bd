package middleware

import (
	"net/http"
	"strings"

	"github.com/oneclicktag/oneclicktag/internal/domain"
	httpHandler "github.com/oneclicktag/oneclicktag/internal/http"
	"github.com/oneclicktag/oneclicktag/internal/service"
)

// Auth decodes the bearer token and, when it verifies, places the user
// in the request context. Requests without a token pass through
// untouched: public endpoints need no user, and the services reject
// protected operations that find none in the context.
func Auth(authService domain.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httpHandler.WriteJSONError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			user, err := authService.VerifyToken(r.Context(), parts[1])
			if err != nil {
				httpHandler.WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(service.WithUser(r.Context(), user)))
		})
	}
}
