package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS wraps the handler with the CORS policy for the configured
// frontend origins, given as a comma-separated list. An empty list
// allows any origin, which is only meant for development setups.
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if allowedOrigins != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(allowedOrigins, ",") {
			origins = append(origins, strings.TrimSpace(origin))
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: allowedOrigins != "",
		MaxAge:           300,
	})
}
