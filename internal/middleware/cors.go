package middleware

import (
	"net/http"
	"slices"

	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/go-chi/cors"
)

// NewCORSHandler builds the CORS middleware from config. The request id
// header is always exposed so browser clients can correlate responses with
// server logs regardless of deployment config.
func NewCORSHandler(cfg *config.CORSConfig) func(http.Handler) http.Handler {
	exposed := cfg.ExposedHeaders
	if !slices.Contains(exposed, requestIDHeader) {
		exposed = append(slices.Clone(exposed), requestIDHeader)
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
