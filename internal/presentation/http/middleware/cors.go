package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/config"
)

var (
	// the floor terminal runs from a Vite dev server on the bar's own machine
	terminalOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	terminalMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	terminalHeaders = []string{"Accept", "Content-Type", "Origin", "X-Request-ID", IdempotencyKeyHeader}
)

// CORSMiddleware lets the floor terminal call the API. Empty config lists fall
// back to the terminal defaults.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	headers := orDefault(cfg.AllowedHeaders, terminalHeaders)
	if !slices.Contains(headers, IdempotencyKeyHeader) {
		headers = append(slices.Clone(headers), IdempotencyKeyHeader)
	}

	return cors.New(cors.Config{
		AllowOrigins:  orDefault(cfg.AllowedOrigins, terminalOrigins),
		AllowMethods:  orDefault(cfg.AllowedMethods, terminalMethods),
		AllowHeaders:  headers,
		ExposeHeaders: []string{"Content-Length", "X-Request-ID", "X-Total-Count", "X-Idempotency-Replayed"},
		MaxAge:        12 * time.Hour,
	})
}

func orDefault(configured, fallback []string) []string {
	if len(configured) == 0 {
		return fallback
	}
	return configured
}
