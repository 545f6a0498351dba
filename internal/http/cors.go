package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// wildcardOrigin allows every origin; credentials are then switched off since browsers
// reject "*" together with Access-Control-Allow-Credentials.
const wildcardOrigin = "*"

// createCORSMiddleware returns nil when CORS is disabled or no origin is configured,
// in which case the router skips it.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("cors enabled without allowed origins, middleware not applied")
		return nil
	}

	config := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowHeaders:  []string{"Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, wildcardOrigin) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}

	logger.Info("cors enabled",
		slog.Any("origins", origins),
		slog.Bool("credentials", config.AllowCredentials))

	return cors.New(config)
}

// parseOrigins splits a comma separated origin list, dropping blank entries.
func parseOrigins(originsStr string) []string {
	var origins []string
	for part := range strings.SplitSeq(originsStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
