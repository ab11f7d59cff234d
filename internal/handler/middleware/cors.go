package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"experience-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	exposed := slices.Clone(cfg.ExposeHeaders)
	for _, h := range []string{CacheStatusHeader, RequestIDHeader} {
		if !containsHeader(exposed, h) {
			exposed = append(exposed, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func containsHeader(headers []string, h string) bool {
	for _, x := range headers {
		if http.CanonicalHeaderKey(x) == http.CanonicalHeaderKey(h) {
			return true
		}
	}
	return false
}
