package middleware

import (
	"log/slog"

	"qr-smart-parking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes the request id header so kiosk front-ends
// can quote it when reporting a failed booking.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := append([]string{RequestIDHeader}, cfg.ExposeHeaders...)
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append([]string{RequestIDHeader}, cfg.AllowHeaders...),
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", cfg.AllowOrigins))
	return cors.New(corsCfg)
}
