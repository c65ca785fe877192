package bootstrap

import (
	"log/slog"

	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/pkg/logging"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
