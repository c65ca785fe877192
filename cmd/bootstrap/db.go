package bootstrap

import (
	"context"
	"log/slog"

	"qr-smart-parking/internal/infra/db"
	"qr-smart-parking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewLegacyDB,
	),
)

// NewDB returns a nil pool when the primary tier is not configured or cannot
// be reached at startup; the store then runs on its remaining tiers.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *pgxpool.Pool {
	if !cfg.DB.Enabled() {
		logger.Info("Primary database not configured")
		return nil
	}
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Warn("Primary database unavailable, continuing without it",
			slog.String("host", cfg.DB.Host),
			slog.String("error", err.Error()))
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool
}

func NewLegacyDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *sqlx.DB {
	dbCfg := cfg.LegacyDB.AsDBConfig()
	if !dbCfg.Enabled() {
		logger.Info("Legacy database not configured")
		return nil
	}
	legacyDB, cleanup, err := db.ConnectLegacy(dbCfg)
	if err != nil {
		logger.Warn("Legacy database unavailable, continuing without it",
			slog.String("host", dbCfg.Host),
			slog.String("error", err.Error()))
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return legacyDB
}
