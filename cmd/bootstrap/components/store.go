package components

import (
	"log/slog"

	"qr-smart-parking/internal/infra/store"
	"qr-smart-parking/internal/infra/store/legacy"
	"qr-smart-parking/internal/infra/store/primary"
	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewPrimaryTier,
		NewLegacyTier,
		NewStore,
		func(s *store.Store) usecase.BookingStore { return s },
	),
)

// A disabled tier must reach the store as a nil interface, not a typed nil.
func NewPrimaryTier(pool *pgxpool.Pool, logger *slog.Logger) store.PrimaryTier {
	if pool == nil {
		return nil
	}
	return primary.NewRepository(pool, logger)
}

func NewLegacyTier(db *sqlx.DB, logger *slog.Logger) store.LegacyTier {
	if db == nil {
		return nil
	}
	return legacy.NewRepository(db, logger)
}

func NewStore(p store.PrimaryTier, l store.LegacyTier, cfg config.Config, logger *slog.Logger) *store.Store {
	return store.New(p, l, cfg.Store.TierTimeout, logger)
}
