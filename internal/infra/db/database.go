package db

import (
	"context"
	"time"

	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver for the legacy schema
)

const connectTimeout = 5 * time.Second

// Connect opens the pool for the primary schema.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	return pool, pool.Close, nil
}

// ConnectLegacy opens the older schema through database/sql and lib/pq.
func ConnectLegacy(cfg config.DBConfig) (*sqlx.DB, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open legacy database")
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(time.Hour)

	cleanup := func() {
		_ = db.Close()
	}

	return db, cleanup, nil
}
