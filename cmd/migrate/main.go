// Command migrate applies the SQL migrations of both store tiers with the
// atlas CLI. A tier whose host is not configured is skipped.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/pkg/errs"
	"qr-smart-parking/internal/pkg/logging"

	"ariga.io/atlas-go-sdk/atlasexec"
)

type target struct {
	name string
	dir  string
	db   config.DBConfig
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log)

	root := flag.String("dir", "migrations", "directory holding the primary/ and legacy/ migration sets")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	targets := []target{
		{name: "primary", dir: filepath.Join(*root, "primary"), db: cfg.DB},
		{name: "legacy", dir: filepath.Join(*root, "legacy"), db: cfg.LegacyDB.AsDBConfig()},
	}

	failed := false
	for _, t := range targets {
		if !t.db.Enabled() {
			logger.Info("Skipping tier without a host", slog.String("tier", t.name))
			continue
		}
		if err := apply(ctx, *atlasBin, t, logger); err != nil {
			logger.Error("Migration failed",
				slog.String("tier", t.name),
				slog.String("error", err.Error()))
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func apply(ctx context.Context, atlasBin string, t target, logger *slog.Logger) error {
	dir, err := filepath.Abs(t.dir)
	if err != nil {
		return errs.Wrapf(err, "failed to resolve %s", t.dir)
	}
	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to initialise atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    t.db.BuildDSN(),
		DirURL: "file://" + filepath.ToSlash(dir),
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}

	logger.Info("Migrations applied",
		slog.String("tier", t.name),
		slog.Int("applied", len(res.Applied)),
		slog.String("current", res.Current),
		slog.String("target", res.Target))
	return nil
}
