package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies pending migrations with the atlas CLI, which must be on PATH.
// Regenerate migrations/atlas.sum with `atlas migrate hash` after editing a file.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun)
}
