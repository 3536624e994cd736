package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/apexgrid/gridhype/hype"
	"github.com/apexgrid/gridhype/hype/logger"
	"github.com/apexgrid/gridhype/hype/migration"
)

// Imports the legacy flat-file result cache into Postgres. Event dates are
// resolved from the provider's season schedules, fetched once per season.
func main() {
	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	path := flag.String("config", "config.toml", "path to config")
	dir := flag.String("cache-dir", "", "directory holding the legacy per-event CSV files")
	flag.Parse()

	if *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := hype.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	app := hype.New(*cfg, "import", "unknown")
	if err := app.Setup(ctx); err != nil {
		slog.Error("Failed to set up engine", slog.Any("error", err))
		os.Exit(-1)
	}
	defer app.Close()

	schedules := map[int]map[string]time.Time{}
	resolver := func(season int, event string) (time.Time, bool) {
		bySeason, ok := schedules[season]
		if !ok {
			bySeason = map[string]time.Time{}
			entries, err := app.Fetcher.Schedule(ctx, season)
			if err != nil {
				slog.Warn("Failed to load schedule for legacy season",
					slog.Int("season", season),
					slog.Any("error", err))
			}
			for _, e := range entries {
				bySeason[e.Name] = e.Date
			}
			schedules[season] = bySeason
		}
		date, ok := bySeason[event]
		return date, ok
	}

	importer := migration.NewImporter(app.EventResultRepository, resolver, *dir)
	imported, skipped, err := importer.ImportAll(ctx)
	if err != nil {
		logger.LogError("Legacy import aborted", err)
		os.Exit(-1)
	}
	logger.LogSystem("Legacy import complete",
		slog.Int("imported", imported),
		slog.Int("skipped", skipped))

	if _, _, err := app.SummaryBuilder.RebuildAll(ctx); err != nil {
		logger.LogError("Ratings rebuild after import failed", err)
		os.Exit(-1)
	}
}
