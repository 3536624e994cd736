package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/apexgrid/gridhype/hype"
	"github.com/apexgrid/gridhype/hype/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler(slog.LevelInfo)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting GridHype points engine",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	preloadSeason := flag.Int("preload-season", 0, "fetch and cache every past event of the given season")
	rebuildRatings := flag.Bool("rebuild-ratings", false, "rebuild every driver rating and the summary tables")
	settleLatest := flag.Bool("settle-latest", false, "settle boosts against the most recent past event")
	resetTables := flag.Bool("reset-tables", false, "truncate all engine tables before running")
	flag.Parse()

	cfg, err := hype.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Configuration loaded successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	app := hype.New(*cfg, version, commit)
	if err := app.Setup(ctx); err != nil {
		slog.Error("Failed to set up engine", slog.Any("error", err))
		os.Exit(-1)
	}
	defer app.Close()

	if *resetTables {
		if err := app.DB.ResetAppTables(ctx); err != nil {
			slog.Error("Failed to reset tables", slog.Any("error", err))
			os.Exit(-1)
		}
	}

	ran := false

	if *preloadSeason > 0 {
		ran = true
		start := time.Now()
		cached, failed, err := app.ResultCache.PreloadSeason(ctx, *preloadSeason)
		if err != nil {
			logger.LogError("Season preload aborted", err, slog.Int("season", *preloadSeason))
			os.Exit(-1)
		}
		logger.LogSystem("Season preload finished",
			slog.Int("season", *preloadSeason),
			slog.Int("cached", cached),
			slog.Int("failed", failed),
			slog.Duration("took", time.Since(start)))
	}

	if *rebuildRatings {
		ran = true
		start := time.Now()
		ok, failed, err := app.SummaryBuilder.RebuildAll(ctx)
		if err != nil {
			logger.LogError("Ratings rebuild aborted", err)
			os.Exit(-1)
		}
		logger.LogRebuild(ok, failed, time.Since(start))
	}

	if *settleLatest {
		ran = true
		if err := app.SettleLatestEvent(ctx); err != nil {
			logger.LogError("Event settlement failed", err)
			os.Exit(-1)
		}
	}

	if !ran {
		flag.Usage()
		os.Exit(2)
	}
}
