package hype

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apexgrid/gridhype/hype/boosts"
	"github.com/apexgrid/gridhype/hype/database"
	"github.com/apexgrid/gridhype/hype/database/repositories"
	"github.com/apexgrid/gridhype/hype/ratings"
	"github.com/apexgrid/gridhype/hype/results"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App wires the points/ratings engine: repositories, the result cache, the
// aggregator, the summary builder and the boost ledger. Every component
// takes its storage handle explicitly; nothing is a process-wide singleton.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB                    *database.DB
	EventResultRepository repositories.EventResultRepository
	RatingRepository      repositories.RatingRepository
	RosterRepository      repositories.RosterRepository
	BoostRepository       repositories.BoostRepository

	Fetcher        results.Fetcher
	ResultCache    *results.Cache
	Aggregator     *ratings.Aggregator
	SummaryBuilder *ratings.SummaryBuilder
	BoostLedger    *boosts.Ledger
}

// Setup connects to the database, initializes the schema and wires every
// service. The fetcher may be set beforehand; otherwise the HTTP provider
// client from the config is used.
func (a *App) Setup(ctx context.Context) error {
	dbStart := time.Now()
	db, err := database.New(ctx, database.DBConfig{
		Host:     a.Cfg.DB.Host,
		Port:     a.Cfg.DB.Port,
		User:     a.Cfg.DB.User,
		Password: a.Cfg.DB.Password,
		Database: a.Cfg.DB.Database,
		PoolSize: a.Cfg.DB.PoolSize,
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	a.DB = db

	slog.Info("Database connected",
		slog.String("type", "db"),
		slog.String("database", a.Cfg.DB.Database),
		slog.Duration("took", time.Since(dbStart)))

	if err := db.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.EventResultRepository = repositories.NewEventResultRepository(db.BunDB())
	a.RatingRepository = repositories.NewRatingRepository(db.BunDB())
	a.RosterRepository = repositories.NewRosterRepository(db.BunDB())
	a.BoostRepository = repositories.NewBoostRepository(db.BunDB())

	if a.Fetcher == nil {
		a.Fetcher = results.NewHTTPFetcher(
			a.Cfg.Provider.BaseURL,
			time.Duration(a.Cfg.Provider.TimeoutSeconds)*time.Second,
		)
	}

	a.ResultCache = results.NewCache(
		a.Fetcher,
		a.EventResultRepository,
		time.Duration(a.Cfg.Provider.FetchDelaySeconds)*time.Second,
	)

	a.Aggregator = ratings.NewAggregator(a.EventResultRepository, ratings.Config{
		CurrentSeason: a.Cfg.Ratings.CurrentSeason,
		InheritCareer: a.Cfg.Ratings.InheritCareer,
	})

	a.SummaryBuilder = ratings.NewSummaryBuilder(
		a.Aggregator,
		a.EventResultRepository,
		a.RatingRepository,
		int64(a.Cfg.Ratings.MaxConcurrentBuilds),
	)

	a.BoostLedger = boosts.NewLedger(
		a.ResultCache,
		a.Aggregator,
		a.SummaryBuilder,
		a.RosterRepository,
		a.BoostRepository,
	)

	return nil
}

// SettleLatestEvent resolves the most recent past event on the current
// season's schedule and settles it.
func (a *App) SettleLatestEvent(ctx context.Context) error {
	season := a.Cfg.Ratings.CurrentSeason
	schedule, err := a.Fetcher.Schedule(ctx, season)
	if err != nil {
		return fmt.Errorf("failed to load schedule for season %d: %w", season, err)
	}

	var latest *results.ScheduleEntry
	now := time.Now()
	for i := range schedule {
		if schedule[i].Date.After(now) {
			continue
		}
		if latest == nil || schedule[i].Date.After(latest.Date) {
			latest = &schedule[i]
		}
	}
	if latest == nil {
		return fmt.Errorf("season %d has no past events to settle", season)
	}

	slog.Info("Settling latest event",
		slog.Int("season", season),
		slog.String("event", latest.Name))
	return a.BoostLedger.SettleEvent(ctx, season, latest.Name)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
