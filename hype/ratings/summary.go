package ratings

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/apexgrid/gridhype/hype/database/repositories"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const defaultMaxConcurrentBuilds = 4

// SummaryBuilder replays the aggregator over every known driver and
// rebuilds the three derived stores: per-driver rating records, the hype
// summary table and the seasonal average leaderboard. Idempotent; safe to
// run on every newly cached event.
type SummaryBuilder struct {
	agg           *Aggregator
	events        repositories.EventResultRepository
	ratings       repositories.RatingRepository
	maxConcurrent int64
}

func NewSummaryBuilder(agg *Aggregator, events repositories.EventResultRepository, ratings repositories.RatingRepository, maxConcurrent int64) *SummaryBuilder {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentBuilds
	}
	return &SummaryBuilder{
		agg:           agg,
		events:        events,
		ratings:       ratings,
		maxConcurrent: maxConcurrent,
	}
}

// RebuildAll aggregates every known driver and swaps the derived tables.
// Per-driver aggregation runs in parallel; all writes happen serially after
// the fan-in so readers only ever see complete tables. One driver failing
// never aborts the batch.
func (b *SummaryBuilder) RebuildAll(ctx context.Context) (ok, failed int, err error) {
	drivers, err := b.knownDrivers(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(drivers) == 0 {
		slog.Warn("No drivers known, nothing to rebuild")
		return 0, 0, nil
	}

	records := make([]*Record, len(drivers))
	buildErrs := make([]error, len(drivers))

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(b.maxConcurrent)
	for i, driver := range drivers {
		i, driver := i, driver
		if err := sem.Acquire(gctx, 1); err != nil {
			return 0, 0, err
		}
		g.Go(func() error {
			defer sem.Release(1)
			b.agg.Invalidate(driver)
			rec, err := b.agg.BuildRecord(gctx, driver)
			if err != nil {
				buildErrs[i] = err
				return nil
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	var summaries []*models.DriverSummary
	seasonRows := make(map[string][]*models.EventResult)

	for i, driver := range drivers {
		if buildErrs[i] != nil {
			slog.Error("Failed to aggregate driver",
				slog.String("driver", driver),
				slog.Any("error", buildErrs[i]))
			failed++
			continue
		}
		rec := records[i]

		if len(rec.Rows) == 0 {
			slog.Info("Skipping unrated driver", slog.String("driver", driver))
			continue
		}
		if err := b.ratings.ReplaceDriverRating(ctx, driver, RatingRows(rec)); err != nil {
			slog.Error("Failed to persist driver rating",
				slog.String("driver", driver),
				slog.Any("error", err))
			failed++
			continue
		}
		ok++

		if rec.Unrated() {
			slog.Info("Skipping summary entry for driver without seasonal data",
				slog.String("driver", driver))
		} else {
			summaries = append(summaries, &models.DriverSummary{
				Driver:           driver,
				Hype:             *rec.Hype,
				FantasyValue:     *rec.FantasyValue,
				PreviousWeighted: *rec.PreviousWeighted,
			})
		}

		for _, row := range rec.Rows {
			if row.Season == b.agg.cfg.CurrentSeason {
				seasonRows[driver] = append(seasonRows[driver], row)
			}
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Hype != summaries[j].Hype {
			return summaries[i].Hype > summaries[j].Hype
		}
		return summaries[i].Driver < summaries[j].Driver
	})
	if err := b.ratings.ReplaceSummaries(ctx, summaries); err != nil {
		return ok, failed, fmt.Errorf("failed to replace summary table: %w", err)
	}

	averages := b.buildSeasonAverages(seasonRows)
	if err := b.ratings.ReplaceSeasonAverages(ctx, b.agg.cfg.CurrentSeason, averages); err != nil {
		return ok, failed, fmt.Errorf("failed to replace season averages: %w", err)
	}

	slog.Info("Rating summary rebuilt",
		slog.Int("drivers", ok),
		slog.Int("failed", failed),
		slog.Int("summary_entries", len(summaries)),
		slog.Int("leaderboard_entries", len(averages)))
	return ok, failed, nil
}

// buildSeasonAverages unions the current-season rows of every driver,
// deduplicates by (driver, event) so a corrupted cache can never double
// count, and computes column-wise means sorted by mean total descending.
func (b *SummaryBuilder) buildSeasonAverages(seasonRows map[string][]*models.EventResult) []*models.SeasonAverage {
	var averages []*models.SeasonAverage
	for driver, rows := range seasonRows {
		seen := make(map[string]bool, len(rows))
		deduped := rows[:0:0]
		for _, row := range rows {
			if seen[row.Event] {
				continue
			}
			seen[row.Event] = true
			deduped = append(deduped, row)
		}
		if len(deduped) == 0 {
			continue
		}
		s := scopeRow(models.ScopeSeasonalAverage, deduped)
		averages = append(averages, &models.SeasonAverage{
			Season:        b.agg.cfg.CurrentSeason,
			Driver:        driver,
			AvgQualifying: round2(s.Qualifying),
			AvgRace:       round2(s.Race),
			AvgGained:     round2(s.PositionsGained),
			AvgTotal:      round2(s.TotalPoints),
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		if averages[i].AvgTotal != averages[j].AvgTotal {
			return averages[i].AvgTotal > averages[j].AvgTotal
		}
		return averages[i].Driver < averages[j].Driver
	})
	return averages
}

// knownDrivers is the union of drivers seen in cached events and drivers
// with a previously persisted rating.
func (b *SummaryBuilder) knownDrivers(ctx context.Context) ([]string, error) {
	fromEvents, err := b.events.DistinctDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers from events: %w", err)
	}
	fromRatings, err := b.ratings.DistinctDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers from ratings: %w", err)
	}

	set := make(map[string]bool, len(fromEvents)+len(fromRatings))
	for _, d := range fromEvents {
		set[d] = true
	}
	for _, d := range fromRatings {
		set[d] = true
	}
	drivers := make([]string, 0, len(set))
	for d := range set {
		drivers = append(drivers, d)
	}
	sort.Strings(drivers)
	return drivers, nil
}

// Summaries returns the persisted leaderboard ordered by hype descending.
func (b *SummaryBuilder) Summaries(ctx context.Context) ([]*models.DriverSummary, error) {
	return b.ratings.GetSummaries(ctx)
}

// SeasonalLeaderboard returns the persisted per-driver season averages.
func (b *SummaryBuilder) SeasonalLeaderboard(ctx context.Context, season int) ([]*models.SeasonAverage, error) {
	return b.ratings.GetSeasonAverages(ctx, season)
}

