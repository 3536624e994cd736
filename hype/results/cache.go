package results

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/apexgrid/gridhype/hype/database/repositories"
	"github.com/apexgrid/gridhype/hype/scoring"
)

const defaultFetchDelay = time.Second

// Cache is the durable store of scored per-event rows with get-or-compute
// semantics: a valid cached event is never refetched.
type Cache struct {
	fetcher    Fetcher
	events     repositories.EventResultRepository
	fetchDelay time.Duration
	nowFn      func() time.Time
}

func NewCache(fetcher Fetcher, events repositories.EventResultRepository, fetchDelay time.Duration) *Cache {
	if fetchDelay <= 0 {
		fetchDelay = defaultFetchDelay
	}
	return &Cache{
		fetcher:    fetcher,
		events:     events,
		fetchDelay: fetchDelay,
		nowFn:      time.Now,
	}
}

// GetOrFetch returns the scored rows for one event, fetching and caching
// them on a miss. An upstream failure or missing session yields an empty
// slice with no error and nothing cached; callers treat empty as "no data
// for this event". Storage failures are real errors.
func (c *Cache) GetOrFetch(ctx context.Context, season int, event string) ([]*models.EventResult, error) {
	rows, _, err := c.getOrFetch(ctx, season, event)
	return rows, err
}

func (c *Cache) getOrFetch(ctx context.Context, season int, event string) ([]*models.EventResult, bool, error) {
	event = scoring.NormalizeEventName(event)

	cached, err := c.events.GetByEvent(ctx, season, event)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached event %d %s: %w", season, event, err)
	}
	if validEventRows(cached) {
		return cached, false, nil
	}
	if len(cached) > 0 {
		slog.Warn("Cached event failed validity check, refetching",
			slog.Int("season", season),
			slog.String("event", event),
			slog.Int("rows", len(cached)))
	}

	res, err := c.fetcher.Fetch(ctx, season, event)
	if err != nil {
		slog.Warn("Event results unavailable",
			slog.String("type", "fetch"),
			slog.Int("season", season),
			slog.String("event", event),
			slog.Any("error", err))
		return nil, true, nil
	}

	rows, err := c.scoreEvent(season, event, res)
	if err != nil {
		return nil, true, err
	}
	if len(rows) == 0 {
		slog.Warn("No drivers present in both sessions",
			slog.Int("season", season),
			slog.String("event", event))
		return nil, true, nil
	}

	if err := c.events.Upsert(ctx, rows); err != nil {
		return nil, true, fmt.Errorf("failed to cache event %d %s: %w", season, event, err)
	}

	slog.Info("Fetched and cached event",
		slog.String("type", "fetch"),
		slog.Int("season", season),
		slog.String("event", event),
		slog.Int("drivers", len(rows)))
	return rows, true, nil
}

// scoreEvent inner-joins the two sessions on driver code and scores every
// driver present in both. A driver missing from either session is excluded,
// not an error; a malformed position fails the whole event.
func (c *Cache) scoreEvent(season int, event string, res *EventResults) ([]*models.EventResult, error) {
	qualiByDriver := make(map[string]int, len(res.Qualifying))
	for _, q := range res.Qualifying {
		qualiByDriver[q.Driver] = q.Position
	}

	var rows []*models.EventResult
	for _, r := range res.Race {
		qualiPos, ok := qualiByDriver[r.Driver]
		if !ok {
			continue
		}
		b, err := scoring.Score(qualiPos, r.Position)
		if err != nil {
			return nil, fmt.Errorf("driver %s in %d %s: %w", r.Driver, season, event, err)
		}
		rows = append(rows, &models.EventResult{
			Driver:             r.Driver,
			Season:             season,
			Event:              event,
			EventDate:          res.EventDate,
			QualifyingPosition: qualiPos,
			RacePosition:       r.Position,
			PositionsGained:    b.PositionsGained,
			PointsQuali:        b.PointsQuali,
			PointsRace:         b.PointsRace,
			PointsGain:         b.PointsGain,
			TotalPoints:        b.TotalPoints,
		})
	}
	return rows, nil
}

// PreloadSeason walks the season schedule and caches every event that has
// already run, pacing successive provider fetches by the configured delay.
// A single event failing never aborts the batch.
func (c *Cache) PreloadSeason(ctx context.Context, season int) (cached, failed int, err error) {
	schedule, err := c.fetcher.Schedule(ctx, season)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load schedule for season %d: %w", season, err)
	}

	now := c.nowFn()
	fetchedPrev := false
	for _, entry := range schedule {
		if entry.Date.After(now) {
			continue
		}
		if fetchedPrev {
			select {
			case <-time.After(c.fetchDelay):
			case <-ctx.Done():
				return cached, failed, ctx.Err()
			}
		}

		rows, fetched, gerr := c.getOrFetch(ctx, season, entry.Name)
		fetchedPrev = fetched
		if gerr != nil {
			slog.Error("Failed to cache event",
				slog.Int("season", season),
				slog.String("event", entry.Name),
				slog.Any("error", gerr))
			failed++
			continue
		}
		if len(rows) == 0 {
			failed++
			continue
		}
		cached++
	}

	slog.Info("Season preload complete",
		slog.String("type", "fetch"),
		slog.Int("season", season),
		slog.Int("cached", cached),
		slog.Int("failed", failed))
	return cached, failed, nil
}

// validEventRows checks the required column set so a partially written or
// corrupted cache entry is treated as a miss.
func validEventRows(rows []*models.EventResult) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if r.Driver == "" || r.EventDate.IsZero() {
			return false
		}
		if r.QualifyingPosition < 1 || r.RacePosition < 1 {
			return false
		}
		if r.TotalPoints != r.PointsQuali+r.PointsRace+r.PointsGain {
			return false
		}
	}
	return true
}
