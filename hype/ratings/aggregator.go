package ratings

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/apexgrid/gridhype/hype/database/repositories"
	lru "github.com/hashicorp/golang-lru"
)

const recordCacheSize = 256

// Weighting coefficients for the hype score and the fantasy value. The two
// blends intentionally differ and must not be unified.
const (
	hypeCareerWeight   = 0.1
	hypeSeasonalWeight = 0.7
	hypeRecentWeight   = 0.2

	valueCareerWeight   = 0.05
	valueSeasonalWeight = 0.85
	valueRecentWeight   = 0.1

	valueCurrencyScale = 250000
)

const recentWindow = 3

// ScopeRow is a column-wise mean over one named time window.
type ScopeRow struct {
	Scope           string
	Qualifying      float64
	Race            float64
	PositionsGained float64
	TotalPoints     float64
}

// Record is a driver's full aggregated rating: the chronological raw rows,
// one aggregate row per window, and the derived scalars. A driver with no
// scored events has nil scalars and is "unrated", which is not an error.
type Record struct {
	Driver           string
	Rows             []*models.EventResult
	Scopes           []ScopeRow
	Hype             *float64
	FantasyValue     *int64
	PreviousWeighted *float64
}

// Unrated reports whether the record carries no usable scalars.
func (r *Record) Unrated() bool {
	return r.Hype == nil || r.FantasyValue == nil || r.PreviousWeighted == nil
}

// Config controls the aggregation windows.
type Config struct {
	// CurrentSeason bounds the seasonal and recency windows.
	CurrentSeason int
	// InheritCareer lets a driver with career history but no events in the
	// current season inherit the career rows for the seasonal and recency
	// windows instead of being unrated for the season.
	InheritCareer bool
}

// Aggregator rebuilds a driver's rating from the full cached event history.
// Records are always derived from the source of truth, never patched in
// place; an LRU cache avoids recomputing between invalidations.
type Aggregator struct {
	events repositories.EventResultRepository
	cfg    Config
	cache  *lru.Cache
	nowFn  func() time.Time
}

func NewAggregator(events repositories.EventResultRepository, cfg Config) *Aggregator {
	cache, _ := lru.New(recordCacheSize)
	return &Aggregator{
		events: events,
		cfg:    cfg,
		cache:  cache,
		nowFn:  time.Now,
	}
}

// GetRecord returns the cached record for a driver, building it if needed.
func (a *Aggregator) GetRecord(ctx context.Context, driver string) (*Record, error) {
	if cached, ok := a.cache.Get(driver); ok {
		if rec, ok := cached.(*Record); ok {
			return rec, nil
		}
	}
	return a.BuildRecord(ctx, driver)
}

// Invalidate drops a driver's cached record. Called when a new event is
// cached for the driver or a boost settles against them.
func (a *Aggregator) Invalidate(driver string) {
	a.cache.Remove(driver)
}

// BuildRecord recomputes a driver's rating from every cached event across
// all seasons, excluding future-dated events.
func (a *Aggregator) BuildRecord(ctx context.Context, driver string) (*Record, error) {
	all, err := a.events.GetByDriver(ctx, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for driver %s: %w", driver, err)
	}

	now := a.nowFn()
	career := make([]*models.EventResult, 0, len(all))
	for _, row := range all {
		if row.EventDate.After(now) {
			continue
		}
		career = append(career, row)
	}

	rec := &Record{Driver: driver}
	if len(career) == 0 {
		a.cache.Add(driver, rec)
		return rec, nil
	}
	rec.Rows = career

	var season []*models.EventResult
	for _, row := range career {
		if row.Season == a.cfg.CurrentSeason {
			season = append(season, row)
		}
	}

	careerAvg := meanTotal(career)
	rec.Scopes = append(rec.Scopes, scopeRow(models.ScopeCareerAverage, career))

	if len(season) == 0 {
		if !a.cfg.InheritCareer {
			// Career history without a current-season entry is an explicit
			// unrated state for the season, never a silent fallback.
			a.cache.Add(driver, rec)
			return rec, nil
		}
		season = career
	}

	last3 := season[max(0, len(season)-recentWindow):]
	prev3 := season[max(0, len(season)-recentWindow-1) : len(season)-1]

	seasonalAvg := meanTotal(season)
	last3Avg := meanTotal(last3)
	prev3Avg := last3Avg
	prev3Scope := last3
	if len(prev3) > 0 {
		prev3Avg = meanTotal(prev3)
		prev3Scope = prev3
	}

	rec.Scopes = append(rec.Scopes,
		scopeRow(models.ScopeSeasonalAverage, season),
		scopeRow(models.ScopeLast3Average, last3),
		scopeRow(models.ScopePrev3Average, prev3Scope),
	)

	hype := round2(careerAvg*hypeCareerWeight + seasonalAvg*hypeSeasonalWeight + last3Avg*hypeRecentWeight)
	prevWeighted := round2(careerAvg*hypeCareerWeight + seasonalAvg*hypeSeasonalWeight + prev3Avg*hypeRecentWeight)
	value := int64(math.Round((careerAvg*valueCareerWeight + seasonalAvg*valueSeasonalWeight + last3Avg*valueRecentWeight) * valueCurrencyScale))

	rec.Hype = &hype
	rec.PreviousWeighted = &prevWeighted
	rec.FantasyValue = &value

	a.cache.Add(driver, rec)
	return rec, nil
}

// RatingRows flattens a record into its persisted representation: raw rows
// first in chronological order, then one row per scope.
func RatingRows(rec *Record) []*models.DriverRating {
	rows := make([]*models.DriverRating, 0, len(rec.Rows)+len(rec.Scopes))
	for _, r := range rec.Rows {
		rows = append(rows, &models.DriverRating{
			Driver:          rec.Driver,
			Season:          r.Season,
			Event:           r.Event,
			EventDate:       r.EventDate,
			Qualifying:      float64(r.QualifyingPosition),
			Race:            float64(r.RacePosition),
			PositionsGained: float64(r.PositionsGained),
			TotalPoints:     float64(r.TotalPoints),
		})
	}
	for _, s := range rec.Scopes {
		rows = append(rows, &models.DriverRating{
			Driver:          rec.Driver,
			Scope:           s.Scope,
			Qualifying:      s.Qualifying,
			Race:            s.Race,
			PositionsGained: s.PositionsGained,
			TotalPoints:     s.TotalPoints,
		})
	}
	return rows
}

func scopeRow(scope string, rows []*models.EventResult) ScopeRow {
	n := float64(len(rows))
	var quali, race, gained, total float64
	for _, r := range rows {
		quali += float64(r.QualifyingPosition)
		race += float64(r.RacePosition)
		gained += float64(r.PositionsGained)
		total += float64(r.TotalPoints)
	}
	return ScopeRow{
		Scope:           scope,
		Qualifying:      quali / n,
		Race:            race / n,
		PositionsGained: gained / n,
		TotalPoints:     total / n,
	}
}

func meanTotal(rows []*models.EventResult) float64 {
	var total float64
	for _, r := range rows {
		total += float64(r.TotalPoints)
	}
	return total / float64(len(rows))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
