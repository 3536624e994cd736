package boosts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/apexgrid/gridhype/hype/database/repositories"
	"github.com/apexgrid/gridhype/hype/ratings"
	"github.com/apexgrid/gridhype/hype/results"
	"github.com/apexgrid/gridhype/hype/scoring"
)

// ErrEventUnavailable reports that an event could not be settled because
// its results are neither cached nor fetchable.
var ErrEventUnavailable = errors.New("event results unavailable")

// ErrUnknownCategory reports an unrecognized boost category.
var ErrUnknownCategory = errors.New("unknown boost category")

const gridCeiling = 21

// Ledger arms one-shot scoring boosts and settles them against event
// results, mutating roster counters and appending the immutable record log.
type Ledger struct {
	cache   *results.Cache
	agg     *ratings.Aggregator
	summary *ratings.SummaryBuilder
	rosters repositories.RosterRepository
	boosts  repositories.BoostRepository
}

func NewLedger(cache *results.Cache, agg *ratings.Aggregator, summary *ratings.SummaryBuilder, rosters repositories.RosterRepository, boosts repositories.BoostRepository) *Ledger {
	return &Ledger{
		cache:   cache,
		agg:     agg,
		summary: summary,
		rosters: rosters,
		boosts:  boosts,
	}
}

// ApplyBoost arms a one-shot modifier for a (user, driver) pair, replacing
// any previously armed boost for the same pair. It takes effect when the
// driver's next event is settled.
func (l *Ledger) ApplyBoost(ctx context.Context, userID, driver, category string) error {
	switch category {
	case models.BoostQualifying, models.BoostRace, models.BoostOvertakes:
	default:
		return fmt.Errorf("category %q: %w", category, ErrUnknownCategory)
	}

	if _, err := l.rosters.GetByUserAndDriver(ctx, userID, driver); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("driver %s is not on user %s's roster: %w", driver, userID, err)
		}
		return err
	}

	if err := l.boosts.UpsertPending(ctx, &models.PendingBoost{
		UserID:   userID,
		Driver:   driver,
		Category: category,
	}); err != nil {
		return fmt.Errorf("failed to arm boost: %w", err)
	}

	slog.Info("Boost armed",
		slog.String("user_id", userID),
		slog.String("driver", driver),
		slog.String("category", category))
	return nil
}

// SettleEvent applies pending boosts and ownership accounting for one
// event. Every roster entry whose driver appears in the event gets a record
// and its counters updated; armed boosts add their bonus and are consumed.
// All writes commit in a single transaction, so a failure leaves no partial
// settlement behind. The derived rating tables are refreshed afterwards.
func (l *Ledger) SettleEvent(ctx context.Context, season int, event string) error {
	event = scoring.NormalizeEventName(event)

	rows, err := l.cache.GetOrFetch(ctx, season, event)
	if err != nil {
		return fmt.Errorf("failed to load event %d %s: %w", season, event, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("event %d %s: %w", season, event, ErrEventUnavailable)
	}

	// Entries already settled for this event are skipped so a rerun never
	// appends duplicate records or double-increments roster counters.
	existing, err := l.boosts.GetRecordsByEvent(ctx, season, event)
	if err != nil {
		return fmt.Errorf("failed to load settlement records for %d %s: %w", season, event, err)
	}
	settled := make(map[repositories.PendingKey]bool, len(existing))
	for _, rec := range existing {
		settled[repositories.PendingKey{UserID: rec.UserID, Driver: rec.Driver}] = true
	}

	pending, err := l.boosts.GetAllPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending boosts: %w", err)
	}
	pendingByKey := make(map[repositories.PendingKey]string, len(pending))
	for _, p := range pending {
		pendingByKey[repositories.PendingKey{UserID: p.UserID, Driver: p.Driver}] = p.Category
	}

	var (
		records     []*models.BoostRecord
		settlements []repositories.RosterSettlement
		consumed    []repositories.PendingKey
		touched     []string
	)

	for _, row := range rows {
		entries, err := l.rosters.GetByDriver(ctx, row.Driver)
		if err != nil {
			return fmt.Errorf("failed to load rosters for driver %s: %w", row.Driver, err)
		}
		if len(entries) == 0 {
			continue
		}

		// The settled event is already cached, so a fresh aggregation
		// reflects it. One rebuild covers every user rostering the driver.
		l.agg.Invalidate(row.Driver)
		rec, err := l.agg.BuildRecord(ctx, row.Driver)
		if err != nil {
			return fmt.Errorf("failed to refresh rating for driver %s: %w", row.Driver, err)
		}
		touched = append(touched, row.Driver)

		for _, entry := range entries {
			key := repositories.PendingKey{UserID: entry.UserID, Driver: entry.Driver}
			if settled[key] {
				continue
			}
			category := pendingByKey[key]
			bonus := bonusPoints(category, row)

			records = append(records, &models.BoostRecord{
				UserID:        entry.UserID,
				Driver:        entry.Driver,
				Season:        season,
				Event:         event,
				BasePoints:    row.TotalPoints,
				BoostCategory: category,
				BonusPoints:   bonus,
				TotalPoints:   row.TotalPoints + bonus,
			})

			settlement := repositories.RosterSettlement{
				EntryID:     entry.ID,
				BonusPoints: bonus,
			}
			if rec.FantasyValue != nil {
				settlement.CurrentValue = *rec.FantasyValue
				settlement.RefreshValue = true
			}
			settlements = append(settlements, settlement)

			if category != "" {
				consumed = append(consumed, key)
			}
		}
	}

	if err := l.boosts.SettleEvent(ctx, records, settlements, consumed); err != nil {
		return fmt.Errorf("failed to settle event %d %s: %w", season, event, err)
	}

	slog.Info("Event settled",
		slog.Int("season", season),
		slog.String("event", event),
		slog.Int("records", len(records)),
		slog.Int("boosts_consumed", len(consumed)))

	for _, driver := range touched {
		l.agg.Invalidate(driver)
	}
	if _, _, err := l.summary.RebuildAll(ctx); err != nil {
		return fmt.Errorf("failed to refresh summary after settlement: %w", err)
	}
	return nil
}

// bonusPoints computes the one-shot bonus for an armed category. A pending
// boost for a driver no longer rostered never reaches here; entries without
// an armed boost settle with a zero bonus.
func bonusPoints(category string, row *models.EventResult) int {
	switch category {
	case models.BoostQualifying:
		return (gridCeiling - row.QualifyingPosition) * 3
	case models.BoostRace:
		return gridCeiling - row.RacePosition
	case models.BoostOvertakes:
		return row.PositionsGained * 2
	default:
		return 0
	}
}
