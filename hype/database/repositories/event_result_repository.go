package repositories

import (
	"context"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/uptrace/bun"
)

type EventResultRepository interface {
	Upsert(ctx context.Context, results []*models.EventResult) error
	GetByEvent(ctx context.Context, season int, event string) ([]*models.EventResult, error)
	GetByDriver(ctx context.Context, driver string) ([]*models.EventResult, error)
	DistinctDrivers(ctx context.Context) ([]string, error)
	DeleteByEvent(ctx context.Context, season int, event string) error
}

type eventResultRepository struct {
	db *bun.DB
}

func NewEventResultRepository(db *bun.DB) EventResultRepository {
	return &eventResultRepository{db: db}
}

// Upsert writes scored rows, replacing any stale row already cached for the
// same (driver, season, event) key.
func (r *eventResultRepository) Upsert(ctx context.Context, results []*models.EventResult) error {
	if len(results) == 0 {
		return nil
	}
	now := time.Now()
	for _, res := range results {
		res.CreatedAt = now
	}
	_, err := r.db.NewInsert().
		Model(&results).
		On("CONFLICT (driver, season, event) DO UPDATE").
		Set("event_date = EXCLUDED.event_date").
		Set("qualifying_position = EXCLUDED.qualifying_position").
		Set("race_position = EXCLUDED.race_position").
		Set("positions_gained = EXCLUDED.positions_gained").
		Set("points_quali = EXCLUDED.points_quali").
		Set("points_race = EXCLUDED.points_race").
		Set("points_gain = EXCLUDED.points_gain").
		Set("total_points = EXCLUDED.total_points").
		Exec(ctx)
	return err
}

func (r *eventResultRepository) GetByEvent(ctx context.Context, season int, event string) ([]*models.EventResult, error) {
	var results []*models.EventResult
	err := r.db.NewSelect().
		Model(&results).
		Where("season = ? AND event = ?", season, event).
		Order("total_points DESC", "driver ASC").
		Scan(ctx)
	return results, err
}

func (r *eventResultRepository) GetByDriver(ctx context.Context, driver string) ([]*models.EventResult, error) {
	var results []*models.EventResult
	err := r.db.NewSelect().
		Model(&results).
		Where("driver = ?", driver).
		Order("event_date ASC").
		Scan(ctx)
	return results, err
}

func (r *eventResultRepository) DistinctDrivers(ctx context.Context) ([]string, error) {
	var drivers []string
	err := r.db.NewSelect().
		Model((*models.EventResult)(nil)).
		ColumnExpr("DISTINCT driver").
		Order("driver ASC").
		Scan(ctx, &drivers)
	return drivers, err
}

func (r *eventResultRepository) DeleteByEvent(ctx context.Context, season int, event string) error {
	_, err := r.db.NewDelete().
		Model((*models.EventResult)(nil)).
		Where("season = ? AND event = ?", season, event).
		Exec(ctx)
	return err
}
