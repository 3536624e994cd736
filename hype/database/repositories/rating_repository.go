package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/uptrace/bun"
)

type RatingRepository interface {
	ReplaceDriverRating(ctx context.Context, driver string, rows []*models.DriverRating) error
	GetDriverRating(ctx context.Context, driver string) ([]*models.DriverRating, error)
	DistinctDrivers(ctx context.Context) ([]string, error)
	ReplaceSummaries(ctx context.Context, entries []*models.DriverSummary) error
	GetSummaries(ctx context.Context) ([]*models.DriverSummary, error)
	ReplaceSeasonAverages(ctx context.Context, season int, rows []*models.SeasonAverage) error
	GetSeasonAverages(ctx context.Context, season int) ([]*models.SeasonAverage, error)
}

type ratingRepository struct {
	db *bun.DB
}

func NewRatingRepository(db *bun.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// ReplaceDriverRating swaps a driver's full rating record in one
// transaction so readers never see a half-written set.
func (r *ratingRepository) ReplaceDriverRating(ctx context.Context, driver string, rows []*models.DriverRating) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.DriverRating)(nil)).
			Where("driver = ?", driver).
			Exec(ctx); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		now := time.Now()
		for _, row := range rows {
			row.UpdatedAt = now
		}
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}

func (r *ratingRepository) GetDriverRating(ctx context.Context, driver string) ([]*models.DriverRating, error) {
	var rows []*models.DriverRating
	err := r.db.NewSelect().
		Model(&rows).
		Where("driver = ?", driver).
		Order("scope ASC", "event_date ASC").
		Scan(ctx)
	return rows, err
}

func (r *ratingRepository) DistinctDrivers(ctx context.Context) ([]string, error) {
	var drivers []string
	err := r.db.NewSelect().
		Model((*models.DriverRating)(nil)).
		ColumnExpr("DISTINCT driver").
		Order("driver ASC").
		Scan(ctx, &drivers)
	return drivers, err
}

func (r *ratingRepository) ReplaceSummaries(ctx context.Context, entries []*models.DriverSummary) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.DriverSummary)(nil)).
			Where("1=1").
			Exec(ctx); err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		now := time.Now()
		for _, e := range entries {
			e.UpdatedAt = now
		}
		_, err := tx.NewInsert().Model(&entries).Exec(ctx)
		return err
	})
}

func (r *ratingRepository) GetSummaries(ctx context.Context) ([]*models.DriverSummary, error) {
	var entries []*models.DriverSummary
	err := r.db.NewSelect().
		Model(&entries).
		Order("hype DESC", "driver ASC").
		Scan(ctx)
	return entries, err
}

func (r *ratingRepository) ReplaceSeasonAverages(ctx context.Context, season int, rows []*models.SeasonAverage) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.SeasonAverage)(nil)).
			Where("season = ?", season).
			Exec(ctx); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		now := time.Now()
		for _, row := range rows {
			row.UpdatedAt = now
		}
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}

func (r *ratingRepository) GetSeasonAverages(ctx context.Context, season int) ([]*models.SeasonAverage, error) {
	var rows []*models.SeasonAverage
	err := r.db.NewSelect().
		Model(&rows).
		Where("season = ?", season).
		Order("avg_total DESC", "driver ASC").
		Scan(ctx)
	return rows, err
}
