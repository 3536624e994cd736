package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/uptrace/bun"
)

// RosterSettlement is one staged roster mutation inside an event
// settlement: increment ownership counters and refresh the current value.
type RosterSettlement struct {
	EntryID      int64
	BonusPoints  int
	CurrentValue int64
	RefreshValue bool
}

// PendingKey identifies a pending boost consumed by a settlement.
type PendingKey struct {
	UserID string
	Driver string
}

type BoostRepository interface {
	UpsertPending(ctx context.Context, boost *models.PendingBoost) error
	GetAllPending(ctx context.Context) ([]*models.PendingBoost, error)
	GetRecordsByUser(ctx context.Context, userID string) ([]*models.BoostRecord, error)
	GetRecordsByEvent(ctx context.Context, season int, event string) ([]*models.BoostRecord, error)
	SettleEvent(ctx context.Context, records []*models.BoostRecord, settlements []RosterSettlement, consumed []PendingKey) error
}

type boostRepository struct {
	db *bun.DB
}

func NewBoostRepository(db *bun.DB) BoostRepository {
	return &boostRepository{db: db}
}

// UpsertPending arms a boost, replacing any previously armed category for
// the same (user, driver) pair.
func (r *boostRepository) UpsertPending(ctx context.Context, boost *models.PendingBoost) error {
	boost.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(boost).
		On("CONFLICT (user_id, driver) DO UPDATE").
		Set("category = EXCLUDED.category").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	return err
}

func (r *boostRepository) GetAllPending(ctx context.Context) ([]*models.PendingBoost, error) {
	var boosts []*models.PendingBoost
	err := r.db.NewSelect().
		Model(&boosts).
		Scan(ctx)
	return boosts, err
}

func (r *boostRepository) GetRecordsByUser(ctx context.Context, userID string) ([]*models.BoostRecord, error) {
	var records []*models.BoostRecord
	err := r.db.NewSelect().
		Model(&records).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	return records, err
}

func (r *boostRepository) GetRecordsByEvent(ctx context.Context, season int, event string) ([]*models.BoostRecord, error) {
	var records []*models.BoostRecord
	err := r.db.NewSelect().
		Model(&records).
		Where("season = ? AND event = ?", season, event).
		Scan(ctx)
	return records, err
}

// SettleEvent commits one event settlement atomically: the append-only
// records, the roster counter updates and the consumed pending boosts all
// land in a single transaction or not at all.
func (r *boostRepository) SettleEvent(ctx context.Context, records []*models.BoostRecord, settlements []RosterSettlement, consumed []PendingKey) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()
		if len(records) > 0 {
			for _, rec := range records {
				rec.CreatedAt = now
			}
			if _, err := tx.NewInsert().Model(&records).Exec(ctx); err != nil {
				return err
			}
		}
		for _, s := range settlements {
			q := tx.NewUpdate().
				Model((*models.RosterEntry)(nil)).
				Set("races_owned_count = races_owned_count + 1").
				Set("accumulated_boost_points = accumulated_boost_points + ?", s.BonusPoints).
				Set("updated_at = ?", now).
				Where("id = ?", s.EntryID)
			if s.RefreshValue {
				q = q.Set("current_value = ?", s.CurrentValue)
			}
			if _, err := q.Exec(ctx); err != nil {
				return err
			}
		}
		for _, key := range consumed {
			if _, err := tx.NewDelete().
				Model((*models.PendingBoost)(nil)).
				Where("user_id = ? AND driver = ?", key.UserID, key.Driver).
				Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
