package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/uptrace/bun"
)

type RosterRepository interface {
	Create(ctx context.Context, entry *models.RosterEntry) error
	GetByUserAndDriver(ctx context.Context, userID, driver string) (*models.RosterEntry, error)
	GetByDriver(ctx context.Context, driver string) ([]*models.RosterEntry, error)
	GetAllByUser(ctx context.Context, userID string) ([]*models.RosterEntry, error)
	Delete(ctx context.Context, id int64) error
}

type rosterRepository struct {
	db *bun.DB
}

func NewRosterRepository(db *bun.DB) RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) Create(ctx context.Context, entry *models.RosterEntry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(entry).Exec(ctx)
	return err
}

func (r *rosterRepository) GetByUserAndDriver(ctx context.Context, userID, driver string) (*models.RosterEntry, error) {
	entry := new(models.RosterEntry)
	err := r.db.NewSelect().
		Model(entry).
		Where("user_id = ? AND driver = ?", userID, driver).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roster entry: %w", err)
	}
	return entry, nil
}

func (r *rosterRepository) GetByDriver(ctx context.Context, driver string) ([]*models.RosterEntry, error) {
	var entries []*models.RosterEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("driver = ?", driver).
		Order("user_id ASC").
		Scan(ctx)
	return entries, err
}

func (r *rosterRepository) GetAllByUser(ctx context.Context, userID string) ([]*models.RosterEntry, error) {
	var entries []*models.RosterEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("driver ASC").
		Scan(ctx)
	return entries, err
}

func (r *rosterRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.RosterEntry)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
