package models

import (
	"time"

	"github.com/uptrace/bun"
)

// EventResult is one driver's scored outcome for one event weekend
// (qualifying + race). Exactly one row exists per (driver, season, event).
type EventResult struct {
	bun.BaseModel `bun:"table:event_results,alias:er"`

	ID                 int64     `bun:"id,pk,autoincrement"`
	Driver             string    `bun:"driver,notnull"`
	Season             int       `bun:"season,notnull"`
	Event              string    `bun:"event,notnull"`
	EventDate          time.Time `bun:"event_date,notnull"`
	QualifyingPosition int       `bun:"qualifying_position,notnull"`
	RacePosition       int       `bun:"race_position,notnull"`
	PositionsGained    int       `bun:"positions_gained,notnull"`
	PointsQuali        int       `bun:"points_quali,notnull"`
	PointsRace         int       `bun:"points_race,notnull"`
	PointsGain         int       `bun:"points_gain,notnull"`
	TotalPoints        int       `bun:"total_points,notnull"`
	CreatedAt          time.Time `bun:"created_at,notnull"`
}
