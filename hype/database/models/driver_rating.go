package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Scope labels for aggregate rows stored alongside raw per-event rows.
const (
	ScopeCareerAverage   = "Career Average"
	ScopeSeasonalAverage = "Seasonal Average"
	ScopeLast3Average    = "Last 3 Races Avg"
	ScopePrev3Average    = "Prev 3 Races Avg"
)

// DriverRating is one row of a driver's persisted rating record. Raw event
// rows carry an event name and an empty scope; aggregate rows carry a scope
// label and column-wise means. The whole set is replaced per driver on
// every rebuild, never patched in place.
type DriverRating struct {
	bun.BaseModel `bun:"table:driver_ratings,alias:dr"`

	ID              int64     `bun:"id,pk,autoincrement"`
	Driver          string    `bun:"driver,notnull"`
	Season          int       `bun:"season"`
	Event           string    `bun:"event"`
	Scope           string    `bun:"scope"`
	EventDate       time.Time `bun:"event_date,nullzero"`
	Qualifying      float64   `bun:"qualifying,notnull"`
	Race            float64   `bun:"race,notnull"`
	PositionsGained float64   `bun:"positions_gained,notnull"`
	TotalPoints     float64   `bun:"total_points,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}
