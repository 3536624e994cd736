package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DriverSummary is the cross-driver leaderboard entry read by the rest of
// the application. Rebuilt wholesale by the summary builder.
type DriverSummary struct {
	bun.BaseModel `bun:"table:driver_summaries,alias:ds"`

	Driver           string    `bun:"driver,pk"`
	Hype             float64   `bun:"hype,notnull"`
	FantasyValue     int64     `bun:"fantasy_value,notnull"`
	PreviousWeighted float64   `bun:"previous_weighted,notnull"`
	UpdatedAt        time.Time `bun:"updated_at,notnull"`
}
