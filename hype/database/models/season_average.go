package models

import (
	"time"

	"github.com/uptrace/bun"
)

// SeasonAverage is one driver's row in the seasonal average leaderboard.
type SeasonAverage struct {
	bun.BaseModel `bun:"table:season_averages,alias:sa"`

	ID            int64     `bun:"id,pk,autoincrement"`
	Season        int       `bun:"season,notnull"`
	Driver        string    `bun:"driver,notnull"`
	AvgQualifying float64   `bun:"avg_qualifying,notnull"`
	AvgRace       float64   `bun:"avg_race,notnull"`
	AvgGained     float64   `bun:"avg_gained,notnull"`
	AvgTotal      float64   `bun:"avg_total,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}
