package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Boost categories a user can arm for a rostered driver.
const (
	BoostQualifying = "qualifying"
	BoostRace       = "race"
	BoostOvertakes  = "overtakes"
)

// PendingBoost is an armed, not yet consumed boost. At most one exists per
// (user, driver); arming again replaces the category.
type PendingBoost struct {
	bun.BaseModel `bun:"table:pending_boosts,alias:pb"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull"`
	Driver    string    `bun:"driver,notnull"`
	Category  string    `bun:"category,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// BoostRecord is the immutable settlement log entry, one per
// (user, driver, event). BoostCategory is empty when no boost was armed.
type BoostRecord struct {
	bun.BaseModel `bun:"table:boost_records,alias:br"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        string    `bun:"user_id,notnull"`
	Driver        string    `bun:"driver,notnull"`
	Season        int       `bun:"season,notnull"`
	Event         string    `bun:"event,notnull"`
	BasePoints    int       `bun:"base_points,notnull"`
	BoostCategory string    `bun:"boost_category"`
	BonusPoints   int       `bun:"bonus_points,notnull"`
	TotalPoints   int       `bun:"total_points,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
}
