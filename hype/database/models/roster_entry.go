package models

import (
	"time"

	"github.com/uptrace/bun"
)

// RosterEntry is a driver owned by a user. Entries are created and deleted
// by the roster/trading subsystem; the boost ledger only mutates
// races_owned_count, accumulated_boost_points and current_value.
type RosterEntry struct {
	bun.BaseModel `bun:"table:roster_entries,alias:re"`

	ID                     int64     `bun:"id,pk,autoincrement"`
	UserID                 string    `bun:"user_id,notnull"`
	Driver                 string    `bun:"driver,notnull"`
	ValueAtPurchase        int64     `bun:"value_at_purchase,notnull"`
	CurrentValue           int64     `bun:"current_value,notnull"`
	AccumulatedBoostPoints int64     `bun:"accumulated_boost_points,notnull"`
	RacesOwnedCount        int       `bun:"races_owned_count,notnull"`
	CreatedAt              time.Time `bun:"created_at,notnull"`
	UpdatedAt              time.Time `bun:"updated_at,notnull"`
}
