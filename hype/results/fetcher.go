package results

import (
	"context"
	"errors"
	"time"
)

// ErrFetchFailed reports that the upstream results provider could not
// supply both sessions for an event. Callers treat it as "no data", not as
// a retryable condition at this layer.
var ErrFetchFailed = errors.New("results fetch failed")

// SessionResult is one driver's finishing position in a single session.
type SessionResult struct {
	Driver   string
	Position int
}

// EventResults is the raw outcome of one event weekend as delivered by the
// provider: both session classifications plus the event date.
type EventResults struct {
	Event      string
	EventDate  time.Time
	Qualifying []SessionResult
	Race       []SessionResult
}

// ScheduleEntry is one event on a season's calendar.
type ScheduleEntry struct {
	Name string
	Date time.Time
}

// Fetcher retrieves raw results from the external motorsport data
// provider.
type Fetcher interface {
	Schedule(ctx context.Context, season int) ([]ScheduleEntry, error)
	Fetch(ctx context.Context, season int, event string) (*EventResults, error)
}
