package scoring

import (
	"errors"
	"fmt"
)

// gridCeiling is one above the 20-car grid, so last place still scores a
// single race point and pole is worth 60.
const gridCeiling = 21

// Point weights per component.
const (
	qualiWeight = 3
	raceWeight  = 1
	gainWeight  = 2
)

// ErrInvalidPosition reports a non-positive finishing position. Positions
// beyond the grid ceiling are accepted and score negative components; only
// malformed input (missing or retired drivers encoded as 0 or negative)
// fails.
var ErrInvalidPosition = errors.New("invalid finishing position")

// Breakdown is the scored outcome of one driver's event weekend.
type Breakdown struct {
	PositionsGained int
	PointsQuali     int
	PointsRace      int
	PointsGain      int
	TotalPoints     int
}

// Score converts raw qualifying and race finishing positions into fantasy
// points. Pure, no I/O.
func Score(qualifyingPos, racePos int) (Breakdown, error) {
	if qualifyingPos < 1 {
		return Breakdown{}, fmt.Errorf("qualifying position %d: %w", qualifyingPos, ErrInvalidPosition)
	}
	if racePos < 1 {
		return Breakdown{}, fmt.Errorf("race position %d: %w", racePos, ErrInvalidPosition)
	}

	gained := qualifyingPos - racePos
	if gained < 0 {
		gained = 0
	}

	b := Breakdown{
		PositionsGained: gained,
		PointsQuali:     (gridCeiling - qualifyingPos) * qualiWeight,
		PointsRace:      (gridCeiling - racePos) * raceWeight,
		PointsGain:      gained * gainWeight,
	}
	b.TotalPoints = b.PointsQuali + b.PointsRace + b.PointsGain
	return b, nil
}
