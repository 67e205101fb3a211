// Package combat resolves the agent's ranged attack against the hazard.
package combat

import "github.com/samdwyer/wumpusworld/internal/grid"

// Outcome describes what happened when the agent tried to shoot.
type Outcome string

const (
	// OutcomeScream means the arrow hit and killed the hazard.
	OutcomeScream Outcome = "Scream"
	// OutcomeMissed means an arrow was spent without hitting anything.
	OutcomeMissed Outcome = "Missed"
	// OutcomeNoArrows means the quiver was empty and nothing happened.
	OutcomeNoArrows Outcome = "No Arrows Left"
)

// String returns the outcome text shown to the player.
func (o Outcome) String() string {
	return string(o)
}

// Hit returns true if the outcome killed the hazard.
func (o Outcome) Hit() bool {
	return o == OutcomeScream
}

// InLineOfFire returns true if target lies on the shooter's row or column,
// strictly ahead in the facing direction. Range is unlimited.
func InLineOfFire(from grid.Position, facing grid.Orientation, target grid.Position) bool {
	switch facing {
	case grid.North:
		return target.X == from.X && target.Y < from.Y
	case grid.South:
		return target.X == from.X && target.Y > from.Y
	case grid.East:
		return target.Y == from.Y && target.X > from.X
	case grid.West:
		return target.Y == from.Y && target.X < from.X
	default:
		return false
	}
}

// Resolve decides a shot against a target that may already be gone.
// It does not account for ammunition; callers return OutcomeNoArrows
// themselves before spending an arrow.
func Resolve(from grid.Position, facing grid.Orientation, target grid.Position, present bool) Outcome {
	if present && InLineOfFire(from, facing, target) {
		return OutcomeScream
	}
	return OutcomeMissed
}
