// Package entity provides the agent that explores the wumpus world.
package entity

import (
	"github.com/samdwyer/wumpusworld/internal/combat"
	"github.com/samdwyer/wumpusworld/internal/grid"
)

// Score deltas applied by agent actions and by the world.
const (
	MoveCost     = 1
	BumpPenalty  = 1 // Extra cost on top of MoveCost when the move is blocked
	TurnCost     = 1
	ShotCost     = 10
	KillReward   = 500
	GoldReward   = 1000
	DeathPenalty = 1000

	StartingArrows = 1
)

// Environment is the part of the world the agent reaches into while
// grabbing gold and shooting.
type Environment interface {
	HasGoldAt(p grid.Position) bool
	RemoveGold()
	HazardPosition() (grid.Position, bool)
	RemoveHazard()
}

// Agent is the player-controlled explorer.
type Agent struct {
	position    grid.Position
	orientation grid.Orientation
	hasGold     bool
	alive       bool
	score       int
	arrows      int
}

// NewAgent creates an agent at the origin facing East with one arrow.
func NewAgent() *Agent {
	return NewAgentAt(grid.Origin, grid.East)
}

// NewAgentAt creates a fresh agent with the given pose.
func NewAgentAt(pos grid.Position, facing grid.Orientation) *Agent {
	return &Agent{
		position:    pos,
		orientation: facing,
		alive:       true,
		arrows:      StartingArrows,
	}
}

// Position returns the agent's current cell.
func (a *Agent) Position() grid.Position { return a.position }

// Orientation returns the direction the agent faces.
func (a *Agent) Orientation() grid.Orientation { return a.orientation }

// HasGold returns true once the agent has picked up the gold.
func (a *Agent) HasGold() bool { return a.hasGold }

// IsAlive returns true until the agent falls into a pit or meets the hazard.
func (a *Agent) IsAlive() bool { return a.alive }

// IsDead returns true once the agent has died.
func (a *Agent) IsDead() bool { return !a.alive }

// Score returns the running score.
func (a *Agent) Score() int { return a.score }

// Arrows returns the number of arrows left.
func (a *Agent) Arrows() int { return a.arrows }

// MoveForward steps one cell in the facing direction and reports whether
// the agent moved. A move costs MoveCost; bumping into the grid edge
// leaves the agent in place and costs BumpPenalty on top.
func (a *Agent) MoveForward() bool {
	next := a.position.Step(a.orientation)
	moved := next.InBounds()
	if moved {
		a.position = next
	} else {
		a.adjustScore(-BumpPenalty)
	}
	a.adjustScore(-MoveCost)
	return moved
}

// TurnLeft rotates the agent 90 degrees counter-clockwise.
func (a *Agent) TurnLeft() {
	a.orientation = a.orientation.Left()
	a.adjustScore(-TurnCost)
}

// TurnRight rotates the agent 90 degrees clockwise.
func (a *Agent) TurnRight() {
	a.orientation = a.orientation.Right()
	a.adjustScore(-TurnCost)
}

// ShootArrow fires the agent's arrow in the facing direction.
// Each shot spends an arrow and costs ShotCost whether or not it hits.
func (a *Agent) ShootArrow(env Environment) combat.Outcome {
	if a.arrows <= 0 {
		return combat.OutcomeNoArrows
	}
	a.arrows--
	a.adjustScore(-ShotCost)

	hazard, present := env.HazardPosition()
	outcome := combat.Resolve(a.position, a.orientation, hazard, present)
	if outcome.Hit() {
		env.RemoveHazard()
		a.adjustScore(KillReward)
	}
	return outcome
}

// GrabGold picks up the gold if it lies in the agent's cell and reports
// whether it did. Grabbing an empty cell changes nothing.
func (a *Agent) GrabGold(env Environment) bool {
	if !env.HasGoldAt(a.position) {
		return false
	}
	a.hasGold = true
	env.RemoveGold()
	a.adjustScore(GoldReward)
	return true
}

// Kill marks the agent dead and applies DeathPenalty. It has no effect on
// an agent that is already dead.
func (a *Agent) Kill() {
	if !a.alive {
		return
	}
	a.alive = false
	a.adjustScore(-DeathPenalty)
}

func (a *Agent) adjustScore(delta int) {
	a.score += delta
}
