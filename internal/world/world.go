package world

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpusworld/internal/entity"
	"github.com/samdwyer/wumpusworld/internal/grid"
	"github.com/samdwyer/wumpusworld/internal/telemetry"
)

// PitCount is the number of pits placed in every world.
const PitCount = 3

// World is one episode's room: the agent, the hazard, the gold and the pits.
type World struct {
	agent *entity.Agent

	hazard      grid.Position
	hazardAlive bool
	gold        grid.Position
	goldPresent bool
	pits        mapset.Set[grid.Position]

	rng *rand.Rand
}

// Layout fixes the placement of everything except the agent.
type Layout struct {
	Hazard grid.Position
	Gold   grid.Position
	Pits   []grid.Position
}

// New creates a world with randomly placed hazard, gold and pits.
// A nil rng falls back to a time-seeded source.
func New(ctx context.Context, rng *rand.Rand) *World {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		agent: entity.NewAgent(),
		pits:  mapset.New[grid.Position](),
		rng:   rng,
	}

	// Each placement excludes the start cell and everything placed before it.
	exclude := mapset.New[grid.Position]()
	exclude.Put(w.agent.Position())

	w.hazard = w.RandomPosition(exclude)
	w.hazardAlive = true
	exclude.Put(w.hazard)

	w.gold = w.RandomPosition(exclude)
	w.goldPresent = true
	exclude.Put(w.gold)

	for i := 0; i < PitCount; i++ {
		pit := w.RandomPosition(exclude)
		w.pits.Put(pit)
		exclude.Put(pit)
	}

	span.SetAttributes(
		attribute.String("world.hazard", w.hazard.String()),
		attribute.String("world.gold", w.gold.String()),
		attribute.Int("world.pit_count", w.pits.Size()),
	)

	return w
}

// NewWithLayout creates a world with a fixed layout and a fresh agent.
func NewWithLayout(layout Layout) (*World, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	w := &World{
		agent:       entity.NewAgent(),
		hazard:      layout.Hazard,
		hazardAlive: true,
		gold:        layout.Gold,
		goldPresent: true,
		pits:        mapset.New[grid.Position](),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, p := range layout.Pits {
		w.pits.Put(p)
	}
	return w, nil
}

// Validate checks that every placement is on the grid, off the start
// cell and distinct from every other placement.
func (l Layout) Validate() error {
	if len(l.Pits) != PitCount {
		return fmt.Errorf("want %d pits, got %d", PitCount, len(l.Pits))
	}

	seen := mapset.New[grid.Position]()
	seen.Put(grid.Origin)

	place := func(name string, p grid.Position) error {
		if !p.InBounds() {
			return fmt.Errorf("%s at %v is off the grid", name, p)
		}
		if p == grid.Origin {
			return errors.New(name + " must not occupy the start cell")
		}
		if seen.Has(p) {
			return fmt.Errorf("%s at %v overlaps another placement", name, p)
		}
		seen.Put(p)
		return nil
	}

	if err := place("hazard", l.Hazard); err != nil {
		return err
	}
	if err := place("gold", l.Gold); err != nil {
		return err
	}
	for _, p := range l.Pits {
		if err := place("pit", p); err != nil {
			return err
		}
	}
	return nil
}

// RandomPosition draws a uniformly random cell that is not in exclude.
// It panics if exclude covers the whole grid, since no cell could qualify.
func (w *World) RandomPosition(exclude mapset.Set[grid.Position]) grid.Position {
	covered := 0
	exclude.Each(func(p grid.Position) {
		if p.InBounds() {
			covered++
		}
	})
	if covered >= grid.Cells {
		panic("world: exclusion set covers the entire grid")
	}

	for {
		p := grid.Position{X: w.rng.Intn(grid.Size), Y: w.rng.Intn(grid.Size)}
		if !exclude.Has(p) {
			return p
		}
	}
}

// Agent returns the episode's agent.
func (w *World) Agent() *entity.Agent {
	return w.agent
}

// HazardPosition returns the hazard's cell and whether it is still alive.
func (w *World) HazardPosition() (grid.Position, bool) {
	return w.hazard, w.hazardAlive
}

// GoldPosition returns the gold's cell and whether it is still on the floor.
func (w *World) GoldPosition() (grid.Position, bool) {
	return w.gold, w.goldPresent
}

// Pits returns the pit cells in row-major order.
func (w *World) Pits() []grid.Position {
	pits := make([]grid.Position, 0, w.pits.Size())
	w.pits.Each(func(p grid.Position) {
		pits = append(pits, p)
	})
	slices.SortFunc(pits, func(a, b grid.Position) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return pits
}

// HasGoldAt returns true if the gold is still on the floor at p.
func (w *World) HasGoldAt(p grid.Position) bool {
	return w.goldPresent && w.gold == p
}

// RemoveGold takes the gold off the floor. Calling it again does nothing.
func (w *World) RemoveGold() {
	w.goldPresent = false
}

// RemoveHazard kills the hazard. Calling it again does nothing.
func (w *World) RemoveHazard() {
	w.hazardAlive = false
}

// IsPit returns true if p holds a pit.
func (w *World) IsPit(p grid.Position) bool {
	return w.pits.Has(p)
}

// IsHazardAt returns true if the live hazard is at p.
func (w *World) IsHazardAt(p grid.Position) bool {
	return w.hazardAlive && w.hazard == p
}

// BreezeAt returns true if any pit is orthogonally adjacent to p.
func (w *World) BreezeAt(p grid.Position) bool {
	breeze := false
	w.pits.Each(func(pit grid.Position) {
		if p.Adjacent(pit) {
			breeze = true
		}
	})
	return breeze
}

// StenchAt returns true if the live hazard is orthogonally adjacent to p.
func (w *World) StenchAt(p grid.Position) bool {
	return w.hazardAlive && p.Adjacent(w.hazard)
}

// GlitterAt returns true if the gold is still on the floor at p.
func (w *World) GlitterAt(p grid.Position) bool {
	return w.HasGoldAt(p)
}

// TileAt returns what occupies p.
func (w *World) TileAt(p grid.Position) Tile {
	switch {
	case w.IsPit(p):
		return TilePit
	case w.IsHazardAt(p):
		return TileHazard
	case w.HasGoldAt(p):
		return TileGold
	default:
		return TileEmpty
	}
}

// UpdateAgentState kills the agent if it stands on a pit or the live
// hazard. Call it exactly once per turn, after the agent acts.
func (w *World) UpdateAgentState() {
	if w.TileAt(w.agent.Position()).IsDeadly() {
		w.agent.Kill()
	}
}

// IsEpisodeOver returns true when the agent is dead, or when it holds the
// gold and the hazard is dead. Holding the gold alone does not end the
// episode while the hazard lives.
func (w *World) IsEpisodeOver() bool {
	return w.agent.IsDead() || (w.agent.HasGold() && !w.hazardAlive)
}

// Ensure World implements entity.Environment
var _ entity.Environment = (*World)(nil)
