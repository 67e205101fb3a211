package world

import (
	"github.com/samdwyer/wumpusworld/internal/grid"
)

// Percepts are the sensory cues available in a single cell.
type Percepts struct {
	Breeze  bool
	Stench  bool
	Glitter bool
}

// Names returns the active cues in display order.
func (p Percepts) Names() []string {
	var names []string
	if p.Breeze {
		names = append(names, "Breeze")
	}
	if p.Stench {
		names = append(names, "Stench")
	}
	if p.Glitter {
		names = append(names, "Glitter")
	}
	return names
}

// Percepts returns every cue sensed at p.
func (w *World) Percepts(p grid.Position) Percepts {
	return Percepts{
		Breeze:  w.BreezeAt(p),
		Stench:  w.StenchAt(p),
		Glitter: w.GlitterAt(p),
	}
}

// AgentView is a copy of the agent's state.
type AgentView struct {
	Position    grid.Position
	Orientation grid.Orientation
	HasGold     bool
	Alive       bool
	Score       int
	Arrows      int
}

// Snapshot is an immutable copy of the world taken between turns.
type Snapshot struct {
	Agent       AgentView
	Hazard      grid.Position
	HazardAlive bool
	Gold        grid.Position
	GoldPresent bool
	Pits        []grid.Position
	Percepts    Percepts
	EpisodeOver bool
	tiles       [grid.Size][grid.Size]Tile
}

// Snapshot copies the current state for rendering.
func (w *World) Snapshot() Snapshot {
	a := w.agent
	s := Snapshot{
		Agent: AgentView{
			Position:    a.Position(),
			Orientation: a.Orientation(),
			HasGold:     a.HasGold(),
			Alive:       a.IsAlive(),
			Score:       a.Score(),
			Arrows:      a.Arrows(),
		},
		Hazard:      w.hazard,
		HazardAlive: w.hazardAlive,
		Gold:        w.gold,
		GoldPresent: w.goldPresent,
		Pits:        w.Pits(),
		Percepts:    w.Percepts(a.Position()),
		EpisodeOver: w.IsEpisodeOver(),
	}
	for _, p := range grid.All() {
		s.tiles[p.Y][p.X] = w.TileAt(p)
	}
	return s
}

// TileAt returns what occupied p when the snapshot was taken.
// Off-grid positions read as empty.
func (s Snapshot) TileAt(p grid.Position) Tile {
	if !p.InBounds() {
		return TileEmpty
	}
	return s.tiles[p.Y][p.X]
}
