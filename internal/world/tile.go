// Package world provides the wumpus world: layout, senses and episode rules.
package world

// Tile describes what occupies a cell, as seen by the renderer.
type Tile rune

const (
	// TileEmpty is a cell with nothing in it.
	TileEmpty Tile = '.'
	// TilePit is a bottomless pit.
	TilePit Tile = 'O'
	// TileHazard is the live wumpus.
	TileHazard Tile = 'W'
	// TileGold is the gold, still on the floor.
	TileGold Tile = '$'
)

// ID returns the tile's theme identifier.
func (t Tile) ID() string {
	switch t {
	case TilePit:
		return "pit"
	case TileHazard:
		return "hazard"
	case TileGold:
		return "gold"
	default:
		return "empty"
	}
}

// IsDeadly returns true if entering the tile kills the agent.
func (t Tile) IsDeadly() bool {
	return t == TilePit || t == TileHazard
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
