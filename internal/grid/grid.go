// Package grid provides positions and orientations on the 4x4 world grid.
package grid

import "fmt"

// Size is the width and height of the world grid.
const Size = 4

// Cells is the number of cells on the grid.
const Cells = Size * Size

// Position is a cell on the grid. Y grows southward.
type Position struct {
	X, Y int
}

// Origin is the agent's starting cell.
var Origin = Position{X: 0, Y: 0}

// InBounds returns true if the position lies on the grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Step returns the neighbouring position in the given orientation.
// The result may be off the grid.
func (p Position) Step(o Orientation) Position {
	dx, dy := o.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between two positions.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Adjacent returns true if other is exactly one orthogonal step away.
func (p Position) Adjacent(other Position) bool {
	return p.Manhattan(other) == 1
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// All returns every grid position in row-major order.
func All() []Position {
	cells := make([]Position, 0, Cells)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
