package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/wumpusworld/internal/gamedata"
	"github.com/samdwyer/wumpusworld/internal/grid"
	"github.com/samdwyer/wumpusworld/internal/world"
)

// Screen layout, in terminal cells.
const (
	cellWidth  = 4
	cellHeight = 2
	gridTop    = 4
	gridBottom = gridTop + grid.Size*cellHeight
	bannerRow  = gridBottom + 2
	helpRow    = gridBottom + 3
)

// HUD carries the text drawn around the grid.
type HUD struct {
	Episode  int
	Feedback string
	Banner   string // End-of-episode message; empty while playing
	Help     string
	Reveal   bool // Draw every tile, not just the agent's cell
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.ThemeRegistry
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.ThemeRegistry) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws one frame from a world snapshot. It keeps no state between
// frames.
func (r *Renderer) Render(snap world.Snapshot, hud HUD) {
	r.screen.Clear()

	r.drawStatus(snap, hud)
	r.drawGrid()
	r.drawTiles(snap, hud.Reveal)
	r.drawAgent(snap.Agent)

	if hud.Banner != "" {
		r.screen.DrawText(0, bannerRow, hud.Banner, r.theme.AlertStyle())
	}
	if hud.Help != "" {
		r.screen.DrawText(0, helpRow, hud.Help, r.theme.HUDStyle())
	}

	r.screen.Show()
}

// CellOrigin returns the screen coordinates of the tile glyph for p. The
// agent is drawn one column to the right.
func CellOrigin(p grid.Position) (x, y int) {
	return p.X*cellWidth + 1, gridTop + p.Y*cellHeight + 1
}

// drawStatus writes score, feedback and sensor lines above the grid.
func (r *Renderer) drawStatus(snap world.Snapshot, hud HUD) {
	style := r.theme.HUDStyle()
	gold := "no"
	if snap.Agent.HasGold {
		gold = "yes"
	}
	r.screen.DrawText(0, 0, fmt.Sprintf("Episode %d  Score: %d  Arrows: %d  Gold: %s",
		hud.Episode, snap.Agent.Score, snap.Agent.Arrows, gold), style)
	r.screen.DrawText(0, 1, hud.Feedback, style)
	r.screen.DrawText(0, 2, strings.Join(snap.Percepts.Names(), "  "), style)
}

// drawGrid draws the cell borders.
func (r *Renderer) drawGrid() {
	style := r.theme.Style("grid")
	corner := r.theme.Glyph("grid")
	right := grid.Size * cellWidth

	for row := gridTop; row <= gridBottom; row++ {
		border := (row-gridTop)%cellHeight == 0
		for col := 0; col <= right; col++ {
			onColumn := col%cellWidth == 0
			switch {
			case border && onColumn:
				r.screen.SetContent(col, row, corner, style)
			case border:
				r.screen.SetContent(col, row, '-', style)
			case onColumn:
				r.screen.SetContent(col, row, '|', style)
			}
		}
	}
}

// drawTiles draws cell contents. Hidden cells stay blank until the
// episode ends.
func (r *Renderer) drawTiles(snap world.Snapshot, reveal bool) {
	for _, p := range grid.All() {
		if !reveal && !snap.EpisodeOver && p != snap.Agent.Position {
			continue
		}
		tile := snap.TileAt(p)
		x, y := CellOrigin(p)
		r.screen.SetContent(x, y, r.theme.Glyph(tile.ID()), r.theme.Style(tile.ID()))
	}
}

// drawAgent draws the agent as an arrow in its facing direction.
func (r *Renderer) drawAgent(agent world.AgentView) {
	x, y := CellOrigin(agent.Position)
	style := r.theme.Style("agent").Bold(true)
	r.screen.SetContent(x+1, y, AgentGlyph(agent), style)
}

// AgentGlyph returns the rune drawn for the agent.
func AgentGlyph(agent world.AgentView) rune {
	if !agent.Alive {
		return 'x'
	}
	switch agent.Orientation {
	case grid.North:
		return '^'
	case grid.South:
		return 'v'
	case grid.East:
		return '>'
	case grid.West:
		return '<'
	default:
		return '@'
	}
}
