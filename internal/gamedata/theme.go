package gamedata

import "github.com/gdamore/tcell/v2"

// TileStyleDef defines how one kind of cell content is drawn.
type TileStyleDef struct {
	ID    string `json:"id"`    // Tile identifier (e.g., "pit")
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code (e.g., "#FFD700")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileStyleDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (d *TileStyleDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ThemeFile represents the structure of theme.json.
type ThemeFile struct {
	Tiles []TileStyleDef `json:"tiles"`
	HUD   string         `json:"hud"`   // Text color for score and feedback
	Alert string         `json:"alert"` // Text color for the end-of-episode banner
}

// LoadTheme loads the render theme from the embedded theme.json file.
func LoadTheme() (ThemeFile, error) {
	return Load[ThemeFile]("theme.json")
}
