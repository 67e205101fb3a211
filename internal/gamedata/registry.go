package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ActionRegistry holds loaded action definitions and resolves key presses.
type ActionRegistry struct {
	actions []ActionDef
	byID    map[string]*ActionDef
	byKey   map[string]*ActionDef
}

// NewActionRegistry creates a registry from loaded action definitions.
// It fails if two actions share an ID or a key.
func NewActionRegistry(actions []ActionDef) (*ActionRegistry, error) {
	registry := &ActionRegistry{
		actions: actions,
		byID:    make(map[string]*ActionDef),
		byKey:   make(map[string]*ActionDef),
	}
	for i := range actions {
		def := &actions[i]
		if _, dup := registry.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate action id %q", def.ID)
		}
		registry.byID[def.ID] = def
		for _, key := range def.Keys {
			if other, dup := registry.byKey[key]; dup {
				return nil, fmt.Errorf("key %q bound to both %q and %q", key, other.ID, def.ID)
			}
			registry.byKey[key] = def
		}
	}
	return registry, nil
}

// LoadActionRegistry loads and creates a registry from the embedded actions.json.
func LoadActionRegistry() (*ActionRegistry, error) {
	actions, err := LoadActions()
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, errors.New("no actions loaded from actions.json")
	}
	return NewActionRegistry(actions)
}

// MustLoadActionRegistry loads a registry, panicking on error.
func MustLoadActionRegistry() *ActionRegistry {
	registry, err := LoadActionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the action with the given ID, or nil if not found.
func (r *ActionRegistry) GetByID(id string) *ActionDef {
	return r.byID[id]
}

// GetByKey returns the action bound to a key name, or nil if unbound.
func (r *ActionRegistry) GetByKey(key string) *ActionDef {
	return r.byKey[key]
}

// All returns all action definitions in file order.
func (r *ActionRegistry) All() []ActionDef {
	return r.actions
}

// Count returns the number of actions in the registry.
func (r *ActionRegistry) Count() int {
	return len(r.actions)
}

// =============================================================================
// ThemeRegistry
// =============================================================================

// ThemeRegistry resolves tile IDs to glyphs and styles.
type ThemeRegistry struct {
	tiles map[string]*TileStyleDef
	hud   tcell.Color
	alert tcell.Color
}

// NewThemeRegistry creates a registry from a loaded theme.
func NewThemeRegistry(theme ThemeFile) (*ThemeRegistry, error) {
	hud, err := ParseHexColor(theme.HUD)
	if err != nil {
		return nil, fmt.Errorf("hud color: %w", err)
	}
	alert, err := ParseHexColor(theme.Alert)
	if err != nil {
		return nil, fmt.Errorf("alert color: %w", err)
	}

	registry := &ThemeRegistry{
		tiles: make(map[string]*TileStyleDef),
		hud:   hud,
		alert: alert,
	}
	for i := range theme.Tiles {
		registry.tiles[theme.Tiles[i].ID] = &theme.Tiles[i]
	}
	return registry, nil
}

// LoadThemeRegistry loads and creates a registry from the embedded theme.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	theme, err := LoadTheme()
	if err != nil {
		return nil, err
	}
	return NewThemeRegistry(theme)
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Glyph returns the glyph for a tile ID, or '?' if the ID is unknown.
func (r *ThemeRegistry) Glyph(id string) rune {
	if def := r.tiles[id]; def != nil {
		return def.GlyphRune()
	}
	return '?'
}

// Style returns the style for a tile ID, falling back to white.
func (r *ThemeRegistry) Style(id string) tcell.Style {
	color := tcell.ColorWhite
	if def := r.tiles[id]; def != nil {
		color = def.TCellColor()
	}
	return tcell.StyleDefault.Foreground(color)
}

// HUDStyle returns the style for score, feedback and sensor text.
func (r *ThemeRegistry) HUDStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(r.hud)
}

// AlertStyle returns the style for the end-of-episode banner.
func (r *ThemeRegistry) AlertStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(r.alert).Bold(true)
}
