package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadActions(t *testing.T) {
	actions, err := LoadActions()
	if err != nil {
		t.Fatalf("Failed to load actions: %v", err)
	}

	if len(actions) != 5 {
		t.Errorf("Expected 5 actions, got %d", len(actions))
	}

	expectedIDs := map[string]bool{"forward": false, "turn_left": false, "turn_right": false, "shoot": false, "grab": false}
	for _, a := range actions {
		if _, ok := expectedIDs[a.ID]; ok {
			expectedIDs[a.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected action %q not found", id)
		}
	}
}

func TestActionRegistry(t *testing.T) {
	registry, err := LoadActionRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"Up", "forward"},
		{"Left", "turn_left"},
		{"Right", "turn_right"},
		{" ", "shoot"},
		{"g", "grab"},
	}

	for _, tt := range tests {
		def := registry.GetByKey(tt.key)
		if def == nil {
			t.Errorf("GetByKey(%q) = nil, want %q", tt.key, tt.expected)
			continue
		}
		if def.ID != tt.expected {
			t.Errorf("GetByKey(%q) = %q, want %q", tt.key, def.ID, tt.expected)
		}
	}

	if def := registry.GetByKey("z"); def != nil {
		t.Errorf("GetByKey(%q) = %q, want nil", "z", def.ID)
	}
	if def := registry.GetByID("grab"); def == nil || def.Name != "Grab Gold" {
		t.Error("GetByID(grab) should return the Grab Gold action")
	}
}

func TestActionRegistryRejectsDuplicateKeys(t *testing.T) {
	_, err := NewActionRegistry([]ActionDef{
		{ID: "forward", Keys: []string{"Up"}},
		{ID: "shoot", Keys: []string{"Up"}},
	})
	if err == nil {
		t.Error("NewActionRegistry() should reject a key bound twice")
	}

	_, err = NewActionRegistry([]ActionDef{{ID: "grab"}, {ID: "grab"}})
	if err == nil {
		t.Error("NewActionRegistry() should reject duplicate IDs")
	}
}

func TestThemeRegistry(t *testing.T) {
	theme, err := LoadThemeRegistry()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	glyphs := map[string]rune{"pit": 'O', "hazard": 'W', "gold": '$', "agent": '@', "empty": '.'}
	for id, want := range glyphs {
		if got := theme.Glyph(id); got != want {
			t.Errorf("Glyph(%q) = %c, want %c", id, got, want)
		}
	}

	if got := theme.Glyph("missing"); got != '?' {
		t.Errorf("Glyph(missing) = %c, want ?", got)
	}

	fg, _, _ := theme.Style("missing").Decompose()
	if fg != tcell.ColorWhite {
		t.Errorf("Style(missing) foreground = %v, want white", fg)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"#FFF", true}, // Shorthand
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	short, _ := ParseHexColor("#F00")
	long, _ := ParseHexColor("#FF0000")
	if short != long {
		t.Errorf("ParseHexColor(#F00) = %v, want %v", short, long)
	}
}

func TestTileStyleDefMethods(t *testing.T) {
	def := TileStyleDef{ID: "gold", Glyph: "$", Color: "#FFD700"}

	if def.GlyphRune() != '$' {
		t.Errorf("Expected glyph '$', got %c", def.GlyphRune())
	}
	if (&TileStyleDef{}).GlyphRune() != '?' {
		t.Error("Empty glyph should render as '?'")
	}
	if def.TCellColor() == tcell.ColorWhite {
		t.Error("TCellColor() fell back to white for a valid color")
	}
}
