package game

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpusworld/internal/gamedata"
	"github.com/samdwyer/wumpusworld/internal/telemetry"
	"github.com/samdwyer/wumpusworld/internal/ui"
)

// Game holds the interactive session: the screen, key bindings and the
// current episode.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	actions  *gamedata.ActionRegistry
	config   Config
	rng      *rand.Rand
	seed     int64
	episode  *Episode
	played   int
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	actions, err := gamedata.LoadActionRegistry()
	if err != nil {
		return nil, err
	}
	theme, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		actions:  actions,
		config:   cfg,
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int64("game.seed", g.seed),
		attribute.Bool("game.reveal", g.config.Reveal),
	)
	g.startEpisode(ctx)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.episode.World.Snapshot(), g.hud())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// startEpisode replaces the current episode with one in a fresh world.
func (g *Game) startEpisode(ctx context.Context) {
	g.played++
	g.episode = NewEpisode(ctx, g.played, g.rng)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyEnter:
		if g.episode.State() == StateEpisodeOver {
			g.startEpisode(ctx)
		}
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		}
	}

	def := g.actions.GetByKey(keyName(ev))
	if def == nil {
		return
	}
	if action, ok := ActionFromID(def.ID); ok {
		g.episode.Apply(ctx, action)
	}
}

// keyName maps a key event to the names used in actions.json.
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return tcell.KeyNames[ev.Key()]
}

// hud builds the text drawn around the grid for the current episode.
func (g *Game) hud() ui.HUD {
	hud := ui.HUD{
		Episode:  g.episode.Number,
		Feedback: g.episode.Feedback,
		Reveal:   g.config.Reveal,
		Help:     g.helpLine(),
	}
	if g.episode.State() == StateEpisodeOver {
		hud.Banner = Banner(g.episode.Result()) + "  Enter: new world  q: quit"
	}
	return hud
}

// helpLine lists each action with its first key binding.
func (g *Game) helpLine() string {
	parts := make([]string, 0, g.actions.Count())
	for _, def := range g.actions.All() {
		if len(def.Keys) == 0 {
			continue
		}
		key := def.Keys[0]
		if key == " " {
			key = "Space"
		}
		parts = append(parts, key+" "+def.Name)
	}
	return strings.Join(parts, "  ")
}

// Banner returns the end-of-episode message for a result.
func Banner(r Result) string {
	switch r {
	case ResultDied:
		return "You died."
	case ResultWon:
		return "You escaped with the gold!"
	default:
		return ""
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
