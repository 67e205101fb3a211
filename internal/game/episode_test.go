package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/wumpusworld/internal/gamedata"
	"github.com/samdwyer/wumpusworld/internal/grid"
	"github.com/samdwyer/wumpusworld/internal/world"
)

func pos(x, y int) grid.Position { return grid.Position{X: x, Y: y} }

func newTestEpisode(t *testing.T, layout world.Layout) *Episode {
	t.Helper()
	w, err := world.NewWithLayout(layout)
	require.NoError(t, err)
	return NewEpisodeWithWorld(1, w)
}

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return recorder
}

func spanNames(recorder *tracetest.SpanRecorder) []string {
	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePlaying, "playing"},
		{StateEpisodeOver, "episode_over"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result   Result
		expected string
	}{
		{ResultInProgress, "in_progress"},
		{ResultDied, "died"},
		{ResultWon, "won"},
		{Result(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.expected {
			t.Errorf("Result(%d).String() = %q, want %q", tt.result, got, tt.expected)
		}
	}
}

func TestActionIDsMatchData(t *testing.T) {
	registry := gamedata.MustLoadActionRegistry()

	for _, def := range registry.All() {
		action, ok := ActionFromID(def.ID)
		require.True(t, ok, "actions.json id %q has no Action", def.ID)
		assert.Equal(t, def.ID, action.ID())
	}

	_, ok := ActionFromID("dance")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Action(99).String())
}

func TestNewEpisode(t *testing.T) {
	recorder := recordSpans(t)

	e := NewEpisode(context.Background(), 3, rand.New(rand.NewSource(42)))

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, 3, e.Number)
	assert.Equal(t, 0, e.Turns)
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, ResultInProgress, e.Result())
	assert.ElementsMatch(t, []string{"world.generate", "episode.start"}, spanNames(recorder))
}

func TestApplyFeedback(t *testing.T) {
	layout := world.Layout{Hazard: pos(3, 3), Gold: pos(2, 3), Pits: []grid.Position{pos(0, 3), pos(3, 0), pos(2, 2)}}
	ctx := context.Background()

	tests := []struct {
		action   Action
		expected string
	}{
		{ActionForward, FeedbackMoved},
		{ActionTurnLeft, FeedbackTurnLeft},
		{ActionTurnRight, FeedbackTurnRight},
		{ActionShoot, "Missed"},
		{ActionGrab, FeedbackNoGoldHere},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			e := newTestEpisode(t, layout)
			assert.Equal(t, tt.expected, e.Apply(ctx, tt.action))
			assert.Equal(t, tt.expected, e.Feedback)
			assert.Equal(t, 1, e.Turns)
		})
	}
}

func TestApplyUnknownActionTakesNoTurn(t *testing.T) {
	e := newTestEpisode(t, world.Layout{Hazard: pos(3, 3), Gold: pos(2, 3), Pits: []grid.Position{pos(0, 3), pos(3, 0), pos(2, 2)}})

	assert.Equal(t, "", e.Apply(context.Background(), Action(42)))
	assert.Equal(t, 0, e.Turns)
	assert.Equal(t, 0, e.World.Agent().Score())
}

// Stepping onto a pit is detected in the same turn, before the next action.
func TestApplyPitDeathScenario(t *testing.T) {
	recorder := recordSpans(t)
	e := newTestEpisode(t, world.Layout{Hazard: pos(3, 3), Gold: pos(2, 3), Pits: []grid.Position{pos(1, 0), pos(0, 3), pos(3, 0)}})
	ctx := context.Background()
	agent := e.World.Agent()

	require.True(t, e.World.BreezeAt(agent.Position()))

	assert.Equal(t, FeedbackMoved, e.Apply(ctx, ActionForward))
	assert.Equal(t, pos(1, 0), agent.Position())
	assert.True(t, agent.IsDead())
	assert.Equal(t, -1001, agent.Score())
	assert.Equal(t, StateEpisodeOver, e.State())
	assert.Equal(t, ResultDied, e.Result())

	// Further actions are ignored.
	assert.Equal(t, "", e.Apply(ctx, ActionTurnLeft))
	assert.Equal(t, -1001, agent.Score())
	assert.Equal(t, 1, e.Turns)

	assert.Equal(t, []string{"episode.end", "episode.turn"}, spanNames(recorder))
}

func TestApplyWinScenario(t *testing.T) {
	e := newTestEpisode(t, world.Layout{Hazard: pos(3, 0), Gold: pos(1, 0), Pits: []grid.Position{pos(0, 3), pos(1, 1), pos(2, 2)}})
	ctx := context.Background()

	assert.Equal(t, "Scream", e.Apply(ctx, ActionShoot))
	assert.Equal(t, FeedbackMoved, e.Apply(ctx, ActionForward))
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, FeedbackGrabbed, e.Apply(ctx, ActionGrab))

	assert.Equal(t, StateEpisodeOver, e.State())
	assert.Equal(t, ResultWon, e.Result())
	assert.Equal(t, 1489, e.World.Agent().Score())
	assert.Equal(t, 3, e.Turns)
}

// Grabbing the gold while the hazard lives keeps the episode going.
func TestApplyGoldWithLiveHazard(t *testing.T) {
	e := newTestEpisode(t, world.Layout{Hazard: pos(3, 3), Gold: pos(1, 0), Pits: []grid.Position{pos(0, 3), pos(3, 0), pos(2, 2)}})
	ctx := context.Background()

	e.Apply(ctx, ActionForward)
	assert.Equal(t, FeedbackGrabbed, e.Apply(ctx, ActionGrab))

	assert.True(t, e.World.Agent().HasGold())
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, ResultInProgress, e.Result())
}

func TestShootTwice(t *testing.T) {
	e := newTestEpisode(t, world.Layout{Hazard: pos(3, 3), Gold: pos(2, 3), Pits: []grid.Position{pos(0, 3), pos(3, 0), pos(2, 2)}})
	ctx := context.Background()

	assert.Equal(t, "Missed", e.Apply(ctx, ActionShoot))
	assert.Equal(t, "No Arrows Left", e.Apply(ctx, ActionShoot))
	assert.Equal(t, -10, e.World.Agent().Score())
	assert.Equal(t, 0, e.World.Agent().Arrows())
}

func TestHUD(t *testing.T) {
	g := &Game{
		actions: gamedata.MustLoadActionRegistry(),
		config:  Config{Reveal: true},
		episode: newTestEpisode(t, world.Layout{Hazard: pos(3, 3), Gold: pos(2, 3), Pits: []grid.Position{pos(1, 0), pos(0, 3), pos(3, 0)}}),
	}

	hud := g.hud()
	assert.Equal(t, 1, hud.Episode)
	assert.True(t, hud.Reveal)
	assert.Empty(t, hud.Banner)
	assert.Contains(t, hud.Help, "Up Move Forward")
	assert.Contains(t, hud.Help, "Space Shoot Arrow")

	g.episode.Apply(context.Background(), ActionForward)
	hud = g.hud()
	assert.Equal(t, FeedbackMoved, hud.Feedback)
	assert.Contains(t, hud.Banner, "You died.")
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "You died.", Banner(ResultDied))
	assert.Equal(t, "You escaped with the gold!", Banner(ResultWon))
	assert.Empty(t, Banner(ResultInProgress))
}
