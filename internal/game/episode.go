package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpusworld/internal/telemetry"
	"github.com/samdwyer/wumpusworld/internal/world"
)

// Feedback lines reported after each action. Shots report their outcome.
const (
	FeedbackMoved      = "Moved Forward"
	FeedbackTurnLeft   = "Turned Left"
	FeedbackTurnRight  = "Turned Right"
	FeedbackGrabbed    = "Grabbed Gold"
	FeedbackNoGoldHere = "No Gold Here"
)

// Result is how an episode ended.
type Result int

const (
	ResultInProgress Result = iota
	ResultDied
	ResultWon
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultInProgress:
		return "in_progress"
	case ResultDied:
		return "died"
	case ResultWon:
		return "won"
	default:
		return "unknown"
	}
}

// Episode is one playthrough from world creation to termination.
type Episode struct {
	ID       uuid.UUID
	Number   int // 1-based count of episodes played this session
	World    *world.World
	Turns    int
	Feedback string // Message from the last action
}

// NewEpisode starts an episode in a freshly generated world.
func NewEpisode(ctx context.Context, number int, rng *rand.Rand) *Episode {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "episode.start")
	defer span.End()

	e := NewEpisodeWithWorld(number, world.New(ctx, rng))

	span.SetAttributes(
		attribute.String("episode.id", e.ID.String()),
		attribute.Int("episode.number", number),
	)
	return e
}

// NewEpisodeWithWorld starts an episode in an existing world.
func NewEpisodeWithWorld(number int, w *world.World) *Episode {
	return &Episode{
		ID:     uuid.New(),
		Number: number,
		World:  w,
	}
}

// State reports whether the episode still accepts actions.
func (e *Episode) State() State {
	if e.World.IsEpisodeOver() {
		return StateEpisodeOver
	}
	return StatePlaying
}

// Result reports how the episode ended, if it has.
func (e *Episode) Result() Result {
	switch {
	case e.World.Agent().IsDead():
		return ResultDied
	case e.World.IsEpisodeOver():
		return ResultWon
	default:
		return ResultInProgress
	}
}

// Apply runs one turn: the agent acts, then the world checks for death.
// It returns the feedback line, or "" if the episode is already over or
// the action is unknown, in which case no turn is taken.
func (e *Episode) Apply(ctx context.Context, action Action) string {
	if e.State() == StateEpisodeOver {
		return ""
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "episode.turn")
	defer span.End()

	agent := e.World.Agent()
	var feedback string

	switch action {
	case ActionForward:
		agent.MoveForward()
		feedback = FeedbackMoved
	case ActionTurnLeft:
		agent.TurnLeft()
		feedback = FeedbackTurnLeft
	case ActionTurnRight:
		agent.TurnRight()
		feedback = FeedbackTurnRight
	case ActionShoot:
		feedback = agent.ShootArrow(e.World).String()
	case ActionGrab:
		if agent.GrabGold(e.World) {
			feedback = FeedbackGrabbed
		} else {
			feedback = FeedbackNoGoldHere
		}
	default:
		span.SetAttributes(attribute.Bool("ignored", true))
		return ""
	}

	e.World.UpdateAgentState()
	e.Turns++
	e.Feedback = feedback

	span.SetAttributes(
		attribute.String("episode.id", e.ID.String()),
		attribute.String("action", action.String()),
		attribute.String("feedback", feedback),
		attribute.Int("turn", e.Turns),
		attribute.Int("score", agent.Score()),
		attribute.String("agent.position", agent.Position().String()),
	)

	if e.State() == StateEpisodeOver {
		e.end(ctx)
	}
	return feedback
}

// end records the episode's final result.
func (e *Episode) end(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "episode.end")
	span.SetAttributes(
		attribute.String("episode.id", e.ID.String()),
		attribute.String("result", e.Result().String()),
		attribute.Int("turns_taken", e.Turns),
		attribute.Int("final_score", e.World.Agent().Score()),
	)
	span.End()
}
