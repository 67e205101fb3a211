// Package game provides the episode driver and the interactive game loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying accepts agent actions.
	StatePlaying State = iota
	// StateEpisodeOver waits for the player to start a new episode or quit.
	StateEpisodeOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEpisodeOver:
		return "episode_over"
	default:
		return "unknown"
	}
}
