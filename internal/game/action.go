package game

// Action is one discrete agent action per turn.
type Action int

const (
	ActionForward Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionShoot
	ActionGrab
)

// ID returns the action identifier used in actions.json.
func (a Action) ID() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionTurnLeft:
		return "turn_left"
	case ActionTurnRight:
		return "turn_right"
	case ActionShoot:
		return "shoot"
	case ActionGrab:
		return "grab"
	default:
		return "unknown"
	}
}

// String returns the action identifier.
func (a Action) String() string {
	return a.ID()
}

// ActionFromID returns the action with the given identifier.
func ActionFromID(id string) (Action, bool) {
	for _, a := range []Action{ActionForward, ActionTurnLeft, ActionTurnRight, ActionShoot, ActionGrab} {
		if a.ID() == id {
			return a, true
		}
	}
	return 0, false
}
