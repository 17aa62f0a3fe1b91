package core

// Action represents a semantic game command, abstracted from physical key
// presses. The platform maps raw keys to actions; the session consumes them.
type Action int

const (
	ActionNone    Action = iota
	ActionTurnUp         // W, Up arrow
	ActionTurnDown       // S, Down arrow
	ActionTurnLeft       // A, Left arrow
	ActionTurnRight      // D, Right arrow
	ActionBoost          // Space - temporary speed boost
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnUp:
		return "TurnUp"
	case ActionTurnDown:
		return "TurnDown"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionBoost:
		return "Boost"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
