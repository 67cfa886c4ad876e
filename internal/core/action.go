package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, mouse click - start the game or lift
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
