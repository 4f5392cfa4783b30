package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform layer maps key bindings to actions; the game loop
// switches on actions without knowing the key layout.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart     // Space - restart after game over
	ActionToggleMusic // M - toggle background music
	ActionQuit        // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
