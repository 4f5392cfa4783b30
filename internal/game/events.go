package game

// EventKind identifies a discrete gameplay event published by the Game.
type EventKind int

const (
	// EventEat fires when the head enters the food cell.
	EventEat EventKind = iota
	// EventGameOver fires on the Playing -> GameOver transition.
	// The event carries the collision cause.
	EventGameOver
	// EventMusicOn / EventMusicOff fire when the music preference flips.
	EventMusicOn
	EventMusicOff
	// EventStateChanged fires whenever the HUD/title line should refresh:
	// score change, restart, or game over.
	EventStateChanged
)

// Cause describes what ended the game.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

// Event is a discrete notification drained by collaborators after each
// operation. The game never calls into collaborators directly.
type Event struct {
	Kind  EventKind
	Cause Cause
}

func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventGameOver:
		return "game_over"
	case EventMusicOn:
		return "music_on"
	case EventMusicOff:
		return "music_off"
	case EventStateChanged:
		return "state_changed"
	default:
		return "unknown"
	}
}

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall-collision"
	case CauseSelf:
		return "self-collision"
	default:
		return "none"
	}
}
