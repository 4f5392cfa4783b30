package game

// State represents the two gameplay states.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	MusicOn  bool
	State    State
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.over {
		state = StateGameOver
	}

	head := g.snake[0]
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.dir,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		MusicOn:  g.musicOn,
		State:    state,
	}
}
