// Package game implements the snake gameplay core: a single-writer state
// machine advanced by a fixed-rate Tick. It owns the snake, the food, the
// direction state, the score and the RNG; collaborators observe it through
// read-only accessors and drained events, never by sharing state.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// Game is the gameplay core. It is not safe for concurrent use: the caller
// is expected to drive it from a single goroutine (the platform's event
// loop), which matches the single-writer model of the design.
type Game struct {
	cfg  Config
	rng  *rand.Rand
	tick uint64

	snake   []core.Point // Head at index 0
	food    core.Point
	dir     Direction // Applied this tick
	pending Direction // Latest input, applied next tick unless it reverses dir
	grow    bool      // If true, don't remove tail on next move
	over    bool
	score   int
	musicOn bool

	events []Event
}

// New creates a game in the Playing state with a length-1 snake at the grid
// center and a food cell already placed. A zero cfg.Seed seeds the RNG from
// the clock; pass an explicit seed for deterministic behavior.
func New(cfg Config) *Game {
	cfg = cfg.withDefaults()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		musicOn: true,
	}
	g.reset()
	return g
}

// reset reinitializes all gameplay state. Shared by New and Restart.
func (g *Game) reset() {
	g.tick = 0
	g.snake = []core.Point{{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}}
	g.dir = DirRight
	g.pending = DirRight
	g.grow = false
	g.over = false
	g.score = 0
	g.placeFood()
	g.emit(Event{Kind: EventStateChanged})
}

// Tick advances the simulation by one step. It is pure computation over
// in-memory state plus RNG draws: no blocking, no I/O. While game over it
// is a no-op; only Restart leaves that state.
func (g *Game) Tick() {
	if g.over {
		return
	}
	g.tick++

	// Direction arbitration: the latest pending input wins unless it is the
	// exact reverse of the current direction. The guard applies even at
	// length 1, where reversal would be physically meaningless.
	if g.pending != g.dir.Opposite() {
		g.dir = g.pending
	}

	dx, dy := g.dir.delta()
	next := g.snake[0].Add(dx, dy)

	if !next.In(g.cfg.Width, g.cfg.Height) {
		g.endGame(CauseWall)
		return
	}

	// Occupancy is tested against the pre-move body: the tail cell still
	// counts even though it is about to vacate.
	if g.occupied(next) {
		g.endGame(CauseSelf)
		return
	}

	g.snake = append([]core.Point{next}, g.snake...)

	if next == g.food {
		g.grow = true
		g.score++
		g.emit(Event{Kind: EventEat})
		g.placeFood()
		g.emit(Event{Kind: EventStateChanged})
	}

	if g.grow {
		g.grow = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// endGame transitions Playing -> GameOver. The snake is left untouched so
// observers render the final position.
func (g *Game) endGame(cause Cause) {
	g.over = true
	g.emit(Event{Kind: EventGameOver, Cause: cause})
	g.emit(Event{Kind: EventStateChanged})
}

// SetDirection records the latest direction input. It is buffered and
// applied at most once per tick; calling it while game over is harmless
// (the value only takes effect after a restart).
func (g *Game) SetDirection(d Direction) {
	g.pending = d
}

// ToggleMusic flips the music preference and publishes the matching event.
// Ignored while game over, where only Restart is accepted.
func (g *Game) ToggleMusic() {
	if g.over {
		return
	}
	g.musicOn = !g.musicOn
	if g.musicOn {
		g.emit(Event{Kind: EventMusicOn})
	} else {
		g.emit(Event{Kind: EventMusicOff})
	}
}

// Restart reinitializes the game. Safe to call in any state; calling it
// twice in a row yields the same observable state as calling it once.
func (g *Game) Restart() {
	g.reset()
}

// placeFood draws uniform candidate cells until one is not occupied by the
// snake. Unbounded by design: the snake can cover at most W*H-1 cells, so
// the draw terminates.
func (g *Game) placeFood() {
	for {
		p := core.Point{X: g.rng.Intn(g.cfg.Width), Y: g.rng.Intn(g.cfg.Height)}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}
}

// occupied reports whether the snake covers the given cell.
func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// emit appends an event for collaborators to drain.
func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// DrainEvents returns all events published since the last drain and clears
// the queue. Collaborators call this after each operation.
func (g *Game) DrainEvents() []Event {
	evs := g.events
	g.events = nil
	return evs
}

// Cells returns a copy of the snake's occupied cells, head first.
func (g *Game) Cells() []core.Point {
	cells := make([]core.Point, len(g.snake))
	copy(cells, g.snake)
	return cells
}

// Head returns the snake's head cell.
func (g *Game) Head() core.Point {
	return g.snake[0]
}

// Len returns the snake's length in cells.
func (g *Game) Len() int {
	return len(g.snake)
}

// Food returns the current food cell.
func (g *Game) Food() core.Point {
	return g.food
}

// Score returns the number of food cells eaten since the last restart.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether the game is in the GameOver state.
func (g *Game) Over() bool {
	return g.over
}

// MusicEnabled reports the music preference flag.
func (g *Game) MusicEnabled() bool {
	return g.musicOn
}

// Width returns the grid width in cells.
func (g *Game) Width() int {
	return g.cfg.Width
}

// Height returns the grid height in cells.
func (g *Game) Height() int {
	return g.cfg.Height
}

// TickRate returns the configured simulation rate in ticks per second.
// The game does not schedule itself; the platform's timer reads this.
func (g *Game) TickRate() int {
	return g.cfg.TickRate
}
