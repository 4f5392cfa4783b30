package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/audio"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Model is the Bubble Tea model wrapping a game and its audio player.
// All game mutation happens here, on the program's single update goroutine.
type Model struct {
	game   *game.Game
	player *audio.Player
	screen *core.Screen
	theme  Theme
	keys   KeyMap
	help   help.Model
}

// New creates the model with an initial screen size. The last terminal row
// is reserved for the help bar.
func New(g *game.Game, p *audio.Player, th Theme, width, height int) Model {
	return Model{
		game:   g,
		player: p,
		screen: core.NewScreen(width, core.Max(height-1, 1)),
		theme:  th,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop and the background music.
func (m Model) Init() tea.Cmd {
	if m.game.MusicEnabled() {
		m.player.StartMusic()
	}
	return tea.Batch(
		tickCmd(m.game.TickRate()),
		tea.SetWindowTitle(m.windowTitle()),
	)
}

// Update handles input, ticks and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.game.Tick()
		return m, tea.Batch(m.dispatchEvents(), tickCmd(m.game.TickRate()))

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey maps a key press to a game operation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		return m, tea.Quit
	case core.ActionUp:
		m.game.SetDirection(game.DirUp)
	case core.ActionDown:
		m.game.SetDirection(game.DirDown)
	case core.ActionLeft:
		m.game.SetDirection(game.DirLeft)
	case core.ActionRight:
		m.game.SetDirection(game.DirRight)
	case core.ActionRestart:
		if m.game.Over() {
			m.game.Restart()
			// Game over paused the music; restart resumes it when the
			// preference is still on.
			if m.game.MusicEnabled() {
				m.player.StartMusic()
			}
		}
	case core.ActionToggleMusic:
		m.game.ToggleMusic()
	}
	return m, m.dispatchEvents()
}

// dispatchEvents drains the game's event queue, forwards everything to the
// audio player and refreshes the window title on state changes.
func (m Model) dispatchEvents() tea.Cmd {
	var cmd tea.Cmd
	for _, ev := range m.game.DrainEvents() {
		m.player.HandleEvent(ev)
		if ev.Kind == game.EventStateChanged {
			cmd = tea.SetWindowTitle(m.windowTitle())
		}
	}
	return cmd
}

// windowTitle mirrors the score and game state in the terminal title.
func (m Model) windowTitle() string {
	if m.game.Over() {
		return fmt.Sprintf("Snake - Game Over! Score: %d", m.game.Score())
	}
	return fmt.Sprintf("Snake - Score: %d", m.game.Score())
}

// View renders the frame plus the help bar.
func (m Model) View() string {
	drawGame(m.screen, m.game, m.theme)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program in the alternate screen and blocks
// until the player quits.
func Run(g *game.Game, p *audio.Player, th Theme, width, height int) error {
	m := New(g, p, th, width, height)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
