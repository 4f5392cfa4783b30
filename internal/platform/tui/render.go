package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// hudHeight is the number of screen rows above the playfield: the status
// line plus a separator.
const hudHeight = 2

// Theme holds the glyphs drawn for game entities.
type Theme struct {
	Head rune
	Body rune
	Food rune
}

// DefaultTheme returns the built-in glyph set.
func DefaultTheme() Theme {
	return Theme{Head: 'O', Body: 'o', Food: '●'}
}

// NewTheme builds a theme from the configured glyph strings, falling back
// to the defaults for empty values.
func NewTheme(cfg config.ThemeConfig) Theme {
	th := DefaultTheme()
	if r := []rune(cfg.Head); len(r) > 0 {
		th.Head = r[0]
	}
	if r := []rune(cfg.Body); len(r) > 0 {
		th.Body = r[0]
	}
	if r := []rune(cfg.Food); len(r) > 0 {
		th.Food = r[0]
	}
	return th
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// gridOrigin returns the screen position of the playfield cell (0, 0),
// centering the bordered grid in the space below the HUD. ok is false when
// the screen is too small to fit the grid and its border.
func gridOrigin(s *core.Screen, g *game.Game) (ox, oy int, ok bool) {
	needW := g.Width() + 2
	needH := g.Height() + 2 + hudHeight
	if s.Width() < needW || s.Height() < needH {
		return 0, 0, false
	}

	ox = (s.Width()-needW)/2 + 1
	oy = hudHeight + (s.Height()-needH)/2 + 1
	return ox, oy, true
}

// drawGame renders the complete frame into the screen buffer: HUD,
// bordered playfield, food, snake and the game-over overlay.
func drawGame(s *core.Screen, g *game.Game, th Theme) {
	s.Clear()

	music := "off"
	if g.MusicEnabled() {
		music = "on"
	}
	hud := fmt.Sprintf(" SNAKE  Score: %d  Music: %s", g.Score(), music)
	s.DrawText(0, 0, hud, core.ColorWhite)
	s.DrawHLine(0, 1, s.Width(), '─', core.ColorGray)

	ox, oy, ok := gridOrigin(s, g)
	if !ok {
		s.DrawTextCentered(s.Height()/2, "Window too small", core.ColorYellow)
		need := fmt.Sprintf("need at least %dx%d", g.Width()+2, g.Height()+2+hudHeight)
		s.DrawTextCentered(s.Height()/2+1, need, core.ColorGray)
		return
	}

	border := core.NewRect(ox-1, oy-1, g.Width()+2, g.Height()+2)
	s.DrawBox(border, core.ColorGray)

	food := g.Food()
	s.SetCell(ox+food.X, oy+food.Y, th.Food, core.ColorRed)

	for i, cell := range g.Cells() {
		if i == 0 {
			s.SetCell(ox+cell.X, oy+cell.Y, th.Head, core.ColorBrightGreen)
		} else {
			s.SetCell(ox+cell.X, oy+cell.Y, th.Body, core.ColorGreen)
		}
	}

	if g.Over() {
		drawGameOver(s, g)
	}
}

// drawGameOver draws the centered game-over box on top of the final frame.
func drawGameOver(s *core.Screen, g *game.Game) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", g.Score()),
		"press SPACE to restart",
	}

	boxW := 0
	for _, line := range lines {
		if len(line)+6 > boxW {
			boxW = len(line) + 6
		}
	}
	boxH := len(lines) + 4

	// Keep the box origin on screen even when the terminal is barely
	// taller than the grid.
	bx := core.Clamp((s.Width()-boxW)/2, 0, core.Max(s.Width()-boxW, 0))
	by := core.Clamp((s.Height()-boxH)/2, 0, core.Max(s.Height()-boxH, 0))
	box := core.NewRect(bx, by, boxW, boxH)
	s.DrawBox(box, core.ColorBrightRed)

	s.DrawTextCentered(box.Y+2, lines[0], core.ColorBrightRed)
	s.DrawTextCentered(box.Y+3, lines[1], core.ColorWhite)
	s.DrawTextCentered(box.Y+4, lines[2], core.ColorGray)
}
