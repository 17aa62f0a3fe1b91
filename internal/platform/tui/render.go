package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quietfall/tui-pursuit/internal/core"
	"github.com/quietfall/tui-pursuit/internal/game"
)

// hudHeight is the number of rows above the arena (status line + separator).
const hudHeight = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

// DrawSample draws one frame of the game onto the screen buffer.
// Each arena cell maps to two terminal columns and one row; interpolated
// positions land on half-cell columns, which is what makes motion smooth.
func DrawSample(dst *core.Screen, smp game.Sample) {
	dst.Clear()
	drawHUD(dst, smp)

	cols := smp.ArenaWidth / smp.CellSize
	rows := smp.ArenaHeight / smp.CellSize
	boxW := cols*2 + 2
	boxH := rows + 2

	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boxX := (dst.Width() - boxW) / 2
	boxY := hudHeight + (dst.Height()-hudHeight-boxH)/2
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorGray)

	toScreen := func(p core.Point) (int, int) {
		return boxX + 1 + p.X*2/smp.CellSize, boxY + 1 + p.Y/smp.CellSize
	}

	// Food first so the head wins the cell on the eating frame
	fx, fy := toScreen(core.Lerp(smp.Food.Prev, smp.Food.Cur, smp.FoodInterp))
	dst.SetColored(fx, fy, '*', core.ColorBrightYellow)

	// Tail to head so the head glyph always shows on overlaps
	for i := len(smp.Segments) - 1; i >= 0; i-- {
		seg := smp.Segments[i]
		sx, sy := toScreen(core.Lerp(seg.Prev, seg.Cur, smp.SnakeInterp))
		if i == 0 {
			dst.SetColored(sx, sy, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorGreen)
		}
	}

	if smp.Over {
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press r to restart", smp.Score))
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, smp game.Sample) {
	hud := fmt.Sprintf(" Pursuit  Score: %d  Arena: %dx%d", smp.Score, smp.ArenaWidth, smp.ArenaHeight)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
