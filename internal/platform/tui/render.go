package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flipdash/internal/core"
	"github.com/vovakirdan/flipdash/internal/game"
)

// Glyphs
const (
	floorChar   = '═'
	ceilingChar = '═'
	spikeUp     = '▲'
	spikeDown   = '▼'
	coinChar    = '●'
	playerChar  = '█'
	playerFlip  = '▀'
)

const serialDownLabel = "[serial disconnected]"

// HUD is platform state shown next to the simulation.
type HUD struct {
	HighScore  int
	Status     string // One-line feedback (purchase results, config reloads)
	Help       string // Rendered key hints
	SerialDown bool   // A serial controller is configured but not connected
}

// Draw renders a snapshot onto dst.
func Draw(dst *core.Screen, snap game.Snapshot, hud HUD) {
	dst.Clear()
	v := NewViewport(dst.Width(), dst.Height(), snap.World)

	dst.DrawHLine(0, v.CeilingRow(), dst.Width(), ceilingChar)
	dst.DrawHLine(0, v.FloorRow(), dst.Width(), floorChar)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o, snap.World)
	}
	for _, c := range snap.Coins {
		dst.SetColored(v.Col(c.Pos.X), v.Row(c.Pos.Y), coinChar, core.ColorGold)
	}
	if snap.HasPlayer {
		drawPlayer(dst, v, snap)
	}

	drawHUD(dst, snap, hud)

	switch {
	case snap.State == game.StateMenu:
		drawCenteredMessage(dst, "FLIP DASH", "Press Enter to Play", fmt.Sprintf("Best: %d", hud.HighScore))
	case snap.State == game.StateGameOver:
		drawCenteredMessage(dst, fmt.Sprintf("Game Over! Score: %d", displayScore(snap.LastScore)), "Press R to Restart")
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.ShopOpen {
		drawShop(dst, snap, hud)
	}

	if hud.Help != "" {
		dst.DrawTextColored(1, dst.Height()-1, hud.Help, core.ColorGray)
	}
}

func drawObstacle(dst *core.Screen, v Viewport, o game.Obstacle, w game.World) {
	r := spikeUp
	if o.Kind == game.ObstacleCeiling {
		r = spikeDown
	}
	x := v.Col(o.Pos.X)
	row := v.Row(o.Pos.Y)
	dst.FillRect(x, row, x+v.Cols(w.ObstacleSize.X), row+1, r, core.ColorRed)
}

func drawPlayer(dst *core.Screen, v Viewport, snap game.Snapshot) {
	r := playerChar
	if snap.PlayerFlipped {
		r = playerFlip
	}
	x := v.Col(snap.PlayerPos.X)
	row := v.Row(snap.PlayerPos.Y)
	dst.FillRect(x, row, x+v.Cols(snap.World.PlayerSize.X), row+1, r, snap.Skin.Color)
}

// displayScore rounds a score to the integer shown and recorded.
func displayScore(v float64) int {
	return int(math.Round(v))
}

func drawHUD(dst *core.Screen, snap game.Snapshot, hud HUD) {
	score := displayScore(snap.Score.Value)
	if snap.State == game.StateGameOver {
		score = displayScore(snap.LastScore)
	}
	left := fmt.Sprintf("Score: %d", score)
	dst.DrawText(1, 0, left)
	if hud.SerialDown {
		dst.DrawTextColored(len(left)+3, 0, serialDownLabel, core.ColorRed)
	}

	right := fmt.Sprintf("x%.2f  Coins: %d  Best: %d", snap.Score.Difficulty, snap.Wallet, hud.HighScore)
	if snap.Regime == game.RegimeFlip && snap.State == game.StateRunning {
		right = "FLIP  " + right
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	boxW := inner + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i*2, l)
	}
}

// drawShop draws the shop panel in the top right of the playfield.
func drawShop(dst *core.Screen, snap game.Snapshot, hud HUD) {
	lines := []string{
		"SHOP",
		fmt.Sprintf("Coins: %d", snap.Wallet),
		fmt.Sprintf("Buy %s Skin (%d)  [b]", snap.ShopSkin.Name, snap.ShopCost),
		"Wearing: " + snap.Skin.Name,
	}
	if hud.Status != "" {
		lines = append(lines, hud.Status)
	}

	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	boxX := dst.Width() - boxW - 1
	boxY := 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 2 {
			c = snap.ShopSkin.Color
		}
		dst.DrawTextColored(boxX+2, boxY+1+i, l, c)
	}
}

// styleCache maps colors to lipgloss styles.
type styleCache map[core.RGBA]lipgloss.Style

func (sc styleCache) style(c core.RGBA) lipgloss.Style {
	if s, ok := sc[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !c.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	sc[c] = s
	return s
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
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

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
