package snake

import (
	"fmt"

	"github.com/snakelab/gridsnake/internal/core"
)

// hudHeight is the number of screen rows above the arena.
const hudHeight = 2

// Render draws the current snapshot to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderArena(dst)
	g.renderSnake(dst, snap)
	g.renderFood(dst, snap)

	switch snap.Phase {
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", snap.Score, snap.Length)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// arenaOrigin returns the screen position of the arena box's top-left corner.
func (g *Game) arenaOrigin(dst *core.Screen) (int, int) {
	boxW := g.bounds.Width()*g.cfg.Render.CellWidth + 2
	return (dst.Width() - boxW) / 2, hudHeight
}

// cellToScreen maps a grid cell to its leftmost screen column and row.
// Grid +y points up; screen rows grow downward.
func (g *Game) cellToScreen(dst *core.Screen, c core.Cell) (int, int) {
	ox, oy := g.arenaOrigin(dst)
	sx := ox + 1 + (c.X-g.bounds.MinX)*g.cfg.Render.CellWidth
	sy := oy + 1 + (g.bounds.MaxY - 1 - c.Y)
	return sx, sy
}

// drawCell fills one grid cell with a colored rune.
func (g *Game) drawCell(dst *core.Screen, c core.Cell, r rune, color core.Color) {
	sx, sy := g.cellToScreen(dst, c)
	for i := 0; i < g.cfg.Render.CellWidth; i++ {
		dst.SetCell(sx+i, sy, r, color)
	}
}

// renderArena draws the arena border.
func (g *Game) renderArena(dst *core.Screen) {
	ox, oy := g.arenaOrigin(dst)
	boxW := g.bounds.Width()*g.cfg.Render.CellWidth + 2
	boxH := g.bounds.Height() + 2
	dst.DrawBox(ox, oy, boxW, boxH, core.ColorGray)
}

// renderSnake draws the head and body with distinct colors.
func (g *Game) renderSnake(dst *core.Screen, snap Snapshot) {
	for _, seg := range snap.Segments {
		if seg.Role == RoleHead {
			g.drawCell(dst, seg.Cell, 'O', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, seg.Cell, 'o', core.ColorGreen)
		}
	}
}

// renderFood draws the food cell, if one is active.
func (g *Game) renderFood(dst *core.Screen, snap Snapshot) {
	if snap.HasFood {
		g.drawCell(dst, snap.Food, '*', core.ColorBrightRed)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Blank the box interior before drawing the frame
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextColored(x, y, text, core.ColorBrightWhite)
}
