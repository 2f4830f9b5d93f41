package firebreak

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/firebreak/internal/core"
	"github.com/vovakirdan/firebreak/internal/games/firebreak/core"
)

const controlsHint = " arrows: move | space: select | s: skip | u: undo | n: spread | esc: clear | p: pause"

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.loadErr != nil {
		g.renderOverlay(dst, "Cannot start game", g.loadErr.Error())
		return
	}
	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.engine.Width()*g.cellW+4, g.engine.Height()+g.hudHeight+4))
		return
	}

	g.renderBoard(dst)
	g.renderFooter(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "All levels cleared!", "Houses saved: "+strconv.Itoa(g.banked))
	case g.gameOver && g.mode == ModeCampaign:
		g.renderOverlay(dst, "Level failed", g.finalLine()+" | R: restart")
	case g.gameOver:
		g.renderOverlay(dst, "Fire contained", g.finalLine()+" | R: restart")
	case g.levelCleared:
		g.renderOverlay(dst, "Level cleared!", "Press Space for the next level")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) finalLine() string {
	if lvl := g.currentLevel(); lvl != nil && g.mode == ModeCampaign {
		return fmt.Sprintf("%d houses, %d needed", g.engine.Score(), lvl.MinHouses)
	}
	return fmt.Sprintf("Houses standing: %d/%d", g.engine.Score(), g.engine.InitialHouses())
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title()
	if g.engine != nil {
		hud += " | Houses: " + strconv.Itoa(g.engine.Score()) + "/" + strconv.Itoa(g.engine.InitialHouses()) +
			" | Swaps: " + strconv.Itoa(g.engine.SwapsMade())
		if lvl := g.currentLevel(); lvl != nil {
			hud += " | Level: " + lvl.Name
			if g.mode == ModeCampaign {
				hud += " (" + strconv.Itoa(g.levelIndex+1) + "/" + strconv.Itoa(len(g.levels)) + ")"
			}
		} else {
			hud += " | Seed: " + strconv.FormatInt(g.seed, 10)
		}
		if g.mode == ModeCampaign {
			hud += " | Score: " + strconv.Itoa(g.score())
		}
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the framed tile grid with cursor and selection marks.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	frame := platformcore.NewRect(g.board.X-1, g.board.Y-1, g.board.W+2, g.board.H+2)
	dst.DrawBox(frame, platformcore.ColorGray)

	threatened := make(map[core.Pos]bool)
	for _, p := range core.Threatened(g.engine.Board()) {
		threatened[p] = true
	}
	sel := g.engine.Selection()

	for row := 0; row < g.engine.Height(); row++ {
		for col := 0; col < g.engine.Width(); col++ {
			p := core.P(row, col)
			tile := g.engine.Tile(p)

			attr := platformcore.AttrNone
			if threatened[p] {
				attr |= platformcore.AttrBold
			}
			if sel.Is(p) {
				attr |= platformcore.AttrUnderline
			}
			if p == g.cursor && !g.gameOver {
				attr |= platformcore.AttrReverse
			}

			cell := platformcore.Cell{Rune: tile.Char(), Color: tintColor(tile.Type.Info().Tint), Attr: attr}
			x := g.board.X + col*g.cellW
			dst.SetCell(x, g.board.Y+row, cell)
			cell.Rune = ' '
			if sel.Is(p) {
				cell.Rune = '<'
			}
			dst.SetCell(x+1, g.board.Y+row, cell)
		}
	}
}

// renderFooter draws the status line and the controls hint.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	h := dst.Height()
	if g.status != "" {
		dst.DrawTextColor(0, h-2, " "+g.status, platformcore.ColorYellow)
	}
	dst.DrawTextColor(0, h-1, controlsHint, platformcore.ColorGray)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorWhite)
}

// tintColor maps a tile tint to a screen color.
func tintColor(t core.Tint) platformcore.Color {
	switch t {
	case core.TintRed:
		return platformcore.ColorBrightRed
	case core.TintOrange:
		return platformcore.ColorOrange
	case core.TintBlue:
		return platformcore.ColorBlue
	case core.TintGreen:
		return platformcore.ColorGreen
	case core.TintBrightGreen:
		return platformcore.ColorBrightGreen
	case core.TintYellow:
		return platformcore.ColorYellow
	case core.TintGray:
		return platformcore.ColorGray
	case core.TintWhite:
		return platformcore.ColorWhite
	default:
		return platformcore.ColorDefault
	}
}
