package panelpon

import (
	"fmt"

	"github.com/vovakirdan/tui-panelpon/internal/core"
)

// Cell width on screen: each board cell renders as two characters so
// the playfield is roughly square in a terminal font.
const cellW = 2

var blockColors = map[BlockColor]core.Color{
	Red:    core.ColorRed,
	Green:  core.ColorGreen,
	Blue:   core.ColorBrightBlue,
	Yellow: core.ColorYellow,
	Purple: core.ColorMagenta,
}

// Render draws the playfield, cursor and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.board == nil {
		return
	}

	height := g.panelCfg.Board.Height
	width := g.panelCfg.Board.Width

	// Box encloses the visible rows plus one preview row at the bottom.
	boxW := width*cellW + 2
	boxH := height + 1 + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Kill row indicator inside the left and right borders.
	killScreenY := boxY + 1 + (height - 1 - g.panelCfg.Board.KillRow)
	dst.Set(boxX, killScreenY, '╞')
	dst.Set(boxX+boxW-1, killScreenY, '╡')

	// Blocks. Row -1 is the visible slice of the preview stack.
	for _, blk := range g.board.Blocks() {
		row := blk.Row()
		col := blk.Col()
		if col < 0 || col >= width || row < -1 || row >= height {
			continue
		}

		sx := boxX + 1 + col*cellW
		sy := boxY + 1 + (height - 1 - row)

		r, c := blockGlyph(blk)
		for i := 0; i < cellW; i++ {
			dst.SetColored(sx+i, sy, r, c)
		}
	}

	g.renderCursor(dst, boxX, boxY, height)
	g.renderHUD(dst, boxX, boxY, boxW, boxH)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2, " GAME OVER ")
		dst.DrawTextCentered(dst.Height()/2+1, " press R to restart ")
	}
}

// blockGlyph picks the rune and color for a block's current state.
func blockGlyph(blk *Block) (rune, core.Color) {
	color := blockColors[blk.Color]
	switch blk.State {
	case StateSpawning:
		return '▒', core.ColorGray
	case StateMatched:
		return '◆', core.ColorBrightWhite
	case StateDespawning:
		return '░', color
	default:
		return '█', color
	}
}

func (g *Game) renderCursor(dst *core.Screen, boxX, boxY, height int) {
	row := g.board.CursorY.ToCellRounded()
	col := g.board.CursorX.ToCellRounded()
	if row < 0 || row >= height {
		return
	}

	sy := boxY + 1 + (height - 1 - row)
	sx := boxX + 1 + col*cellW
	dst.SetColored(sx-1, sy, '[', core.ColorBrightWhite)
	dst.SetColored(sx+2*cellW, sy, ']', core.ColorBrightWhite)
}

func (g *Game) renderHUD(dst *core.Screen, boxX, boxY, boxW, boxH int) {
	hudX := boxX + boxW + 2
	dst.DrawText(hudX, boxY+1, g.Title())
	dst.DrawText(hudX, boxY+3, fmt.Sprintf("Score: %d", g.score))

	// A live chain gets the highlight color.
	chain := fmt.Sprintf("Chain: x%d", g.board.ChainCounter())
	if g.board.ChainCounter() > 1 {
		dst.DrawTextColored(hudX, boxY+4, chain, core.ColorYellow)
	} else {
		dst.DrawText(hudX, boxY+4, chain)
	}
	dst.DrawText(hudX, boxY+5, fmt.Sprintf("Best chain: x%d", g.maxChain))

	if g.mode == ModeTimeAttack {
		tickRate := g.cfg.TickRate
		if tickRate <= 0 {
			tickRate = 60
		}
		dst.DrawText(hudX, boxY+7, fmt.Sprintf("Time: %ds", g.timeLeft/tickRate))
	} else if !g.board.LiftActive() {
		dst.DrawText(hudX, boxY+7, "Get ready...")
	}

	dst.DrawText(hudX, boxY+boxH-2, "arrows move · space swap · l lift")
}
