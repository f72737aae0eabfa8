package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/neilwilcoxson/tetris/board"
)

// TileSize is the side length of one board cell in logical pixels.
const TileSize = 20

const (
	boardLeft = 4 * TileSize
	boardTop  = 2 * TileSize

	ScreenWidth  = 2*boardLeft + board.NumCols*TileSize
	ScreenHeight = 2*boardTop + board.NumRows*TileSize
)

var (
	backgroundColor = color.RGBA{A: 255}
	borderColor     = color.RGBA{G: 255, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	start := g.now()
	defer func() {
		g.stats.Observe(PhaseDraw, g.now().Sub(start))
	}()

	screen.Fill(backgroundColor)

	vector.StrokeRect(screen,
		boardLeft-1, boardTop-1,
		board.NumCols*TileSize+2, board.NumRows*TileSize+2,
		1, borderColor, false)

	for _, tile := range g.board.Tiles() {
		vector.DrawFilledRect(screen,
			float32(boardLeft+tile.Col*TileSize),
			float32(boardTop+tile.Row*TileSize),
			TileSize, TileSize,
			tile.Color, false)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("ROWS: %d", g.board.RowsCompleted()), boardLeft, 4)
	if g.over {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardLeft, 20)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return ScreenWidth, ScreenHeight
}
