// Package term is the terminal frontend: a tcell screen around a board,
// driven by the same reset-on-tick gravity contract as the windowed shell.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/neilwilcoxson/tetris/board"
)

// GravityInterval is how long the active piece rests before it falls one
// row. The timer resets after every tick.
const GravityInterval = time.Second

// cellWidth is the number of terminal columns per board cell. Two keeps
// the tiles roughly square.
const cellWidth = 2

// Game owns the terminal screen and the board it renders.
type Game struct {
	screen tcell.Screen
	board  *board.Board
	over   bool
}

// New initializes the terminal screen. Callers must Fini it on the way out.
func New(b *board.Board) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return &Game{screen: screen, board: b}, nil
}

// Fini restores the terminal.
func (g *Game) Fini() {
	g.screen.Fini()
}

// Run drives the board until the game ends or the player quits, then
// returns the rows-completed total. After game over it waits for one more
// key so the final position stays visible.
func (g *Game) Run() int {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	gravity := time.NewTimer(GravityInterval)
	defer gravity.Stop()

	g.draw()
	for !g.over {
		select {
		case <-gravity.C:
			gravity.Reset(GravityInterval)
			if !g.board.Update(board.Down) {
				g.over = true
			}

		case ev, ok := <-events:
			if !ok {
				return g.board.RowsCompleted()
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				dir, quit, ok := intentForKey(ev)
				if quit {
					return g.board.RowsCompleted()
				}
				if ok && !g.board.Update(dir) {
					g.over = true
				}
			}
		}
		g.draw()
	}

	g.waitForKey(events)
	return g.board.RowsCompleted()
}

func (g *Game) waitForKey(events <-chan tcell.Event) {
	for ev := range events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

func (g *Game) draw() {
	g.screen.Clear()
	g.drawBorder()

	for _, tile := range g.board.Tiles() {
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(
			int32(tile.Color.R), int32(tile.Color.G), int32(tile.Color.B)))
		for dx := range cellWidth {
			g.screen.SetContent(1+tile.Col*cellWidth+dx, 1+tile.Row, ' ', nil, style)
		}
	}

	g.drawText(0, board.NumRows+2, fmt.Sprintf("rows: %d", g.board.RowsCompleted()))
	if g.over {
		g.drawText(2, board.NumRows/2, " GAME OVER ",
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		g.drawText(0, board.NumRows+3, "press any key to exit")
	} else {
		g.drawText(0, board.NumRows+3, "arrows move, up rotates, q quits")
	}

	g.screen.Show()
}

func (g *Game) drawBorder() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	width := board.NumCols * cellWidth

	for x := 0; x <= width+1; x++ {
		g.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		g.screen.SetContent(x, board.NumRows+1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y <= board.NumRows; y++ {
		g.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		g.screen.SetContent(width+1, y, tcell.RuneVLine, nil, style)
	}
	g.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	g.screen.SetContent(width+1, 0, tcell.RuneURCorner, nil, style)
	g.screen.SetContent(0, board.NumRows+1, tcell.RuneLLCorner, nil, style)
	g.screen.SetContent(width+1, board.NumRows+1, tcell.RuneLRCorner, nil, style)
}

func (g *Game) drawText(x, y int, text string, styles ...tcell.Style) {
	style := tcell.StyleDefault
	if len(styles) > 0 {
		style = styles[0]
	}
	for i, r := range text {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}
