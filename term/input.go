package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/neilwilcoxson/tetris/board"
)

// intentForKey translates a key event into a board intent. quit reports
// that the player wants out; ok reports that dir carries an intent.
func intentForKey(ev *tcell.EventKey) (dir board.Direction, quit, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return board.Up, false, true
	case tcell.KeyDown:
		return board.Down, false, true
	case tcell.KeyLeft:
		return board.Left, false, true
	case tcell.KeyRight:
		return board.Right, false, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, true, false
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return 0, true, false
		}
	}
	return 0, false, false
}
