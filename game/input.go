package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/neilwilcoxson/tetris/board"
)

// Input yields the directional intents collected since the last frame.
type Input interface {
	Intents() []board.Direction
	Quit() bool
}

var keyBindings = []struct {
	key ebiten.Key
	dir board.Direction
}{
	{ebiten.KeyArrowUp, board.Up},
	{ebiten.KeyArrowDown, board.Down},
	{ebiten.KeyArrowLeft, board.Left},
	{ebiten.KeyArrowRight, board.Right},
}

// KeyboardInput maps the arrow keys to intents, one intent per key press.
// Up reaches the board as a rotation through the Update contract.
type KeyboardInput struct{}

func (*KeyboardInput) Intents() []board.Direction {
	var intents []board.Direction
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			intents = append(intents, binding.dir)
		}
	}
	return intents
}

func (*KeyboardInput) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
