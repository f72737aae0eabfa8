// Package game is the windowed frontend: an Ebiten shell around a board
// that owns the gravity clock, routes keyboard intents, and draws the
// playfield.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/neilwilcoxson/tetris/board"
)

// GravityInterval is how long the active piece rests before it falls one
// row. The deadline resets to now+interval after each tick, so a tick is
// never owed retroactively after a slow frame.
const GravityInterval = time.Second

// Overlay is an optional debug layer rendered on top of the playfield.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game around a single board.
type Game struct {
	board *board.Board
	input Input
	stats *FrameStats

	gravityDeadline time.Time
	over            bool

	overlay Overlay
	now     func() time.Time
}

// New wires a shell around the given board with keyboard input.
func New(b *board.Board) *Game {
	return &Game{
		board: b,
		input: &KeyboardInput{},
		stats: NewFrameStats(),
		now:   time.Now,
	}
}

// SetOverlay installs a debug overlay. Call before ebiten.RunGame.
func (g *Game) SetOverlay(overlay Overlay) {
	g.overlay = overlay
}

// Board returns the board this shell drives.
func (g *Game) Board() *board.Board {
	return g.board
}

// Stats returns the shell's frame timing collector.
func (g *Game) Stats() *FrameStats {
	return g.stats
}

func (g *Game) Update() error {
	start := g.now()
	defer func() {
		g.stats.Observe(PhaseUpdate, g.now().Sub(start))
	}()

	if g.overlay != nil {
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
	}

	if g.input.Quit() {
		return ebiten.Termination
	}

	if g.over {
		// Terminal screen stays up until the player quits.
		return nil
	}

	now := g.now()
	if !now.Before(g.gravityDeadline) {
		g.gravityDeadline = now.Add(GravityInterval)
		if !g.board.Update(board.Down) {
			g.over = true
			return nil
		}
	}

	for _, dir := range g.input.Intents() {
		if !g.board.Update(dir) {
			g.over = true
			return nil
		}
	}
	return nil
}
