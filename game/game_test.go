package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neilwilcoxson/tetris/board"
)

type stubInput struct {
	intents []board.Direction
	quit    bool
}

func (s *stubInput) Intents() []board.Direction {
	out := s.intents
	s.intents = nil
	return out
}

func (s *stubInput) Quit() bool {
	return s.quit
}

// newTestGame returns a shell with stub input and a manual clock.
func newTestGame(seed uint64) (*Game, *stubInput, *time.Time) {
	g := New(board.NewSeeded(seed))
	input := &stubInput{}
	g.input = input

	clock := time.Unix(0, 0)
	g.now = func() time.Time { return clock }
	return g, input, &clock
}

// activeRow finds the active piece's anchor row.
func activeRow(t *testing.T, b *board.Board) int {
	t.Helper()
	for _, p := range b.CollectStats().Pieces {
		if p.Active {
			return p.Row
		}
	}
	t.Fatal("no active piece")
	return 0
}

func TestGravityDeadlineResets(t *testing.T) {
	g, _, clock := newTestGame(1)

	// The zero deadline has already passed, so the first frame ticks.
	require.NoError(t, g.Update())
	assert.Equal(t, 1, activeRow(t, g.board))

	// Within the interval nothing falls, however many frames run.
	*clock = clock.Add(GravityInterval / 2)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, 1, activeRow(t, g.board))

	*clock = clock.Add(GravityInterval / 2)
	require.NoError(t, g.Update())
	assert.Equal(t, 2, activeRow(t, g.board))
}

func TestInputIntentsReachBoard(t *testing.T) {
	g, input, clock := newTestGame(1)

	require.NoError(t, g.Update()) // consume the initial gravity tick
	rowBefore := activeRow(t, g.board)

	*clock = clock.Add(GravityInterval / 4)
	input.intents = []board.Direction{board.Down, board.Down}
	require.NoError(t, g.Update())

	assert.Equal(t, rowBefore+2, activeRow(t, g.board),
		"player drops apply on top of gravity")
}

func TestQuitTerminates(t *testing.T) {
	g, input, _ := newTestGame(1)
	input.quit = true

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestGameOverFreezesShell(t *testing.T) {
	g, _, clock := newTestGame(42)

	for frame := 0; !g.over; frame++ {
		require.Less(t, frame, 100000, "game did not terminate")
		*clock = clock.Add(GravityInterval)
		require.NoError(t, g.Update())
	}

	rows := g.board.RowsCompleted()
	*clock = clock.Add(GravityInterval)
	require.NoError(t, g.Update())

	assert.True(t, g.board.GameOver())
	assert.Equal(t, rows, g.board.RowsCompleted(), "terminal board must not change")
}
