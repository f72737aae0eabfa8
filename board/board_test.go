package board

import (
	"math/rand/v2"
	"testing"

	"github.com/kamstrup/intmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBoard builds a board without the initial spawn so fixtures control
// every piece on it.
func newTestBoard() *Board {
	return &Board{
		pieces: intmap.New[PieceID, *Piece](16),
		rng:    rand.New(rand.NewPCG(1, 2)),
	}
}

// placePiece registers a static piece through the normal commit path.
func placePiece(t *testing.T, b *Board, row, col int, mask Mask) *Piece {
	t.Helper()

	b.nextID++
	p := &Piece{id: b.nextID, mask: mask, row: row, col: col, color: defaultPalette[0]}
	require.True(t, p.moveTo(b, row, col, mask), "fixture placement must fit")

	b.pieces.Put(p.id, p)
	b.order = append(b.order, p.id)
	return p
}

// requireConsistent checks the grid-as-derived-index invariant: every cell's
// owner matches the union of the live pieces' absolute cells, with no cell
// claimed twice.
func requireConsistent(t *testing.T, b *Board) {
	t.Helper()

	var want [NumRows][NumCols]PieceID
	for _, id := range b.order {
		p, ok := b.pieces.Get(id)
		require.True(t, ok, "order references unknown piece %d", id)
		for r := range MaskSize {
			for c := range MaskSize {
				if !p.mask[r][c] {
					continue
				}
				require.Zero(t, want[p.row+r][p.col+c],
					"pieces %d and %d overlap at (%d,%d)", want[p.row+r][p.col+c], id, p.row+r, p.col+c)
				want[p.row+r][p.col+c] = id
			}
		}
	}
	require.Equal(t, want, b.grid, "grid does not match the union of piece footprints")
}

// canFall reports whether the piece could move one row down, without
// committing anything.
func canFall(b *Board, p *Piece) bool {
	for r := range MaskSize {
		for c := range MaskSize {
			if !p.mask[r][c] {
				continue
			}
			absRow := p.row + r + 1
			absCol := p.col + c
			if absRow >= NumRows {
				return false
			}
			if owner := b.grid[absRow][absCol]; owner != 0 && owner != p.id {
				return false
			}
		}
	}
	return true
}

var barMask = Mask{{true, true, true, true}}

var squareMask = Mask{
	{true, true, false, false},
	{true, true, false, false},
}

func TestMoveToBoundaryRejection(t *testing.T) {
	b := newTestBoard()
	p := placePiece(t, b, NumRows-1, 0, barMask)

	gridBefore := b.grid

	assert.False(t, p.moveTo(b, p.row, p.col-1, p.mask), "left of column 0 must be rejected")
	assert.False(t, p.moveTo(b, p.row+1, p.col, p.mask), "below the last row must be rejected")

	assert.Equal(t, gridBefore, b.grid, "rejected move must not touch the grid")
	assert.Equal(t, NumRows-1, p.row)
	assert.Equal(t, 0, p.col)
	assert.Equal(t, barMask, p.mask)
}

func TestMoveToCollisionRejectionIsAtomic(t *testing.T) {
	b := newTestBoard()
	blocker := placePiece(t, b, 10, 4, squareMask)
	p := placePiece(t, b, 10, 0, barMask)

	gridBefore := b.grid
	maskBefore := p.mask

	assert.False(t, p.moveTo(b, 10, 1, p.mask), "overlap with another piece must be rejected")

	assert.Equal(t, gridBefore, b.grid)
	assert.Equal(t, maskBefore, p.mask)
	assert.Equal(t, 0, p.col)
	_ = blocker
	requireConsistent(t, b)
}

func TestMoveToCommitUpdatesGrid(t *testing.T) {
	b := newTestBoard()
	p := placePiece(t, b, 5, 3, squareMask)

	require.True(t, p.moveTo(b, 5, 4, p.mask))

	assert.Zero(t, b.grid[5][3], "old column must be cleared")
	assert.Zero(t, b.grid[6][3])
	assert.Equal(t, p.id, b.grid[5][4])
	assert.Equal(t, p.id, b.grid[6][5])
	requireConsistent(t, b)
}

func TestRotationOverOwnFootprint(t *testing.T) {
	b := newTestBoard()
	// The rotated footprint overlaps cells the piece already owns; those
	// must not count as collisions.
	p := placePiece(t, b, 8, 4, Mask{
		{false, true, false, false},
		{true, true, true, false},
	})
	before := p.mask

	p.rotate(b)

	assert.NotEqual(t, before, p.mask, "unobstructed rotation must commit")
	requireConsistent(t, b)
}

func TestRotationRejectedKeepsMask(t *testing.T) {
	b := newTestBoard()
	p := placePiece(t, b, NumRows-1, 0, barMask)
	before := p.mask
	gridBefore := b.grid

	p.rotate(b) // vertical bar would run off the bottom edge

	assert.Equal(t, before, p.mask, "rejected rotation must keep the old mask")
	assert.Equal(t, gridBefore, b.grid)
}

func TestMoveLandingSignal(t *testing.T) {
	b := newTestBoard()
	p := placePiece(t, b, NumRows-1, 0, barMask)

	assert.True(t, p.move(b, Down), "rejected Down move signals landing")
	assert.False(t, p.move(b, Left), "rejected Left move is not a landing")
	assert.False(t, p.move(b, Right), "successful move is not a landing")
}

func TestCollapseSingleRow(t *testing.T) {
	b := newTestBoard()
	placePiece(t, b, NumRows-1, 0, barMask)
	placePiece(t, b, NumRows-1, 4, barMask)
	placePiece(t, b, NumRows-1, 8, barMask)

	b.collapseFullRows()

	assert.Equal(t, 1, b.rowsCompleted)
	assert.Empty(t, b.order, "pieces emptied by the clear must be pruned")
	for col := range NumCols {
		assert.Zero(t, b.grid[NumRows-1][col], "cleared row must be empty")
	}
	requireConsistent(t, b)
}

func TestCollapseKeepsPartiallyClearedPieces(t *testing.T) {
	b := newTestBoard()
	left := placePiece(t, b, NumRows-2, 0, squareMask)
	placePiece(t, b, NumRows-1, 2, barMask)
	placePiece(t, b, NumRows-1, 6, barMask)
	right := placePiece(t, b, NumRows-2, 10, squareMask)

	b.collapseFullRows()

	assert.Equal(t, 1, b.rowsCompleted)
	assert.Len(t, b.order, 2, "the two squares must survive")
	assert.Equal(t, 2, left.cellCount())
	assert.Equal(t, 2, right.cellCount())

	// The surviving halves settle back onto the floor.
	assert.Equal(t, left.id, b.grid[NumRows-1][0])
	assert.Equal(t, left.id, b.grid[NumRows-1][1])
	assert.Equal(t, right.id, b.grid[NumRows-1][10])
	assert.Equal(t, right.id, b.grid[NumRows-1][11])
	for col := 2; col < 10; col++ {
		assert.Zero(t, b.grid[NumRows-1][col])
	}
	requireConsistent(t, b)
}

func TestCollapseCountsStackedRowsOnce(t *testing.T) {
	b := newTestBoard()
	for _, row := range []int{NumRows - 2, NumRows - 1} {
		placePiece(t, b, row, 0, barMask)
		placePiece(t, b, row, 4, barMask)
		placePiece(t, b, row, 8, barMask)
	}

	b.collapseFullRows()

	assert.Equal(t, 2, b.rowsCompleted, "each full row counts exactly once")
	assert.Empty(t, b.order)
}

func TestSettleReachesFixedPoint(t *testing.T) {
	b := newTestBoard()
	single := Mask{{true}}

	// upper is earlier in the order than lower, so a single settle pass in
	// order would leave it floating once lower drops away from under it.
	upper := placePiece(t, b, NumRows-3, 0, single)
	lower := placePiece(t, b, NumRows-2, 0, single)
	placePiece(t, b, NumRows-1, 0, barMask)
	placePiece(t, b, NumRows-1, 4, barMask)
	placePiece(t, b, NumRows-1, 8, barMask)

	b.collapseFullRows()

	assert.Equal(t, NumRows-1, lower.row)
	assert.Equal(t, NumRows-2, upper.row)

	for _, id := range b.order {
		p, _ := b.pieces.Get(id)
		assert.False(t, canFall(b, p), "piece %d can still fall after settling", id)
	}
	requireConsistent(t, b)
}

func TestUpdateDrivesGameToGameOver(t *testing.T) {
	b := NewSeeded(42)

	updates := 0
	for b.Update(Down) {
		updates++
		require.Less(t, updates, 100000, "game did not terminate")
	}

	assert.True(t, b.GameOver())
	assert.Equal(t, GameOver, b.State())
	assert.Zero(t, b.Active())
	// Pure Down play stacks pieces in the spawn columns and never fills a
	// row across all twelve columns.
	assert.Zero(t, b.RowsCompleted())

	assert.False(t, b.Update(Down), "updates after game over stay rejected")
	assert.False(t, b.Update(Left))
}

func TestUpdateGridStaysConsistentUnderRandomPlay(t *testing.T) {
	b := NewSeeded(7)
	rng := rand.New(rand.NewPCG(3, 4))
	dirs := []Direction{Up, Down, Left, Right}

	for range 5000 {
		if !b.Update(dirs[rng.IntN(len(dirs))]) {
			break
		}
		requireConsistent(t, b)
	}
}

func TestSpawnBlockedLeavesPieceUnregistered(t *testing.T) {
	b := newTestBoard()
	// Occupy the whole spawn frame.
	placePiece(t, b, spawnRow, spawnCol, Mask{
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
	})

	before := len(b.order)
	assert.False(t, b.spawn())
	assert.Len(t, b.order, before, "blocked spawn must not register a piece")
	requireConsistent(t, b)
}

func TestCollectStats(t *testing.T) {
	b := newTestBoard()
	placePiece(t, b, NumRows-2, 0, squareMask)
	placePiece(t, b, NumRows-1, 4, barMask)
	b.active = b.order[0]

	stats := b.CollectStats()

	assert.Equal(t, Playing, stats.State)
	assert.Equal(t, 2, stats.PieceCount)
	assert.Equal(t, 8, stats.OccupiedCells)
	require.Len(t, stats.Pieces, 2)
	assert.True(t, stats.Pieces[0].Active)
	assert.False(t, stats.Pieces[1].Active)
	assert.Equal(t, 4, stats.Pieces[0].Cells)
	assert.Equal(t, 1, stats.Pieces[0].Fragments)
}

func TestPaletteRoundRobin(t *testing.T) {
	b := NewSeeded(1)
	first, _ := b.pieces.Get(b.active)
	assert.Equal(t, defaultPalette[0], first.Color())

	// Drop the first piece all the way so a second one spawns.
	for !b.GameOver() {
		prev := b.active
		b.Update(Down)
		if b.active != prev {
			break
		}
	}
	require.False(t, b.GameOver())
	second, _ := b.pieces.Get(b.active)
	assert.Equal(t, defaultPalette[1], second.Color())
}
