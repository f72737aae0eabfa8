package board

import (
	"image/color"
	"math/rand/v2"

	"github.com/kamstrup/intmap"
)

// Board dimensions in cells.
const (
	NumRows = 20
	NumCols = 12
)

// Every piece enters the board with its local frame anchored here.
const (
	spawnRow = 0
	spawnCol = 0
)

// State is the board's lifecycle state. The only transition is
// Playing -> GameOver, taken when a freshly spawned piece cannot be placed.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// Board owns the cell grid and every piece spawned into it. The grid is a
// derived index over the piece registry: each cell holds the ID of the
// piece covering it, and after any committed move it equals the union of
// all live pieces' absolute cells with one owner per cell.
type Board struct {
	grid   [NumRows][NumCols]PieceID
	pieces *intmap.Map[PieceID, *Piece]
	order  []PieceID // spawn order, used for collapse sweeps and snapshots

	active        PieceID
	nextID        PieceID
	rowsCompleted int
	state         State

	rng        *rand.Rand
	paletteIdx int
}

// New creates a board with a randomly seeded shape sequence and spawns the
// first active piece.
func New() *Board {
	return NewSeeded(rand.Uint64())
}

// NewSeeded creates a board whose shape sequence is determined by seed.
func NewSeeded(seed uint64) *Board {
	b := &Board{
		pieces: intmap.New[PieceID, *Piece](64),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	b.spawn() // cannot fail on an empty grid
	return b
}

// Update applies one directional intent to the active piece and is the only
// externally driven state transition. Up rotates in place; the other
// directions translate. When a Down move is rejected the piece has landed:
// full rows collapse and a new piece spawns. Update returns false exactly
// when that spawn is blocked, which ends the game; afterwards the board
// ignores further intents.
func (b *Board) Update(dir Direction) bool {
	if b.state == GameOver {
		return false
	}

	active, ok := b.pieces.Get(b.active)
	if !ok {
		return false
	}

	shouldSpawn := false
	if dir == Up {
		active.rotate(b)
	} else {
		shouldSpawn = active.move(b, dir)
	}

	if shouldSpawn {
		b.collapseFullRows()
		if !b.spawn() {
			b.state = GameOver
			return false
		}
	}
	return true
}

// spawn creates a piece at the spawn anchor and commits it through the same
// validate-then-commit path as every other move, so the grid is consistent
// from the moment the piece exists. Returns false when the spawn cells are
// blocked; the piece is not registered in that case.
func (b *Board) spawn() bool {
	b.nextID++
	p := &Piece{
		id:    b.nextID,
		mask:  defaultShapes[b.rng.IntN(len(defaultShapes))],
		row:   spawnRow,
		col:   spawnCol,
		color: defaultPalette[b.paletteIdx],
	}
	b.paletteIdx = (b.paletteIdx + 1) % len(defaultPalette)

	if !p.moveTo(b, spawnRow, spawnCol, p.mask) {
		return false
	}

	b.pieces.Put(p.id, p)
	b.order = append(b.order, p.id)
	b.active = p.id
	return true
}

// isRowFull reports whether every cell in the row has an owner. A full row
// bumps rowsCompleted as a side effect, so each row must be checked exactly
// once per collapse sweep; collapseFullRows is the only caller.
func (b *Board) isRowFull(row int) bool {
	for col := range NumCols {
		if b.grid[row][col] == 0 {
			return false
		}
	}
	b.rowsCompleted++
	return true
}

// collapseFullRows sweeps the rows top to bottom. Each full row is cleared
// out of both the owner grid and the covering pieces' masks, pieces that
// lost their last cell are pruned, the grid is rebuilt from the survivors,
// and everything settles under gravity before the sweep continues.
func (b *Board) collapseFullRows() {
	for row := range NumRows {
		if !b.isRowFull(row) {
			continue
		}

		for col := range NumCols {
			p, _ := b.pieces.Get(b.grid[row][col])
			p.clearTile(row, col)
			b.grid[row][col] = 0
		}

		b.prune()
		b.rebuildGrid()
		b.settle()
	}
}

// prune drops registry entries whose masks emptied out.
func (b *Board) prune() {
	live := b.order[:0]
	for _, id := range b.order {
		p, _ := b.pieces.Get(id)
		if p.empty() {
			b.pieces.Del(id)
			continue
		}
		live = append(live, id)
	}
	b.order = live
}

// rebuildGrid rewrites the owner index from scratch out of the surviving
// pieces' anchors and masks. Rebuilding wholesale after a removal sidesteps
// incremental index maintenance entirely.
func (b *Board) rebuildGrid() {
	b.grid = [NumRows][NumCols]PieceID{}
	for _, id := range b.order {
		p, _ := b.pieces.Get(id)
		p.moveTo(b, p.row, p.col, p.mask)
	}
}

// settle drops every piece as far as it goes and repeats the sweep until a
// fixed point: a piece early in the order can rest on one that falls away
// later in the same sweep.
func (b *Board) settle() {
	for moved := true; moved; {
		moved = false
		for _, id := range b.order {
			p, _ := b.pieces.Get(id)
			for p.moveTo(b, p.row+1, p.col, p.mask) {
				moved = true
			}
		}
	}
}

// Tile is one occupied cell in board space, ready to draw.
type Tile struct {
	Row, Col int
	Color    color.RGBA
}

// Tiles returns the occupied cells for one frame of drawing, in piece
// spawn order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b.order)*4)
	for _, id := range b.order {
		p, _ := b.pieces.Get(id)
		for r := range MaskSize {
			for c := range MaskSize {
				if p.mask[r][c] {
					tiles = append(tiles, Tile{Row: p.row + r, Col: p.col + c, Color: p.color})
				}
			}
		}
	}
	return tiles
}

// RowsCompleted returns the number of rows cleared over the board's
// lifetime.
func (b *Board) RowsCompleted() int { return b.rowsCompleted }

// State returns the board's lifecycle state.
func (b *Board) State() State { return b.state }

// GameOver reports whether the board has reached its terminal state.
func (b *Board) GameOver() bool { return b.state == GameOver }

// Active returns the ID of the piece currently under gravity and input
// control, or 0 after game over.
func (b *Board) Active() PieceID {
	if b.state == GameOver {
		return 0
	}
	return b.active
}
