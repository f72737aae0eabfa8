package board

import "image/color"

// PieceID identifies a piece for the lifetime of a board. IDs are assigned
// sequentially and never reused, so grid cells and the active-piece
// reference stay valid across registry pruning. 0 means "no piece".
type PieceID uint32

// Piece is one falling shape: an occupancy mask in its local frame plus the
// anchor cell that places that frame on the board. All mutation goes
// through the board-mediated commit path or row collapse.
type Piece struct {
	id    PieceID
	mask  Mask
	row   int
	col   int
	color color.RGBA
}

// ID returns the piece's stable identifier.
func (p *Piece) ID() PieceID { return p.id }

// Anchor returns the board cell of the mask's top-left corner.
func (p *Piece) Anchor() (row, col int) { return p.row, p.col }

// Color returns the piece's display color.
func (p *Piece) Color() color.RGBA { return p.color }

// CurrentMask returns a copy of the piece's occupancy mask.
func (p *Piece) CurrentMask() Mask { return p.mask }

// rotated returns the mask turned 90 degrees clockwise: local cell (r, c)
// maps to (c, MaskSize-1-r).
func (p *Piece) rotated() Mask {
	var out Mask
	for r := range MaskSize {
		for c := range MaskSize {
			out[c][MaskSize-1-r] = p.mask[r][c]
		}
	}
	return out
}

// moveTo validates a candidate placement against the board and commits it
// only if every occupied cell fits. Cells already owned by this piece do
// not count as collisions, which is what allows an in-place rotation over
// the piece's own footprint. Either the whole move lands or nothing
// changes: the grid, anchor, and mask are untouched on rejection.
func (p *Piece) moveTo(b *Board, newRow, newCol int, newMask Mask) bool {
	for r := range MaskSize {
		for c := range MaskSize {
			if !newMask[r][c] {
				continue
			}

			absRow := newRow + r
			absCol := newCol + c

			if absRow < 0 || absRow >= NumRows || absCol < 0 || absCol >= NumCols {
				return false
			}
			if owner := b.grid[absRow][absCol]; owner != 0 && owner != p.id {
				return false
			}
		}
	}

	for r := range MaskSize {
		for c := range MaskSize {
			if p.mask[r][c] {
				b.grid[p.row+r][p.col+c] = 0
			}
		}
	}
	for r := range MaskSize {
		for c := range MaskSize {
			if newMask[r][c] {
				b.grid[newRow+r][newCol+c] = p.id
			}
		}
	}

	p.row = newRow
	p.col = newCol
	p.mask = newMask
	return true
}

// move attempts a one-cell translation. The return value is the landing
// signal: true exactly when a Down move was rejected, meaning the piece
// rests on the floor or on another piece and should be frozen.
func (p *Piece) move(b *Board, dir Direction) bool {
	newRow, newCol := p.row, p.col
	switch dir {
	case Up:
		newRow--
	case Down:
		newRow++
	case Left:
		newCol--
	case Right:
		newCol++
	}
	return !p.moveTo(b, newRow, newCol, p.mask) && dir == Down
}

// rotate tries the clockwise rotation at the current anchor. On any
// conflict the candidate is discarded and the piece keeps its mask; there
// is no wall kick.
func (p *Piece) rotate(b *Board) {
	p.moveTo(b, p.row, p.col, p.rotated())
}

// clearTile removes the piece's cell at an absolute board coordinate.
// Row collapse calls this; clearing the matching grid entry is the
// caller's job.
func (p *Piece) clearTile(row, col int) {
	p.mask[row-p.row][col-p.col] = false
}

// empty reports whether the mask has no cells left.
func (p *Piece) empty() bool {
	for r := range MaskSize {
		for c := range MaskSize {
			if p.mask[r][c] {
				return false
			}
		}
	}
	return true
}

// cellCount returns the number of occupied cells in the mask.
func (p *Piece) cellCount() int {
	n := 0
	for r := range MaskSize {
		for c := range MaskSize {
			if p.mask[r][c] {
				n++
			}
		}
	}
	return n
}

// fragments counts the 4-connected components of the mask. A partial row
// clear can leave a piece in more than one fragment; such a piece still
// moves as a single rigid unit.
func (p *Piece) fragments() int {
	var seen Mask
	count := 0

	var fill func(r, c int)
	fill = func(r, c int) {
		if r < 0 || r >= MaskSize || c < 0 || c >= MaskSize {
			return
		}
		if seen[r][c] || !p.mask[r][c] {
			return
		}
		seen[r][c] = true
		fill(r-1, c)
		fill(r+1, c)
		fill(r, c-1)
		fill(r, c+1)
	}

	for r := range MaskSize {
		for c := range MaskSize {
			if p.mask[r][c] && !seen[r][c] {
				count++
				fill(r, c)
			}
		}
	}
	return count
}
