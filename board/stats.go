package board

// BoardStats is a point-in-time snapshot of a board, collected for debug
// overlays and stress reports.
type BoardStats struct {
	State         State
	RowsCompleted int
	PieceCount    int
	OccupiedCells int
	Pieces        []PieceStats
}

// PieceStats describes one live piece.
type PieceStats struct {
	ID        PieceID
	Row, Col  int
	Cells     int
	Fragments int
	Active    bool
}

// CollectStats walks the piece registry and returns a snapshot. The board
// is single-threaded, so callers take the snapshot between updates.
func (b *Board) CollectStats() BoardStats {
	stats := BoardStats{
		State:         b.state,
		RowsCompleted: b.rowsCompleted,
		PieceCount:    len(b.order),
		Pieces:        make([]PieceStats, 0, len(b.order)),
	}

	for _, id := range b.order {
		p, _ := b.pieces.Get(id)
		cells := p.cellCount()
		stats.OccupiedCells += cells
		stats.Pieces = append(stats.Pieces, PieceStats{
			ID:        p.id,
			Row:       p.row,
			Col:       p.col,
			Cells:     cells,
			Fragments: p.fragments(),
			Active:    b.state == Playing && p.id == b.active,
		})
	}

	return stats
}
