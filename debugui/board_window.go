package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/neilwilcoxson/tetris/board"
)

// NewBoardWindow shows a live snapshot of the board: state, counters and a
// table of every piece still on it.
func NewBoardWindow(b *board.Board) ImguiItem {
	return ImguiItem{Render: func() {
		if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		stats := b.CollectStats()

		imgui.Text(fmt.Sprintf("State: %s", stats.State))
		imgui.Text(fmt.Sprintf("Rows Completed: %d", stats.RowsCompleted))
		imgui.Text(fmt.Sprintf("Pieces: %d", stats.PieceCount))
		imgui.Text(fmt.Sprintf("Occupied Cells: %d", stats.OccupiedCells))

		imgui.Separator()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
		if imgui.BeginTableV("PieceTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Anchor")
			imgui.TableSetupColumn("Cells")
			imgui.TableSetupColumn("Fragments")
			imgui.TableSetupColumn("Active")
			imgui.TableHeadersRow()

			for _, piece := range stats.Pieces {
				imgui.TableNextRow()

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", piece.ID))

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("(%d, %d)", piece.Row, piece.Col))

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", piece.Cells))

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", piece.Fragments))

				imgui.TableNextColumn()
				if piece.Active {
					imgui.Text("yes")
				} else {
					imgui.Text("-")
				}
			}

			imgui.EndTable()
		}

		imgui.End()
	}}
}
