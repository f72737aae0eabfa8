package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/neilwilcoxson/tetris/game"
)

// NewPerformanceWindow plots recent frame times and tabulates the shell's
// per-phase timing.
func NewPerformanceWindow(stats *game.FrameStats, historyFrames int) ImguiItem {
	frameHistory := make([]float32, historyFrames)
	frameIndex := 0
	timer := newFrameTimer()

	return ImguiItem{Render: func() {
		if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		frameHistory[frameIndex] = timer.deltaTime() * 1000.0
		frameIndex = (frameIndex + 1) % historyFrames

		var avgFrameTime float32
		for _, ft := range frameHistory {
			avgFrameTime += ft
		}
		avgFrameTime /= float32(historyFrames)

		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &frameHistory[0], int32(len(frameHistory)))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Snapshot() {
				imgui.TableNextRow()

				imgui.TableNextColumn()
				imgui.Text(phase.Name)

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.Count))

				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.Round(time.Microsecond).String())

				imgui.TableNextColumn()
				imgui.Text(phase.MinDuration.Round(time.Microsecond).String())

				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.Round(time.Microsecond).String())
			}

			imgui.EndTable()
		}

		imgui.End()
	}}
}

type frameTimer struct {
	lastFrameTime time.Time
}

func newFrameTimer() *frameTimer {
	return &frameTimer{lastFrameTime: time.Now()}
}

func (ft *frameTimer) deltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
