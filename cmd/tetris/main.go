// Command tetris runs the windowed game. -debug adds a Dear ImGui overlay
// with a board inspector and frame timing.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/neilwilcoxson/tetris/board"
	"github.com/neilwilcoxson/tetris/debugui"
	"github.com/neilwilcoxson/tetris/game"
)

func main() {
	seed := flag.Uint64("seed", 0, "Shape sequence seed. 0 picks a random one.")
	debug := flag.Bool("debug", false, "Show the ImGui inspection overlay.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	g := game.New(board.NewSeeded(*seed))

	if *debug {
		backend := debugui.NewImguiBackend("tetris", game.ScreenWidth*2, game.ScreenHeight*2)
		overlay := debugui.NewOverlay(backend)
		overlay.Add(
			debugui.NewBoardWindow(g.Board()),
			debugui.NewPerformanceWindow(g.Stats(), 120),
		)
		g.SetOverlay(overlay)
	} else {
		ebiten.SetWindowSize(game.ScreenWidth*2, game.ScreenHeight*2)
		ebiten.SetWindowTitle("tetris")
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Rows Completed: %d\n", g.Board().RowsCompleted())
}
