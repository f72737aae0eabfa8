// Command tetris-term runs the game in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/neilwilcoxson/tetris/board"
	"github.com/neilwilcoxson/tetris/term"
)

func main() {
	seed := flag.Uint64("seed", 0, "Shape sequence seed. 0 picks a random one.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	g, err := term.New(board.NewSeeded(*seed))
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}

	rows := g.Run()
	g.Fini()

	fmt.Printf("Rows Completed: %d\n", rows)
}
