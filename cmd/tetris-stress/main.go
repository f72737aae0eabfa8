// Command tetris-stress plays random headless games against the board
// engine for a fixed duration and prints a markdown report of update
// latency and memory behavior.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/neilwilcoxson/tetris/board"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int64("games", 0, "Stop after this many games. 0 means duration-bound only.")
	seed := flag.Uint64("seed", 1, "Base seed. Game n plays on seed+n.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting board stress test...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	dirs := []board.Direction{board.Up, board.Down, board.Left, board.Right}
	rng := rand.New(rand.NewPCG(*seed, *seed^0xda3e39cb94b95bdb))

	log.Printf("Running random play for %s...\n", *duration)
	startTime := time.Now()
	deadline := startTime.Add(*duration)

	for time.Now().Before(deadline) && (*games == 0 || report.Games < *games) {
		gameSeed := *seed + uint64(report.Games)
		b := board.NewSeeded(gameSeed)

		for {
			updateStart := time.Now()
			ok := b.Update(dirs[rng.IntN(len(dirs))])
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++

			if !ok {
				break
			}
			if report.TotalUpdates%1024 == 0 && !time.Now().Before(deadline) {
				break
			}
		}

		report.Games++
		rows := b.RowsCompleted()
		report.TotalRows += int64(rows)
		if rows > report.BestRows {
			report.BestRows = rows
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
