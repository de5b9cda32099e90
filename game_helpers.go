package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/runner"
	"github.com/sheikhrachel/go-life/utils"
)

// sourceFactory seeds every board from config. A fixed seed is offset by
// the restart count so restarts do not replay the first board.
func sourceFactory(config utils.Config) runner.SourceFactory {
	return func(restart int) model.SeedSource {
		seed := config.Seed
		if seed != 0 {
			seed += int64(restart)
		}
		return utils.RandomSource(seed, config.RandomDensity)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config) {
	fmt.Printf("Grid: %dx%d | Interval: %v | Density: %.2f\n",
		config.Cols, config.Rows, config.FrameRate, config.RandomDensity)
	fmt.Printf("Features: Auto restart: %v, Showcase patterns: %v, Color: %v\n",
		config.AutoRestart, config.Showcase, config.Color)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayFinalStats shows the summary printed on shutdown
func displayFinalStats(r *runner.Runner) {
	stats := r.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		r.Generation(), stats.Runtime().Round(100*time.Millisecond).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d restarts\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Restarts)
}
