// Package runner drives a Grid: it seeds the board once, then renders,
// steps and waits at a fixed cadence until stopped.
package runner

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Renderer is the sink a Runner draws each frame to
type Renderer interface {
	Clear() error
	Display(g *model.Grid) error
	Status(label string, format string, args ...interface{}) error
}

// SourceFactory returns the seeding source for a fresh board. restart is
// 0 for the initial board and counts up on every automatic restart.
type SourceFactory func(restart int) model.SeedSource

// Runner owns a grid and the loop around it
type Runner struct {
	config    utils.Config
	grid      *model.Grid
	renderer  Renderer
	newSource SourceFactory
	history   *model.History
	stats     *utils.Stats

	generation     int
	lastRestartGen int
	stagnantCount  int
}

// New builds a Runner with a dead grid sized from config
func New(config utils.Config, renderer Renderer, newSource SourceFactory) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to create grid")
	}
	return &Runner{
		config:    config,
		grid:      grid,
		renderer:  renderer,
		newSource: newSource,
		history:   model.NewHistory(model.DefaultHistorySize),
		stats:     utils.NewStats(),
	}, nil
}

// Grid returns the grid driven by the runner
func (r *Runner) Grid() *model.Grid {
	return r.grid
}

// Stats returns the runner's performance counters
func (r *Runner) Stats() *utils.Stats {
	return r.stats
}

// Generation returns the number of steps taken so far
func (r *Runner) Generation() int {
	return r.generation
}

// Reset clears the board and seeds it again, for the given restart count
func (r *Runner) Reset(restart int) {
	r.grid.Clear()
	r.history.Reset()
	r.stagnantCount = 0
	if r.config.Showcase {
		addShowcasePatterns(r.grid)
	}
	r.grid.Seed(r.newSource(restart))
}

// Run seeds the grid, then repeats render, step and wait until ctx is
// done or the generation limit is reached. A restart reseeds right after
// a step, so the fresh board is always the next frame drawn. Cancellation
// is only observed between steps, so the grid is left holding a complete
// generation.
func (r *Runner) Run(ctx context.Context) error {
	r.Reset(0)
	lastFrameTime := time.Now()

	for {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		r.stats.Update(r.generation, r.grid.CountLivingCells(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := r.render(); err != nil {
			return err
		}

		if r.config.MaxGenerations > 0 && r.generation >= r.config.MaxGenerations {
			return nil
		}

		r.grid.Step()
		r.generation++
		r.checkRestart()

		if !wait(ctx, r.config.FrameRate) {
			return nil
		}
	}
}

// render draws the current generation with a status block underneath
func (r *Runner) render() error {
	if err := r.renderer.Clear(); err != nil {
		return err
	}
	if err := r.renderer.Display(r.grid); err != nil {
		return err
	}
	living := r.grid.CountLivingCells()
	density := float64(living) / float64(r.grid.Rows()*r.grid.Cols()) * 100
	if err := r.renderer.Status("Gen", "%d | Living: %d | Density: %.1f%%", r.generation, living, density); err != nil {
		return err
	}
	if err := r.renderer.Status("Performance", "%.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		r.stats.GenerationsPerSecond, r.stats.AveragePopulation, r.stats.Runtime().Seconds()); err != nil {
		return err
	}
	if !r.config.AutoRestart {
		return nil
	}
	return r.renderer.Status("Restarts", "%d | Generations since restart: %d",
		r.stats.Restarts, r.generation-r.lastRestartGen)
}

// checkRestart reseeds the board on extinction or lasting stagnation
// when auto restart is on. The generation is judged against earlier
// generations before it is recorded itself.
func (r *Runner) checkRestart() {
	if !r.config.AutoRestart {
		return
	}

	if r.history.IsStagnant(r.grid) {
		r.stagnantCount++
	} else {
		r.stagnantCount = 0
	}
	r.history.Update(r.grid)

	if r.grid.CountLivingCells() == 0 || r.stagnantCount >= r.config.StagnationThreshold {
		r.stats.Restarts++
		r.lastRestartGen = r.generation
		r.Reset(r.stats.Restarts)
	}
}

// wait sleeps for d and reports whether ctx is still live afterwards
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// addShowcasePatterns places gliders and blinkers on boards big enough
// to hold them
func addShowcasePatterns(g *model.Grid) {
	rows, cols := g.Rows(), g.Cols()
	if cols < 10 || rows < 10 {
		return
	}
	g.AddGlider(model.Position{X: 5, Y: 5})
	if cols >= 20 && rows >= 15 {
		g.AddGlider(model.Position{X: cols - 8, Y: 5})
	}
	g.AddBlinker(model.Position{X: cols / 4, Y: rows / 4})
	if cols >= 30 {
		g.AddBlinker(model.Position{X: 3 * cols / 4, Y: 3 * rows / 4})
	}
}
