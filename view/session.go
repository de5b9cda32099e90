package view

import (
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/runner"
)

// RunningState is the mode of an interactive session
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateRun
)

// session holds the board behind the interactive viewer. It is only
// touched from the gocui main loop, one call at a time.
type session struct {
	grid       *model.Grid
	newSource  runner.SourceFactory
	mode       RunningState
	generation int
	reseeds    int
}

func newSession(grid *model.Grid, newSource runner.SourceFactory) *session {
	s := &session{grid: grid, newSource: newSource}
	s.grid.Seed(s.newSource(0))
	return s
}

// tick advances the board when the session is running
func (s *session) tick() {
	if s.mode == RunningStateRun {
		s.step()
	}
}

func (s *session) step() {
	s.grid.Step()
	s.generation++
}

func (s *session) run() {
	s.mode = RunningStateRun
}

func (s *session) stop() {
	s.mode = RunningStateManual
}

// clear kills every cell and resets the counters
func (s *session) clear() {
	s.stop()
	s.grid.Clear()
	s.generation = 0
}

// reseed clears the board and seeds it from a fresh source
func (s *session) reseed() {
	s.clear()
	s.reseeds++
	s.grid.Seed(s.newSource(s.reseeds))
}

// toggle flips the cell at p
func (s *session) toggle(p model.Position) {
	if s.grid.GetCell(p) == model.Alive {
		s.grid.SetCell(model.Dead, p)
	} else {
		s.grid.SetCell(model.Alive, p)
	}
}
