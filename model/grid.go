package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive number of rows or columns
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// CellLookup reads a cell of the current generation
type CellLookup func(p Position) CellState

// RenderSink receives a finished generation in row-major order
type RenderSink func(rows, cols int, cellAt CellLookup)

// SeedSource decides whether the cell at p starts alive
type SeedSource func(p Position) bool

// Grid is a toroidal Game of Life board. It owns two equally sized
// buffers: current holds the visible generation, next is scratch space
// for Step and is never observed by callers.
type Grid struct {
	rows    int
	cols    int
	current []CellState
	next    []CellState
}

// NewGrid creates a grid of rows x cols dead cells
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		current: make([]CellState, rows*cols),
		next:    make([]CellState, rows*cols),
	}, nil
}

// MustNewGrid is like NewGrid but panics on invalid dimensions
func MustNewGrid(rows, cols int) *Grid {
	g, err := NewGrid(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// ToroidalIndex maps any coordinate onto a linear address in
// [0, rows*cols). Every cell read and write goes through it.
func (g *Grid) ToroidalIndex(p Position) int {
	y := (p.Y%g.rows + g.rows) % g.rows
	x := (p.X%g.cols + g.cols) % g.cols
	return y*g.cols + x
}

// GetCell returns the state of the cell at p, wrapping around the edges
func (g *Grid) GetCell(p Position) CellState {
	return g.current[g.ToroidalIndex(p)]
}

// SetCell sets the state of the cell at p, wrapping around the edges
func (g *Grid) SetCell(state CellState, p Position) {
	g.current[g.ToroidalIndex(p)] = state
}

// CountAliveNeighbors counts the living cells among the eight neighbors of p
func (g *Grid) CountAliveNeighbors(p Position) (count int) {
	for _, offset := range NeighborOffsets {
		if g.GetCell(p.Add(offset)) == Alive {
			count++
		}
	}
	return
}

// nextState computes the state p will have in the next generation
func (g *Grid) nextState(p Position) CellState {
	if rules.ApplyConwayRules(g.CountAliveNeighbors(p), g.GetCell(p) == Alive) {
		return Alive
	}
	return Dead
}

// Step advances the grid by one generation. Every cell is computed from
// current into next, then the buffers swap roles, so no cell ever sees
// another cell's new state within the same generation.
func (g *Grid) Step() {
	g.step(g.forEach)
}

// step runs one generation visiting cells in the order given by visit
func (g *Grid) step(visit func(fn func(p Position))) {
	visit(func(p Position) {
		g.next[g.ToroidalIndex(p)] = g.nextState(p)
	})
	g.current, g.next = g.next, g.current
}

// Seed asks source about every cell and marks the cell alive when it
// answers true. Cells the source declines are left untouched.
func (g *Grid) Seed(source SeedSource) {
	g.forEach(func(p Position) {
		if source(p) {
			g.SetCell(Alive, p)
		}
	})
}

// Render hands the current generation to sink for read-only iteration
func (g *Grid) Render(sink RenderSink) {
	sink(g.rows, g.cols, g.GetCell)
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.current {
		g.current[i] = Dead
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, state := range g.current {
		if state == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	for _, state := range g.current {
		h.Write([]byte{byte(state)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// forEach visits every coordinate in row-major order
func (g *Grid) forEach(fn func(p Position)) {
	for y := range g.rows {
		for x := range g.cols {
			fn(Position{X: x, Y: y})
		}
	}
}
