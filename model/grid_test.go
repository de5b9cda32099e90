package model

import (
	"testing"

	"github.com/pkg/errors"
)

func setAlive(g *Grid, cells ...Position) {
	for _, p := range cells {
		g.SetCell(Alive, p)
	}
}

// expectAlive fails unless exactly the given cells are alive
func expectAlive(t *testing.T, g *Grid, cells ...Position) {
	t.Helper()
	want := map[Position]bool{}
	for _, p := range cells {
		want[p] = true
	}
	for y := range g.Rows() {
		for x := range g.Cols() {
			p := Position{X: x, Y: y}
			alive := g.GetCell(p) == Alive
			if alive != want[p] {
				t.Fatalf("cell %v alive=%v, expected %v", p, alive, want[p])
			}
		}
	}
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1])
		if err == nil || g != nil {
			t.Fatalf("NewGrid(%d, %d) returned grid=%v err=%v", dims[0], dims[1], g, err)
		}
		if errors.Cause(err) != ErrInvalidDimensions {
			t.Fatalf("unexpected error cause: %v", err)
		}
	}
}

func TestMustNewGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNewGrid(0, 1)
}

func TestNewGridStartsDead(t *testing.T) {
	g := MustNewGrid(4, 7)
	if g.Rows() != 4 || g.Cols() != 7 {
		t.Fatalf("got %dx%d grid", g.Rows(), g.Cols())
	}
	if len(g.current) != 28 || len(g.next) != 28 {
		t.Fatalf("buffer sizes %d/%d, expected 28", len(g.current), len(g.next))
	}
	expectAlive(t, g)
}

func TestToroidalIndex(t *testing.T) {
	g := MustNewGrid(5, 5)
	tests := []struct {
		p    Position
		want int
	}{
		{Position{0, 0}, 0},
		{Position{1, 0}, 1},
		{Position{0, 1}, 5},
		{Position{2, 2}, 12},
		{Position{5, 0}, 0},
		{Position{6, 0}, 1},
		{Position{0, 6}, 5},
		{Position{-1, 0}, 4},
		{Position{-2, 0}, 3},
		{Position{0, -1}, 20},
		{Position{-1, -1}, 24},
		{Position{-6, -11}, 24},
	}
	for _, tt := range tests {
		if got := g.ToroidalIndex(tt.p); got != tt.want {
			t.Fatalf("ToroidalIndex(%v) = %d, expected %d", tt.p, got, tt.want)
		}
	}
}

func TestToroidalIndexPeriodicAndInRange(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {5, 5}, {8, 2}} {
		rows, cols := dims[0], dims[1]
		g := MustNewGrid(rows, cols)
		for y := -2 * rows; y <= 2*rows; y++ {
			for x := -2 * cols; x <= 2*cols; x++ {
				p := Position{X: x, Y: y}
				idx := g.ToroidalIndex(p)
				if idx < 0 || idx >= rows*cols {
					t.Fatalf("%dx%d: index %d for %v out of range", rows, cols, idx, p)
				}
				for _, k := range []int{-3, -1, 1, 4} {
					shifted := Position{X: x + k*cols, Y: y - k*rows}
					if g.ToroidalIndex(shifted) != idx {
						t.Fatalf("%dx%d: %v and %v map to different cells", rows, cols, p, shifted)
					}
				}
			}
		}
	}
}

func TestSetCellWraps(t *testing.T) {
	g := MustNewGrid(5, 5)
	g.SetCell(Alive, Position{X: -1, Y: 7})
	if g.GetCell(Position{X: 4, Y: 2}) != Alive {
		t.Fatal("write through a wrapped coordinate was not visible at its home cell")
	}
	if g.GetCell(Position{X: 9, Y: -3}) != Alive {
		t.Fatal("read through a wrapped coordinate missed the live cell")
	}
	g.SetCell(Dead, Position{X: 4, Y: 2})
	expectAlive(t, g)
}

func TestCountAliveNeighbors(t *testing.T) {
	t.Run("excludes self", func(t *testing.T) {
		g := MustNewGrid(5, 5)
		setAlive(g, Position{2, 2})
		if n := g.CountAliveNeighbors(Position{2, 2}); n != 0 {
			t.Fatalf("got %d neighbors, expected 0", n)
		}
	})

	t.Run("eight around a corner", func(t *testing.T) {
		g := MustNewGrid(5, 5)
		for _, offset := range NeighborOffsets {
			g.SetCell(Alive, offset)
		}
		if n := g.CountAliveNeighbors(Position{0, 0}); n != 8 {
			t.Fatalf("got %d neighbors, expected 8", n)
		}
	})

	t.Run("wraps across edges", func(t *testing.T) {
		g := MustNewGrid(5, 5)
		setAlive(g, Position{4, 4}, Position{0, 4}, Position{4, 0})
		if n := g.CountAliveNeighbors(Position{0, 0}); n != 3 {
			t.Fatalf("got %d neighbors, expected 3", n)
		}
	})
}

func TestStepRules(t *testing.T) {
	tests := []struct {
		name      string
		alive     []Position
		target    Position
		wantAlive bool
	}{
		{"underpopulation", []Position{{2, 2}}, Position{2, 2}, false},
		{"one neighbor dies", []Position{{2, 2}, {2, 3}}, Position{2, 2}, false},
		{"survives with two", []Position{{1, 2}, {2, 2}, {3, 2}}, Position{2, 2}, true},
		{"survives with three", []Position{{2, 2}, {1, 1}, {3, 1}, {2, 3}}, Position{2, 2}, true},
		{"overpopulation", []Position{{2, 2}, {1, 1}, {3, 1}, {1, 3}, {3, 3}}, Position{2, 2}, false},
		{"reproduction", []Position{{1, 1}, {3, 1}, {2, 3}}, Position{2, 2}, true},
		{"no birth with two", []Position{{1, 1}, {3, 1}}, Position{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustNewGrid(6, 6)
			setAlive(g, tt.alive...)
			g.Step()
			if alive := g.GetCell(tt.target) == Alive; alive != tt.wantAlive {
				t.Fatalf("cell %v alive=%v after step, expected %v", tt.target, alive, tt.wantAlive)
			}
		})
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := MustNewGrid(5, 5)
	setAlive(g, Position{1, 0}, Position{1, 1}, Position{1, 2})

	g.Step()
	expectAlive(t, g, Position{0, 1}, Position{1, 1}, Position{2, 1})

	g.Step()
	expectAlive(t, g, Position{1, 0}, Position{1, 1}, Position{1, 2})
}

func TestBlinkerAcrossEdge(t *testing.T) {
	g := MustNewGrid(6, 7)
	g.AddBlinker(Position{X: 6, Y: 3})

	g.Step()
	expectAlive(t, g, Position{0, 2}, Position{0, 3}, Position{0, 4})
}

func TestBlockStillLife(t *testing.T) {
	g := MustNewGrid(5, 5)
	block := []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	setAlive(g, block...)

	for range 3 {
		g.Step()
		expectAlive(t, g, block...)
	}
}

func TestGliderReturnsAfterCrossingTorus(t *testing.T) {
	g := MustNewGrid(8, 8)
	g.AddGlider(Position{X: 1, Y: 1})
	start := g.Hash()

	// a glider moves one cell diagonally every 4 generations
	for range 4 * 8 {
		g.Step()
		if g.CountLivingCells() != 5 {
			t.Fatalf("glider lost cells: %d alive", g.CountLivingCells())
		}
	}
	if g.Hash() != start {
		t.Fatal("glider did not return to its starting cells")
	}
}

func TestStepIsOrderIndependent(t *testing.T) {
	forward := MustNewGrid(7, 9)
	reverse := MustNewGrid(7, 9)
	seed := func(p Position) bool { return (p.X*7+p.Y*13)%5 < 2 }
	forward.Seed(seed)
	reverse.Seed(seed)

	reverseOrder := func(fn func(p Position)) {
		for y := reverse.Rows() - 1; y >= 0; y-- {
			for x := reverse.Cols() - 1; x >= 0; x-- {
				fn(Position{X: x, Y: y})
			}
		}
	}

	for gen := range 10 {
		forward.step(forward.forEach)
		reverse.step(reverseOrder)
		if forward.Hash() != reverse.Hash() {
			t.Fatalf("generation %d differs between forward and reverse sweeps", gen+1)
		}
	}
}

func TestStepSwapsBuffers(t *testing.T) {
	g := MustNewGrid(4, 4)
	g.AddBlock(Position{1, 1})
	before := &g.current[0]
	g.Step()
	if &g.next[0] != before {
		t.Fatal("previous generation buffer was not reused as scratch space")
	}
	if len(g.current) != 16 || len(g.next) != 16 {
		t.Fatal("buffer sizes changed")
	}
}

func TestSeed(t *testing.T) {
	g := MustNewGrid(3, 4)
	g.SetCell(Alive, Position{3, 2})
	calls := 0
	g.Seed(func(p Position) bool {
		calls++
		return p.X == p.Y
	})
	if calls != 12 {
		t.Fatalf("source called %d times, expected 12", calls)
	}
	expectAlive(t, g, Position{0, 0}, Position{1, 1}, Position{2, 2}, Position{3, 2})
}

func TestRenderIsRowMajor(t *testing.T) {
	g := MustNewGrid(2, 3)
	setAlive(g, Position{2, 0}, Position{0, 1})

	var got []CellState
	g.Render(func(rows, cols int, cellAt CellLookup) {
		if rows != 2 || cols != 3 {
			t.Fatalf("sink got %dx%d", rows, cols)
		}
		for y := range rows {
			for x := range cols {
				got = append(got, cellAt(Position{X: x, Y: y}))
			}
		}
	})
	want := []CellState{Dead, Dead, Alive, Alive, Dead, Dead}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestClearAndCount(t *testing.T) {
	g := MustNewGrid(4, 4)
	g.AddGlider(Position{})
	if n := g.CountLivingCells(); n != 5 {
		t.Fatalf("got %d living cells, expected 5", n)
	}
	g.Clear()
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("got %d living cells after clear", n)
	}
}

func BenchmarkGridStep(b *testing.B) {
	g := MustNewGrid(20, 90)
	g.Seed(func(p Position) bool { return (p.X^p.Y)&1 == 0 })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}
