package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	g := MustNewGrid(6, 6)
	g.AddBlock(Position{2, 2})
	h := NewHistory(0)

	for range 2 {
		h.Update(g)
		g.Step()
	}
	if h.IsStagnant(g) {
		t.Fatal("needs three recorded generations before reporting")
	}
	h.Update(g)
	g.Step()
	if !h.IsStagnant(g) {
		t.Fatal("block should be reported as stagnant")
	}

	h.Reset()
	if h.IsStagnant(g) {
		t.Fatal("reset history should not report stagnation")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	g := MustNewGrid(6, 6)
	g.AddBlinker(Position{1, 2})
	h := NewHistory(DefaultHistorySize)
	for range 3 {
		h.Update(g)
		g.Step()
	}
	if !h.IsStagnant(g) {
		t.Fatal("blinker should be reported as a cycle")
	}
}

func TestHistoryGliderIsActive(t *testing.T) {
	g := MustNewGrid(12, 12)
	g.AddGlider(Position{})
	h := NewHistory(DefaultHistorySize)
	for range 8 {
		h.Update(g)
		g.Step()
		if h.IsStagnant(g) {
			t.Fatal("a moving glider is not stagnant")
		}
	}
	if len(h.hashes) != DefaultHistorySize {
		t.Fatalf("history holds %d hashes, expected %d", len(h.hashes), DefaultHistorySize)
	}
}
