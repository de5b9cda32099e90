package model

// DefaultHistorySize is enough to spot still lifes and period-2/3 oscillators
const DefaultHistorySize = 5

// History stores recent generation hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History keeping the last size hashes
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Update adds the grid's current state to history and maintains size
func (h *History) Update(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether the grid repeats one of the last three
// recorded generations, i.e. it is static or stuck in a short cycle.
// At least three generations must have been recorded.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == currentHash {
			return true
		}
	}
	return false
}
