package model

// glider, in the orientation that travels down and to the right
var gliderPattern = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// AddPattern stamps pattern onto the grid with its top-left corner at
// origin. Rows of the pattern map to y, columns to x; the pattern wraps
// across the edges like any other write.
func (g *Grid) AddPattern(origin Position, pattern [][]bool) {
	for y, row := range pattern {
		for x, alive := range row {
			state := Dead
			if alive {
				state = Alive
			}
			g.SetCell(state, origin.Add(Position{X: x, Y: y}))
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(origin Position) {
	g.AddPattern(origin, gliderPattern)
}

// AddBlinker adds a horizontal blinker oscillator pattern
func (g *Grid) AddBlinker(origin Position) {
	for x := range 3 {
		g.SetCell(Alive, origin.Add(Position{X: x}))
	}
}

// AddBlock adds the 2x2 block still life
func (g *Grid) AddBlock(origin Position) {
	for _, offset := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		g.SetCell(Alive, origin.Add(offset))
	}
}
