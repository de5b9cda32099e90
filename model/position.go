package model

import "fmt"

// Position is a 2D grid coordinate. It doubles as an offset vector,
// so components may be negative or past the grid bounds.
type Position struct {
	X int
	Y int
}

// NeighborOffsets holds the eight offsets around a cell, row by row
var NeighborOffsets = func() []Position {
	offsets := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if offset := (Position{X: dx, Y: dy}); !offset.IsZero() {
				offsets = append(offsets, offset)
			}
		}
	}
	return offsets
}()

// Add returns the component-wise sum of p and other
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// IsZero reports whether both components are 0
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
