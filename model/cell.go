package model

// CellState is the state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

const (
	aliveRune = '*'
	deadRune  = '.'
)

// Rune returns the character a cell is rendered as
func (s CellState) Rune() rune {
	if s == Alive {
		return aliveRune
	}
	return deadRune
}

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
