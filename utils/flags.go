package utils

import (
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// NewFlagParser binds every Config setting to a command-line flag. The
// current values of c are the flag defaults, so flags override whatever
// was loaded from the config file.
func NewFlagParser(c *Config) *flaggy.Parser {
	p := flaggy.NewParser("go-life")
	p.Description = "Conway's Game of Life on a toroidal board, rendered to the terminal"
	p.ShowHelpOnUnexpected = true

	p.Int(&c.Rows, "y", "rows", "Number of rows of the board")
	p.Int(&c.Cols, "x", "cols", "Number of columns of the board")
	p.Duration(&c.FrameRate, "i", "interval", "Interval between generations, for example 50ms")
	p.Float64(&c.RandomDensity, "d", "density", "Probability of a cell starting alive")
	p.Int64(&c.Seed, "s", "seed", "Seed for the initial board, 0 seeds from the clock")
	p.Int(&c.MaxGenerations, "m", "maxGenerations", "Stop after this many generations, 0 runs forever")
	p.Bool(&c.AutoRestart, "a", "autoRestart", "Reseed the board on extinction or stagnation")
	p.Int(&c.StagnationThreshold, "t", "stagnationThreshold", "Stagnant generations tolerated before a restart")
	p.Bool(&c.Showcase, "p", "showcase", "Add gliders and blinkers to the initial board")
	p.Bool(&c.Color, "c", "color", "Colour live cells")
	p.Bool(&c.Interactive, "n", "interactive", "Start the interactive viewer")

	return p
}

// ParseFlags applies args on top of c and validates the result
func ParseFlags(c *Config, args []string) error {
	if err := NewFlagParser(c).ParseArgs(args); err != nil {
		return errors.Wrap(err, "[ParseFlags] failed to parse arguments")
	}
	return c.Validate()
}
