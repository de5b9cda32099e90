package model

import (
	"bytes"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// clear screen and move the cursor home
const ansiClearHome = "\x1b[2J\x1b[H"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out   io.Writer
	au    aurora.Aurora
	frame bytes.Buffer
}

// NewTerminalRenderer returns a renderer writing to out. Alive cells are
// coloured when color is set.
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(color)}
}

// Display renders the grid to the terminal, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	r.frame.Reset()
	g.Render(r.writeFrame)
	if _, err := r.out.Write(r.frame.Bytes()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

func (r *TerminalRenderer) writeFrame(rows, cols int, cellAt CellLookup) {
	for y := range rows {
		for x := range cols {
			state := cellAt(Position{X: x, Y: y})
			if state == Alive {
				r.frame.WriteString(r.au.Green(string(state.Rune())).String())
			} else {
				r.frame.WriteRune(state.Rune())
			}
		}
		r.frame.WriteByte('\n')
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ansiClearHome); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

// Status prints a status line, labels highlighted when colour is on
func (r *TerminalRenderer) Status(label string, format string, args ...interface{}) error {
	line := fmt.Sprintf("%s: "+format+"\n", append([]interface{}{r.au.Cyan(label)}, args...)...)
	if _, err := io.WriteString(r.out, line); err != nil {
		return errors.Wrap(err, "[Status] failed to write status")
	}
	return nil
}
