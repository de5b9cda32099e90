package view

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/runner"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"

	statusWidth = 28
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Interactive is a gocui viewer that lets the user step, run, stop,
// clear and reseed the board
type Interactive struct {
	g        *gocui.Gui
	s        *session
	config   utils.Config
	renderer *model.TerminalRenderer
	frame    bytes.Buffer
	au       aurora.Aurora
	keys     []keyBinding
}

var runningStateDescr = map[RunningState]string{
	RunningStateManual: "waiting",
	RunningStateRun:    "running",
}

// NewInteractive opens the terminal UI for a board sized from config
func NewInteractive(config utils.Config, newSource runner.SourceFactory) (*Interactive, error) {
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewInteractive] failed to create grid")
	}

	t := &Interactive{
		s:      newSession(grid, newSource),
		config: config,
		au:     aurora.NewAurora(config.Color),
	}
	t.renderer = model.NewTerminalRenderer(&t.frame, config.Color)

	if t.g, err = gocui.NewGui(gocui.OutputNormal); err != nil {
		return nil, errors.Wrap(err, "[NewInteractive] failed to open terminal")
	}
	t.g.Mouse = true
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Reseed", t.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdToggle, boardView},
	}
	t.g.SetManagerFunc(t.layout)
	if err := t.bindKeys(); err != nil {
		t.g.Close()
		return nil, err
	}
	return t, nil
}

func (t *Interactive) bindKeys() error {
	for _, kb := range t.keys {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			return errors.Wrapf(err, "[bindKeys] failed to bind %s", kb.name)
		}
	}
	return nil
}

// updater schedules work on the gui main loop
type updater interface {
	Update(f func(*gocui.Gui) error)
}

// Start runs the UI until the user quits or ctx is done
func (t *Interactive) Start(ctx context.Context) error {
	defer t.g.Close()

	done := make(chan struct{})
	defer close(done)
	go tickLoop(ctx, done, t.interval(), t.g, func(*gocui.Gui) error {
		t.s.tick()
		return t.refresh()
	})

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start] terminal UI failed")
	}
	return nil
}

func (t *Interactive) interval() time.Duration {
	if t.config.FrameRate <= 0 {
		return utils.DefaultConfig().FrameRate
	}
	return t.config.FrameRate
}

// tickLoop schedules tick on the gui every interval. done is closed once
// the main loop has exited; after that nothing more is sent to the gui.
func tickLoop(ctx context.Context, done <-chan struct{}, interval time.Duration, ui updater, tick func(*gocui.Gui) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			select {
			case <-done:
			default:
				ui.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			}
			return
		case <-ticker.C:
			ui.Update(tick)
		}
	}
}

func (t *Interactive) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(statusView, 0, 0, statusWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}

	if v, err := g.SetView(boardView, statusWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}

	return t.refresh()
}

// refresh redraws the board and the status panel
func (t *Interactive) refresh() error {
	board, err := t.g.View(boardView)
	if err != nil {
		return nil
	}
	t.frame.Reset()
	if err := t.renderer.Display(t.s.grid); err != nil {
		return err
	}
	board.Clear()
	if _, err := board.Write(t.frame.Bytes()); err != nil {
		return err
	}

	status, err := t.g.View(statusView)
	if err != nil {
		return nil
	}
	status.Clear()
	_, _ = fmt.Fprintln(status, t.renderProp("Dimension", "%v x %v", t.s.grid.Cols(), t.s.grid.Rows()))
	_, _ = fmt.Fprintln(status, t.renderProp("Interval", "%v", t.config.FrameRate))
	_, _ = fmt.Fprintln(status, t.renderProp("Generation", "%v", t.s.generation))
	_, _ = fmt.Fprintln(status, t.renderProp("Live cells", "%v", t.s.grid.CountLivingCells()))
	_, _ = fmt.Fprintln(status, t.renderProp("Mode", "%v", runningStateDescr[t.s.mode]))
	return nil
}

func (t *Interactive) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Green(name).String()+": "+valueFormat, values...)
}

func (t *Interactive) helpLine() string {
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for i, k := range t.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *Interactive) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Interactive) cmdStep(_ *gocui.View) error {
	t.s.step()
	return t.refresh()
}

func (t *Interactive) cmdRun(_ *gocui.View) error {
	t.s.run()
	return t.refresh()
}

func (t *Interactive) cmdStop(_ *gocui.View) error {
	t.s.stop()
	return t.refresh()
}

func (t *Interactive) cmdClear(_ *gocui.View) error {
	t.s.clear()
	return t.refresh()
}

func (t *Interactive) cmdReseed(_ *gocui.View) error {
	t.s.reseed()
	return t.refresh()
}

func (t *Interactive) cmdToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	// cells beyond the board edge are not on screen, ignore them rather than wrap
	if cx >= t.s.grid.Cols() || cy >= t.s.grid.Rows() {
		return nil
	}
	t.s.toggle(model.Position{X: cx, Y: cy})
	return t.refresh()
}
