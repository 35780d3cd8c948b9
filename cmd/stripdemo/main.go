// SPDX-License-Identifier: Unlicense OR MIT

// Command stripdemo shows a tool strip in the terminal. Resize the
// terminal to clip areas, drag the splitters with the mouse and click
// the » indicator to open the overflow popup.
//
// Settings are read from $HOME/.config/toolstrip/config.toml or the
// file named by TOOLSTRIP_CONFIG, and from TOOLSTRIP_ variables. A
// scale of 0.5 suits most terminals. Set TOOLSTRIP_DEBUG to a file
// path to log layout changes, and TOOLSTRIP_LABEL_FONT=go to measure
// labels by shaping them with the Go fonts.
package main

import (
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"gioui.org/x/toolstrip/internal/config"
	"gioui.org/x/toolstrip/io/input"
	"gioui.org/x/toolstrip/io/key"
	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/layout"
	"gioui.org/x/toolstrip/strip"
	"gioui.org/x/toolstrip/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, closeLog, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("debug log: %v", err)
	}
	defer closeLog()

	m := newModel(cfg, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// newLogger logs to the file at path, or nowhere if path is empty. The
// terminal belongs to the UI.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}

// item is a demo control.
type item struct {
	label  string
	text   string
	expand bool
}

var items = []item{
	{text: "File"},
	{label: "Search", text: "find…", expand: true},
	{label: "Zoom", text: "100% ▾"},
	{label: "Filter", text: "all", expand: true},
	{text: "Run ▶"},
	{label: "Mode", text: "編集"},
	{text: "Help"},
}

// cells measures text in terminal cells.
func cells(s string) image.Point {
	return image.Pt(runewidth.StringWidth(s), 1)
}

// shapedCells measures text with sh and converts the advance to cells
// the width of a digit. Shape with a monospaced face first for text
// that matches the terminal.
func shapedCells(sh *widget.Shaper) func(string) image.Point {
	cell := max(sh.Advance("0"), 1)
	return func(s string) image.Point {
		adv := sh.Advance(s)
		return image.Pt(int((adv+cell-1)/cell), 1)
	}
}

// labelMeasure returns the label measure selected by cfg.
func labelMeasure(cfg config.Config) func(string) image.Point {
	if cfg.Label.Font != "go" {
		return cells
	}
	faces := widget.GoFaces()
	return shapedCells(widget.NewShaper(cfg.LabelSize(), faces[1], faces[0]))
}

type model struct {
	cfg    config.Config
	log    *slog.Logger
	strip  *strip.Strip
	router input.Router

	width, height int
	lastMove      string
}

func newModel(cfg config.Config, logger *slog.Logger) *model {
	m := &model{cfg: cfg, log: logger}
	s := strip.New(layout.Horizontal, cfg.StripMetrics(), cfg.PopupMetrics())
	measure := labelMeasure(cfg)
	for _, it := range items {
		w := cells(it.text).X + 2
		f := widget.NewFixed(it.text, image.Pt(w, 1), image.Pt(w+8, 1))
		f.Expand = it.expand
		a := s.AddLabeled(it.label, f)
		if l := a.Label(); l != nil {
			l.Measure = measure
		}
	}
	s.OnSplitterMoved(func(index, delta int) {
		m.lastMove = fmtMove(index, delta)
		m.log.Debug("splitter moved", "area", index, "delta", delta, "contents", s.ContentsWidth())
	})
	o := s.Overflow()
	o.Surface().SetResizeSides(cfg.PopupSides())
	o.Surface().OnOpen(func() { m.log.Debug("overflow open", "clipped", len(s.Clipped())) })
	o.Surface().OnClose(func() { m.log.Debug("overflow close") })
	m.strip = s
	m.router.AddRoot(s.Box())
	m.router.AddRoot(o.Surface().Box())
	s.Show()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(m.strip.PrefSize().Y, 1)
		m.strip.Resize(image.Pt(msg.Width, h))
		m.log.Debug("resize", "width", msg.Width, "height", msg.Height, "clipped", len(m.strip.Clipped()))
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.strip.Overflow().Close()
		}
	case tea.MouseMsg:
		e, ok := pointerEvent(msg)
		if !ok {
			break
		}
		o := m.strip.Overflow()
		if e.Kind == pointer.Press && o.Visible() && !e.Screen.In(o.Surface().Box().Bounds()) {
			o.Close()
			break
		}
		m.router.Queue(e)
	}
	return m, nil
}

// pointerEvent converts a terminal mouse event.
func pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	e := pointer.Event{Screen: image.Pt(msg.X, msg.Y)}
	if msg.Alt {
		e.Modifiers |= key.ModAlt
	}
	if msg.Ctrl {
		e.Modifiers |= key.ModCtrl
	}
	if msg.Shift {
		e.Modifiers |= key.ModShift
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		e.Kind, e.Scroll = pointer.Scroll, image.Pt(0, -1)
		return e, true
	case tea.MouseButtonWheelDown:
		e.Kind, e.Scroll = pointer.Scroll, image.Pt(0, 1)
		return e, true
	case tea.MouseButtonWheelLeft:
		e.Kind, e.Scroll = pointer.Scroll, image.Pt(-1, 0)
		return e, true
	case tea.MouseButtonWheelRight:
		e.Kind, e.Scroll = pointer.Scroll, image.Pt(1, 0)
		return e, true
	case tea.MouseButtonLeft:
		e.Buttons = pointer.ButtonPrimary
	case tea.MouseButtonRight:
		e.Buttons = pointer.ButtonSecondary
	case tea.MouseButtonMiddle:
		e.Buttons = pointer.ButtonTertiary
	}
	switch msg.Action {
	case tea.MouseActionPress:
		e.Kind = pointer.Press
	case tea.MouseActionRelease:
		e.Kind = pointer.Release
	case tea.MouseActionMotion:
		e.Kind = pointer.Move
	default:
		return pointer.Event{}, false
	}
	return e, true
}
