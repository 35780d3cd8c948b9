// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gioui.org/x/toolstrip/internal/config"
	"gioui.org/x/toolstrip/io/key"
	"gioui.org/x/toolstrip/io/pointer"
)

func TestPointerEvent(t *testing.T) {
	for _, tc := range []struct {
		msg  tea.MouseMsg
		want pointer.Event
	}{
		{
			tea.MouseMsg{X: 3, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			pointer.Event{Kind: pointer.Press, Screen: image.Pt(3, 1), Buttons: pointer.ButtonPrimary},
		},
		{
			tea.MouseMsg{X: 4, Y: 1, Alt: true, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
			pointer.Event{Kind: pointer.Move, Screen: image.Pt(4, 1), Buttons: pointer.ButtonPrimary, Modifiers: key.ModAlt},
		},
		{
			tea.MouseMsg{X: 4, Y: 1, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease},
			pointer.Event{Kind: pointer.Release, Screen: image.Pt(4, 1)},
		},
		{
			tea.MouseMsg{X: 0, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress},
			pointer.Event{Kind: pointer.Scroll, Screen: image.Pt(0, 5), Scroll: image.Pt(0, 1)},
		},
	} {
		got, ok := pointerEvent(tc.msg)
		if !ok {
			t.Errorf("%v: not converted", tc.msg)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %+v; want %+v", tc.msg, got, tc.want)
		}
	}
}

func TestCanvasWideText(t *testing.T) {
	c := newCanvas(image.Pt(6, 1))
	c.text(image.Pt(0, 0), "a編集b", image.Rect(0, 0, 4, 1))
	if got, want := c.lines()[0], "a編   "; got != want {
		t.Errorf("line = %q; want %q", got, want)
	}
}

func TestModelOverflow(t *testing.T) {
	cfg := config.Config{
		Scale: 0.5,
		Strip: config.StripConfig{Margin: 2, Gap: 2, Splitter: 4, MinWidth: 32, Indicator: 4},
		Popup: config.PopupConfig{Border: 2, Inset: 0, Scrollbar: 2, Floor: 8, Sides: "all"},
	}
	m := newModel(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if len(m.strip.Clipped()) == 0 {
		t.Fatal("nothing clipped in a narrow terminal")
	}
	r := m.strip.Indicator().ScreenBounds()
	p := r.Min
	m.Update(tea.MouseMsg{X: p.X, Y: p.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{X: p.X, Y: p.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if !m.strip.Overflow().Visible() {
		t.Fatal("indicator click did not open the overflow")
	}
	if v := m.View(); !strings.Contains(v, "popup") {
		t.Errorf("status line does not show the popup:\n%s", v)
	}
	// The popup size is reported in dp, twice the cells at scale 0.5.
	sz := m.strip.Overflow().Surface().Box().Size()
	if want := fmt.Sprintf("popup %ddp×%ddp", 2*sz.X, 2*sz.Y); !strings.Contains(m.status(), want) {
		t.Errorf("status %q does not contain %q", m.status(), want)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.strip.Overflow().Visible() {
		t.Error("esc did not close the overflow")
	}
}

func TestShapedLabels(t *testing.T) {
	cfg := config.Config{Scale: 0.5, Label: config.LabelConfig{Font: "go", Size: 16}}
	measure := labelMeasure(cfg)
	for _, s := range []string{"", "Zoom", "Search", "Run 100%"} {
		if got, want := measure(s), image.Pt(len(s), 1); got != want {
			t.Errorf("measure(%q) = %v; want %v", s, got, want)
		}
	}
}
