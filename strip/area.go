// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"image"

	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/system"
	"gioui.org/x/toolstrip/widget"
)

// Area is a slot of a Strip: a widget with an optional label above it.
type Area struct {
	box     widget.Box
	strip   *Strip
	content widget.Widget
	label   *widget.Label

	resizable bool
	// width overrides the display width when not negative.
	width   int
	clipped bool
}

func newArea(s *Strip) *Area {
	a := &Area{strip: s, width: -1}
	a.box.Name = "area"
	a.box.Register(func(_ *widget.Box, e event.Event) {
		if _, ok := e.(system.ResizeEvent); ok {
			a.Layout()
		}
	})
	return a
}

func (a *Area) Box() *widget.Box { return &a.box }

// SetContent replaces the widget of the area.
func (a *Area) SetContent(w widget.Widget) {
	if a.content != nil {
		a.content.Box().SetParent(nil)
	}
	a.content = w
	if w != nil {
		w.Box().SetParent(&a.box)
		a.box.Name = w.Box().Name
	}
}

// Content returns the widget of the area.
func (a *Area) Content() widget.Widget { return a.content }

// SetLabel sets the label text, adding a label if needed.
func (a *Area) SetLabel(text string) {
	if a.label == nil {
		a.label = widget.NewLabel(text)
		a.label.Box().SetParent(&a.box)
		return
	}
	a.label.Text = text
}

// UnsetLabel removes the label.
func (a *Area) UnsetLabel() {
	if a.label == nil {
		return
	}
	a.label.Box().SetParent(nil)
	a.label = nil
}

// Label returns the label, or nil.
func (a *Area) Label() *widget.Label { return a.label }

// SetResizable marks the area as resizable by a splitter and by the
// reduce pass of the strip.
func (a *Area) SetResizable(resizable bool) { a.resizable = resizable }

func (a *Area) Resizable() bool { return a.resizable }

// SetDisplayWidth overrides the width of the area in the strip. A
// negative width removes the override.
func (a *Area) SetDisplayWidth(w int) {
	if w < 0 {
		w = -1
	}
	a.width = w
}

// DisplayWidth returns the width of the area in the strip: the
// override if set, but never less than the minimum width.
func (a *Area) DisplayWidth() int {
	min := a.minWidth()
	if a.width < min {
		return min
	}
	return a.width
}

// SetClipped records whether the area was clipped from the strip.
func (a *Area) SetClipped(clipped bool) { a.clipped = clipped }

func (a *Area) Clipped() bool { return a.clipped }

// LabelMinHeight returns the height of the label, or zero.
func (a *Area) LabelMinHeight() int {
	if a.label == nil {
		return 0
	}
	return a.label.MinSize().Y
}

// LabelHeight returns the height reserved above the content. In the
// strip it is the tallest label of all areas, elsewhere the height of
// the own label.
func (a *Area) LabelHeight() int {
	if a.inStrip() {
		return a.strip.labelHeight
	}
	return a.LabelMinHeight()
}

// MinSize is the minimum size of the content, widened to the label and
// heightened by the label height.
func (a *Area) MinSize() image.Point {
	var s image.Point
	if a.content != nil {
		s = a.content.MinSize()
	}
	return a.withLabel(s)
}

// PrefSize is the preferred size of the content, widened to the label
// and heightened by the label height.
func (a *Area) PrefSize() image.Point {
	var s image.Point
	if a.content != nil {
		s = a.content.PrefSize()
	}
	return a.withLabel(s)
}

func (a *Area) withLabel(s image.Point) image.Point {
	if a.label == nil {
		return s
	}
	ls := a.label.MinSize()
	return image.Pt(max(s.X, ls.X), s.Y+a.LabelHeight())
}

// Layout places the label at the top and the content below it.
func (a *Area) Layout() {
	if a.content == nil {
		return
	}
	lh := a.LabelHeight()
	if a.label != nil {
		lb := a.label.Box()
		lb.Move(image.Point{})
		lb.Resize(image.Pt(a.box.Size().X, a.LabelMinHeight()))
	}
	cb := a.content.Box()
	cb.Move(image.Pt(0, lh))
	cb.Resize(a.box.Size().Sub(image.Pt(0, lh)))
}

func (a *Area) minWidth() int {
	if a.strip == nil {
		return a.MinSize().X
	}
	return a.strip.axis.Main(a.MinSize())
}

func (a *Area) inStrip() bool {
	return a.strip != nil && a.box.Parent() == &a.strip.box
}
