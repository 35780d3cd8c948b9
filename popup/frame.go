// SPDX-License-Identifier: Unlicense OR MIT

package popup

import (
	"image"

	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/system"
	"gioui.org/x/toolstrip/layout"
	"gioui.org/x/toolstrip/widget"
)

// Content is the frame a Surface hosts its widget in.
type Content interface {
	widget.Widget
	// SetContent replaces the hosted widget. A nil widget empties
	// the frame.
	SetContent(w widget.Widget)
	// Content returns the hosted widget.
	Content() widget.Widget
	// InitSize returns the size of the frame when its surface is
	// shown.
	InitSize() image.Point
	// ApplySize resizes the frame and returns the size it took,
	// which may differ from sz.
	ApplySize(sz image.Point) image.Point
	// MaxSize is the largest size the frame accepts.
	MaxSize() image.Point
}

// Frame draws a border around a widget and sizes it exactly.
type Frame struct {
	box    widget.Box
	border int
	w      widget.Widget
}

var _ Content = (*Frame)(nil)

// NewFrame returns an empty frame with the border width of m.
func NewFrame(m Metrics) *Frame {
	f := &Frame{border: m.border()}
	f.box.Name = "frame"
	f.box.Register(func(_ *widget.Box, e event.Event) {
		if _, ok := e.(system.ResizeEvent); ok {
			f.layout()
		}
	})
	return f
}

func (f *Frame) Box() *widget.Box { return &f.box }

func (f *Frame) SetContent(w widget.Widget) {
	if f.w != nil {
		f.w.Box().SetParent(nil)
	}
	f.w = w
	if w != nil {
		w.Box().SetParent(&f.box)
		f.layout()
	}
}

func (f *Frame) Content() widget.Widget { return f.w }

// MinSize is the minimum of the content plus the border.
func (f *Frame) MinSize() image.Point {
	return f.around(func(w widget.Widget) image.Point { return w.MinSize() })
}

// PrefSize is the preferred size of the content plus the border.
func (f *Frame) PrefSize() image.Point {
	return f.around(func(w widget.Widget) image.Point { return w.PrefSize() })
}

func (f *Frame) InitSize() image.Point {
	return f.PrefSize()
}

// ApplySize fixes the frame at sz.
func (f *Frame) ApplySize(sz image.Point) image.Point {
	f.box.Resize(sz)
	return f.box.Size()
}

func (f *Frame) MaxSize() image.Point {
	return image.Pt(layout.Unbounded, layout.Unbounded)
}

func (f *Frame) around(hint func(widget.Widget) image.Point) image.Point {
	b := image.Pt(2*f.border, 2*f.border)
	if f.w == nil {
		return b
	}
	return hint(f.w).Add(b)
}

func (f *Frame) layout() {
	if f.w == nil {
		return
	}
	b := f.border
	wb := f.w.Box()
	wb.Move(image.Pt(b, b))
	wb.Resize(f.box.Size().Sub(image.Pt(2*b, 2*b)))
}
