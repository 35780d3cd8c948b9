// SPDX-License-Identifier: Unlicense OR MIT

package popup

import (
	"image"

	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/io/system"
	"gioui.org/x/toolstrip/layout"
	"gioui.org/x/toolstrip/widget"
)

// Scroll hosts a widget in a viewport with a horizontal and a vertical
// scroll bar. A bar is shown when the minimum size of the widget
// exceeds the viewport along its axis.
type Scroll struct {
	// SizeHintIsMax limits the size of the scroll to the preferred
	// size of its content.
	SizeHintIsMax bool

	box      widget.Box
	viewport widget.Box
	hbar     *widget.Scrollbar
	vbar     *widget.Scrollbar
	w        widget.Widget

	border int
	floor  int
	// size is the applied size, negative until the first
	// InitSize or ApplySize.
	size image.Point
}

var _ Content = (*Scroll)(nil)

// NewScroll returns an empty scroll with the lengths of m.
func NewScroll(m Metrics) *Scroll {
	s := &Scroll{
		border: m.border(),
		floor:  m.floor(),
		size:   image.Pt(-1, -1),
		hbar:   widget.NewScrollbar(layout.Horizontal, m.scrollbar()),
		vbar:   widget.NewScrollbar(layout.Vertical, m.scrollbar()),
	}
	s.box.Name = "scroll"
	s.viewport.Name = "viewport"
	s.viewport.SetParent(&s.box)
	s.viewport.SetCursor(pointer.CursorDefault)
	for _, bar := range []*widget.Scrollbar{s.hbar, s.vbar} {
		bar.Box().SetParent(&s.box)
		bar.Box().SetCursor(pointer.CursorDefault)
		bar.Box().Hide()
		bar.OnChanged(func(int) { s.placeContent() })
	}
	s.box.Register(func(src *widget.Box, e event.Event) {
		if _, ok := e.(system.ResizeEvent); ok {
			s.updateSize(src.Size())
		}
	})
	s.viewport.Register(func(_ *widget.Box, e event.Event) {
		if e, ok := e.(pointer.Event); ok && e.Kind == pointer.Scroll {
			s.scrollBy(e.Scroll)
		}
	})
	return s
}

func (s *Scroll) Box() *widget.Box { return &s.box }

// SetContent replaces the scrolled widget.
func (s *Scroll) SetContent(w widget.Widget) {
	if s.w != nil {
		s.w.Box().SetParent(nil)
	}
	s.w = w
	if w != nil {
		w.Box().SetParent(&s.viewport)
	}
	s.updateSize(s.box.Size())
}

func (s *Scroll) Content() widget.Widget { return s.w }

// HBar returns the horizontal scroll bar.
func (s *Scroll) HBar() *widget.Scrollbar { return s.hbar }

// VBar returns the vertical scroll bar.
func (s *Scroll) VBar() *widget.Scrollbar { return s.vbar }

// Viewport returns the box clipping the content.
func (s *Scroll) Viewport() *widget.Box { return &s.viewport }

// Size returns the applied size, or the zero point before the first
// InitSize or ApplySize.
func (s *Scroll) Size() image.Point {
	if s.size.X < 0 || s.size.Y < 0 {
		return image.Point{}
	}
	return s.size
}

// InitSize returns the natural size: the minimum size of the content
// plus the border. The size is computed once; later calls return the
// applied size.
func (s *Scroll) InitSize() image.Point {
	if s.size.X <= 0 || s.size.Y <= 0 {
		b := 2 * s.border
		s.size = s.contentMin().Add(image.Pt(b, b))
	}
	return s.size
}

// ApplySize resizes the scroll to sz, grown to its minimum size, and
// returns the new size.
func (s *Scroll) ApplySize(sz image.Point) image.Point {
	min := s.MinSize()
	c := layout.Constraints{
		Width:  layout.Constraint{Min: min.X, Max: layout.Unbounded},
		Height: layout.Constraint{Min: min.Y, Max: layout.Unbounded},
	}
	s.size = c.Constrain(sz)
	s.box.Resize(s.size)
	s.updateSize(s.size)
	return s.size
}

// MinSize is the minimum size of the content, the border and both
// scroll bars until a size is applied. After that the scroll can
// shrink down to its floor.
func (s *Scroll) MinSize() image.Point {
	b := 2 * s.border
	if s.size.X <= 0 || s.size.Y <= 0 {
		m := s.contentMin()
		return image.Pt(m.X+b+s.vbar.Thickness, m.Y+b+s.hbar.Thickness)
	}
	return image.Pt(b+s.floor, b+s.floor)
}

// PrefSize is the preferred size of the content plus the border.
func (s *Scroll) PrefSize() image.Point {
	b := 2 * s.border
	if s.w == nil {
		return image.Pt(b, b)
	}
	return s.w.PrefSize().Add(image.Pt(b, b))
}

// MaxSize is unbounded unless SizeHintIsMax is set.
func (s *Scroll) MaxSize() image.Point {
	if s.SizeHintIsMax && s.w != nil {
		return s.PrefSize()
	}
	return image.Pt(layout.Unbounded, layout.Unbounded)
}

func (s *Scroll) contentMin() image.Point {
	if s.w == nil {
		return image.Point{}
	}
	return s.w.MinSize()
}

func (s *Scroll) updateSize(sz image.Point) {
	fw := s.border
	iw, ih := sz.X-2*fw, sz.Y-2*fw
	cs := s.contentMin()

	hvis := cs.X > iw
	vvis := cs.Y > ih
	if !hvis && vvis {
		hvis = cs.X > iw-s.vbar.Thickness
	}
	if !vvis && hvis {
		vvis = cs.Y > ih-s.hbar.Thickness
	}
	s.hbar.Box().SetVisible(hvis)
	s.vbar.Box().SetVisible(vvis)

	var sw, sh int
	if vvis {
		sw = s.vbar.Thickness
	}
	if hvis {
		sh = s.hbar.Thickness
	}
	vw, vh := iw-sw, ih-sh
	cw, ch := max(vw, cs.X), max(vh, cs.Y)

	s.viewport.Move(image.Pt(fw, fw))
	s.viewport.Resize(image.Pt(vw, vh))

	if hvis {
		s.hbar.Box().Move(image.Pt(fw, fw+ih-sh))
		s.hbar.Box().Resize(image.Pt(vw, sh))
		s.hbar.SetPageStep(vw)
		s.hbar.SetRange(0, cw-vw)
	}
	if vvis {
		s.vbar.Box().Move(image.Pt(fw+iw-sw, fw))
		s.vbar.Box().Resize(image.Pt(sw, vh))
		s.vbar.SetPageStep(vh)
		s.vbar.SetRange(0, ch-vh)
	}
	if s.w != nil {
		s.w.Box().Resize(image.Pt(cw, ch))
	}
	s.placeContent()
}

// placeContent moves the content by the values of the visible bars.
func (s *Scroll) placeContent() {
	s.updateScrollRange()
	if s.w == nil {
		return
	}
	var off image.Point
	if !s.hbar.Box().Hidden() {
		off.X = -s.hbar.Value()
	}
	if !s.vbar.Box().Hidden() {
		off.Y = -s.vbar.Value()
	}
	s.w.Box().Move(off)
}

// updateScrollRange sets the wheel distances the viewport accepts: the
// room left on each visible bar. Without a vertical bar the vertical
// wheel moves the horizontal bar.
func (s *Scroll) updateScrollRange() {
	var x, y pointer.ScrollRange
	if !s.hbar.Box().Hidden() {
		x = room(s.hbar)
	}
	if !s.vbar.Box().Hidden() {
		y = room(s.vbar)
	} else {
		y = x
	}
	s.viewport.SetScrollRange(x, y)
}

func room(b *widget.Scrollbar) pointer.ScrollRange {
	min, max := b.Range()
	v := b.Value()
	return pointer.ScrollRange{Min: min - v, Max: max - v}
}

func (s *Scroll) scrollBy(d image.Point) {
	switch {
	case !s.vbar.Box().Hidden() && d.Y != 0:
		s.vbar.SetValue(s.vbar.Value() + d.Y)
	case !s.hbar.Box().Hidden():
		dx := d.X
		if dx == 0 {
			dx = d.Y
		}
		s.hbar.SetValue(s.hbar.Value() + dx)
	}
}
