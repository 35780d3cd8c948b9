// SPDX-License-Identifier: Unlicense OR MIT

package popup

import (
	"image"

	"gioui.org/x/toolstrip/gesture"
	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/key"
	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/widget"
)

// Surface is a popup that hosts a widget in a Frame or a Scroll and
// resizes from the pointer.
type Surface struct {
	box     widget.Box
	metrics Metrics

	sides         Side
	scrollable    bool
	sizeHintIsMax bool

	frame  *Frame
	scroll *Scroll
	w      widget.Widget
	anchor widget.Widget

	drag      gesture.Drag
	pressSide Side
	// unregister removes the frame handler while shown.
	unregister func()

	opened []func()
	closed []func()
}

// NewSurface returns a hidden surface resizable from all sides.
func NewSurface(scrollable bool, m Metrics) *Surface {
	s := &Surface{
		metrics:    m,
		sides:      AllSides,
		scrollable: scrollable,
	}
	s.box.Name = "popup"
	s.box.Hide()
	s.attach()
	return s
}

// Box returns the top level box of the surface.
func (s *Surface) Box() *widget.Box { return &s.box }

// SetResizeSides sets the edges that resize from the pointer.
func (s *Surface) SetResizeSides(sides Side) {
	s.sides = sides & AllSides
}

// ResizeSides returns the edges that resize from the pointer.
func (s *Surface) ResizeSides() Side { return s.sides }

// SetScrollable selects whether the content is hosted in a Scroll.
func (s *Surface) SetScrollable(scrollable bool) {
	if s.scrollable == scrollable {
		return
	}
	s.detach()
	s.scrollable = scrollable
	s.attach()
}

// Scrollable reports whether the content is hosted in a Scroll.
func (s *Surface) Scrollable() bool { return s.scrollable }

// SetSizeHintIsMax limits a scrollable surface to the preferred size of
// its content.
func (s *Surface) SetSizeHintIsMax(v bool) {
	s.sizeHintIsMax = v
	if s.scroll != nil {
		s.scroll.SizeHintIsMax = v
	}
}

// SetContent sets the hosted widget.
func (s *Surface) SetContent(w widget.Widget) {
	s.w = w
	s.Frame().SetContent(w)
}

// Content returns the hosted widget.
func (s *Surface) Content() widget.Widget { return s.w }

// SetAnchor sets the widget PopupAt aligns the surface with.
func (s *Surface) SetAnchor(w widget.Widget) { s.anchor = w }

// Frame returns the active frame, creating it if needed.
func (s *Surface) Frame() Content {
	if s.scrollable {
		if s.scroll == nil {
			s.scroll = NewScroll(s.metrics)
			s.scroll.SizeHintIsMax = s.sizeHintIsMax
		}
		return s.scroll
	}
	if s.frame == nil {
		s.frame = NewFrame(s.metrics)
	}
	return s.frame
}

// Scroll returns the scroll frame, or nil for a plain surface.
func (s *Surface) Scroll() *Scroll {
	if !s.scrollable {
		return nil
	}
	return s.Frame().(*Scroll)
}

// OnOpen registers f to be called before the surface is shown.
func (s *Surface) OnOpen(f func()) { s.opened = append(s.opened, f) }

// OnClose registers f to be called when the surface closes.
func (s *Surface) OnClose(f func()) { s.closed = append(s.closed, f) }

// Visible reports whether the surface is shown.
func (s *Surface) Visible() bool { return !s.box.Hidden() }

// Popup shows the surface with its top left corner at pos, in the
// coordinates of the root the surface is added to.
func (s *Surface) Popup(pos image.Point) {
	if s.Visible() {
		return
	}
	s.box.Move(pos)
	for _, f := range s.opened {
		f()
	}
	s.InitSize(s.Frame().InitSize())
	fb := s.Frame().Box()
	s.unregister = fb.Register(s.frameEvent)
	s.box.Show()
}

// PopupAt shows the surface below the anchor, or below w if the
// anchor is not set. The frame edge lines up with the anchor edge.
func (s *Surface) PopupAt(w widget.Widget) {
	if s.anchor != nil {
		w = s.anchor
	}
	r := w.Box().ScreenBounds()
	d := s.metrics.inset()
	s.Popup(image.Pt(r.Min.X-d, r.Max.Y))
}

// Close hides the surface.
func (s *Surface) Close() {
	if !s.Visible() {
		return
	}
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
	s.drag = gesture.Drag{}
	s.pressSide = NoSide
	for _, f := range s.closed {
		f()
	}
	s.box.UnsetCursor()
	s.box.Hide()
}

// InitSize sizes the frame to sz and the surface around it.
func (s *Surface) InitSize(sz image.Point) {
	got := s.Frame().ApplySize(sz)
	s.box.Resize(s.outer(got))
}

// Cursor returns the cursor of the surface.
func (s *Surface) Cursor() pointer.Cursor { return s.box.Cursor() }

// InsideBorder reports the enabled edges within the border width of
// p, given relative to the frame.
func (s *Surface) InsideBorder(p image.Point) (Side, bool) {
	sz := s.Frame().Box().Size()
	fw := s.metrics.border()
	var side Side
	switch {
	case p.X >= 0 && p.X < fw:
		side |= SideLeft
	case p.X >= sz.X-fw && p.X < sz.X:
		side |= SideRight
	}
	switch {
	case p.Y >= 0 && p.Y < fw:
		side |= SideTop
	case p.Y >= sz.Y-fw && p.Y < sz.Y:
		side |= SideBottom
	}
	side &= s.sides
	return side, side != NoSide
}

// Adjust moves the left, top, right and bottom edges by the deltas.
// A change along an axis is dropped if it would take the surface out
// of the size range of its frame.
func (s *Surface) Adjust(dl, dt, dr, db int) {
	f := s.Frame()
	r := s.box.Bounds()
	d := s.metrics.inset()
	in := image.Pt(2*d, 2*d)
	min := f.MinSize().Add(in)
	max := f.MaxSize().Add(in)

	nr := image.Rectangle{
		Min: image.Pt(r.Min.X+dl, r.Min.Y+dt),
		Max: image.Pt(r.Max.X+dr, r.Max.Y+db),
	}
	if w := nr.Dx(); w < min.X || s.scrollable && w > max.X {
		dl, dr = 0, 0
	}
	if h := nr.Dy(); h < min.Y || s.scrollable && h > max.Y {
		dt, db = 0, 0
	}
	nr = image.Rectangle{
		Min: image.Pt(r.Min.X+dl, r.Min.Y+dt),
		Max: image.Pt(r.Max.X+dr, r.Max.Y+db),
	}
	s.box.Move(nr.Min)
	got := f.ApplySize(nr.Size().Sub(in))
	s.box.Resize(s.outer(got))
}

func (s *Surface) outer(frame image.Point) image.Point {
	d := s.metrics.inset()
	return frame.Add(image.Pt(2*d, 2*d))
}

// attach places the active frame in the surface.
func (s *Surface) attach() {
	f := s.Frame()
	fb := f.Box()
	fb.SetParent(&s.box)
	d := s.metrics.inset()
	fb.Move(image.Pt(d, d))
	if s.w != nil {
		f.SetContent(s.w)
	}
	if s.Visible() {
		s.unregister = fb.Register(s.frameEvent)
		s.InitSize(f.InitSize())
	}
}

func (s *Surface) detach() {
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
	f := s.Frame()
	f.SetContent(nil)
	f.Box().SetParent(nil)
}

func (s *Surface) frameEvent(frame *widget.Box, e event.Event) {
	pe, ok := e.(pointer.Event)
	if !ok {
		return
	}
	switch pe.Kind {
	case pointer.Press:
		if side, ok := s.InsideBorder(pe.Position); ok {
			s.pressSide = side
			s.drag.Update(pe)
		}
	case pointer.Release, pointer.Cancel:
		s.drag.Update(pe)
		s.pressSide = NoSide
	case pointer.Move:
		if !s.drag.Dragging() {
			s.updateCursor(pe.Position)
			break
		}
		d, ok := s.drag.Update(pe)
		if !ok {
			break
		}
		if pe.Modifiers.Contain(key.ModAlt) {
			s.box.Move(s.box.Pos().Add(d))
			break
		}
		if d.X != 0 {
			if s.pressSide&SideLeft != 0 {
				s.Adjust(d.X, 0, 0, 0)
			} else if s.pressSide&SideRight != 0 {
				s.Adjust(0, 0, d.X, 0)
			}
		}
		if d.Y != 0 {
			if s.pressSide&SideTop != 0 {
				s.Adjust(0, d.Y, 0, 0)
			} else if s.pressSide&SideBottom != 0 {
				s.Adjust(0, 0, 0, d.Y)
			}
		}
	case pointer.Enter:
		if !s.drag.Dragging() {
			s.updateCursor(pe.Position)
		}
	case pointer.Leave:
		if !s.drag.Dragging() {
			s.box.SetCursor(pointer.CursorDefault)
		}
	}
}

func (s *Surface) updateCursor(p image.Point) {
	side, _ := s.InsideBorder(p)
	s.box.SetCursor(side.Cursor())
}
