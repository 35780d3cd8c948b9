// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"golang.org/x/exp/slices"

	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/io/system"
)

// Widget is a measurable item with a Box.
type Widget interface {
	// Box returns the geometry node of the widget.
	Box() *Box
	// MinSize is the smallest size the widget can be laid out at.
	MinSize() image.Point
	// PrefSize is the size the widget would like to have.
	PrefSize() image.Point
}

// Expander is implemented by widgets that make use of any extra
// width they are given, such as text entries.
type Expander interface {
	Expands() bool
}

// HandlerFunc receives the events delivered to a Box. The src
// argument is the box the handler is registered with.
type HandlerFunc func(src *Box, e event.Event)

// Box is a rectangle in the coordinate space of its parent. The zero
// value is a visible, empty box without a parent.
type Box struct {
	// Name identifies the box in debug output.
	Name string

	rect     image.Rectangle
	hidden   bool
	parent   *Box
	children []*Box
	handlers []handler
	nextID   int

	cursor    pointer.Cursor
	hasCursor bool

	scrollX, scrollY pointer.ScrollRange
}

type handler struct {
	id int
	f  HandlerFunc
}

// Bounds returns the rectangle of b in the coordinate space of its
// parent.
func (b *Box) Bounds() image.Rectangle {
	return b.rect
}

// Pos returns the position of b in its parent.
func (b *Box) Pos() image.Point {
	return b.rect.Min
}

// Size returns the size of b.
func (b *Box) Size() image.Point {
	return b.rect.Size()
}

// Move b to p, keeping its size.
func (b *Box) Move(p image.Point) {
	b.rect = b.rect.Add(p.Sub(b.rect.Min))
}

// Resize b to sz, keeping its position. Negative extents are treated
// as zero. A ResizeEvent is delivered if the size changed.
func (b *Box) Resize(sz image.Point) {
	if sz.X < 0 {
		sz.X = 0
	}
	if sz.Y < 0 {
		sz.Y = 0
	}
	old := b.rect.Size()
	if old == sz {
		return
	}
	b.rect.Max = b.rect.Min.Add(sz)
	b.Deliver(system.ResizeEvent{Size: sz, Old: old})
}

// SetBounds moves and resizes b.
func (b *Box) SetBounds(r image.Rectangle) {
	b.Move(r.Min)
	b.Resize(r.Size())
}

// Show clears the hidden flag of b.
func (b *Box) Show() {
	b.SetVisible(true)
}

// Hide sets the hidden flag of b.
func (b *Box) Hide() {
	b.SetVisible(false)
}

// SetVisible sets or clears the hidden flag and delivers a ShowEvent
// or HideEvent when the flag changes.
func (b *Box) SetVisible(visible bool) {
	if b.hidden == !visible {
		return
	}
	b.hidden = !visible
	if visible {
		b.Deliver(system.ShowEvent{})
	} else {
		b.Deliver(system.HideEvent{})
	}
}

// Hidden reports whether b itself is hidden, regardless of its
// ancestors.
func (b *Box) Hidden() bool {
	return b.hidden
}

// Visible reports whether b and all its ancestors are shown.
func (b *Box) Visible() bool {
	for p := b; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

// Parent returns the parent of b, or nil.
func (b *Box) Parent() *Box {
	return b.parent
}

// Children returns the children of b, bottom to top.
func (b *Box) Children() []*Box {
	return b.children
}

// SetParent detaches b from its current parent and appends it on top
// of the children of p. A nil p leaves b detached.
func (b *Box) SetParent(p *Box) {
	if b.parent == p {
		return
	}
	if old := b.parent; old != nil {
		if i := slices.Index(old.children, b); i >= 0 {
			old.children = slices.Delete(old.children, i, i+1)
		}
	}
	b.parent = p
	if p != nil {
		p.children = append(p.children, b)
	}
}

// Raise moves b on top of its siblings.
func (b *Box) Raise() {
	p := b.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, b); i >= 0 {
		p.children = append(slices.Delete(p.children, i, i+1), b)
	}
}

// ScreenBounds returns the rectangle of b in screen coordinates.
func (b *Box) ScreenBounds() image.Rectangle {
	r := b.rect
	for p := b.parent; p != nil; p = p.parent {
		r = r.Add(p.rect.Min)
	}
	return r
}

// HitTest returns the topmost visible box under p, which is in the
// coordinate space of b's parent. HitTest returns nil if p is outside b.
func (b *Box) HitTest(p image.Point) *Box {
	if b.hidden || !p.In(b.rect) {
		return nil
	}
	local := p.Sub(b.rect.Min)
	for i := len(b.children) - 1; i >= 0; i-- {
		if hit := b.children[i].HitTest(local); hit != nil {
			return hit
		}
	}
	return b
}

// SetCursor sets the cursor shown while the pointer is over b.
func (b *Box) SetCursor(c pointer.Cursor) {
	b.cursor = c
	b.hasCursor = true
}

// UnsetCursor makes b inherit the cursor of its parent.
func (b *Box) UnsetCursor() {
	b.cursor = pointer.CursorDefault
	b.hasCursor = false
}

// Cursor returns the cursor of b, or the cursor of the nearest
// ancestor that has one.
func (b *Box) Cursor() pointer.Cursor {
	for p := b; p != nil; p = p.parent {
		if p.hasCursor {
			return p.cursor
		}
	}
	return pointer.CursorDefault
}

// SetScrollRange sets the scroll distances b accepts along each axis.
// Boxes with empty ranges pass scroll events on to their parent.
func (b *Box) SetScrollRange(x, y pointer.ScrollRange) {
	b.scrollX, b.scrollY = x, y
}

// ScrollRange returns the scroll distances accepted by b.
func (b *Box) ScrollRange() (x, y pointer.ScrollRange) {
	return b.scrollX, b.scrollY
}

// Register h to receive the events delivered to b. The returned
// function removes the registration.
func (b *Box) Register(h HandlerFunc) (unregister func()) {
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, handler{id: id, f: h})
	return func() {
		for i, hh := range b.handlers {
			if hh.id == id {
				b.handlers = slices.Delete(b.handlers, i, i+1)
				return
			}
		}
	}
}

// Deliver e to the handlers of b in registration order.
func (b *Box) Deliver(e event.Event) {
	// Handlers may register or unregister while running.
	hs := append([]handler(nil), b.handlers...)
	for _, h := range hs {
		h.f(b, e)
	}
}
