// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"image"

	"golang.org/x/exp/slices"

	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/widget"
)

// Router routes pointer events from the host to the boxes of a set of
// root boxes, topmost root first.
type Router struct {
	roots []*widget.Box
	// hover is the box under the pointer.
	hover *widget.Box
	// grab is the box receiving events while a button is held.
	grab *widget.Box
}

// AddRoot adds b on top of the roots. Popups are typically added
// after the main window box.
func (r *Router) AddRoot(b *widget.Box) {
	if slices.Contains(r.roots, b) {
		return
	}
	r.roots = append(r.roots, b)
}

// RemoveRoot removes b and cancels any grab or hover of its tree.
func (r *Router) RemoveRoot(b *widget.Box) {
	if i := slices.Index(r.roots, b); i >= 0 {
		r.roots = slices.Delete(r.roots, i, i+1)
	}
	if r.grab != nil && rootOf(r.grab) == b {
		r.grab = nil
	}
	if r.hover != nil && rootOf(r.hover) == b {
		r.hover = nil
	}
}

// Hit returns the topmost visible box under the screen point p.
func (r *Router) Hit(p image.Point) *widget.Box {
	for i := len(r.roots) - 1; i >= 0; i-- {
		if hit := r.roots[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return nil
}

// Queue routes e, whose Screen field must be set. Position and Hit are
// computed for each receiving box.
func (r *Router) Queue(e pointer.Event) {
	hit := r.Hit(e.Screen)
	switch e.Kind {
	case pointer.Press:
		r.updateHover(hit, e)
		if hit != nil {
			r.grab = hit
			deliver(hit, e)
		}
	case pointer.Release, pointer.Cancel:
		target := hit
		if r.grab != nil {
			target = r.grab
			r.grab = nil
		}
		if target != nil {
			deliver(target, e)
		}
		r.updateHover(hit, e)
	case pointer.Move:
		if r.grab != nil {
			deliver(r.grab, e)
			// Hover changes are reported when the grab ends.
			return
		}
		r.updateHover(hit, e)
		if hit != nil {
			deliver(hit, e)
		}
	case pointer.Scroll:
		r.scroll(hit, e)
	case pointer.Leave:
		// The pointer left the host window.
		if r.grab == nil {
			r.updateHover(nil, e)
		}
	}
}

// Cursor returns the cursor of the box under the pointer, or of the
// grabbing box.
func (r *Router) Cursor() pointer.Cursor {
	switch {
	case r.grab != nil:
		return r.grab.Cursor()
	case r.hover != nil:
		return r.hover.Cursor()
	default:
		return pointer.CursorDefault
	}
}

// Grabbed returns the box holding the pointer grab, if any.
func (r *Router) Grabbed() *widget.Box {
	return r.grab
}

func (r *Router) updateHover(hit *widget.Box, e pointer.Event) {
	if hit == r.hover {
		return
	}
	if old := r.hover; old != nil {
		leave := e
		leave.Kind = pointer.Leave
		deliver(old, leave)
	}
	r.hover = hit
	if hit != nil {
		enter := e
		enter.Kind = pointer.Enter
		deliver(hit, enter)
	}
}

// scroll delivers e to hit and its ancestors. Each box receives the
// part of the remaining distance within its scroll range, until no
// distance is left.
func (r *Router) scroll(hit *widget.Box, e pointer.Event) {
	left := e.Scroll
	for b := hit; b != nil && left != (image.Point{}); b = b.Parent() {
		rx, ry := b.ScrollRange()
		var d image.Point
		left.X, d.X = rx.Clamp(left.X)
		left.Y, d.Y = ry.Clamp(left.Y)
		if d == (image.Point{}) {
			continue
		}
		be := e
		be.Scroll = d
		deliver(b, be)
	}
}

func deliver(b *widget.Box, e pointer.Event) {
	sb := b.ScreenBounds()
	e.Position = e.Screen.Sub(sb.Min)
	e.Hit = e.Screen.In(sb)
	b.Deliver(e)
}

func rootOf(b *widget.Box) *widget.Box {
	for b.Parent() != nil {
		b = b.Parent()
	}
	return b
}
