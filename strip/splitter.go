// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"gioui.org/x/toolstrip/gesture"
	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/layout"
	"gioui.org/x/toolstrip/widget"
)

// Splitter is the drag handle after a resizable area. It reports the
// distance dragged along the strip axis; the strip decides the new
// widths.
type Splitter struct {
	box   widget.Box
	index int
	axis  layout.Axis
	drag  gesture.Drag
	hover gesture.Hover
	moved []func(index, delta int)
}

func newSplitter() *Splitter {
	sp := &Splitter{index: -1}
	sp.box.Name = "splitter"
	sp.box.Hide()
	sp.box.Register(func(_ *widget.Box, e event.Event) {
		if e, ok := e.(pointer.Event); ok {
			sp.update(e)
		}
	})
	return sp
}

// init assigns the splitter to the boundary after area index.
func (sp *Splitter) init(index int, axis layout.Axis) {
	sp.index = index
	sp.axis = axis
	if axis == layout.Horizontal {
		sp.box.SetCursor(pointer.CursorColResize)
	} else {
		sp.box.SetCursor(pointer.CursorRowResize)
	}
}

func (sp *Splitter) Box() *widget.Box { return &sp.box }

// Index returns the index of the area before the splitter.
func (sp *Splitter) Index() int { return sp.index }

// Pressed reports whether the splitter is being dragged.
func (sp *Splitter) Pressed() bool { return sp.drag.Dragging() }

// Hovered reports whether the pointer is over the splitter.
func (sp *Splitter) Hovered() bool { return sp.hover.Hovered() }

func (sp *Splitter) onMoved(f func(index, delta int)) {
	sp.moved = append(sp.moved, f)
}

func (sp *Splitter) update(e pointer.Event) {
	sp.hover.Update(e)
	d, ok := sp.drag.Update(e)
	if !ok {
		return
	}
	delta := sp.axis.Main(d)
	if delta == 0 {
		return
	}
	for _, f := range sp.moved {
		f(sp.index, delta)
	}
}
