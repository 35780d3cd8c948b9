// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/x/toolstrip/gesture"
	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/key"
	"gioui.org/x/toolstrip/io/pointer"
)

// Clickable turns the pointer events of a box into clicks.
type Clickable struct {
	click   gesture.Click
	clicks  []Click
	clicked []func(Click)
}

// Click represents a click.
type Click struct {
	Modifiers key.Modifiers
}

// Attach registers c with b. The returned function detaches it.
func (c *Clickable) Attach(b *Box) (detach func()) {
	return b.Register(func(_ *Box, e event.Event) {
		if e, ok := e.(pointer.Event); ok {
			c.Update(e)
		}
	})
}

// OnClick registers f to be called for every completed click.
func (c *Clickable) OnClick(f func(Click)) {
	c.clicked = append(c.clicked, f)
}

// Update the click state from e.
func (c *Clickable) Update(e pointer.Event) {
	ce, ok := c.click.Update(e)
	if !ok || ce.Type != gesture.TypeClick {
		return
	}
	click := Click{Modifiers: ce.Modifiers}
	c.clicks = append(c.clicks, click)
	for _, f := range c.clicked {
		f(click)
	}
}

// Pressed reports whether a pointer is pressing.
func (c *Clickable) Pressed() bool {
	return c.click.State() == gesture.StatePressed
}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (c *Clickable) Clicked() bool {
	if len(c.clicks) == 0 {
		return false
	}
	n := copy(c.clicks, c.clicks[1:])
	c.clicks = c.clicks[:n]
	return true
}
