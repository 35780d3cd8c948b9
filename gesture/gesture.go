// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events delivered to a box
and detect higher level actions such as clicks, drags and
hovering. A gesture is fed every event of its box through its
Update method and keeps no reference to the box.
*/
package gesture

import (
	"image"

	"gioui.org/x/toolstrip/io/key"
	"gioui.org/x/toolstrip/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type      ClickType
	Position  image.Point
	Modifiers key.Modifiers
}

type ClickType uint8

// Drag detects pointer drags and reduces them to the distance
// travelled between consecutive events, in screen coordinates.
type Drag struct {
	dragging bool
	last     image.Point
}

// Hover detects whether the pointer is over the box.
type Hover struct {
	entered bool
}

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when a pointer
	// is hovering over the handler.
	StateFocused
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reporoted when a click action
	// is complete.
	TypeClick
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Update the click state from e and report the resulting click
// event, if any.
func (c *Click) Update(e pointer.Event) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed && e.Hit {
			c.state = StateFocused
			return ClickEvent{Type: TypeClick, Position: e.Position, Modifiers: e.Modifiers}, true
		}
	case pointer.Cancel, pointer.Leave:
		c.state = StateNormal
	case pointer.Press:
		if c.state == StatePressed || !e.Hit {
			break
		}
		if e.Buttons != 0 && !e.Buttons.Contain(pointer.ButtonPrimary) {
			break
		}
		c.state = StatePressed
		return ClickEvent{Type: TypePress, Position: e.Position, Modifiers: e.Modifiers}, true
	case pointer.Enter, pointer.Move:
		if c.state == StatePressed && !e.Hit {
			c.state = StateNormal
		} else if c.state < StateFocused {
			c.state = StateFocused
		}
	}
	return ClickEvent{}, false
}

// Update the drag state from e. While dragging, Update reports the
// non-zero distance the pointer travelled since the previous event.
func (d *Drag) Update(e pointer.Event) (image.Point, bool) {
	switch e.Kind {
	case pointer.Press:
		d.dragging = true
		d.last = e.Screen
	case pointer.Move:
		if !d.dragging {
			break
		}
		delta := e.Screen.Sub(d.last)
		d.last = e.Screen
		if delta != (image.Point{}) {
			return delta, true
		}
	case pointer.Release, pointer.Cancel:
		d.dragging = false
	}
	return image.Point{}, false
}

// Dragging reports whether a pointer is held down.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Update the hover state from e and report whether the
// pointer is over the box.
func (h *Hover) Update(e pointer.Event) bool {
	switch e.Kind {
	case pointer.Enter:
		h.entered = true
	case pointer.Leave, pointer.Cancel:
		h.entered = false
	}
	return h.entered
}

// Hovered reports whether the pointer is over the box.
func (h *Hover) Hovered() bool {
	return h.entered
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
