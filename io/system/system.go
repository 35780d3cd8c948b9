// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains the lifecycle events a host delivers to
// widgets: a box was shown, hidden or resized.
package system

import "image"

// ShowEvent is delivered when a box becomes visible.
type ShowEvent struct{}

// HideEvent is delivered when a box becomes hidden.
type HideEvent struct{}

// ResizeEvent is delivered when the size of a box changes.
type ResizeEvent struct {
	// Size is the new size.
	Size image.Point
	// Old is the size before the change.
	Old image.Point
}

func (ShowEvent) ImplementsEvent()   {}
func (HideEvent) ImplementsEvent()   {}
func (ResizeEvent) ImplementsEvent() {}
