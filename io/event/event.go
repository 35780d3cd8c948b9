// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
//
// Events are delivered synchronously to the handlers registered on a
// widget.Box, in registration order. No handler runs concurrently with
// another.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
