// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the retained host primitives the toolstrip
engines are built on.

A Box is a node in a tree of rectangles. It can be moved, resized,
reparented, shown and hidden, and it delivers pointer and lifecycle
events to the handlers registered on it. Widgets embed or own a Box and
report a minimum and a preferred size; painting is left to the host.

Handlers are registered explicitly:

	unregister := box.Register(func(src *widget.Box, e event.Event) {
		switch e := e.(type) {
		case pointer.Event:
			...
		case system.ResizeEvent:
			...
		}
	})

Handlers run synchronously, in registration order, on the goroutine
that delivered the event.
*/
package widget
