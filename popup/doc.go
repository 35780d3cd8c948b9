// SPDX-License-Identifier: Unlicense OR MIT

/*
Package popup implements a floating surface that the user can resize by
dragging its border, optionally hosting its content in a scrolled
viewport.

A Surface is a top level widget.Box; add it as a root of the
input.Router driving the window so that it receives pointer events while
shown. The surface hosts a Content: either a plain Frame or a Scroll,
selected by SetScrollable. The sizes a Surface gives its content are
always within the minimum and maximum the content reports, plus the
insets around it.

Resize sides

SetResizeSides restricts the edges that react to the pointer. A press
within the border width of an enabled edge starts a resize of that edge;
a press in a corner resizes both edges. Holding Alt while dragging
moves the surface instead.
*/
package popup
