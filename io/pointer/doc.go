// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events and cursor shapes.

Pointer events are routed by an io/input.Router to the topmost visible
widget.Box under the pointer and delivered to the handlers registered on
that box. A Press grabs the pointer: the following Move and Release
events go to the pressed box until the grab ends, even if the pointer
leaves it.

Enter and Leave events are synthesized by the router whenever the box
under the pointer changes.

Every event carries both the position in the receiving box' coordinate
space and the position in screen space. Handlers that measure drag
distances use Screen, since the receiving box may move as a result of
the drag.
*/
package pointer
