// SPDX-License-Identifier: Unlicense OR MIT

/*
Package strip implements an adaptive tool strip: a row of areas, each
holding a widget under an optional label.

Layout

The strip lays its areas out along its axis, separated by a gap, with a
Splitter after every resizable area but the last. When the areas do not
fit, resizable areas are shrunk toward their minimum width, last first.
If that is not enough, trailing areas are clipped: they are hidden from
the strip and an overflow indicator is shown at its trailing edge.
Clicking the indicator opens the Overflow popup, which holds the clipped
areas until it closes.

Dragging a splitter widens or narrows the area before it. Widening takes
width from the resizable areas after it, and any width left over after
the drag is given to the last resizable area, so the strip keeps its
total width.
*/
package strip
