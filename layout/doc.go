// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the size arithmetic shared by the strip and
popup engines.

Coordinate System

The coordinate system has its origin in the top left corner with the
axes extending right and down. All sizes are whole pixels.

Constraints

A Constraint limits a length to a [Min, Max] range. Engines clamp rather
than fail: a request outside the range is replaced by the nearest
acceptable value.

Axes

Engines that lay out along one axis compute in (main, cross) space and
use Axis.Convert to map back to (x, y).
*/
package layout
