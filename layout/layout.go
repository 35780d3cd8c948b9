// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"golang.org/x/exp/constraints"
)

// Constraints represent a set of acceptable ranges for
// a widget's width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is a range of acceptable sizes in a single
// dimension.
type Constraint struct {
	Min, Max int
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Unbounded is the maximum extent of an unconstrained widget.
const Unbounded = 1<<24 - 1

// Constrain a value to the range [Min; Max]. Min takes precedence
// when the range is empty.
func (c Constraint) Constrain(v int) int {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// Constrain a size to the Width and Height ranges.
func (c Constraints) Constrain(size image.Point) image.Point {
	return image.Point{X: c.Width.Constrain(size.X), Y: c.Height.Constrain(size.Y)}
}

// Clamp returns v limited to [lo; hi]. Unlike Constraint.Constrain, hi
// takes precedence when lo > hi.
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt image.Point) image.Point {
	if a == Horizontal {
		return pt
	}
	return image.Pt(pt.Y, pt.X)
}

// Main returns the extent of sz along the axis.
func (a Axis) Main(sz image.Point) int {
	if a == Horizontal {
		return sz.X
	}
	return sz.Y
}

// Cross returns the extent of sz across the axis.
func (a Axis) Cross(sz image.Point) int {
	if a == Horizontal {
		return sz.Y
	}
	return sz.X
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
