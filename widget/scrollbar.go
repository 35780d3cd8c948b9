// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/x/toolstrip/layout"
)

// Scrollbar holds the state of a scroll bar: a value within a range
// and the page step, the extent of the visible part.
type Scrollbar struct {
	Axis layout.Axis
	// Thickness is the extent of the bar across its axis.
	Thickness int

	value    int
	min, max int
	page     int
	changed  []func(value int)

	box Box
}

// NewScrollbar returns a bar with an empty range.
func NewScrollbar(axis layout.Axis, thickness int) *Scrollbar {
	s := &Scrollbar{Axis: axis, Thickness: thickness}
	s.box.Name = "scrollbar"
	return s
}

func (s *Scrollbar) Box() *Box { return &s.box }

// MinSize is a square of the bar thickness.
func (s *Scrollbar) MinSize() image.Point {
	return image.Pt(s.Thickness, s.Thickness)
}

// PrefSize is the thickness across the axis and twice the thickness
// along it.
func (s *Scrollbar) PrefSize() image.Point {
	return s.Axis.Convert(image.Pt(2*s.Thickness, s.Thickness))
}

// OnChanged registers f to be called with the new value whenever the
// value changes.
func (s *Scrollbar) OnChanged(f func(value int)) {
	s.changed = append(s.changed, f)
}

// Value returns the current value.
func (s *Scrollbar) Value() int {
	return s.value
}

// SetValue sets the value clamped to the range.
func (s *Scrollbar) SetValue(v int) {
	v = layout.Constraint{Min: s.min, Max: s.max}.Constrain(v)
	if v == s.value {
		return
	}
	s.value = v
	for _, f := range s.changed {
		f(v)
	}
}

// SetRange sets the range and clamps the value into it. An inverted
// range collapses to min.
func (s *Scrollbar) SetRange(min, max int) {
	if max < min {
		max = min
	}
	s.min, s.max = min, max
	s.SetValue(s.value)
}

// Range returns the bounds of the value.
func (s *Scrollbar) Range() (min, max int) {
	return s.min, s.max
}

// SetPageStep sets the extent of the visible part.
func (s *Scrollbar) SetPageStep(p int) {
	s.page = p
}

// PageStep returns the extent of the visible part.
func (s *Scrollbar) PageStep() int {
	return s.page
}
