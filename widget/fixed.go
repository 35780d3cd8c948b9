// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "image"

// Fixed is a content item with constant size hints, standing in for
// a host control such as a button or a text entry.
type Fixed struct {
	// Text is the caption drawn by the host.
	Text string
	// Min and Pref are the size hints.
	Min, Pref image.Point
	// Expand marks the item as making use of extra width.
	Expand bool

	box Box
}

// NewFixed returns a Fixed named after its text.
func NewFixed(text string, min, pref image.Point) *Fixed {
	f := &Fixed{Text: text, Min: min, Pref: pref}
	f.box.Name = text
	return f
}

func (f *Fixed) Box() *Box { return &f.box }

// MinSize returns Min.
func (f *Fixed) MinSize() image.Point { return f.Min }

// PrefSize returns Pref, but no smaller than Min.
func (f *Fixed) PrefSize() image.Point {
	p := f.Pref
	if p.X < f.Min.X {
		p.X = f.Min.X
	}
	if p.Y < f.Min.Y {
		p.Y = f.Min.Y
	}
	return p
}

func (f *Fixed) Expands() bool { return f.Expand }
