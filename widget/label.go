// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Label is a single line of text. Its size hints are the measured
// extent of the text.
type Label struct {
	Text string
	// Measure returns the extent of a text. Nil means FaceMeasure
	// with the 7x13 basic font.
	Measure func(text string) image.Point

	box Box
}

// FaceMeasure returns a measuring function for the face.
func FaceMeasure(face font.Face) func(string) image.Point {
	return func(text string) image.Point {
		adv := font.MeasureString(face, text)
		return image.Point{X: adv.Ceil(), Y: face.Metrics().Height.Ceil()}
	}
}

var defaultMeasure = FaceMeasure(basicfont.Face7x13)

// NewLabel returns a label for the text.
func NewLabel(text string) *Label {
	l := &Label{Text: text}
	l.box.Name = "label"
	return l
}

func (l *Label) Box() *Box { return &l.box }

// MinSize returns the extent of the text.
func (l *Label) MinSize() image.Point {
	m := l.Measure
	if m == nil {
		m = defaultMeasure
	}
	return m(l.Text)
}

// PrefSize equals MinSize.
func (l *Label) PrefSize() image.Point {
	return l.MinSize()
}
