// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"image"

	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/widget"
)

// indicator is the button shown at the trailing edge of a strip with
// clipped areas. Clicking it opens the overflow popup.
type indicator struct {
	box   widget.Box
	click widget.Clickable
	strip *Strip
}

func (ind *indicator) init(s *Strip) {
	ind.strip = s
	ind.box.Name = "indicator"
	ind.box.SetCursor(pointer.CursorPointer)
	ind.box.Hide()
	ind.box.SetParent(&s.box)
	ind.click.Attach(&ind.box)
	ind.click.OnClick(func(widget.Click) {
		s.overflow.Open()
	})
}

func (ind *indicator) Box() *widget.Box { return &ind.box }

func (ind *indicator) MinSize() image.Point {
	sz := ind.strip.metrics.indicator()
	return image.Pt(sz, sz)
}

func (ind *indicator) PrefSize() image.Point { return ind.MinSize() }

// place shows the indicator at the trailing edge, centered across the
// strip.
func (ind *indicator) place() {
	s := ind.strip
	sz := ind.MinSize()
	iw, ih := s.axis.Main(sz), s.axis.Cross(sz)
	pos := image.Pt(s.width()-iw, (s.height()-ih)/2)
	ind.box.Move(s.axis.Convert(pos))
	ind.box.Resize(sz)
	ind.box.Show()
	ind.box.Raise()
}
