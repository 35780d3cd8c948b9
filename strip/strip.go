// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"image"

	"golang.org/x/exp/slices"

	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/system"
	"gioui.org/x/toolstrip/layout"
	"gioui.org/x/toolstrip/popup"
	"gioui.org/x/toolstrip/widget"
)

// Strip lays out a sequence of areas along an axis.
type Strip struct {
	box     widget.Box
	axis    layout.Axis
	metrics Metrics

	areas []*Area
	// splitters is grown on demand and never shrunk. The first
	// active splitters are in use.
	splitters []*Splitter
	active    int

	labelHeight int
	indicator   indicator
	overflow    *Overflow

	moved []func(index, delta int)
}

// New returns a hidden strip. The popup metrics size its overflow
// popup.
func New(axis layout.Axis, m Metrics, pm popup.Metrics) *Strip {
	s := &Strip{axis: axis, metrics: m}
	s.box.Name = "strip"
	s.box.Hide()
	s.indicator.init(s)
	s.overflow = newOverflow(s, pm)
	s.box.Register(func(_ *widget.Box, e event.Event) {
		switch e.(type) {
		case system.ShowEvent, system.ResizeEvent:
			s.Layout(true)
		}
	})
	return s
}

func (s *Strip) Box() *widget.Box { return &s.box }

// Axis returns the layout axis.
func (s *Strip) Axis() layout.Axis { return s.axis }

// Add appends an area for w. Widgets that expand make the area
// resizable.
func (s *Strip) Add(w widget.Widget) *Area {
	return s.AddLabeled("", w)
}

// AddLabeled appends an area for w with a label. An empty label adds
// no label.
func (s *Strip) AddLabeled(label string, w widget.Widget) *Area {
	a := newArea(s)
	a.SetContent(w)
	if label != "" {
		a.SetLabel(label)
	}
	if e, ok := w.(widget.Expander); ok && e.Expands() {
		a.SetResizable(true)
	}
	a.box.SetParent(&s.box)
	s.areas = append(s.areas, a)
	s.Layout(true)
	if a.clipped && s.overflow.Visible() {
		s.overflow.addArea(a)
	}
	return a
}

// Remove removes a from the strip.
func (s *Strip) Remove(a *Area) {
	i := slices.Index(s.areas, a)
	if i < 0 {
		return
	}
	s.areas = slices.Delete(s.areas, i, i+1)
	s.overflow.list.remove(a)
	a.box.SetParent(nil)
	a.strip = nil
	s.Layout(true)
}

// Len returns the number of areas.
func (s *Strip) Len() int { return len(s.areas) }

// Area returns the area at index i.
func (s *Strip) Area(i int) *Area { return s.areas[i] }

// Areas returns the areas in order.
func (s *Strip) Areas() []*Area { return slices.Clone(s.areas) }

// Index returns the index of a, or -1.
func (s *Strip) Index(a *Area) int { return slices.Index(s.areas, a) }

// Clipped returns the areas clipped by the last layout, in order.
func (s *Strip) Clipped() []*Area {
	var clipped []*Area
	for _, a := range s.areas {
		if a.clipped {
			clipped = append(clipped, a)
		}
	}
	return clipped
}

// Splitters returns the splitters placed by the last layout.
func (s *Strip) Splitters() []*Splitter {
	return s.splitters[:s.active]
}

// Indicator returns the box of the overflow indicator.
func (s *Strip) Indicator() *widget.Box { return &s.indicator.box }

// IndicatorVisible reports whether areas are clipped.
func (s *Strip) IndicatorVisible() bool { return !s.indicator.box.Hidden() }

// Overflow returns the popup holding clipped areas.
func (s *Strip) Overflow() *Overflow { return s.overflow }

// OnSplitterMoved registers f to be called after a splitter drag
// changed the layout, with the index of the area before the splitter
// and the width change of that area.
func (s *Strip) OnSplitterMoved(f func(index, delta int)) {
	s.moved = append(s.moved, f)
}

// Resize sets the size of the strip, laying it out if it changed.
func (s *Strip) Resize(sz image.Point) { s.box.Resize(sz) }

// Show shows the strip and lays it out.
func (s *Strip) Show() { s.box.Show() }

// Hide hides the strip and closes its overflow popup.
func (s *Strip) Hide() {
	s.overflow.Close()
	s.box.Hide()
}

// LabelHeight returns the height of the tallest label.
func (s *Strip) LabelHeight() int { return s.labelHeight }

// PrefSize fits every area at its minimum width and the tallest
// preferred height.
func (s *Strip) PrefSize() image.Point {
	w, h := s.metrics.margin(), 0
	n := len(s.areas)
	for i, a := range s.areas {
		w += a.minWidth() + s.metrics.gap()
		h = max(h, s.axis.Cross(a.PrefSize()))
		if a.resizable && i < n-1 {
			w += s.metrics.splitter()
		}
	}
	return s.axis.Convert(image.Pt(w, h))
}

// MinSize is the minimum strip width and the tallest minimum height.
func (s *Strip) MinSize() image.Point {
	h := 0
	for _, a := range s.areas {
		h = max(h, s.axis.Cross(a.MinSize()))
	}
	return s.axis.Convert(image.Pt(s.metrics.minWidth(), h))
}

// ContentsWidth returns the width the areas take at their display
// widths, including margin, gaps and splitters.
func (s *Strip) ContentsWidth() int {
	w := s.metrics.margin()
	n := len(s.areas)
	for i, a := range s.areas {
		w += a.DisplayWidth() + s.metrics.gap()
		if a.resizable && i < n-1 {
			w += s.metrics.splitter()
		}
	}
	return w
}

// Layout lays out the strip. A full layout decides which areas fit
// and places the splitters; otherwise the areas and splitters of the
// previous full layout are moved to their display widths.
func (s *Strip) Layout(updateSplitters bool) {
	if !updateSplitters {
		s.place(false)
		return
	}
	s.indicator.box.Hide()
	for _, a := range s.areas {
		if a.inStrip() {
			a.box.Show()
		}
	}
	s.updateLabelHeight()
	s.reduceSize()
	s.updateVisible()
	s.hideSplitters()
	s.place(true)
	if len(s.Clipped()) > 0 {
		s.indicator.place()
	}
}

func (s *Strip) width() int  { return s.axis.Main(s.box.Size()) }
func (s *Strip) height() int { return s.axis.Cross(s.box.Size()) }

func (s *Strip) updateLabelHeight() {
	s.labelHeight = 0
	for _, a := range s.areas {
		s.labelHeight = max(s.labelHeight, a.LabelMinHeight())
	}
}

// resizeIndices returns the indices of resizable areas followed by a
// splitter.
func (s *Strip) resizeIndices() []int {
	var inds []int
	n := len(s.areas)
	for i, a := range s.areas {
		if a.resizable && i < n-1 {
			inds = append(inds, i)
		}
	}
	return inds
}

// reduceSize shrinks resizable areas, last first, until the strip fits.
// It reports whether the strip still does not fit.
func (s *Strip) reduceSize() bool {
	d := s.ContentsWidth() - s.width()
	inds := s.resizeIndices()
	for d > 0 && len(inds) > 0 {
		a := s.areas[inds[len(inds)-1]]
		inds = inds[:len(inds)-1]
		cur, min := a.DisplayWidth(), a.minWidth()
		if cur <= min {
			continue
		}
		w := max(cur-d, min)
		d -= cur - w
		a.SetDisplayWidth(w)
	}
	return d > 0
}

// updateVisible clips the areas that do not fit. Areas before the
// first clipped area are clipped too if they would be covered by the
// indicator.
func (s *Strip) updateVisible() {
	width := s.width()
	n := len(s.areas)
	gap, sw := s.metrics.gap(), s.metrics.splitter()

	clipAt := -1
	x := s.metrics.margin()
	for i, a := range s.areas {
		w := a.DisplayWidth()
		if clipAt < 0 && x+w+gap > width {
			clipAt = i
		}
		s.setClipped(a, clipAt >= 0)
		x += w + gap
		if a.resizable && i < n-1 {
			x += sw
		}
	}
	if clipAt < 0 {
		return
	}

	iw := s.metrics.indicator()
	clipped := false
	x = s.metrics.margin()
	for i, a := range s.areas[:clipAt] {
		w := a.DisplayWidth()
		if !clipped && x+w+iw+gap > width {
			clipped = true
		}
		s.setClipped(a, clipped)
		x += w + gap
		if a.resizable && i < n-1 {
			x += sw
		}
	}
}

func (s *Strip) setClipped(a *Area, clipped bool) {
	a.SetClipped(clipped)
	if a.inStrip() {
		a.box.SetVisible(!clipped)
	}
}

func (s *Strip) hideSplitters() {
	for _, sp := range s.splitters[:s.active] {
		sp.box.Hide()
	}
	s.active = 0
}

// splitter returns the next free splitter.
func (s *Strip) splitter() *Splitter {
	if s.active == len(s.splitters) {
		sp := newSplitter()
		sp.box.SetParent(&s.box)
		sp.onMoved(s.splitterMoved)
		s.splitters = append(s.splitters, sp)
	}
	sp := s.splitters[s.active]
	s.active++
	return sp
}

// place moves the visible areas to their display widths, and the
// splitters after them. If acquire is set the splitters are taken from
// the pool, otherwise the splitters of the last full layout are reused
// in order.
func (s *Strip) place(acquire bool) {
	h := s.height()
	gap, sw := s.metrics.gap(), s.metrics.splitter()
	n := len(s.areas)
	next := 0
	x := s.metrics.margin()
	for i, a := range s.areas {
		if !a.inStrip() || a.box.Hidden() {
			continue
		}
		w := a.DisplayWidth()
		a.box.Move(s.axis.Convert(image.Pt(x, 0)))
		a.box.Resize(s.axis.Convert(image.Pt(w, h)))
		a.Layout()
		x += w + gap
		if !a.resizable || i == n-1 {
			continue
		}
		var sp *Splitter
		if acquire {
			sp = s.splitter()
			sp.init(i, s.axis)
			sp.box.Show()
		} else if next < s.active {
			sp = s.splitters[next]
			next++
		}
		if sp != nil {
			sp.box.Move(s.axis.Convert(image.Pt(x-gap/2, 0)))
			sp.box.Resize(s.axis.Convert(image.Pt(sw, h)))
		}
		x += sw
	}
}

// splitterMoved resizes the area at ind by d, keeping the contents
// width of the strip.
func (s *Strip) splitterMoved(ind, d int) {
	fitW := s.ContentsWidth()
	width := s.width()
	a := s.areas[ind]
	cur, minW := a.DisplayWidth(), a.minWidth()
	maxW := width - s.metrics.minWidth()

	w := layout.Clamp(cur+d, minW, maxW)
	d = w - cur

	if d > 0 {
		if dw := s.ContentsWidth() + d - width; dw > 0 {
			// Take the excess from the resizable areas after ind.
			for _, b := range s.areas[ind+1 : len(s.areas)-1] {
				if dw <= 0 {
					break
				}
				if !b.resizable {
					continue
				}
				w1, min1 := b.DisplayWidth(), b.minWidth()
				if w1 <= min1 {
					continue
				}
				take := min(w1-min1, dw)
				b.SetDisplayWidth(w1 - take)
				dw -= take
			}
		}
		w = min(w, width-s.ContentsWidth()+cur)
	} else {
		w = max(w, minW)
	}
	a.SetDisplayWidth(w)
	s.expandToFit(ind, fitW)
	s.Layout(false)

	for _, f := range s.moved {
		f(ind, a.DisplayWidth()-cur)
	}
}

// expandToFit gives the difference between fitW and the contents
// width to the last resizable area after stop.
func (s *Strip) expandToFit(stop, fitW int) {
	for i := len(s.areas) - 2; i >= 0; i-- {
		if i == stop {
			break
		}
		a := s.areas[i]
		if !a.resizable {
			continue
		}
		w := a.DisplayWidth() + fitW - s.ContentsWidth()
		a.SetDisplayWidth(max(w, a.minWidth()))
		return
	}
}
