// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"image"

	"golang.org/x/exp/slices"

	"gioui.org/x/toolstrip/io/event"
	"gioui.org/x/toolstrip/io/system"
	"gioui.org/x/toolstrip/popup"
	"gioui.org/x/toolstrip/widget"
)

// Overflow is the popup listing the clipped areas of a strip. The
// areas move into the popup when it opens and back into the strip when
// it closes.
type Overflow struct {
	strip   *Strip
	surface *popup.Surface
	list    list
}

func newOverflow(s *Strip, pm popup.Metrics) *Overflow {
	o := &Overflow{strip: s}
	o.list.init(s.metrics)
	o.surface = popup.NewSurface(true, pm)
	o.surface.SetContent(&o.list)
	o.surface.SetAnchor(&s.indicator)
	o.surface.OnOpen(o.addAreas)
	o.surface.OnClose(o.removeAreas)
	return o
}

// Surface returns the popup surface. Add its box as a root of the
// router of the window.
func (o *Overflow) Surface() *popup.Surface { return o.surface }

// Open shows the popup below the indicator.
func (o *Overflow) Open() {
	o.surface.PopupAt(&o.strip.indicator)
}

// Close hides the popup, returning its areas to the strip.
func (o *Overflow) Close() { o.surface.Close() }

// Visible reports whether the popup is open.
func (o *Overflow) Visible() bool { return o.surface.Visible() }

// Areas returns the areas in the popup.
func (o *Overflow) Areas() []*Area { return slices.Clone(o.list.areas) }

func (o *Overflow) addAreas() {
	for _, a := range o.strip.areas {
		if a.Clipped() {
			o.list.add(a)
		}
	}
	o.list.layout()
}

// addArea moves an area clipped while the popup is open to the end
// of the list.
func (o *Overflow) addArea(a *Area) {
	o.list.add(a)
	o.list.layout()
	o.surface.InitSize(o.surface.Frame().Box().Size())
}

func (o *Overflow) removeAreas() {
	for _, a := range o.list.areas {
		a.box.SetParent(&o.strip.box)
		a.box.Show()
	}
	o.list.areas = o.list.areas[:0]
	o.strip.Layout(true)
}

// list stacks areas vertically.
type list struct {
	box    widget.Box
	areas  []*Area
	margin int
	gap    int
}

func (l *list) init(m Metrics) {
	l.box.Name = "overflow"
	l.margin, l.gap = m.margin(), m.gap()
	l.box.Register(func(_ *widget.Box, e event.Event) {
		switch e.(type) {
		case system.ShowEvent, system.ResizeEvent:
			l.layout()
		}
	})
}

func (l *list) Box() *widget.Box { return &l.box }

func (l *list) add(a *Area) {
	l.areas = append(l.areas, a)
	a.box.SetParent(&l.box)
	a.box.Show()
}

func (l *list) remove(a *Area) {
	if i := slices.Index(l.areas, a); i >= 0 {
		l.areas = slices.Delete(l.areas, i, i+1)
		l.layout()
	}
}

// layout places each area on its own row at its preferred height.
// Resizable areas take the list width.
func (l *list) layout() {
	y := l.margin
	for _, a := range l.areas {
		ps, ms := a.PrefSize(), a.MinSize()
		w := ms.X
		if a.resizable {
			w = l.box.Size().X - 2*l.margin
		}
		a.box.Move(image.Pt(l.margin, y))
		a.box.Resize(image.Pt(w, ps.Y))
		a.Layout()
		y += ps.Y + l.gap
	}
}

func (l *list) PrefSize() image.Point {
	return l.hint(func(a *Area) image.Point { return a.PrefSize() })
}

func (l *list) MinSize() image.Point {
	return l.hint(func(a *Area) image.Point { return a.MinSize() })
}

func (l *list) hint(size func(*Area) image.Point) image.Point {
	w, h := 0, l.margin
	for _, a := range l.areas {
		s := size(a)
		w = max(w, s.X)
		h += s.Y + l.gap
	}
	return image.Pt(w+2*l.margin, h)
}
