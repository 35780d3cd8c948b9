// SPDX-License-Identifier: Unlicense OR MIT

package strip

import (
	"fmt"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/x/toolstrip/io/pointer"
	"gioui.org/x/toolstrip/layout"
	"gioui.org/x/toolstrip/popup"
	"gioui.org/x/toolstrip/widget"
)

// newStrip returns a shown strip of the given width with five areas
// of minimum widths 80, 90, 60, 90 and 60. The second and fourth
// areas are resizable.
func newStrip(width int) *Strip {
	s := New(layout.Horizontal, DefaultMetrics, popup.DefaultMetrics)
	for i, w := range []int{80, 90, 60, 90, 60} {
		f := widget.NewFixed(fmt.Sprintf("item%d", i), image.Pt(w, 20), image.Pt(w+20, 24))
		f.Expand = i == 1 || i == 3
		s.Add(f)
	}
	s.Resize(image.Pt(width, 24))
	s.Show()
	return s
}

func widths(s *Strip) []int {
	var w []int
	for _, a := range s.Areas() {
		w = append(w, a.DisplayWidth())
	}
	return w
}

func bounds(s *Strip) []image.Rectangle {
	var r []image.Rectangle
	for _, a := range s.Areas() {
		if !a.Box().Hidden() {
			r = append(r, a.Box().Bounds())
		}
	}
	return r
}

func splitterBounds(s *Strip) []image.Rectangle {
	var r []image.Rectangle
	for _, sp := range s.Splitters() {
		r = append(r, sp.Box().Bounds())
	}
	return r
}

func indices(areas []*Area, s *Strip) []int {
	var inds []int
	for _, a := range areas {
		inds = append(inds, s.Index(a))
	}
	return inds
}

func dragSplitter(sp *Splitter, dx int) {
	b := sp.Box()
	p := b.ScreenBounds().Min
	b.Deliver(pointer.Event{Kind: pointer.Press, Screen: p, Hit: true, Buttons: pointer.ButtonPrimary})
	b.Deliver(pointer.Event{Kind: pointer.Move, Screen: p.Add(image.Pt(dx, 0))})
	b.Deliver(pointer.Event{Kind: pointer.Release, Screen: p.Add(image.Pt(dx, 0))})
}

func TestStripFits(t *testing.T) {
	s := newStrip(400)
	if got := s.ContentsWidth(); got != 400 {
		t.Errorf("ContentsWidth = %d; want 400", got)
	}
	if c := s.Clipped(); len(c) != 0 {
		t.Errorf("clipped %v; want none", indices(c, s))
	}
	if s.IndicatorVisible() {
		t.Error("indicator visible")
	}
	want := []image.Rectangle{
		image.Rect(2, 0, 82, 24),
		image.Rect(84, 0, 174, 24),
		image.Rect(180, 0, 240, 24),
		image.Rect(242, 0, 332, 24),
		image.Rect(338, 0, 398, 24),
	}
	if diff := cmp.Diff(want, bounds(s)); diff != "" {
		t.Errorf("area bounds mismatch (-want +got):\n%s", diff)
	}
	wantSplitters := []image.Rectangle{
		image.Rect(175, 0, 179, 24),
		image.Rect(333, 0, 337, 24),
	}
	if diff := cmp.Diff(wantSplitters, splitterBounds(s)); diff != "" {
		t.Errorf("splitter bounds mismatch (-want +got):\n%s", diff)
	}
	if got := s.Splitters()[1].Index(); got != 3 {
		t.Errorf("second splitter index = %d; want 3", got)
	}
}

func TestStripHints(t *testing.T) {
	s := newStrip(100)
	if got, want := s.PrefSize(), image.Pt(400, 24); got != want {
		t.Errorf("PrefSize = %v; want %v", got, want)
	}
	if got, want := s.MinSize(), image.Pt(32, 20); got != want {
		t.Errorf("MinSize = %v; want %v", got, want)
	}
	if !s.Area(1).Resizable() || s.Area(2).Resizable() {
		t.Error("resizable flags do not follow the expanding widgets")
	}
}

func TestStripClip(t *testing.T) {
	for _, tc := range []struct {
		width   int
		clipped []int
	}{
		{400, nil},
		{300, []int{3, 4}},
		// The indicator covers the third area.
		{250, []int{2, 3, 4}},
		{50, []int{0, 1, 2, 3, 4}},
	} {
		t.Run(fmt.Sprint(tc.width), func(t *testing.T) {
			s := newStrip(tc.width)
			if diff := cmp.Diff(tc.clipped, indices(s.Clipped(), s)); diff != "" {
				t.Errorf("clipped mismatch (-want +got):\n%s", diff)
			}
			for i, a := range s.Areas() {
				if a.Box().Hidden() != a.Clipped() {
					t.Errorf("area %d hidden %v, clipped %v", i, a.Box().Hidden(), a.Clipped())
				}
			}
			if got, want := s.IndicatorVisible(), len(tc.clipped) > 0; got != want {
				t.Errorf("indicator visible = %v; want %v", got, want)
			}
		})
	}
}

func TestStripIndicator(t *testing.T) {
	s := newStrip(300)
	if got, want := s.Indicator().Bounds(), image.Rect(286, 5, 300, 19); got != want {
		t.Errorf("indicator bounds = %v; want %v", got, want)
	}
	if got, want := len(s.Splitters()), 1; got != want {
		t.Errorf("%d splitters; want %d", got, want)
	}
	s.Resize(image.Pt(400, 24))
	if s.IndicatorVisible() {
		t.Error("indicator visible after growing")
	}
	if got, want := len(s.Splitters()), 2; got != want {
		t.Errorf("%d splitters; want %d", got, want)
	}
}

func TestStripReduce(t *testing.T) {
	s := newStrip(500)
	s.Area(1).SetDisplayWidth(140)
	s.Area(3).SetDisplayWidth(140)
	s.Layout(true)
	if got := s.ContentsWidth(); got != 500 {
		t.Fatalf("ContentsWidth = %d; want 500", got)
	}

	// The last resizable area shrinks first.
	s.Resize(image.Pt(450, 24))
	if diff := cmp.Diff([]int{80, 140, 60, 90, 60}, widths(s)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	s.Resize(image.Pt(400, 24))
	if diff := cmp.Diff([]int{80, 90, 60, 90, 60}, widths(s)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if c := s.Clipped(); len(c) != 0 {
		t.Errorf("clipped %v after reducing", indices(c, s))
	}
	if s.reduceSize() {
		t.Error("second reduce reported clipping")
	}
	if diff := cmp.Diff([]int{80, 90, 60, 90, 60}, widths(s)); diff != "" {
		t.Errorf("second reduce changed widths (-want +got):\n%s", diff)
	}
}

func TestStripDisplayWidth(t *testing.T) {
	s := newStrip(400)
	a := s.Area(1)
	a.SetDisplayWidth(10)
	if got := a.DisplayWidth(); got != 90 {
		t.Errorf("DisplayWidth = %d; want the minimum 90", got)
	}
	a.SetDisplayWidth(120)
	if got := a.DisplayWidth(); got != 120 {
		t.Errorf("DisplayWidth = %d; want 120", got)
	}
	a.SetDisplayWidth(-5)
	if got := a.DisplayWidth(); got != 90 {
		t.Errorf("DisplayWidth after unset = %d; want 90", got)
	}
}

func TestSplitterDragAtBound(t *testing.T) {
	s := newStrip(400)
	var moves [][2]int
	s.OnSplitterMoved(func(index, delta int) {
		moves = append(moves, [2]int{index, delta})
	})
	sp := s.Splitters()[0]
	if got := sp.Box().Cursor(); got != pointer.CursorColResize {
		t.Errorf("splitter cursor = %v", got)
	}
	before := bounds(s)
	dragSplitter(sp, 20)
	if diff := cmp.Diff([]int{80, 90, 60, 90, 60}, widths(s)); diff != "" {
		t.Errorf("widths changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, bounds(s)); diff != "" {
		t.Errorf("bounds changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{1, 0}}, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitterDrag(t *testing.T) {
	s := newStrip(450)
	s.Area(1).SetDisplayWidth(140)
	s.Layout(true)
	sp := s.Splitters()[0]

	dragSplitter(sp, -20)
	if diff := cmp.Diff([]int{80, 120, 60, 110, 60}, widths(s)); diff != "" {
		t.Errorf("widths after shrinking (-want +got):\n%s", diff)
	}
	if got := s.ContentsWidth(); got != 450 {
		t.Errorf("ContentsWidth = %d; want 450", got)
	}
	if got, want := s.Area(2).Box().Bounds(), image.Rect(210, 0, 270, 24); got != want {
		t.Errorf("third area = %v; want %v", got, want)
	}
	if got, want := sp.Box().Bounds(), image.Rect(205, 0, 209, 24); got != want {
		t.Errorf("splitter = %v; want %v", got, want)
	}

	dragSplitter(sp, 20)
	if diff := cmp.Diff([]int{80, 140, 60, 90, 60}, widths(s)); diff != "" {
		t.Errorf("widths after growing (-want +got):\n%s", diff)
	}
	if got := s.ContentsWidth(); got != 450 {
		t.Errorf("ContentsWidth = %d; want 450", got)
	}
}

func TestSplitterHover(t *testing.T) {
	s := newStrip(400)
	sp := s.Splitters()[0]
	sp.Box().Deliver(pointer.Event{Kind: pointer.Enter, Hit: true})
	if !sp.Hovered() {
		t.Error("splitter not hovered after Enter")
	}
	sp.Box().Deliver(pointer.Event{Kind: pointer.Press, Hit: true})
	if !sp.Pressed() {
		t.Error("splitter not pressed")
	}
	sp.Box().Deliver(pointer.Event{Kind: pointer.Release})
	sp.Box().Deliver(pointer.Event{Kind: pointer.Leave})
	if sp.Hovered() || sp.Pressed() {
		t.Error("splitter state not reset")
	}
}

func TestStripLabels(t *testing.T) {
	s := New(layout.Horizontal, DefaultMetrics, popup.DefaultMetrics)
	named := s.AddLabeled("Name", widget.NewFixed("name", image.Pt(40, 20), image.Point{}))
	plain := s.Add(widget.NewFixed("plain", image.Pt(80, 20), image.Point{}))
	s.Resize(image.Pt(200, 40))
	s.Show()

	if got := s.LabelHeight(); got != 13 {
		t.Errorf("LabelHeight = %d; want 13", got)
	}
	if got, want := named.MinSize(), image.Pt(40, 33); got != want {
		t.Errorf("labeled MinSize = %v; want %v", got, want)
	}
	if got, want := plain.MinSize(), image.Pt(80, 20); got != want {
		t.Errorf("plain MinSize = %v; want %v", got, want)
	}
	if got, want := named.Label().Box().Bounds(), image.Rect(0, 0, 40, 13); got != want {
		t.Errorf("label bounds = %v; want %v", got, want)
	}
	// Contents line up below the tallest label.
	if got, want := plain.Content().Box().Bounds(), image.Rect(0, 13, 80, 40); got != want {
		t.Errorf("content bounds = %v; want %v", got, want)
	}
	named.UnsetLabel()
	s.Layout(true)
	if got := s.LabelHeight(); got != 0 {
		t.Errorf("LabelHeight after unset = %d", got)
	}
}

func TestStripRemove(t *testing.T) {
	s := newStrip(400)
	a := s.Area(1)
	s.Remove(a)
	if got := s.Len(); got != 4 {
		t.Fatalf("Len = %d; want 4", got)
	}
	if a.Box().Parent() != nil {
		t.Error("removed area still parented")
	}
	if got := s.Index(a); got != -1 {
		t.Errorf("Index of removed area = %d", got)
	}
	if got := len(s.Splitters()); got != 1 {
		t.Errorf("%d splitters; want 1", got)
	}
	if got := s.Splitters()[0].Index(); got != 2 {
		t.Errorf("splitter index = %d; want 2", got)
	}
}
