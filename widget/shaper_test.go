// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"
)

func TestShaperMono(t *testing.T) {
	faces := GoFaces()
	s := NewShaper(16, faces[1], faces[0])
	narrow, wide := s.Measure("iii"), s.Measure("WWW")
	if narrow.X <= 0 {
		t.Fatalf("width of %q = %d", "iii", narrow.X)
	}
	if narrow != wide {
		t.Errorf("monospaced sizes differ: %v and %v", narrow, wide)
	}
	if got, want := s.Advance("Edit 1"), 6*s.Advance("0"); got != want {
		t.Errorf("advance = %v; want %v", got, want)
	}
}

func TestShaperRegular(t *testing.T) {
	s := NewShaper(16, GoFaces()...)
	if s.Measure("WWW").X <= s.Measure("iii").X {
		t.Error("proportional font measured W no wider than i")
	}
	empty, text := s.Measure(""), s.Measure("Edit")
	if empty.X != 0 {
		t.Errorf("empty width = %d", empty.X)
	}
	if empty.Y <= 0 || empty.Y != text.Y {
		t.Errorf("line heights %d and %d; want equal and positive", empty.Y, text.Y)
	}
	// Larger fonts take more room.
	big := NewShaper(32, GoFaces()...)
	if got := big.Measure("Edit"); got.X <= text.X || got.Y <= text.Y {
		t.Errorf("size 32 measured %v, size 16 %v", got, text)
	}
}

func TestShaperResolveFace(t *testing.T) {
	faces := GoFaces()
	s := NewShaper(16, faces...)
	if s.ResolveFace('a') != faces[0] {
		t.Error("covered rune not taken from the first face")
	}
	// The Go fonts have no CJK glyphs.
	if s.ResolveFace('編') != faces[0] {
		t.Error("uncovered rune not taken from the first face")
	}
}

func TestLabelShaperMeasure(t *testing.T) {
	l := NewLabel("Edit 1")
	l.Measure = NewShaper(13, GoFaces()...).Measure
	got := l.MinSize()
	if got.X <= 0 || got.Y <= 0 {
		t.Fatalf("shaped label size %v", got)
	}
	if got == NewLabel("Edit 1").MinSize() {
		t.Errorf("shaped size %v equals the basic font size", got)
	}
}
