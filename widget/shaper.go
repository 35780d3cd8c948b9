// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text by shaping it with a list of OpenType faces.
// Each rune is shaped with the first face that has a glyph for it.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	// Size is the font size in pixels per em.
	Size int

	faces  []*font.Face
	shaper shaping.HarfbuzzShaper
	seg    shaping.Segmenter
}

var (
	goOnce  sync.Once
	goFonts []*font.Font
)

// NewShaper returns a shaper for faces. It panics if faces is empty.
func NewShaper(size int, faces ...*font.Face) *Shaper {
	if len(faces) == 0 {
		panic("widget: shaper without faces")
	}
	return &Shaper{Size: size, faces: faces}
}

// ParseFace parses an OpenType font file.
func ParseFace(ttf []byte) (*font.Face, error) {
	f, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// GoFaces returns new faces of the Go Regular and Go Mono fonts, in
// that order. The fonts are parsed once.
func GoFaces() []*font.Face {
	goOnce.Do(func() {
		for _, ttf := range [][]byte{goregular.TTF, gomono.TTF} {
			f, err := ParseFace(ttf)
			if err != nil {
				panic(fmt.Errorf("failed to parse font: %v", err))
			}
			goFonts = append(goFonts, f.Font)
		}
	})
	faces := make([]*font.Face, len(goFonts))
	for i, f := range goFonts {
		faces[i] = font.NewFace(f)
	}
	return faces
}

// ResolveFace returns the first face with a glyph for r, or the first
// face if none has one.
func (s *Shaper) ResolveFace(r rune) *font.Face {
	for _, f := range s.faces {
		if _, ok := f.NominalGlyph(r); ok {
			return f
		}
	}
	return s.faces[0]
}

// Measure returns the advance of text and the height of its line,
// rounded up to whole pixels. It can be used as Label.Measure.
func (s *Shaper) Measure(text string) image.Point {
	adv, b := s.shape(text)
	return image.Pt(adv.Ceil(), b.LineThickness().Ceil())
}

// Advance returns the unrounded advance of text.
func (s *Shaper) Advance(text string) fixed.Int26_6 {
	adv, _ := s.shape(text)
	return adv
}

func (s *Shaper) shape(text string) (fixed.Int26_6, shaping.Bounds) {
	runes := []rune(text)
	in := shaping.Input{
		Text:      runes,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.faces[0],
		Size:      fixed.I(s.Size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	runs := s.seg.Split(in, s)
	if len(runs) == 0 {
		runs = []shaping.Input{in}
	}
	var adv fixed.Int26_6
	var b shaping.Bounds
	for _, run := range runs {
		out := s.shaper.Shape(run)
		adv += out.Advance
		b.Ascent = max(b.Ascent, out.LineBounds.Ascent)
		b.Descent = min(b.Descent, out.LineBounds.Descent)
		b.Gap = max(b.Gap, out.LineBounds.Gap)
	}
	return adv, b
}
