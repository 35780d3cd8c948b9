// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gioui.org/x/toolstrip/popup"
	"gioui.org/x/toolstrip/strip"
	"gioui.org/x/toolstrip/widget"
)

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	contentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// canvas is a grid of terminal cells. Wide runes take their first
// cell; the following cells hold 0.
type canvas struct {
	size  image.Point
	cells [][]rune
}

func newCanvas(size image.Point) *canvas {
	c := &canvas{size: size, cells: make([][]rune, size.Y)}
	for y := range c.cells {
		row := make([]rune, size.X)
		for x := range row {
			row[x] = ' '
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(p image.Point, r rune) {
	if p.In(image.Rectangle{Max: c.size}) {
		c.cells[p.Y][p.X] = r
	}
}

// text writes s at p, dropping the runes not entirely inside clip.
func (c *canvas) text(p image.Point, s string, clip image.Rectangle) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		end := p.Add(image.Pt(w-1, 0))
		if p.In(clip) && end.In(clip) {
			c.set(p, r)
			for i := 1; i < w; i++ {
				c.set(p.Add(image.Pt(i, 0)), 0)
			}
		}
		p.X += w
	}
}

// fill sets every cell of r inside clip to ch.
func (c *canvas) fill(r, clip image.Rectangle, ch rune) {
	r = r.Intersect(clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.set(image.Pt(x, y), ch)
		}
	}
}

// frame draws a line box around r.
func (c *canvas) frame(r image.Rectangle) {
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		c.set(image.Pt(x, y0), '─')
		c.set(image.Pt(x, y1), '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(image.Pt(x0, y), '│')
		c.set(image.Pt(x1, y), '│')
	}
	c.set(image.Pt(x0, y0), '┌')
	c.set(image.Pt(x1, y0), '┐')
	c.set(image.Pt(x0, y1), '└')
	c.set(image.Pt(x1, y1), '┘')
}

func (c *canvas) lines() []string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var b strings.Builder
		for _, r := range row {
			if r != 0 {
				b.WriteRune(r)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func (m *model) View() string {
	if m.width == 0 || m.height < 2 {
		return ""
	}
	c := newCanvas(image.Pt(m.width, m.height-1))
	s := m.strip
	sb := s.Box().ScreenBounds()
	for _, a := range s.Areas() {
		if a.Box().Visible() && a.Box().Parent() == s.Box() {
			drawArea(c, a, sb)
		}
	}
	for _, sp := range s.Splitters() {
		ch := '┊'
		if sp.Pressed() {
			ch = '┃'
		} else if sp.Hovered() {
			ch = '│'
		}
		c.fill(sp.Box().ScreenBounds(), sb, ch)
	}
	if s.IndicatorVisible() {
		r := s.Indicator().ScreenBounds()
		c.fill(r, sb, ' ')
		c.text(image.Pt(r.Max.X-1, sb.Min.Y+sb.Dy()/2), "»", sb)
	}
	if o := s.Overflow(); o.Visible() {
		drawPopup(c, o)
	}

	lines := c.lines()
	for y, l := range lines {
		if y < sb.Dy() {
			lines[y] = contentStyle.Render(l)
		}
	}
	lines = append(lines, statusStyle.Width(m.width).Render(m.status()))
	return strings.Join(lines, "\n")
}

func drawArea(c *canvas, a *strip.Area, clip image.Rectangle) {
	clip = clip.Intersect(a.Box().ScreenBounds())
	if l := a.Label(); l != nil {
		c.text(l.Box().ScreenBounds().Min, l.Text, clip)
	}
	if f, ok := a.Content().(*widget.Fixed); ok {
		r := f.Box().ScreenBounds()
		c.text(r.Min, "["+f.Text+"]", clip.Intersect(r))
	}
}

func drawPopup(c *canvas, o *strip.Overflow) {
	s := o.Surface()
	c.fill(s.Box().ScreenBounds(), image.Rectangle{Max: c.size}, ' ')
	fr := s.Frame().Box().ScreenBounds()
	c.frame(fr)
	sc := s.Scroll()
	vp := sc.Viewport().ScreenBounds()
	for _, a := range o.Areas() {
		drawArea(c, a, vp)
	}
	drawBar(c, sc.HBar())
	drawBar(c, sc.VBar())
}

func drawBar(c *canvas, bar *widget.Scrollbar) {
	b := bar.Box()
	if b.Hidden() {
		return
	}
	r := b.ScreenBounds()
	c.fill(r, r, '░')
	min, max := bar.Range()
	length := bar.Axis.Main(r.Size())
	if max <= min || length <= 0 {
		return
	}
	pos := (bar.Value() - min) * (length - 1) / (max - min)
	thumb := r.Min.Add(bar.Axis.Convert(image.Pt(pos, 0)))
	c.set(thumb, '█')
}

func (m *model) status() string {
	s := m.strip
	parts := []string{
		fmt.Sprintf("cursor %v", m.router.Cursor()),
		fmt.Sprintf("clipped %d", len(s.Clipped())),
		fmt.Sprintf("width %d/%d", s.ContentsWidth(), s.Box().Size().X),
	}
	if o := s.Overflow(); o.Visible() {
		sz, mt := o.Surface().Box().Size(), m.cfg.Metric()
		parts = append(parts, fmt.Sprintf("popup %v×%v %v", mt.PxToDp(sz.X), mt.PxToDp(sz.Y), sidesName(o.Surface())))
	}
	if m.lastMove != "" {
		parts = append(parts, m.lastMove)
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}

func sidesName(s *popup.Surface) string {
	return "sides " + s.ResizeSides().String()
}

func fmtMove(index, delta int) string {
	return fmt.Sprintf("area %d %+d", index, delta)
}
