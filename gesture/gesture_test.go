// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"image"
	"testing"

	"gioui.org/x/toolstrip/io/pointer"
)

func TestClick(t *testing.T) {
	for _, tc := range []struct {
		label  string
		events []pointer.Event
		clicks int
	}{
		{
			label: "single click",
			events: []pointer.Event{
				{Kind: pointer.Press, Hit: true, Buttons: pointer.ButtonPrimary},
				{Kind: pointer.Release, Hit: true},
			},
			clicks: 1,
		},
		{
			label: "released outside",
			events: []pointer.Event{
				{Kind: pointer.Press, Hit: true, Buttons: pointer.ButtonPrimary},
				{Kind: pointer.Move, Hit: false},
				{Kind: pointer.Release, Hit: false},
			},
			clicks: 0,
		},
		{
			label: "secondary button",
			events: []pointer.Event{
				{Kind: pointer.Press, Hit: true, Buttons: pointer.ButtonSecondary},
				{Kind: pointer.Release, Hit: true},
			},
			clicks: 0,
		},
		{
			label: "two clicks",
			events: []pointer.Event{
				{Kind: pointer.Press, Hit: true},
				{Kind: pointer.Release, Hit: true},
				{Kind: pointer.Press, Hit: true},
				{Kind: pointer.Release, Hit: true},
			},
			clicks: 2,
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var c Click
			clicks := 0
			for _, e := range tc.events {
				if ce, ok := c.Update(e); ok && ce.Type == TypeClick {
					clicks++
				}
			}
			if clicks != tc.clicks {
				t.Errorf("got %d clicks; want %d", clicks, tc.clicks)
			}
		})
	}
}

func TestDrag(t *testing.T) {
	var d Drag
	if _, ok := d.Update(pointer.Event{Kind: pointer.Move, Screen: image.Pt(5, 5)}); ok {
		t.Fatal("move without press reported a drag")
	}
	d.Update(pointer.Event{Kind: pointer.Press, Screen: image.Pt(10, 10)})
	if !d.Dragging() {
		t.Fatal("expected dragging after press")
	}
	delta, ok := d.Update(pointer.Event{Kind: pointer.Move, Screen: image.Pt(14, 9)})
	if !ok || delta != image.Pt(4, -1) {
		t.Errorf("got delta %v (%v); want (4,-1)", delta, ok)
	}
	// Deltas are relative to the previous event, not the press.
	delta, ok = d.Update(pointer.Event{Kind: pointer.Move, Screen: image.Pt(15, 9)})
	if !ok || delta != image.Pt(1, 0) {
		t.Errorf("got delta %v (%v); want (1,0)", delta, ok)
	}
	if _, ok := d.Update(pointer.Event{Kind: pointer.Move, Screen: image.Pt(15, 9)}); ok {
		t.Error("zero delta reported")
	}
	d.Update(pointer.Event{Kind: pointer.Release})
	if d.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestHover(t *testing.T) {
	var h Hover
	if !h.Update(pointer.Event{Kind: pointer.Enter}) {
		t.Error("not hovered after Enter")
	}
	h.Update(pointer.Event{Kind: pointer.Move})
	if !h.Hovered() {
		t.Error("Move cleared the hover state")
	}
	if h.Update(pointer.Event{Kind: pointer.Leave}) {
		t.Error("hovered after Leave")
	}
}
