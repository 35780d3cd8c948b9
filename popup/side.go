// SPDX-License-Identifier: Unlicense OR MIT

package popup

import (
	"strings"

	"gioui.org/x/toolstrip/io/pointer"
)

// Side is a set of popup edges.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideRight
	SideTop
	SideBottom
)

const (
	NoSide Side = 0

	SideTopLeft     = SideLeft | SideTop
	SideTopRight    = SideRight | SideTop
	SideBottomLeft  = SideLeft | SideBottom
	SideBottomRight = SideRight | SideBottom

	AllSides = SideLeft | SideRight | SideTop | SideBottom
)

// Cursor returns the resize cursor for a single edge or a corner.
// Other sets return the default cursor.
func (s Side) Cursor() pointer.Cursor {
	switch s {
	case SideTopLeft, SideBottomRight:
		return pointer.CursorNorthWestSouthEastResize
	case SideBottomLeft, SideTopRight:
		return pointer.CursorNorthEastSouthWestResize
	case SideTop, SideBottom:
		return pointer.CursorNorthSouthResize
	case SideLeft, SideRight:
		return pointer.CursorEastWestResize
	}
	return pointer.CursorDefault
}

func (s Side) String() string {
	if s == NoSide {
		return "NoSide"
	}
	var buf strings.Builder
	for b := Side(1); s != 0; b <<= 1 {
		if s&b != 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString(b.string())
			s &^= b
		}
	}
	return buf.String()
}

func (s Side) string() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	}
	return ""
}
