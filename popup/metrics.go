// SPDX-License-Identifier: Unlicense OR MIT

package popup

import "gioui.org/x/toolstrip/unit"

// Metrics are the fixed lengths of a surface.
type Metrics struct {
	// Metric converts the lengths to pixels.
	Metric unit.Metric
	// Border is the width of the frame around the content. It is
	// also the width of the resize zones.
	Border unit.Dp
	// Inset is the distance between the surface edge and the frame.
	Inset unit.Dp
	// Scrollbar is the thickness of the scroll bars.
	Scrollbar unit.Dp
	// Floor is the smallest inner extent of a Scroll after it has
	// been sized once.
	Floor unit.Dp
}

// DefaultMetrics are the lengths used by the frame menus of desktop
// toolkits.
var DefaultMetrics = Metrics{
	Border:    3,
	Inset:     1,
	Scrollbar: 14,
	Floor:     32,
}

func (m Metrics) border() int    { return m.Metric.Dp(m.Border) }
func (m Metrics) inset() int     { return m.Metric.Dp(m.Inset) }
func (m Metrics) scrollbar() int { return m.Metric.Dp(m.Scrollbar) }
func (m Metrics) floor() int     { return m.Metric.Dp(m.Floor) }
