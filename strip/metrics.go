// SPDX-License-Identifier: Unlicense OR MIT

package strip

import "gioui.org/x/toolstrip/unit"

// Metrics are the fixed lengths of a strip.
type Metrics struct {
	// Metric converts the lengths to pixels.
	Metric unit.Metric
	// Margin is the space before the first area.
	Margin unit.Dp
	// Gap is the space after each area.
	Gap unit.Dp
	// Splitter is the width of a splitter.
	Splitter unit.Dp
	// MinWidth is the minimum width of the strip.
	MinWidth unit.Dp
	// Indicator is the size of the overflow indicator.
	Indicator unit.Dp
}

var DefaultMetrics = Metrics{
	Margin:    2,
	Gap:       2,
	Splitter:  4,
	MinWidth:  32,
	Indicator: 14,
}

func (m Metrics) margin() int    { return m.Metric.Dp(m.Margin) }
func (m Metrics) gap() int       { return m.Metric.Dp(m.Gap) }
func (m Metrics) splitter() int  { return m.Metric.Dp(m.Splitter) }
func (m Metrics) minWidth() int  { return m.Metric.Dp(m.MinWidth) }
func (m Metrics) indicator() int { return m.Metric.Dp(m.Indicator) }
