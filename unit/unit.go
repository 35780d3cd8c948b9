// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Pixels, or px, are display dependent
pixels. The layout engines in this module express their fixed spacing
in dps and convert them to whole pixels with a Metric before any
arithmetic takes place.

*/
package unit

import (
	"fmt"
	"math"
)

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Metric converts Dp values to device pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp. The zero value
	// is treated as 1.
	PxPerDp float32
}

// Dp converts v to whole pixels, rounding to the nearest
// integer.
func (m Metric) Dp(v Dp) int {
	return int(math.Round(float64(m.scale() * float32(v))))
}

// PxToDp converts v pixels to dps.
func (m Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / m.scale())
}

func (m Metric) scale() float32 {
	if m.PxPerDp <= 0 {
		return 1
	}
	return m.PxPerDp
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}
