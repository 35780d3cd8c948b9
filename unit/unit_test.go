// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/x/toolstrip/unit"
)

func TestMetric_Dp(t *testing.T) {
	for _, tc := range []struct {
		metric unit.Metric
		v      unit.Dp
		px     int
	}{
		{unit.Metric{}, 4, 4},
		{unit.Metric{PxPerDp: 1}, 2, 2},
		{unit.Metric{PxPerDp: 2}, 3, 6},
		{unit.Metric{PxPerDp: 0.5}, 3, 2},
		{unit.Metric{PxPerDp: 0.5}, 2, 1},
	} {
		if got := tc.metric.Dp(tc.v); got != tc.px {
			t.Errorf("%+v.Dp(%v) = %d; want %d", tc.metric, tc.v, got, tc.px)
		}
	}
}

func TestMetric_PxToDp(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	exp := unit.Dp(5)
	got := m.PxToDp(m.Dp(5))
	if got != exp {
		t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
	}
}
