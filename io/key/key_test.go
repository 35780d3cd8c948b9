// SPDX-License-Identifier: Unlicense OR MIT

package key

import "testing"

func TestModifiersString(t *testing.T) {
	for _, tc := range []struct {
		m    Modifiers
		want string
	}{
		{0, ""},
		{ModAlt, "Alt"},
		{ModCtrl | ModShift, "Ctrl-Shift"},
		{ModShift | ModAlt | ModSuper, "Shift-Alt-Super"},
	} {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("Modifiers(%d).String() = %q; want %q", uint32(tc.m), got, tc.want)
		}
	}
}

func TestModifiersContain(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Contain(ModAlt) {
		t.Error("expected ModAlt to be contained")
	}
	if m.Contain(ModAlt | ModShift) {
		t.Error("ModShift is not part of the set")
	}
}
