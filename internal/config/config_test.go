// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/x/toolstrip/popup"
	"gioui.org/x/toolstrip/strip"
	"gioui.org/x/toolstrip/unit"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TOOLSTRIP_CONFIG", "")
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := strip.DefaultMetrics
	want.Metric = unit.Metric{PxPerDp: 1}
	if diff := cmp.Diff(want, c.StripMetrics()); diff != "" {
		t.Errorf("strip metrics mismatch (-want +got):\n%s", diff)
	}
	wantPopup := popup.DefaultMetrics
	wantPopup.Metric = unit.Metric{PxPerDp: 1}
	if diff := cmp.Diff(wantPopup, c.PopupMetrics()); diff != "" {
		t.Errorf("popup metrics mismatch (-want +got):\n%s", diff)
	}
	if got := c.PopupSides(); got != popup.AllSides {
		t.Errorf("sides = %v; want all", got)
	}
	if c.Label.Font != "cells" || c.LabelSize() != 16 {
		t.Errorf("label = %+v, %dpx", c.Label, c.LabelSize())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.toml")
	data := `
scale = 2
debug = "/tmp/strip.log"

[strip]
min_width = 40

[popup]
sides = "bottom, right"

[label]
font = "go"
size = 7
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOOLSTRIP_CONFIG", path)
	t.Setenv("TOOLSTRIP_STRIP_GAP", "3")
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Label.Font != "go" {
		t.Errorf("label font = %q", c.Label.Font)
	}
	if got, want := c.LabelSize(), 14; got != want {
		t.Errorf("label size = %dpx; want %dpx", got, want)
	}
	if c.Debug != "/tmp/strip.log" {
		t.Errorf("Debug = %q", c.Debug)
	}
	m := c.StripMetrics()
	if got, want := m.Metric.Dp(m.MinWidth), 80; got != want {
		t.Errorf("min width = %dpx; want %dpx", got, want)
	}
	if got, want := m.Gap, unit.Dp(3); got != want {
		t.Errorf("gap = %v; want %v", got, want)
	}
	if got, want := c.PopupSides(), popup.SideBottomRight; got != want {
		t.Errorf("sides = %v; want %v", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("TOOLSTRIP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(); err == nil {
		t.Error("missing explicit config file did not fail")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[popup]\nsides = \"middle\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOOLSTRIP_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Error("unknown side did not fail")
	}

	t.Setenv("TOOLSTRIP_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TOOLSTRIP_LABEL_FONT", "serif")
	if _, err := Load(); err == nil {
		t.Error("unknown label font did not fail")
	}
}

func TestParseSides(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want popup.Side
	}{
		{"", popup.NoSide},
		{"none", popup.NoSide},
		{"Left,TOP", popup.SideTopLeft},
		{"all", popup.AllSides},
	} {
		got, err := ParseSides(tc.in)
		if err != nil {
			t.Errorf("ParseSides(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSides(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
