// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the settings of the strip demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gioui.org/x/toolstrip/popup"
	"gioui.org/x/toolstrip/strip"
	"gioui.org/x/toolstrip/unit"
)

// Config holds the demo configuration.
type Config struct {
	// Scale is the number of pixels per dp.
	Scale float32
	// Debug is the path of the debug log. Empty disables logging.
	Debug string
	Strip StripConfig
	Popup PopupConfig
	Label LabelConfig
}

// StripConfig holds the strip lengths in dp.
type StripConfig struct {
	Margin    float32
	Gap       float32
	Splitter  float32
	MinWidth  float32 `mapstructure:"min_width"`
	Indicator float32
}

// PopupConfig holds the overflow popup settings.
type PopupConfig struct {
	Border    float32
	Inset     float32
	Scrollbar float32
	Floor     float32
	// Sides lists the resizable edges, such as "bottom,right".
	Sides string
}

// LabelConfig selects how area labels are measured.
type LabelConfig struct {
	// Font is "cells" to count terminal cells, or "go" to shape the
	// labels with the Go fonts.
	Font string
	// Size is the font size in dp.
	Size float32
}

// Load reads configuration from file and env. Env var overrides use prefix TOOLSTRIP_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("scale", 1)
	v.SetDefault("debug", "")
	v.SetDefault("strip.margin", float32(strip.DefaultMetrics.Margin))
	v.SetDefault("strip.gap", float32(strip.DefaultMetrics.Gap))
	v.SetDefault("strip.splitter", float32(strip.DefaultMetrics.Splitter))
	v.SetDefault("strip.min_width", float32(strip.DefaultMetrics.MinWidth))
	v.SetDefault("strip.indicator", float32(strip.DefaultMetrics.Indicator))
	v.SetDefault("popup.border", float32(popup.DefaultMetrics.Border))
	v.SetDefault("popup.inset", float32(popup.DefaultMetrics.Inset))
	v.SetDefault("popup.scrollbar", float32(popup.DefaultMetrics.Scrollbar))
	v.SetDefault("popup.floor", float32(popup.DefaultMetrics.Floor))
	v.SetDefault("popup.sides", "all")
	v.SetDefault("label.font", "cells")
	v.SetDefault("label.size", 16)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TOOLSTRIP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "toolstrip"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TOOLSTRIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine, an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Scale <= 0 {
		return Config{}, fmt.Errorf("invalid scale %g", c.Scale)
	}
	if _, err := ParseSides(c.Popup.Sides); err != nil {
		return Config{}, err
	}
	switch c.Label.Font {
	case "cells", "go":
	default:
		return Config{}, fmt.Errorf("unknown label font %q", c.Label.Font)
	}
	if c.Label.Size <= 0 {
		return Config{}, fmt.Errorf("invalid label size %g", c.Label.Size)
	}
	return c, nil
}

// Metric returns the pixel conversion for Scale.
func (c Config) Metric() unit.Metric {
	return unit.Metric{PxPerDp: c.Scale}
}

// StripMetrics returns the configured strip lengths.
func (c Config) StripMetrics() strip.Metrics {
	return strip.Metrics{
		Metric:    c.Metric(),
		Margin:    unit.Dp(c.Strip.Margin),
		Gap:       unit.Dp(c.Strip.Gap),
		Splitter:  unit.Dp(c.Strip.Splitter),
		MinWidth:  unit.Dp(c.Strip.MinWidth),
		Indicator: unit.Dp(c.Strip.Indicator),
	}
}

// PopupMetrics returns the configured popup lengths.
func (c Config) PopupMetrics() popup.Metrics {
	return popup.Metrics{
		Metric:    c.Metric(),
		Border:    unit.Dp(c.Popup.Border),
		Inset:     unit.Dp(c.Popup.Inset),
		Scrollbar: unit.Dp(c.Popup.Scrollbar),
		Floor:     unit.Dp(c.Popup.Floor),
	}
}

// LabelSize returns the label font size in whole pixels, at least 1.
func (c Config) LabelSize() int {
	return max(c.Metric().Dp(unit.Dp(c.Label.Size)), 1)
}

// PopupSides returns the configured resizable edges.
func (c Config) PopupSides() popup.Side {
	s, _ := ParseSides(c.Popup.Sides)
	return s
}

// ParseSides parses a comma separated list of edges. The names are
// left, right, top, bottom, all and none.
func ParseSides(s string) (popup.Side, error) {
	var sides popup.Side
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "left":
			sides |= popup.SideLeft
		case "right":
			sides |= popup.SideRight
		case "top":
			sides |= popup.SideTop
		case "bottom":
			sides |= popup.SideBottom
		case "all":
			sides |= popup.AllSides
		case "none", "":
		default:
			return 0, fmt.Errorf("unknown popup side %q", name)
		}
	}
	return sides, nil
}
