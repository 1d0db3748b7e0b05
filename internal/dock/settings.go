package dock

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation is the dock's layout axis.
type Orientation string

const (
	// Vertical stacks entries top to bottom.
	Vertical Orientation = "Vertical"
	// Horizontal lays entries out left to right.
	Horizontal Orientation = "Horizontal"
)

// ParseOrientation reads an orientation value case-insensitively.
// Anything unrecognized yields Vertical, the documented default.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(Horizontal)) {
		return Horizontal
	}
	return Vertical
}

// RGB is a red/green/blue color triple, each channel 0-255.
type RGB struct {
	R, G, B int
}

// String renders the triple in the engine's comma-separated form.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseRGB parses an "R,G,B" triple, clamping each channel to 0-255.
// Malformed input yields the fallback, never an error.
func ParseRGB(s string, fallback RGB) RGB {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fallback
	}
	var out [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fallback
		}
		out[i] = clamp(v, 0, 255)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}
}

// Documented defaults and clamping ranges for the appearance settings.
const (
	DefaultIconSize = 48
	MinIconSize     = 16
	MaxIconSize     = 256

	DefaultCornerRadius = 8
	MinCornerRadius     = 0
	MaxCornerRadius     = 64

	DefaultBgAlpha = 180

	DefaultToolTipFont = "Segoe UI"

	DefaultToolTipSize = 9
	MinToolTipSize     = 6
	MaxToolTipSize     = 72

	DefaultToolTipDelay = 350
	MinToolTipDelay     = 0
	MaxToolTipDelay     = 5000
)

// DefaultBgColor is the default dock background color.
var DefaultBgColor = RGB{R: 32, G: 32, B: 32}

// Settings are the per-instance appearance settings stored in the skin
// file's Variables section. One set per instance, no cross-field
// relationships.
type Settings struct {
	// IconSize is the icon edge length in pixels; entries advance by
	// IconSize plus the orientation gap.
	IconSize int
	// CornerRadius rounds the background box corners.
	CornerRadius int
	// BgColor is the background fill color.
	BgColor RGB
	// BgAlpha is the background opacity, 0-255.
	BgAlpha int
	// Orientation selects the layout axis.
	Orientation Orientation
	// DoubleClick activates entries on double click instead of single click.
	DoubleClick bool
	// ToolTipOn enables hover tooltips on entries.
	ToolTipOn bool
	// ToolTipFont is the tooltip font face.
	ToolTipFont string
	// ToolTipSize is the tooltip font size in points.
	ToolTipSize int
	// ToolTipDelay is the hover delay before a tooltip shows, in milliseconds.
	ToolTipDelay int
}

// DefaultSettings returns the documented default appearance.
func DefaultSettings() Settings {
	return Settings{
		IconSize:     DefaultIconSize,
		CornerRadius: DefaultCornerRadius,
		BgColor:      DefaultBgColor,
		BgAlpha:      DefaultBgAlpha,
		Orientation:  Vertical,
		DoubleClick:  false,
		ToolTipOn:    true,
		ToolTipFont:  DefaultToolTipFont,
		ToolTipSize:  DefaultToolTipSize,
		ToolTipDelay: DefaultToolTipDelay,
	}
}

// Clamp returns a copy with every field forced into its documented range
// and blank strings replaced by defaults. Out-of-range values saturate
// rather than error: a hand-edited file can dent the appearance but
// never break loading.
func (s Settings) Clamp() Settings {
	s.IconSize = clamp(s.IconSize, MinIconSize, MaxIconSize)
	s.CornerRadius = clamp(s.CornerRadius, MinCornerRadius, MaxCornerRadius)
	s.BgColor.R = clamp(s.BgColor.R, 0, 255)
	s.BgColor.G = clamp(s.BgColor.G, 0, 255)
	s.BgColor.B = clamp(s.BgColor.B, 0, 255)
	s.BgAlpha = clamp(s.BgAlpha, 0, 255)
	s.Orientation = ParseOrientation(string(s.Orientation))
	if strings.TrimSpace(s.ToolTipFont) == "" {
		s.ToolTipFont = DefaultToolTipFont
	}
	s.ToolTipSize = clamp(s.ToolTipSize, MinToolTipSize, MaxToolTipSize)
	s.ToolTipDelay = clamp(s.ToolTipDelay, MinToolTipDelay, MaxToolTipDelay)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
