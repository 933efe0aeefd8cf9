package core

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGBA is a foreground color for a screen cell or the player skin.
// The zero value means "terminal default".
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorDefault = RGBA{}
	ColorWhite   = FromColor(colornames.White)
	ColorGold    = FromColor(colornames.Gold)
	ColorRed     = FromColor(colornames.Crimson)
	ColorGray    = FromColor(colornames.Gray)
	ColorCyan    = FromColor(colornames.Darkturquoise)
)

// FromColor converts a standard library color to RGBA.
func FromColor(c color.RGBA) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGB creates an opaque color from float components in [0, 1].
func RGB(r, g, b float64) RGBA {
	c := colorful.Color{R: ClampF(r, 0, 1), G: ClampF(g, 0, 1), B: ClampF(b, 0, 1)}
	r8, g8, b8 := c.RGB255()
	return RGBA{R: r8, G: g8, B: b8, A: 0xff}
}

// IsDefault reports whether c is the terminal default color.
func (c RGBA) IsDefault() bool {
	return c == ColorDefault
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c RGBA) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Hex()
}

// ParseColor accepts an SVG color name ("white", "limegreen") or a hex
// triplet ("#33cc33", "#3c3").
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "default" {
		return ColorDefault, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return FromColor(named), nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return RGBA{}, fmt.Errorf("core: unknown color %q", s)
}
