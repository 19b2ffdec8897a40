package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with an alpha channel. The zero value is unspecified
// and is replaced by the inherited color during a merge.
type Color struct {
	rgb   colorful.Color
	alpha float64
	set   bool
}

var (
	// Unspecified is the zero Color.
	Unspecified = Color{}
	Black       = RGBA(0, 0, 0, 1)
	White       = RGBA(0xff, 0xff, 0xff, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGBA builds a specified color from 8-bit channels and an alpha in [0,1].
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{
		rgb:   colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		alpha: clampUnit(alpha),
		set:   true,
	}
}

// ParseColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseColor(hex string) (Color, error) {
	trimmed := strings.TrimSpace(hex)
	if len(trimmed) != len("#rgb") && len(trimmed) != len("#rrggbb") {
		return Unspecified, fmt.Errorf("parse color %q: want #rgb or #rrggbb", hex)
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return Unspecified, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{rgb: c, alpha: 1, set: true}, nil
}

// MustParseColor is ParseColor for package-level literals.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsSpecified reports whether the color carries a value.
func (c Color) IsSpecified() bool {
	return c.set
}

// Alpha returns the alpha channel, 0 for an unspecified color.
func (c Color) Alpha() float64 {
	if !c.set {
		return 0
	}
	return c.alpha
}

// WithAlpha returns a copy with the alpha channel replaced.
// An unspecified color stays unspecified.
func (c Color) WithAlpha(alpha float64) Color {
	if !c.set {
		return c
	}
	c.alpha = clampUnit(alpha)
	return c
}

// Hex returns the #rrggbb form, ignoring alpha. Unspecified colors yield "".
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.rgb.Clamped().Hex()
}

// Over composites c onto surface and returns an opaque color.
// Without a surface the color is treated as opaque.
func (c Color) Over(surface Color) Color {
	if !c.set {
		return c
	}
	if !surface.set {
		return Color{rgb: c.rgb, alpha: 1, set: true}
	}
	blended := surface.rgb.BlendRgb(c.rgb, c.alpha).Clamped()
	return Color{rgb: blended, alpha: 1, set: true}
}

func (c Color) String() string {
	if !c.set {
		return "unspecified"
	}
	return fmt.Sprintf("%s@%.2f", c.Hex(), c.alpha)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
