// Package style defines the typographic value types shared by the rich-text
// components: TextStyle, its merge rule, default resolution, and the
// projection onto lipgloss for terminal output.
package style

import (
	"fmt"
	"strings"
)

// Sp is a font size in scaled points. Zero means unspecified.
type Sp float64

// IsSpecified reports whether the size carries a value.
func (s Sp) IsSpecified() bool {
	return s > 0
}

func (s Sp) String() string {
	if !s.IsSpecified() {
		return "unspecified"
	}
	return fmt.Sprintf("%gsp", float64(s))
}

// FontWeight is a CSS-style numeric weight. Zero means unspecified.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemiBold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

var fontWeightNames = map[string]FontWeight{
	"thin":       FontWeightThin,
	"extralight": FontWeightExtraLight,
	"light":      FontWeightLight,
	"normal":     FontWeightNormal,
	"medium":     FontWeightMedium,
	"semibold":   FontWeightSemiBold,
	"bold":       FontWeightBold,
	"extrabold":  FontWeightExtraBold,
	"black":      FontWeightBlack,
}

// ParseFontWeight accepts a weight name such as "bold" or "semibold".
func ParseFontWeight(name string) (FontWeight, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	if w, ok := fontWeightNames[key]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("unknown font weight %q", name)
}

// IsSpecified reports whether the weight carries a value.
func (w FontWeight) IsSpecified() bool {
	return w > 0
}

func (w FontWeight) String() string {
	for name, weight := range fontWeightNames {
		if weight == w {
			return name
		}
	}
	if !w.IsSpecified() {
		return "unspecified"
	}
	return fmt.Sprintf("%d", int(w))
}

// FontStyle selects upright or italic glyphs.
type FontStyle int

const (
	FontStyleUnspecified FontStyle = iota
	FontStyleNormal
	FontStyleItalic
)

func (f FontStyle) String() string {
	switch f {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return "unspecified"
	}
}

// TextDecoration draws lines over the text.
type TextDecoration int

const (
	DecorationUnspecified TextDecoration = iota
	DecorationNone
	DecorationUnderline
	DecorationLineThrough
)

// TextDirection is the resolved reading direction of a paragraph.
type TextDirection int

const (
	TextDirectionUnspecified TextDirection = iota
	TextDirectionLtr
	TextDirectionRtl
)

// LayoutDirection is the direction of the surrounding layout.
type LayoutDirection int

const (
	LayoutLtr LayoutDirection = iota
	LayoutRtl
)

// TextStyle is a set of optional typographic attributes. Every zero-valued
// field is unspecified and takes the inherited value when merged.
type TextStyle struct {
	FontSize      Sp
	FontWeight    FontWeight
	FontStyle     FontStyle
	Color         Color
	Background    Color
	FontFamily    string
	Decoration    TextDecoration
	TextDirection TextDirection
}

// Merge returns base with every attribute specified by overlay replaced.
func Merge(base, overlay TextStyle) TextStyle {
	return base.Merge(overlay)
}

// Merge returns s with every attribute specified by other replaced.
func (s TextStyle) Merge(other TextStyle) TextStyle {
	if other.FontSize.IsSpecified() {
		s.FontSize = other.FontSize
	}
	if other.FontWeight.IsSpecified() {
		s.FontWeight = other.FontWeight
	}
	if other.FontStyle != FontStyleUnspecified {
		s.FontStyle = other.FontStyle
	}
	if other.Color.IsSpecified() {
		s.Color = other.Color
	}
	if other.Background.IsSpecified() {
		s.Background = other.Background
	}
	if other.FontFamily != "" {
		s.FontFamily = other.FontFamily
	}
	if other.Decoration != DecorationUnspecified {
		s.Decoration = other.Decoration
	}
	if other.TextDirection != TextDirectionUnspecified {
		s.TextDirection = other.TextDirection
	}
	return s
}

// IsZero reports whether no attribute is specified.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}

func (s TextStyle) String() string {
	var parts []string
	if s.FontSize.IsSpecified() {
		parts = append(parts, "size="+s.FontSize.String())
	}
	if s.FontWeight.IsSpecified() {
		parts = append(parts, "weight="+s.FontWeight.String())
	}
	if s.FontStyle != FontStyleUnspecified {
		parts = append(parts, "style="+s.FontStyle.String())
	}
	if s.Color.IsSpecified() {
		parts = append(parts, "color="+s.Color.String())
	}
	if s.FontFamily != "" {
		parts = append(parts, "family="+s.FontFamily)
	}
	return "{" + strings.Join(parts, " ") + "}"
}
