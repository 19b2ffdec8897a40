package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// Theme holds the colors and body typography components render with.
// Themes are immutable values passed through RenderContext.
type Theme struct {
	Name string
	// ContentColor is the preferred color for content drawn on Surface.
	ContentColor style.Color
	// Surface is the color text is composited onto.
	Surface style.Color
	Accent  style.Color
	Muted   style.Color
	// Body is the text style in effect before any component overrides it.
	Body style.TextStyle
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return Theme{
		Name:         "light",
		ContentColor: style.MustParseColor("#1f2937"),
		Surface:      style.MustParseColor("#ffffff"),
		Accent:       style.MustParseColor("#2563eb"),
		Muted:        style.MustParseColor("#64748b"),
		Body:         style.TextStyle{FontSize: style.DefaultFontSize, FontWeight: style.FontWeightNormal},
	}
}

// DarkTheme returns a theme for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{
		Name:         "dark",
		ContentColor: style.MustParseColor("#e5e7eb"),
		Surface:      style.MustParseColor("#111827"),
		Accent:       style.MustParseColor("#60a5fa"),
		Muted:        style.MustParseColor("#94a3b8"),
		Body:         style.TextStyle{FontSize: style.DefaultFontSize, FontWeight: style.FontWeightNormal},
	}
}

// LightTheme is an alias for DefaultTheme.
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeByName returns the named theme and whether it exists.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "light", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

// ColorSlot picks a color out of a theme.
type ColorSlot func(Theme) style.Color

var (
	SlotAccent ColorSlot = func(t Theme) style.Color { return t.Accent }
	SlotMuted   ColorSlot = func(t Theme) style.Color { return t.Muted }
)

// Fluent modifier functions

// Foreground applies a theme color without changing the background.
//
// Example:
//
//	text := NewText("note").WithAppliers(Foreground(SlotMuted))
func Foreground(slot ColorSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		c := slot(theme)
		if !c.IsSpecified() {
			return base
		}
		return base.Foreground(lipgloss.Color(c.Over(theme.Surface).Hex()))
	}
}

// RoundedBorder draws a rounded border in the theme's muted color.
func RoundedBorder() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		base = base.Border(lipgloss.RoundedBorder())
		if theme.Muted.IsSpecified() {
			base = base.BorderForeground(lipgloss.Color(theme.Muted.Hex()))
		}
		return base
	}
}

func Padding(spacing Spacing) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(spacing.Top, spacing.Right, spacing.Bottom, spacing.Left)
	}
}

// Typography layers a TextStyle under the existing style.
func Typography(ts style.TextStyle) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(style.Lipgloss(ts, theme.Surface))
	}
}
