package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DisplaySizeThreshold is the smallest font size rendered as display text.
// Terminals cannot scale glyphs, so display sizes are upper-cased instead.
const DisplaySizeThreshold Sp = 30

// Lipgloss projects s onto a lipgloss style. Colors are composited over
// surface using their alpha. Unspecified attributes set nothing, so the
// result can be layered with lipgloss.Style.Inherit.
func Lipgloss(s TextStyle, surface Color) lipgloss.Style {
	out := lipgloss.NewStyle()

	if s.FontWeight.IsSpecified() {
		switch {
		case s.FontWeight >= FontWeightSemiBold:
			out = out.Bold(true)
		case s.FontWeight <= FontWeightLight:
			out = out.Bold(false).Faint(true)
		default:
			out = out.Bold(false)
		}
	}

	switch s.FontStyle {
	case FontStyleItalic:
		out = out.Italic(true)
	case FontStyleNormal:
		out = out.Italic(false)
	}

	switch s.Decoration {
	case DecorationUnderline:
		out = out.Underline(true)
	case DecorationLineThrough:
		out = out.Strikethrough(true)
	case DecorationNone:
		out = out.Underline(false).Strikethrough(false)
	}

	if s.Color.IsSpecified() {
		out = out.Foreground(lipgloss.Color(s.Color.Over(surface).Hex()))
	}
	if s.Background.IsSpecified() && s.Background.Alpha() > 0 {
		out = out.Background(lipgloss.Color(s.Background.Over(surface).Hex()))
	}

	if s.FontSize >= DisplaySizeThreshold {
		out = out.Transform(strings.ToUpper)
	}

	if s.TextDirection == TextDirectionRtl {
		out = out.AlignHorizontal(lipgloss.Right)
	}

	return out
}
