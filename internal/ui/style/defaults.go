package style

// Baseline values used by ResolveDefaults.
const (
	DefaultFontSize   Sp         = 14
	DefaultFontWeight FontWeight = FontWeightNormal
	DefaultFontFamily            = "default"
)

// ResolveDefaults fills every unspecified attribute of s with the fixed
// baseline. The color fallback is always black; callers that want a themed
// content color must substitute it before calling.
func ResolveDefaults(s TextStyle, dir LayoutDirection) TextStyle {
	if !s.FontSize.IsSpecified() {
		s.FontSize = DefaultFontSize
	}
	if !s.FontWeight.IsSpecified() {
		s.FontWeight = DefaultFontWeight
	}
	if s.FontStyle == FontStyleUnspecified {
		s.FontStyle = FontStyleNormal
	}
	if !s.Color.IsSpecified() {
		s.Color = Black
	}
	if !s.Background.IsSpecified() {
		s.Background = Transparent
	}
	if s.FontFamily == "" {
		s.FontFamily = DefaultFontFamily
	}
	if s.Decoration == DecorationUnspecified {
		s.Decoration = DecorationNone
	}
	if s.TextDirection == TextDirectionUnspecified {
		s.TextDirection = textDirectionFor(dir)
	}
	return s
}

func textDirectionFor(dir LayoutDirection) TextDirection {
	if dir == LayoutRtl {
		return TextDirectionRtl
	}
	return TextDirectionLtr
}
