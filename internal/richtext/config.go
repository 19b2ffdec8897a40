package richtext

// DefaultParagraphSpacing is the number of blank lines between blocks.
const DefaultParagraphSpacing = 1

// RichTextStyle configures rich-text rendering for a subtree.
// Zero fields are unspecified and fall back to the enclosing configuration,
// then to the defaults applied by Resolve.
type RichTextStyle struct {
	HeadingStyle HeadingStyler
	// ParagraphSpacing is the blank line count between blocks; negative
	// values mean "no spacing" and zero means unspecified.
	ParagraphSpacing int
}

// Merge returns s with every field specified by other replaced.
func (s RichTextStyle) Merge(other RichTextStyle) RichTextStyle {
	if !unsetStyler(other.HeadingStyle) {
		s.HeadingStyle = other.HeadingStyle
	}
	if other.ParagraphSpacing != 0 {
		s.ParagraphSpacing = other.ParagraphSpacing
	}
	return s
}

// Resolve fills unspecified fields with defaults.
func (s RichTextStyle) Resolve() RichTextStyle {
	if unsetStyler(s.HeadingStyle) {
		s.HeadingStyle = DefaultHeadingStyle
	}
	if s.ParagraphSpacing == 0 {
		s.ParagraphSpacing = DefaultParagraphSpacing
	}
	return s
}

// unsetStyler reports whether styler carries no strategy: nil, or a nil or
// empty HeadingTable, which would otherwise drop styling for every level.
func unsetStyler(styler HeadingStyler) bool {
	switch s := styler.(type) {
	case nil:
		return true
	case HeadingTable:
		return len(s) == 0
	case HeadingStyleFunc:
		return s == nil
	default:
		return false
	}
}

// Spacing returns the resolved blank line count, never negative.
func (s RichTextStyle) Spacing() int {
	resolved := s.Resolve()
	if resolved.ParagraphSpacing < 0 {
		return 0
	}
	return resolved.ParagraphSpacing
}
