// Package richtext holds the configuration shared by rich-text components,
// most notably the strategy that turns a heading level into a text style.
package richtext

import (
	"sort"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// HeadingStyler computes the style overrides for a heading level.
// Implementations must be pure: the same level and base always produce the
// same result. The returned style holds only the attributes the level
// overrides; it is merged onto base by the caller.
type HeadingStyler interface {
	HeadingStyle(level int, base style.TextStyle) style.TextStyle
}

// HeadingStyleFunc adapts a function to HeadingStyler.
type HeadingStyleFunc func(level int, base style.TextStyle) style.TextStyle

// HeadingStyle calls f.
func (f HeadingStyleFunc) HeadingStyle(level int, base style.TextStyle) style.TextStyle {
	return f(level, base)
}

// HeadingOverride lists the attributes a single heading level overrides.
// AlphaScale multiplies the base color's alpha; zero leaves color alone.
type HeadingOverride struct {
	FontSize   style.Sp
	FontWeight style.FontWeight
	FontStyle  style.FontStyle
	AlphaScale float64
}

// apply builds the override style for base.
func (o HeadingOverride) apply(base style.TextStyle) style.TextStyle {
	out := style.TextStyle{
		FontSize:   o.FontSize,
		FontWeight: o.FontWeight,
		FontStyle:  o.FontStyle,
	}
	if o.AlphaScale > 0 && base.Color.IsSpecified() {
		out.Color = base.Color.WithAlpha(base.Color.Alpha() * o.AlphaScale)
	}
	return out
}

// HeadingTable maps heading levels to their overrides. Levels missing from
// the table return the base style unchanged.
type HeadingTable map[int]HeadingOverride

// HeadingStyle implements HeadingStyler.
func (t HeadingTable) HeadingStyle(level int, base style.TextStyle) style.TextStyle {
	override, ok := t[level]
	if !ok {
		return base
	}
	return override.apply(base)
}

// With returns a copy of t with level set to override.
func (t HeadingTable) With(level int, override HeadingOverride) HeadingTable {
	out := make(HeadingTable, len(t)+1)
	for l, o := range t {
		out[l] = o
	}
	out[level] = override
	return out
}

// Levels returns the configured levels in ascending order.
func (t HeadingTable) Levels() []int {
	levels := make([]int, 0, len(t))
	for l := range t {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// DefaultHeadingTable returns a fresh copy of the built-in six-level table.
func DefaultHeadingTable() HeadingTable {
	return HeadingTable{
		0: {FontSize: 36, FontWeight: style.FontWeightBold},
		1: {FontSize: 26, FontWeight: style.FontWeightBold},
		2: {FontSize: 22, FontWeight: style.FontWeightBold, AlphaScale: 0.7},
		3: {FontSize: 20, FontWeight: style.FontWeightBold, FontStyle: style.FontStyleItalic},
		4: {FontSize: 18, FontWeight: style.FontWeightBold, AlphaScale: 0.7},
		5: {FontWeight: style.FontWeightBold, AlphaScale: 0.5},
	}
}

var defaultTable = DefaultHeadingTable()

// DefaultHeadingStyle is the built-in heading strategy.
var DefaultHeadingStyle HeadingStyler = HeadingStyleFunc(func(level int, base style.TextStyle) style.TextStyle {
	return defaultTable.HeadingStyle(level, base)
})

// ResolveHeadingStyle validates level and asks styler for the overrides to
// merge onto base. A nil styler, or an empty table, uses DefaultHeadingStyle. Negative levels
// fail with an InvalidArgumentError before the styler runs.
func ResolveHeadingStyle(styler HeadingStyler, level int, base style.TextStyle) (style.TextStyle, error) {
	if level < 0 {
		return style.TextStyle{}, quillerrors.NewInvalidArgumentError("level", level, "heading level must be non-negative")
	}
	if unsetStyler(styler) {
		styler = DefaultHeadingStyle
	}
	return styler.HeadingStyle(level, base), nil
}
