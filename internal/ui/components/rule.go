package components

import (
	"strings"
)

// DefaultRuleWidth is used when neither the rule nor the context sets a width.
const DefaultRuleWidth = 40

// Rule renders a horizontal separator line, such as a thematic break
// between blocks of a document.
type Rule struct {
	BaseComponent
	char  string
	width int
}

// NewRule creates a rule drawn with a light box-drawing line in the muted color.
func NewRule() *Rule {
	r := &Rule{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	r.SetAppliers(Foreground(SlotMuted))
	return r
}

// View renders the rule.
func (r *Rule) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rule, filling the context width when the
// rule has no explicit width.
func (r *Rule) ViewWithContext(ctx RenderContext) string {
	width := r.width
	if width <= 0 && ctx.Constraints.HasWidth() {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		width = DefaultRuleWidth
	}

	return r.ComputeStyle(ctx.Theme).Render(strings.Repeat(r.char, width))
}

// WithChar sets the character used for the rule.
func (r *Rule) WithChar(char string) *Rule {
	if char != "" {
		r.char = char
	}
	return r
}

// WithWidth sets an explicit width for the rule.
func (r *Rule) WithWidth(width int) *Rule {
	r.width = width
	return r
}

// WithAppliers replaces the rule's style modifiers.
func (r *Rule) WithAppliers(appliers ...StyleFunc) *Rule {
	r.SetAppliers(appliers...)
	return r
}

// Width returns the explicit width, zero when unset.
func (r *Rule) Width() int {
	return r.width
}

// DashedRule creates a rule drawn with dashes.
func DashedRule() *Rule {
	return NewRule().WithChar("-")
}

// DoubleRule creates a double-line rule.
func DoubleRule() *Rule {
	return NewRule().WithChar("═")
}
