package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// Text is a primitive component for rendering styled text content.
// It renders with the context's text style; its own appliers take precedence.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	rendered := t.ComputeStyle(ctx.Theme).Inherit(InheritedStyle(ctx))
	if ctx.Constraints.HasWidth() {
		rendered = rendered.Width(ctx.Constraints.MaxWidth)
	}
	return rendered.Render(t.content)
}

// InheritedStyle projects the context's text style onto lipgloss, using the
// content color when the style has no color of its own.
func InheritedStyle(ctx RenderContext) lipgloss.Style {
	ts := ctx.TextStyle
	if !ts.Color.IsSpecified() {
		ts.Color = ctx.ContentColor
	}
	return style.Lipgloss(ts, ctx.Theme.Surface)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// WithStrategy sets a custom styling strategy.
func (t *Text) WithStrategy(strategy StyleStrategy) *Text {
	t.SetStrategy(strategy)
	return t
}

// MutedText creates text drawn in the theme's muted color.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(SlotMuted))
}

// BoldText creates bold text regardless of the inherited weight.
func BoldText(content string) *Text {
	return NewText(content).WithAppliers(Typography(style.TextStyle{FontWeight: style.FontWeightBold}))
}
