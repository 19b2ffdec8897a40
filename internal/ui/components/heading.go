package components

import (
	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Heading renders its children with a text style derived from its level.
// Level 0 is the most prominent; levels past the configured table render
// with the inherited style unchanged.
type Heading struct {
	BaseComponent
	level    int
	children []ui.Renderable
}

// NewHeading creates a heading whose body is plain text.
func NewHeading(level int, text string) (*Heading, error) {
	return NewHeadingWithChildren(level, NewText(text))
}

// NewHeadingWithChildren creates a heading that renders children with the
// heading's text style in scope. Negative levels are rejected.
func NewHeadingWithChildren(level int, children ...ui.Renderable) (*Heading, error) {
	if level < 0 {
		return nil, quillerrors.NewInvalidArgumentError("level", level, "heading level must be non-negative")
	}
	return &Heading{
		BaseComponent: NewBaseComponent(),
		level:         level,
		children:      children,
	}, nil
}

// View renders the heading with the default context.
func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children with the heading style merged into ctx.
func (h *Heading) ViewWithContext(ctx RenderContext) string {
	merged, err := h.TextStyle(ctx)
	if err != nil {
		return ""
	}

	childViews := renderChildren(h.children, ctx.WithTextStyle(merged))
	return h.ComputeStyle(ctx.Theme).Render(joinVertical(childViews, 0, AlignStart))
}

// TextStyle returns the fully resolved style the heading's children see.
//
// The content color is substituted before default resolution; otherwise
// ResolveDefaults would fill an unset color with black.
func (h *Heading) TextStyle(ctx RenderContext) (style.TextStyle, error) {
	ambient := ctx.TextStyle
	if !ambient.Color.IsSpecified() && ctx.ContentColor.IsSpecified() {
		ambient.Color = ctx.ContentColor
	}
	resolved := style.ResolveDefaults(ambient, ctx.LayoutDirection)

	override, err := richtext.ResolveHeadingStyle(ctx.RichText.HeadingStyle, h.level, resolved)
	if err != nil {
		return style.TextStyle{}, err
	}
	return resolved.Merge(override), nil
}

// WithAppliers applies theme-based style modifiers around the heading.
func (h *Heading) WithAppliers(appliers ...StyleFunc) *Heading {
	h.SetAppliers(appliers...)
	return h
}

// Level returns the heading level.
func (h *Heading) Level() int {
	return h.level
}

// Children returns the heading's body.
func (h *Heading) Children() []ui.Renderable {
	return h.children
}
