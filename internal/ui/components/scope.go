package components

import (
	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// TextScope merges a text style into the context seen by its children.
type TextScope struct {
	style    style.TextStyle
	children []ui.Renderable
}

// NewTextScope creates a scope that provides ts to children.
func NewTextScope(ts style.TextStyle, children ...ui.Renderable) *TextScope {
	return &TextScope{style: ts, children: children}
}

// View renders the scope with the default context.
func (s *TextScope) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children with the merged text style.
func (s *TextScope) ViewWithContext(ctx RenderContext) string {
	views := renderChildren(s.children, ctx.MergeTextStyle(s.style))
	return joinVertical(views, 0, AlignStart)
}

// RichText installs a rich-text configuration for its children and
// separates them by the configured paragraph spacing.
type RichText struct {
	BaseComponent
	config   richtext.RichTextStyle
	children []ui.Renderable
}

// NewRichText creates a rich-text block. Unspecified fields of cfg inherit
// from the enclosing configuration.
func NewRichText(cfg richtext.RichTextStyle, children ...ui.Renderable) *RichText {
	return &RichText{
		BaseComponent: NewBaseComponent(),
		config:        cfg,
		children:      children,
	}
}

// View renders the block with the default context.
func (r *RichText) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children with the merged configuration.
func (r *RichText) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithRichText(r.config)
	views := renderChildren(r.children, childCtx)
	return r.ComputeStyle(ctx.Theme).Render(joinVertical(views, childCtx.RichText.Spacing(), AlignStart))
}

// WithAppliers applies theme-based style modifiers around the block.
func (r *RichText) WithAppliers(appliers ...StyleFunc) *RichText {
	r.SetAppliers(appliers...)
	return r
}

// Append adds blocks to the end of the rich-text body.
func (r *RichText) Append(children ...ui.Renderable) *RichText {
	r.children = append(r.children, children...)
	return r
}

// Children returns the blocks in order.
func (r *RichText) Children() []ui.Renderable {
	return r.children
}

// Config returns the configuration this block installs.
func (r *RichText) Config() richtext.RichTextStyle {
	return r.config
}
