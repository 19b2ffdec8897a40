package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
// This abstraction allows for composable, testable styling logic.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme. This is the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A custom strategy is wrapped so its logic still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
		return
	}

	currentStrategy := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if currentStrategy != nil {
			base = currentStrategy.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Spacing represents spacing (padding or margin) around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth > 0
}

// RenderContext carries everything a component inherits from its ancestors.
// It is passed down explicitly; each With method returns a modified copy so
// a descendant sees the nearest ancestor's value unless it overrides it.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	// TextStyle is the inherited text style. Unspecified fields resolve to
	// defaults at the point of use.
	TextStyle style.TextStyle
	// ContentColor is the preferred text color when TextStyle has none.
	ContentColor    style.Color
	RichText        richtext.RichTextStyle
	LayoutDirection style.LayoutDirection
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return ContextForTheme(DefaultTheme())
}

// ContextForTheme returns a context whose text style and content color come from theme.
func ContextForTheme(theme Theme) RenderContext {
	return RenderContext{
		Theme:        theme,
		Constraints:  Unconstrained(),
		TextStyle:    theme.Body,
		ContentColor: theme.ContentColor,
		RichText:     richtext.RichTextStyle{}.Resolve(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithTextStyle returns a new context whose text style is replaced.
func (r RenderContext) WithTextStyle(ts style.TextStyle) RenderContext {
	r.TextStyle = ts
	return r
}

// MergeTextStyle returns a new context with ts merged over the current text style.
func (r RenderContext) MergeTextStyle(ts style.TextStyle) RenderContext {
	r.TextStyle = r.TextStyle.Merge(ts)
	return r
}

// WithContentColor returns a new context with the given content color.
func (r RenderContext) WithContentColor(c style.Color) RenderContext {
	r.ContentColor = c
	return r
}

// WithRichText returns a new context with cfg merged over the current rich-text configuration.
func (r RenderContext) WithRichText(cfg richtext.RichTextStyle) RenderContext {
	r.RichText = r.RichText.Merge(cfg)
	return r
}

// WithLayoutDirection returns a new context with the given layout direction.
func (r RenderContext) WithLayoutDirection(dir style.LayoutDirection) RenderContext {
	r.LayoutDirection = dir
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders child with ctx when it accepts one.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
