package components

import (
	"github.com/alexisbeaulieu97/quill/internal/ui"
)

// Card frames its children in a rounded border. A titled card renders the
// title as a heading above the body, separated by a rule.
type Card struct {
	BaseComponent
	title    *Heading
	children []ui.Renderable
}

// NewCard creates a card with a rounded border and one column of padding.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
	c.SetAppliers(RoundedBorder(), Padding(SymmetricSpacing(0, 1)))
	return c
}

// View renders the card with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. Children are laid out within the width
// left over after the border and padding.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	frame := c.ComputeStyle(ctx.Theme)

	inner := ctx
	if ctx.Constraints.HasWidth() {
		width := ctx.Constraints.MaxWidth - frame.GetHorizontalFrameSize()
		if width < 1 {
			width = 1
		}
		inner = ctx.WithConstraints(WithMaxWidth(width))
	}

	parts := c.children
	if c.title != nil {
		parts = append([]ui.Renderable{c.title, NewRule()}, c.children...)
	}
	return frame.Render(joinVertical(renderChildren(parts, inner), 0, AlignStart))
}

// WithTitle renders title as a heading at level above the body.
func (c *Card) WithTitle(level int, title string) (*Card, error) {
	heading, err := NewHeading(level, title)
	if err != nil {
		return nil, err
	}
	c.title = heading
	return c, nil
}

// WithAppliers replaces the card's style modifiers, including its border.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.SetAppliers(appliers...)
	return c
}

// Add appends children to the body.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Title returns the title heading, nil when the card has none.
func (c *Card) Title() *Heading {
	return c.title
}

// Children returns the body.
func (c *Card) Children() []ui.Renderable {
	return c.children
}
