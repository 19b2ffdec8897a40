package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quill/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack, passing ctx to every child.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childViews := renderChildren(s.children, ctx.WithConstraints(s.deriveChildConstraints(ctx.Constraints)))
	if len(childViews) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = joinHorizontal(childViews, s.gap, s.align)
	} else {
		content = joinVertical(childViews, s.gap, s.align)
	}

	finalStyle := s.ComputeStyle(ctx.Theme)
	if ctx.Constraints.HasWidth() {
		finalStyle = finalStyle.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return finalStyle.Render(content)
}

// deriveChildConstraints splits the width of a horizontal stack evenly among
// its children after the gaps are taken off. Vertical stacks pass it through.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	if s.direction != DirectionHorizontal || !parent.HasWidth() || len(s.children) == 0 {
		return parent
	}

	available := parent.MaxWidth - s.gap*(len(s.children)-1)
	perChild := available / len(s.children)
	if perChild < 1 {
		perChild = 1
	}
	return WithMaxWidth(perChild)
}

func renderChildren(children []ui.Renderable, ctx RenderContext) []string {
	views := make([]string, 0, len(children))
	for _, child := range children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	return views
}

// joinVertical stacks views with gap blank lines between them.
func joinVertical(views []string, gap int, align Alignment) string {
	if gap <= 0 {
		return lipgloss.JoinVertical(align.ToLipglossPosition(), views...)
	}

	spacer := strings.Repeat("\n", gap-1)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinVertical(align.ToLipglossPosition(), parts...)
}

// joinHorizontal places views side by side with gap spaces between them.
func joinHorizontal(views []string, gap int, align Alignment) string {
	if gap <= 0 {
		return lipgloss.JoinHorizontal(verticalPosition(align), views...)
	}

	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(verticalPosition(align), parts...)
}

func verticalPosition(a Alignment) lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(direction Direction) *Stack {
	s.direction = direction
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment of children.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// AddChild appends a child to the stack.
func (s *Stack) AddChild(child ui.Renderable) *Stack {
	s.children = append(s.children, child)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
