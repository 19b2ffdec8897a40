// Package components provides a declarative, theme-aware rich-text component
// library for terminal applications.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable themes (content color, surface, body typography)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable elements that render to strings
//
// # Render Context
//
// Everything a component inherits from its ancestors travels in an explicit
// RenderContext: the theme, width constraints, the ambient text style, the
// content color and the rich-text configuration. There is no global state;
// scopes pass a modified copy to their children:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default context:
//
//	output := component.View()
//
// # Components
//
// Text primitives:
//   - Text: Styled text that inherits the ambient text style
//   - Rule: Horizontal separator
//
// Layout:
//   - Stack: Vertical/horizontal arrangement with gaps and alignment
//   - Card: Bordered frame with an optional heading title
//
// Rich text:
//   - Heading: Applies the heading style for its level to its children
//   - TextScope: Merges a text style into the ambient one
//   - RichText: Installs heading and spacing configuration for a block
//
// # Headings
//
// A heading resolves its style in three steps. The ambient text style gets
// the content color when it has no color of its own, then unspecified fields
// are filled with defaults, then the heading strategy in the rich-text
// configuration supplies the overrides for the level:
//
//	title, err := components.NewHeading(0, "Getting started")
//	if err != nil {
//		return err
//	}
//	fmt.Println(title.ViewWithContext(ctx))
//
// Levels past the strategy's table render with the ambient style unchanged.
// Negative levels are rejected with an InvalidArgumentError.
//
// # Modifiers
//
// Style modifiers adjust a component's own lipgloss style:
//
//	text := components.NewText("note").WithAppliers(
//		components.Foreground(components.SlotMuted),
//		components.Padding(components.SymmetricSpacing(0, 1)),
//	)
//
// A component's own modifiers win over the inherited text style.
package components
