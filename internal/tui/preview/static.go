// Package preview shows how a piece of text looks at each heading level,
// either as a one-shot table or as an interactive bubbletea program.
package preview

import (
	"fmt"

	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
)

// Levels returns the levels worth previewing for styler: every level of its
// table plus the first level past it, which renders with the base style.
// Stylers that are not tables are described by the default table.
func Levels(styler richtext.HeadingStyler) []int {
	table, ok := styler.(richtext.HeadingTable)
	if !ok || len(table) == 0 {
		table = richtext.DefaultHeadingTable()
	}
	levels := table.Levels()
	return append(levels, levels[len(levels)-1]+1)
}

// Static renders text once per level, one row each. Every row carries the
// level label and the resolved font size, centered against headings that wrap.
func Static(ctx components.RenderContext, text string, levels []int) (string, error) {
	rows := make([]ui.Renderable, 0, len(levels))
	for _, level := range levels {
		row, err := levelRow(ctx, text, level)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}
	return components.VStack(rows...).ViewWithContext(ctx), nil
}

func levelRow(ctx components.RenderContext, text string, level int) (ui.Renderable, error) {
	heading, err := components.NewHeading(level, text)
	if err != nil {
		return nil, err
	}
	resolved, err := heading.TextStyle(ctx)
	if err != nil {
		return nil, err
	}
	return components.HStack(
		components.MutedText(fmt.Sprintf("h%-2d", level)),
		heading,
		components.MutedText(resolved.FontSize.String()),
	).WithGap(2).WithAlign(components.AlignCenter), nil
}
