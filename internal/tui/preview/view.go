package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
)

const titleLevel = 4

// View renders the current model state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.Context()
	heading, err := components.NewHeading(m.level, m.text)
	if err != nil {
		return err.Error()
	}
	resolved, err := heading.TextStyle(ctx)
	if err != nil {
		return err.Error()
	}

	card, err := components.NewCard(heading).WithTitle(titleLevel, "Heading preview")
	if err != nil {
		return err.Error()
	}

	var content strings.Builder
	content.WriteString(card.ViewWithContext(ctx))
	content.WriteString("\n\n")
	content.WriteString(components.MutedText(m.status(resolved.String())).ViewWithContext(ctx))
	content.WriteString("\n\n")
	content.WriteString(m.help.View(m.keys))
	return content.String()
}

func (m Model) status(resolved string) string {
	ambient := "off"
	if m.ambient {
		ambient = "on"
	}
	return fmt.Sprintf("level %d  theme %s  ambient color %s  %s",
		m.level, m.Theme().Name, ambient, resolved)
}
