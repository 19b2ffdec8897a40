package preview

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
)

// Model is the interactive heading preview.
type Model struct {
	text string
	base components.RenderContext

	// UI state
	level      int
	maxLevel   int
	themes     []components.Theme
	themeIndex int
	// ambient reports whether the preview sets the accent as the scope's
	// text color. When it does not, the base style's own color applies, or
	// the theme's content color if the base style has none.
	ambient bool

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a preview of text rendered with base. The level can move
// from 0 up to the first level past the configured table.
func NewModel(base components.RenderContext, text string) Model {
	levels := Levels(base.RichText.HeadingStyle)
	return Model{
		text:     text,
		base:     base,
		maxLevel: levels[len(levels)-1],
		themes:   []components.Theme{base.Theme, alternateTheme(base.Theme)},
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func alternateTheme(theme components.Theme) components.Theme {
	if theme.Name == components.DarkTheme().Name {
		return components.LightTheme()
	}
	return components.DarkTheme()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Level returns the level being previewed.
func (m Model) Level() int {
	return m.level
}

// Theme returns the active theme.
func (m Model) Theme() components.Theme {
	return m.themes[m.themeIndex]
}

// AmbientColor reports whether the preview scope overrides the text color.
func (m Model) AmbientColor() bool {
	return m.ambient
}

// Context returns the render context the heading is drawn with.
func (m Model) Context() components.RenderContext {
	theme := m.Theme()
	ctx := m.base.WithTheme(theme).WithContentColor(theme.ContentColor)
	if m.width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.width))
	}

	if !m.ambient {
		return ctx
	}
	ts := ctx.TextStyle
	ts.Color = theme.Accent
	return ctx.WithTextStyle(ts)
}

// Run starts an interactive preview and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
