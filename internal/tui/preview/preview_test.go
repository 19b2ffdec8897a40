package preview

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestLevels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, Levels(nil))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, Levels(richtext.DefaultHeadingStyle))

	table := richtext.HeadingTable{0: {FontSize: 30}}
	assert.Equal(t, []int{0, 1}, Levels(table))
}

func TestStaticRendersEveryLevel(t *testing.T) {
	t.Parallel()

	out, err := Static(components.DefaultContext(), "Sample", Levels(nil))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "h0"))
	assert.Contains(t, lines[0], "SAMPLE")
	assert.Contains(t, lines[0], "36sp")
	assert.Contains(t, lines[1], "Sample")
	assert.Contains(t, lines[1], "26sp")
	assert.True(t, strings.HasPrefix(lines[6], "h6"))
	assert.Contains(t, lines[6], "14sp")
}

func TestStaticFitsConstrainedWidth(t *testing.T) {
	t.Parallel()

	ctx := components.DefaultContext().WithConstraints(components.WithMaxWidth(40))
	out, err := Static(ctx, "Sample", Levels(nil))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7, "rows must not wrap")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, line)
	}
	assert.Contains(t, lines[0], "SAMPLE")

	wrapped, err := Static(ctx, "The quick brown fox", []int{1})
	require.NoError(t, err)
	rows := strings.Split(wrapped, "\n")
	require.Len(t, rows, 2)
	for _, line := range rows {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, line)
	}
}

func TestStaticRejectsNegativeLevel(t *testing.T) {
	t.Parallel()

	_, err := Static(components.DefaultContext(), "Sample", []int{0, -1})
	require.ErrorIs(t, err, quillerrors.ErrInvalidArgument)
}

func TestUpdate_LevelNavigation(t *testing.T) {
	t.Parallel()

	m := NewModel(components.DefaultContext(), "Sample")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Level(), "level never goes below zero")

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 6, m.Level(), "level stops one past the table")

	m, _ = update(t, m, runes("k"))
	assert.Equal(t, 5, m.Level())
}

func TestUpdate_ToggleAmbientColor(t *testing.T) {
	t.Parallel()

	m := NewModel(components.DefaultContext(), "Sample")
	theme := m.Theme()
	heading, err := components.NewHeading(0, "Sample")
	require.NoError(t, err)

	resolved, err := heading.TextStyle(m.Context())
	require.NoError(t, err)
	assert.Equal(t, theme.ContentColor, resolved.Color)

	m, _ = update(t, m, runes("c"))
	require.True(t, m.AmbientColor())
	resolved, err = heading.TextStyle(m.Context())
	require.NoError(t, err)
	assert.Equal(t, theme.Accent, resolved.Color)

	m, _ = update(t, m, runes("c"))
	assert.False(t, m.AmbientColor())
	assert.Equal(t, style.Unspecified, m.Context().TextStyle.Color)
}

func TestContextKeepsConfiguredColor(t *testing.T) {
	t.Parallel()

	configured := style.MustParseColor("#b91c1c")
	base := components.DefaultContext().MergeTextStyle(style.TextStyle{Color: configured})
	m := NewModel(base, "Sample")
	heading, err := components.NewHeading(0, "Sample")
	require.NoError(t, err)

	resolved, err := heading.TextStyle(m.Context())
	require.NoError(t, err)
	assert.Equal(t, configured, resolved.Color)

	m, _ = update(t, m, runes("c"))
	assert.Equal(t, m.Theme().Accent, m.Context().TextStyle.Color)

	m, _ = update(t, m, runes("c"))
	resolved, err = heading.TextStyle(m.Context())
	require.NoError(t, err)
	assert.Equal(t, configured, resolved.Color)
}

func TestUpdate_ToggleTheme(t *testing.T) {
	t.Parallel()

	m := NewModel(components.DefaultContext(), "Sample")
	assert.Equal(t, "light", m.Theme().Name)

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, "dark", m.Theme().Name)
	assert.Equal(t, components.DarkTheme().ContentColor, m.Context().ContentColor)

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, "light", m.Theme().Name)
}

func TestUpdate_HelpAndWindowSize(t *testing.T) {
	t.Parallel()

	m := NewModel(components.DefaultContext(), "Sample")
	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.width)
	assert.Equal(t, 60, m.Context().Constraints.MaxWidth)
}

func TestUpdate_Quit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := NewModel(components.DefaultContext(), "Sample")
		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
		assert.Empty(t, m.View())
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	m := NewModel(components.DefaultContext(), "Sample")
	view := m.View()
	assert.Contains(t, view, "Heading preview")
	assert.Contains(t, view, "SAMPLE")
	assert.Contains(t, view, "level 0  theme light  ambient color off")
	assert.Contains(t, view, "quit")
}
