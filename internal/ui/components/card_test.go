package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func TestCardFramesChildren(t *testing.T) {
	card := NewCard(NewText("body"))
	lines := strings.Split(card.View(), "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "│ body │")
	assert.True(t, strings.HasPrefix(lines[2], "╰"))
}

func TestCardTitleRendersAsHeading(t *testing.T) {
	card, err := NewCard(NewText("body")).WithTitle(1, "Title")
	require.NoError(t, err)
	require.NotNil(t, card.Title())
	assert.Equal(t, 1, card.Title().Level())

	view := card.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(20)))
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, lines[2], strings.Repeat("─", 16))
	assert.Contains(t, lines[3], "body")
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
}

func TestCardNarrowsConstraintsForChildren(t *testing.T) {
	p := newProbe()
	NewCard(p).ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(30)))
	assert.Equal(t, 26, p.seen.Constraints.MaxWidth)

	NewCard(p).ViewWithContext(DefaultContext())
	assert.False(t, p.seen.Constraints.HasWidth())
}

func TestCardRejectsNegativeTitleLevel(t *testing.T) {
	_, err := NewCard().WithTitle(-1, "x")
	require.ErrorIs(t, err, quillerrors.ErrInvalidArgument)
}

func TestCardAdd(t *testing.T) {
	card := NewCard(NewText("a")).Add(NewText("b"))
	assert.Len(t, card.Children(), 2)
	assert.Contains(t, card.View(), "b")
}
