package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestMergeOverlayWinsWhenSpecified(t *testing.T) {
	t.Parallel()

	base := TextStyle{
		FontSize:   14,
		FontWeight: FontWeightNormal,
		Color:      Black,
		FontFamily: "mono",
	}
	overlay := TextStyle{FontSize: 36, FontWeight: FontWeightBold}

	merged := Merge(base, overlay)
	require.Equal(t, Sp(36), merged.FontSize)
	require.Equal(t, FontWeightBold, merged.FontWeight)
	require.Equal(t, Black, merged.Color)
	require.Equal(t, "mono", merged.FontFamily)
}

func TestMergeWithEmptyOverlayIsIdentity(t *testing.T) {
	t.Parallel()

	base := TextStyle{FontSize: 18, FontStyle: FontStyleItalic, Decoration: DecorationUnderline}
	require.Equal(t, base, base.Merge(TextStyle{}))
	require.Equal(t, base, TextStyle{}.Merge(base))
}

func TestMergeIsAssociative(t *testing.T) {
	t.Parallel()

	a := TextStyle{FontSize: 10, Color: Black}
	b := TextStyle{FontWeight: FontWeightBold, Color: White}
	c := TextStyle{FontSize: 20, FontFamily: "serif"}

	require.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)))
	require.NotEqual(t, a.Merge(b), b.Merge(a))
}

func TestResolveDefaultsFillsEveryField(t *testing.T) {
	t.Parallel()

	resolved := ResolveDefaults(TextStyle{}, LayoutLtr)
	require.Equal(t, DefaultFontSize, resolved.FontSize)
	require.Equal(t, FontWeightNormal, resolved.FontWeight)
	require.Equal(t, FontStyleNormal, resolved.FontStyle)
	require.Equal(t, Black, resolved.Color)
	require.Equal(t, DefaultFontFamily, resolved.FontFamily)
	require.Equal(t, DecorationNone, resolved.Decoration)
	require.Equal(t, TextDirectionLtr, resolved.TextDirection)

	require.Equal(t, TextDirectionRtl, ResolveDefaults(TextStyle{}, LayoutRtl).TextDirection)
}

func TestResolveDefaultsKeepsSpecifiedFields(t *testing.T) {
	t.Parallel()

	teal := MustParseColor("#008080")
	in := TextStyle{FontSize: 20, Color: teal, FontFamily: "serif", TextDirection: TextDirectionLtr}
	resolved := ResolveDefaults(in, LayoutRtl)

	require.Equal(t, Sp(20), resolved.FontSize)
	require.Equal(t, teal, resolved.Color)
	require.Equal(t, "serif", resolved.FontFamily)
	require.Equal(t, TextDirectionLtr, resolved.TextDirection)
}

func TestColorAlphaAndHex(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	require.True(t, c.IsSpecified())
	require.Equal(t, 1.0, c.Alpha())
	require.Equal(t, "#ff0000", c.Hex())

	faded := c.WithAlpha(0.25)
	require.InDelta(t, 0.25, faded.Alpha(), 1e-9)
	require.Equal(t, "#ff0000", faded.Hex())

	require.Equal(t, 1.0, c.WithAlpha(3).Alpha())
	require.Equal(t, 0.0, c.WithAlpha(-1).Alpha())
}

func TestColorUnspecified(t *testing.T) {
	t.Parallel()

	require.False(t, Unspecified.IsSpecified())
	require.Equal(t, 0.0, Unspecified.Alpha())
	require.Equal(t, "", Unspecified.Hex())
	require.False(t, Unspecified.WithAlpha(0.5).IsSpecified())
	require.Equal(t, "unspecified", Unspecified.String())
}

func TestParseColorRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseColor("not-a-color")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not-a-color")
}

func TestParseColorAcceptsOnlyOpaqueHexForms(t *testing.T) {
	t.Parallel()

	short, err := ParseColor("#fff")
	require.NoError(t, err)
	require.Equal(t, "#ffffff", short.Hex())

	for _, input := range []string{"#12345", "#11223344", "#abcd", "#12g456"} {
		_, err := ParseColor(input)
		require.Error(t, err, input)
	}
}

func TestColorOverCompositesOntoSurface(t *testing.T) {
	t.Parallel()

	half := Black.WithAlpha(0.5)
	require.Equal(t, "#808080", half.Over(White).Hex())
	require.Equal(t, "#ffffff", Black.WithAlpha(0).Over(White).Hex())
	require.Equal(t, "#000000", half.Over(Unspecified).Hex())
	require.Equal(t, 1.0, half.Over(White).Alpha())
}

func TestParseFontWeight(t *testing.T) {
	t.Parallel()

	cases := map[string]FontWeight{
		"bold":      FontWeightBold,
		"Semi-Bold": FontWeightSemiBold,
		" normal ":  FontWeightNormal,
		"black":     FontWeightBlack,
	}
	for name, want := range cases {
		got, err := ParseFontWeight(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseFontWeight("heavy-ish")
	require.Error(t, err)
	require.Equal(t, "bold", FontWeightBold.String())
}

func TestLipglossProjection(t *testing.T) {
	t.Parallel()

	heading := TextStyle{
		FontSize:   36,
		FontWeight: FontWeightBold,
		FontStyle:  FontStyleItalic,
		Color:      Black.WithAlpha(0.5),
		Decoration: DecorationUnderline,
	}
	ls := Lipgloss(heading, White)

	require.True(t, ls.GetBold())
	require.True(t, ls.GetItalic())
	require.True(t, ls.GetUnderline())
	require.Equal(t, lipgloss.Color("#808080"), ls.GetForeground())
	require.NotNil(t, ls.GetTransform())
	require.Equal(t, "TITLE", ls.GetTransform()("title"))
}

func TestLipglossProjectionLeavesUnspecifiedUnset(t *testing.T) {
	t.Parallel()

	ls := Lipgloss(TextStyle{FontSize: 14}, White)
	require.False(t, ls.GetBold())
	require.Nil(t, ls.GetTransform())
	require.Equal(t, lipgloss.NoColor{}, ls.GetForeground())

	// An unset projection does not block inheritance from an outer style.
	outer := lipgloss.NewStyle().Bold(true)
	require.True(t, ls.Inherit(outer).GetBold())
}

func TestLipglossProjectionLightWeightIsFaint(t *testing.T) {
	t.Parallel()

	ls := Lipgloss(TextStyle{FontWeight: FontWeightLight}, Unspecified)
	require.True(t, ls.GetFaint())
	require.False(t, ls.GetBold())
}

func TestTextStyleString(t *testing.T) {
	t.Parallel()

	s := TextStyle{FontSize: 22, FontWeight: FontWeightBold}.String()
	require.True(t, strings.Contains(s, "size=22sp"))
	require.True(t, strings.Contains(s, "weight=bold"))
	require.Equal(t, "{}", TextStyle{}.String())
}
