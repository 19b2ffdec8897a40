package richtext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func TestDefaultHeadingStyleTable(t *testing.T) {
	t.Parallel()

	base := style.TextStyle{Color: style.Black}

	tests := []struct {
		level     int
		size      style.Sp
		fontStyle style.FontStyle
		alpha     float64
		hasColor  bool
	}{
		{level: 0, size: 36},
		{level: 1, size: 26},
		{level: 2, size: 22, alpha: 0.7, hasColor: true},
		{level: 3, size: 20, fontStyle: style.FontStyleItalic},
		{level: 4, size: 18, alpha: 0.7, hasColor: true},
		{level: 5, alpha: 0.5, hasColor: true},
	}

	for _, tt := range tests {
		got, err := ResolveHeadingStyle(nil, tt.level, base)
		require.NoError(t, err)

		require.Equal(t, tt.size, got.FontSize, "level %d size", tt.level)
		require.Equal(t, style.FontWeightBold, got.FontWeight, "level %d weight", tt.level)
		require.Equal(t, tt.fontStyle, got.FontStyle, "level %d style", tt.level)
		require.Equal(t, tt.hasColor, got.Color.IsSpecified(), "level %d color", tt.level)
		if tt.hasColor {
			require.InDelta(t, tt.alpha, got.Color.Alpha(), 1e-9, "level %d alpha", tt.level)
		}
		require.Empty(t, got.FontFamily)
		require.Equal(t, style.DecorationUnspecified, got.Decoration)
	}
}

func TestDefaultHeadingStyleIgnoresBaseContent(t *testing.T) {
	t.Parallel()

	plain := style.TextStyle{}
	busy := style.TextStyle{
		FontSize:   99,
		FontWeight: style.FontWeightThin,
		FontStyle:  style.FontStyleItalic,
		FontFamily: "serif",
		Decoration: style.DecorationUnderline,
	}

	for level := 0; level <= 5; level++ {
		a, err := ResolveHeadingStyle(DefaultHeadingStyle, level, plain)
		require.NoError(t, err)
		b, err := ResolveHeadingStyle(DefaultHeadingStyle, level, busy)
		require.NoError(t, err)
		require.Equal(t, a, b, "level %d", level)
	}
}

func TestLevelsPastTableReturnBaseUnchanged(t *testing.T) {
	t.Parallel()

	base := style.TextStyle{FontSize: 14, FontWeight: style.FontWeightNormal, Color: style.Black, FontFamily: "mono"}
	for _, level := range []int{6, 7, 42, 1 << 20} {
		got, err := ResolveHeadingStyle(nil, level, base)
		require.NoError(t, err)
		require.Equal(t, base, got, "level %d", level)
	}
}

func TestNegativeLevelIsInvalidArgument(t *testing.T) {
	t.Parallel()

	called := false
	spy := HeadingStyleFunc(func(level int, base style.TextStyle) style.TextStyle {
		called = true
		return base
	})

	for _, level := range []int{-1, -6, -1000} {
		got, err := ResolveHeadingStyle(spy, level, style.TextStyle{Color: style.Black})
		require.ErrorIs(t, err, quillerrors.ErrInvalidArgument)

		var argErr *quillerrors.InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Equal(t, "level", argErr.Argument)
		require.Equal(t, level, argErr.Value)
		require.True(t, got.IsZero())
	}
	require.False(t, called)
}

func TestMergePreservesUntouchedAttributes(t *testing.T) {
	t.Parallel()

	base := style.ResolveDefaults(style.TextStyle{FontFamily: "serif", Decoration: style.DecorationUnderline}, style.LayoutLtr)
	for level := 0; level <= 8; level++ {
		delta, err := ResolveHeadingStyle(nil, level, base)
		require.NoError(t, err)
		merged := base.Merge(delta)
		require.Equal(t, "serif", merged.FontFamily, "level %d", level)
		require.Equal(t, style.DecorationUnderline, merged.Decoration, "level %d", level)
		require.Equal(t, base.TextDirection, merged.TextDirection, "level %d", level)
	}
}

func TestAlphaScalingIsMultiplicative(t *testing.T) {
	t.Parallel()

	opaque, err := ResolveHeadingStyle(nil, 2, style.TextStyle{Color: style.Black})
	require.NoError(t, err)
	require.InDelta(t, 0.7, opaque.Color.Alpha(), 1e-9)

	translucent, err := ResolveHeadingStyle(nil, 2, style.TextStyle{Color: style.Black.WithAlpha(0.4)})
	require.NoError(t, err)
	require.InDelta(t, 0.28, translucent.Color.Alpha(), 1e-9)
	require.Equal(t, style.Black.Hex(), translucent.Color.Hex())

	level5, err := ResolveHeadingStyle(nil, 5, style.TextStyle{Color: style.White.WithAlpha(0.8)})
	require.NoError(t, err)
	require.InDelta(t, 0.4, level5.Color.Alpha(), 1e-9)
}

func TestAlphaScalingWithoutBaseColorLeavesColorUnspecified(t *testing.T) {
	t.Parallel()

	got, err := ResolveHeadingStyle(nil, 4, style.TextStyle{})
	require.NoError(t, err)
	require.False(t, got.Color.IsSpecified())
	require.Equal(t, style.Sp(18), got.FontSize)
}

func TestLevelZeroScenario(t *testing.T) {
	t.Parallel()

	base := style.TextStyle{FontSize: 14, FontWeight: style.FontWeightNormal, Color: style.Black}
	delta, err := ResolveHeadingStyle(nil, 0, base)
	require.NoError(t, err)
	require.Equal(t, style.TextStyle{FontSize: 36, FontWeight: style.FontWeightBold}, delta)

	merged := base.Merge(delta)
	require.Equal(t, style.TextStyle{FontSize: 36, FontWeight: style.FontWeightBold, Color: style.Black}, merged)
}

func TestLevelTwoScenario(t *testing.T) {
	t.Parallel()

	base := style.TextStyle{Color: style.Black}
	delta, err := ResolveHeadingStyle(nil, 2, base)
	require.NoError(t, err)
	require.Equal(t, style.Sp(22), delta.FontSize)
	require.Equal(t, style.FontWeightBold, delta.FontWeight)
	require.InDelta(t, 0.7, base.Merge(delta).Color.Alpha(), 1e-9)
}

func TestCustomStylerReplacesTable(t *testing.T) {
	t.Parallel()

	underline := HeadingStyleFunc(func(level int, base style.TextStyle) style.TextStyle {
		return style.TextStyle{Decoration: style.DecorationUnderline}
	})

	got, err := ResolveHeadingStyle(underline, 0, style.TextStyle{})
	require.NoError(t, err)
	require.Equal(t, style.TextStyle{Decoration: style.DecorationUnderline}, got)
}

func TestHeadingTableWithDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	table := DefaultHeadingTable()
	custom := table.With(0, HeadingOverride{FontSize: 48, FontWeight: style.FontWeightBlack}).
		With(6, HeadingOverride{FontWeight: style.FontWeightSemiBold})

	require.Equal(t, style.Sp(36), table[0].FontSize)
	require.Equal(t, style.Sp(48), custom[0].FontSize)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, table.Levels())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, custom.Levels())

	got := custom.HeadingStyle(6, style.TextStyle{Color: style.Black})
	require.Equal(t, style.TextStyle{FontWeight: style.FontWeightSemiBold}, got)
}

func TestDefaultHeadingTableReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	table := DefaultHeadingTable()
	table[0] = HeadingOverride{FontSize: 1}

	got, err := ResolveHeadingStyle(nil, 0, style.TextStyle{})
	require.NoError(t, err)
	require.Equal(t, style.Sp(36), got.FontSize)
}
