package config

import (
	"github.com/alexisbeaulieu97/quill/internal/richtext"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// RichTextStyle builds the rich-text configuration: the default heading
// table with every configured level replaced.
func (c *Config) RichTextStyle() (richtext.RichTextStyle, error) {
	out := richtext.RichTextStyle{}
	if c == nil {
		return out.Resolve(), nil
	}

	if len(c.Headings) > 0 {
		table := richtext.DefaultHeadingTable()
		for i, h := range c.Headings {
			override, err := h.override()
			if err != nil {
				return richtext.RichTextStyle{}, quillerrors.NewValidationError(fieldForHeading(i, "font_weight"), err.Error(), err)
			}
			table = table.With(*h.Level, override)
		}
		out.HeadingStyle = table
	}

	if c.ParagraphSpacing != nil {
		out.ParagraphSpacing = *c.ParagraphSpacing
		if out.ParagraphSpacing == 0 {
			out.ParagraphSpacing = -1
		}
	}

	return out.Resolve(), nil
}

func (h HeadingConfig) override() (richtext.HeadingOverride, error) {
	override := richtext.HeadingOverride{
		FontSize:   style.Sp(h.FontSize),
		AlphaScale: h.AlphaScale,
	}
	if h.FontWeight != "" {
		weight, err := style.ParseFontWeight(h.FontWeight)
		if err != nil {
			return richtext.HeadingOverride{}, err
		}
		override.FontWeight = weight
	}
	if h.Italic != nil {
		override.FontStyle = fontStyle(*h.Italic)
	}
	return override, nil
}

// BuildTheme builds the named base theme with configured colors applied.
func (c *Config) BuildTheme() (components.Theme, error) {
	if c == nil {
		return components.DefaultTheme(), nil
	}

	theme, ok := components.ThemeByName(c.Theme.Base)
	if !ok {
		return components.Theme{}, quillerrors.NewValidationError("theme.base", "unknown theme "+c.Theme.Base, nil)
	}

	slots := []struct {
		field string
		value string
		dest  *style.Color
	}{
		{"theme.content_color", c.Theme.ContentColor, &theme.ContentColor},
		{"theme.surface", c.Theme.Surface, &theme.Surface},
		{"theme.accent", c.Theme.Accent, &theme.Accent},
		{"theme.muted", c.Theme.Muted, &theme.Muted},
	}
	for _, slot := range slots {
		if slot.value == "" {
			continue
		}
		parsed, err := style.ParseColor(slot.value)
		if err != nil {
			return components.Theme{}, quillerrors.NewValidationError(slot.field, err.Error(), err)
		}
		*slot.dest = parsed
	}

	base, err := c.BaseTextStyle()
	if err != nil {
		return components.Theme{}, err
	}
	theme.Body = theme.Body.Merge(base)

	return theme, nil
}

// BaseTextStyle converts base_style into a TextStyle.
func (c *Config) BaseTextStyle() (style.TextStyle, error) {
	if c == nil {
		return style.TextStyle{}, nil
	}
	return c.BaseStyle.textStyle("base_style")
}

func (t TextStyleConfig) textStyle(field string) (style.TextStyle, error) {
	out := style.TextStyle{
		FontSize:   style.Sp(t.FontSize),
		FontFamily: t.FontFamily,
	}
	if t.FontWeight != "" {
		weight, err := style.ParseFontWeight(t.FontWeight)
		if err != nil {
			return style.TextStyle{}, quillerrors.NewValidationError(field+".font_weight", err.Error(), err)
		}
		out.FontWeight = weight
	}
	if t.Color != "" {
		c, err := style.ParseColor(t.Color)
		if err != nil {
			return style.TextStyle{}, quillerrors.NewValidationError(field+".color", err.Error(), err)
		}
		out.Color = c
	}
	if t.Italic != nil {
		out.FontStyle = fontStyle(*t.Italic)
	}
	if t.Underline != nil {
		out.Decoration = style.DecorationNone
		if *t.Underline {
			out.Decoration = style.DecorationUnderline
		}
	}
	return out, nil
}

// RenderContext assembles a components.RenderContext from the whole document.
func (c *Config) RenderContext() (components.RenderContext, error) {
	theme, err := c.BuildTheme()
	if err != nil {
		return components.RenderContext{}, err
	}
	rich, err := c.RichTextStyle()
	if err != nil {
		return components.RenderContext{}, err
	}
	return components.ContextForTheme(theme).WithRichText(rich), nil
}

func fontStyle(italic bool) style.FontStyle {
	if italic {
		return style.FontStyleItalic
	}
	return style.FontStyleNormal
}
