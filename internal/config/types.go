package config

// Config represents a quill theme document.
type Config struct {
	Version          string          `yaml:"version" validate:"required,semver"`
	Name             string          `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Theme            ThemeConfig     `yaml:"theme,omitempty"`
	BaseStyle        TextStyleConfig `yaml:"base_style,omitempty"`
	ParagraphSpacing *int            `yaml:"paragraph_spacing,omitempty" validate:"omitempty,min=0,max=10"`
	Headings         []HeadingConfig `yaml:"headings,omitempty" validate:"omitempty,dive"`
}

// ThemeConfig selects a built-in theme and optionally overrides its colors.
type ThemeConfig struct {
	Base         string `yaml:"base,omitempty" validate:"omitempty,oneof=light dark default"`
	ContentColor string `yaml:"content_color,omitempty" validate:"omitempty,hexcolor,hex_color"`
	Surface      string `yaml:"surface,omitempty" validate:"omitempty,hexcolor,hex_color"`
	Accent       string `yaml:"accent,omitempty" validate:"omitempty,hexcolor,hex_color"`
	Muted        string `yaml:"muted,omitempty" validate:"omitempty,hexcolor,hex_color"`
}

// TextStyleConfig is the YAML form of a text style. Omitted fields stay unspecified.
type TextStyleConfig struct {
	FontSize   float64 `yaml:"font_size,omitempty" validate:"omitempty,gt=0,lte=200"`
	FontWeight string  `yaml:"font_weight,omitempty" validate:"omitempty,font_weight"`
	Italic     *bool   `yaml:"italic,omitempty"`
	FontFamily string  `yaml:"font_family,omitempty" validate:"omitempty,max=64"`
	Color      string  `yaml:"color,omitempty" validate:"omitempty,hexcolor,hex_color"`
	Underline  *bool   `yaml:"underline,omitempty"`
}

// HeadingConfig overrides one level of the heading table.
type HeadingConfig struct {
	Level      *int    `yaml:"level" validate:"required,min=0"`
	FontSize   float64 `yaml:"font_size,omitempty" validate:"omitempty,gt=0,lte=200"`
	FontWeight string  `yaml:"font_weight,omitempty" validate:"omitempty,font_weight"`
	Italic     *bool   `yaml:"italic,omitempty"`
	AlphaScale float64 `yaml:"alpha_scale,omitempty" validate:"omitempty,gt=0,lte=1"`
}
