package config

import (
	"fmt"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return quillerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]int, len(cfg.Headings))
	for i, heading := range cfg.Headings {
		level := *heading.Level
		if first, exists := seen[level]; exists {
			return quillerrors.NewValidationError(
				fieldForHeading(i, "level"),
				fmt.Sprintf("duplicate heading level %d (first defined at headings[%d])", level, first),
				nil,
			)
		}
		if heading.isEmpty() {
			return quillerrors.NewValidationError(fieldForHeading(i, "level"), fmt.Sprintf("heading level %d overrides nothing", level), nil)
		}
		seen[level] = i
	}

	return nil
}

func (h HeadingConfig) isEmpty() bool {
	return h.FontSize == 0 && h.FontWeight == "" && h.Italic == nil && h.AlphaScale == 0
}
