package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// hex_color narrows the built-in hexcolor tag to the forms style.ParseColor
		// accepts; alpha suffixes are rejected.
		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			_, err := style.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("font_weight", func(fl validator.FieldLevel) bool {
			_, err := style.ParseFontWeight(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
