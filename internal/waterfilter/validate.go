package waterfilter

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldValidate checks filter fields. Initialized in init() with the
// notblank rule registered.
var fieldValidate *validator.Validate

func init() {
	fieldValidate = validator.New()

	_ = fieldValidate.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings made up only of whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateID(id string) error {
	if err := fieldValidate.Var(id, "required,notblank"); err != nil {
		return invalidArgument("filter ID cannot be empty")
	}

	return nil
}

func validateUsageCount(n int) error {
	if err := fieldValidate.Var(n, "gte=0"); err != nil {
		return invalidArgument("usage count cannot be negative")
	}

	return nil
}
