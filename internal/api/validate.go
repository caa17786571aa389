package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/dosecalc/internal/consumption"
)

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs the struct tags on s. Failures wrap
// consumption.ErrInvalidInput so handlers map them like calculator errors.
func validateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", consumption.ErrInvalidInput, strings.Join(messages, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := jsonFieldName(e)
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, e.Tag())
	}
}

// jsonFieldName maps the Go field to its snake_case JSON key.
func jsonFieldName(e validator.FieldError) string {
	if name, ok := fieldNames[e.StructField()]; ok {
		return name
	}
	return strings.ToLower(e.Field())
}

//nolint:gochecknoglobals // lookup table
var fieldNames = map[string]string{
	"Volume":     "volume",
	"ABV":        "abv",
	"Quantity":   "quantity",
	"Percent":    "nicotine_percent",
	"CapacityMl": "capacity_ml",
	"Days":       "days_to_finish",
}
