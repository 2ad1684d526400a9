package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be at most {param} characters",
		"min":         "{field} must be greater than or equal to {param}",
		"number":      "{field} must be a number",
		"numeric":     "{field} must be numeric",
		"uuid":        "{field} must be a valid uuid",
		"enum":        "{field} is not a valid value",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}
)

func message(valErr val.FieldError) string {
	field := valErr.Field()
	if field == "" {
		field = "value"
	}

	msg := templates[valErr.Tag()]
	if msg == "" {
		return valErr.Error()
	}

	msg = strings.ReplaceAll(msg, "{field}", field)

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}

// messages renders the first failing rule as the summary and keeps one message per field.
func messages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		if _, exists := fields[valErr.Field()]; exists {
			continue
		}

		fields[valErr.Field()] = message(valErr)
	}

	return message(valErrors[0]), fields
}
