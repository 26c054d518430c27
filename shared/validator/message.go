package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"datetime": "{field} must match the format {param}",
		"uuid4":    "{field} must be a valid UUID",
	}
)

// message renders every validation error, in struct field order, as one comma separated string.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		parts := make([]string, 0, len(valErrors))

		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				parts = append(parts, valErr.Error())

				continue
			}

			errStr = strings.ReplaceAll(errStr, "{field}", fieldName(valErr))
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

			parts = append(parts, errStr)
		}

		return strings.Join(parts, ", ")
	}

	return err.Error()
}

// fieldName drops the root struct name from the namespace so nested fields read as visitors[0].gender.
func fieldName(valErr val.FieldError) string {
	ns := valErr.Namespace()

	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}

	return valErr.Field()
}
