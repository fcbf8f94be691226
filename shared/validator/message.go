package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"gt":          "{field} must be greater than {param}",
	"oneof":       "{field} must be one of {param}",
	"max":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"email":       "{field} must be a valid email address",
	"uuid":        "{field} must be a valid id",
	"datetime":    "{field} must match the format {param}",
	"enum":        "{field} has an unsupported value",
	"dive":        "{field} contains an invalid item",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl := messages[valErr.Tag()]
		if tmpl == "" {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl)
	}

	return valErrors.Error()
}
