package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} ist erforderlich",
		"gte":         "{field} muss grösser oder gleich {param} sein",
		"lte":         "{field} muss kleiner oder gleich {param} sein",
		"oneof":       "{field} muss einer der Werte {param} sein",
		"max":         "{field} darf höchstens {param} lang sein",
		"min":         "{field} muss mindestens {param} lang sein",
		"email":       "Ungültige E-Mail",
		"url":         "{field} muss eine gültige URL sein",
		"datetime":    "{field} muss dem Format {param} entsprechen",
		"swissphone":  "Ungültige Telefonnummer",
		"mimetypes":   "{field} muss vom Typ {param} sein",
		"maxfilesize": "{field} darf höchstens {param} MB gross sein",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := fieldPath(valErr.Namespace())
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// fieldPath drops the root struct name so "CreateBookingRequest.customer.phone" reads "customer.phone".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}
