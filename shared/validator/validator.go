package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"salon/shared/base64"
	"salon/shared/constant"
	"salon/shared/failure"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// MessageInvalidInput is the summary returned with every validation failure; the rule goes into the details.
const MessageInvalidInput = "Ungültige Eingabedaten"

// SwissPhonePattern accepts +41 or a leading 0 followed by 8 to 12 digits or spaces.
var SwissPhonePattern = regexp.MustCompile(`^(\+41|0)[0-9\s]{8,12}$`)

const bytesPerMB = 1024 * 1024

var validate *val.Validate

// SelfValidator is implemented by request types with rules spanning several fields.
// It runs after the tag based rules passed.
type SelfValidator interface {
	Validate() error
}

func mimetypes(field val.FieldLevel) bool {
	var contentType string

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = value.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(value)
	}

	return contentType != constant.Empty && slices.Contains(strings.Fields(field.Param()), contentType)
}

// maxFileSize compares a byte count, or the size of a file header or data URL, with a limit in megabytes.
func maxFileSize(field val.FieldLevel) bool {
	var size int64

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		size = value.Size
	case string:
		size = int64(len(value))
	case int:
		size = int64(value)
	case int64:
		size = value
	}

	limitMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(size) <= limitMB*bytesPerMB
}

func swissPhone(field val.FieldLevel) bool {
	return SwissPhonePattern.MatchString(field.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]val.Func{
		"mimetypes":   mimetypes,
		"maxfilesize": maxFileSize,
		"swissphone":  swissPhone,
	}

	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Every failure is a 400
// whose details name the broken rule.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.Validation(MessageInvalidInput, fmt.Sprintf("failed to decode request body: %v", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.Validation(MessageInvalidInput, message(err)) //nolint:wrapcheck
	}

	if self, ok := any(data).(SelfValidator); ok {
		if err := self.Validate(); err != nil {
			return failure.Validation(MessageInvalidInput, err.Error()) //nolint:wrapcheck
		}
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.Validation(MessageInvalidInput, message(err)) //nolint:wrapcheck
	}

	return nil
}
