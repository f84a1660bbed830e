package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so error bodies match payloads.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// FieldViolation names the first failing field and why it failed.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidateStruct checks the declared constraints and reports the first
// violated field in declaration order, or nil when everything passes.
func ValidateStruct(data any) *FieldViolation {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		first := validationErrors[0]
		return &FieldViolation{
			Field:   first.Field(),
			Message: getErrorMessage(first),
		}
	}

	return &FieldViolation{Message: "invalid request"}
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return fmt.Sprintf("minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("maximum length is %s", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("must be one of: %s", options)
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("invalid %s field", err.Field())
	}
}
