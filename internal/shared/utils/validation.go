package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
)

var validate *validator.Validate

// init initializes the validator
func init() {
	validate = validator.New()
	UseJSONFieldNames(validate)
}

// UseJSONFieldNames makes v report json tag names in field errors. It is also
// applied to gin's binding validator.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validator returns the package validator so custom rules can be registered on it.
func Validator() *validator.Validate {
	return validate
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return BindError(err)
}

// BindError converts an error from gin's ShouldBind* or validator into a 422
// validation error. Unknown errors are reported as a malformed body.
func BindError(err error) error {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		var errorMessages []string
		for _, fieldError := range validationErrors {
			errorMessages = append(errorMessages, getFieldErrorMessage(fieldError))
		}
		return errors.NewValidationError(
			"Validation failed",
			strings.Join(errorMessages, "; "),
		)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewValidationError(
			"Invalid request body",
			fmt.Sprintf("%s must be %s", typeErr.Field, typeErr.Type.String()),
		)
	}

	return errors.NewValidationError("Invalid request body", err.Error())
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "ticket_status":
		return fmt.Sprintf("%s must be one of [new needs_info waiting_customer solved escalated]", field)
	case "ticket_priority":
		return fmt.Sprintf("%s must be one of [low medium high]", field)
	case "kb_status":
		return fmt.Sprintf("%s must be one of [active archived]", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
