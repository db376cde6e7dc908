package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single invalid field on an inbound payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ves ValidationErrors) Error() string {
	if len(ves) == 0 {
		return ""
	}
	if len(ves) == 1 {
		return ves[0].Error()
	}

	var messages []string
	for _, ve := range ves {
		messages = append(messages, ve.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// Details renders one formatted line per invalid field, in the shape error
// bodies carry.
func (ves ValidationErrors) Details() []string {
	details := make([]string, 0, len(ves))
	for _, ve := range ves {
		details = append(details, ve.Error())
	}
	return details
}

// NewValidator creates a validator that reports wire field names (the json
// tag) instead of Go struct field names.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// ValidateAppDTO validates an inbound DTO against its validate tags.
func ValidateAppDTO(v *validator.Validate, dto *AppDTO) error {
	if err := v.Struct(dto); err != nil {
		return convertValidatorErrors(err)
	}
	return nil
}

// convertValidatorErrors converts go-playground validator errors to our custom format
func convertValidatorErrors(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errors ValidationErrors

		for _, ve := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   ve.Field(),
				Message: getValidationMessage(ve),
			})
		}

		return errors
	}

	return err
}

// getValidationMessage returns a human-readable message for validation errors
func getValidationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "min":
		if ve.Param() == "1" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s characters", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	default:
		return ve.Error()
	}
}
