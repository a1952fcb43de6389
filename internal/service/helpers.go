package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

// NewValidator builds the validator shared across services, reporting field
// names from json tags so validation errors line up with payload keys.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// fieldErrors converts validator output into the field-keyed map carried by
// apperr.ValidationError. Every failing field is reported; none are dropped.
func fieldErrors(err error) map[string]string {
	fields := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["payload"] = err.Error()
		return fields
	}

	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = messageForTag(fieldError)
	}

	return fields
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return "must not be empty"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func validationError(err error) error {
	return apperr.NewValidation(fieldErrors(err))
}

// statsCacheKey is shared between the stats reader and the reconciliation
// writer that invalidates it.
func statsCacheKey(studentID string) string {
	return "stats:student:" + studentID
}
