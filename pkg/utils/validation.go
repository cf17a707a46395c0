package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> message pairs
// for the response envelope.
func GetValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["error"] = err.Error()
		return out
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			out[fieldErr.Field()] = "is required"
		case "email":
			out[fieldErr.Field()] = "must be a valid email address"
		case "min":
			out[fieldErr.Field()] = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
		case "max":
			out[fieldErr.Field()] = fmt.Sprintf("must be at most %s characters", fieldErr.Param())
		case "oneof":
			out[fieldErr.Field()] = fmt.Sprintf("must be one of: %s", fieldErr.Param())
		default:
			out[fieldErr.Field()] = fmt.Sprintf("failed %s validation", fieldErr.Tag())
		}
	}

	return out
}
