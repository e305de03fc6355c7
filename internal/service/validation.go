package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"mini-orders/internal/model"

	"github.com/go-playground/validator/v10"
)

// requestValidator checks request payloads against their `validate` tags and
// reports failures as validation errors named after the JSON fields.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

// Struct validates req. Missing required fields are reported as
// model.ErrMissingParameters; any other failure names the offending field.
func (v *requestValidator) Struct(req any) error {
	if rv := reflect.ValueOf(req); !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return model.ErrMissingParameters
	}

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return model.NewValidationError("invalid request")
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return model.ErrMissingParameters
	}

	switch fe.Tag() {
	case "gt":
		return model.NewValidationError(fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
	case "lte":
		return model.NewValidationError(fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param()))
	case "max":
		return model.NewValidationError(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "min":
		return model.NewValidationError(fmt.Sprintf("%s must contain at least %s entries", fe.Field(), fe.Param()))
	default:
		return model.NewValidationError(fmt.Sprintf("invalid value for %s", fe.Field()))
	}
}
