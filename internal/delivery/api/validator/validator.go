// Package validator adapts go-playground/validator to echo and to the domain error taxonomy.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"greenscore/internal/domain/entity"
	domainerrors "greenscore/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// TagPhone10 validates a phone number of exactly ten ASCII digits.
const TagPhone10 = "phone10"

// RequestValidator implements echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation(TagPhone10, func(fl validator.FieldLevel) bool {
		return entity.IsValidPhoneNumber(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate returns ErrValidationFailed describing every failing field
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case TagPhone10:
		return fe.Field() + " must be exactly 10 digits"
	case "uuid":
		return fe.Field() + " must be a UUID"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
