// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"leadforge/internal/domain/entity"
	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs bound by echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the lead_status tag registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("lead_status", func(fl validator.FieldLevel) bool {
		return entity.LeadStatus(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "lead_status":
		return fmt.Sprintf("%s is not a valid lead status", field)
	default:
		return fmt.Sprintf("%s failed on %s", field, fieldErr.Tag())
	}
}
