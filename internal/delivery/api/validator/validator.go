// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"jobboard/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps a json field name to the reason it was rejected.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}

	return strings.Join(msgs, "; ")
}

// Validator wraps a configured *validator.Validate.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports json field names and knows the domain enums.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(v, "work_mode", func(fl validator.FieldLevel) bool {
		return entity.WorkMode(fl.Field().String()).IsValid()
	})
	mustRegister(v, "cnpj", func(fl validator.FieldLevel) bool {
		return entity.IsValidCNPJ(fl.Field().String())
	})
	mustRegister(v, "account_role", func(fl validator.FieldLevel) bool {
		return slices.Contains([]entity.Role{entity.RoleAdmin, entity.RoleUser, entity.RoleBusiness}, entity.Role(fl.Field().String()))
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate implements echo.Validator. Field failures come back as *ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}

	return &ValidationError{Errors: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	case "work_mode":
		return "must be one of: REMOTE, HYBRID, ON_SITE"
	case "cnpj":
		return "must match 00.000.000/0000-00"
	case "account_role":
		return "must be one of: ADMIN, USER, BUSINESS"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
