package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a per-field map of messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// messageProvider lets a model override the default per-field messages.
type messageProvider interface {
	ValidationMessages() map[string]string
}

var (
	modelValidator     *validator.Validate
	modelValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	modelValidatorOnce.Do(func() {
		modelValidator = validator.New(validator.WithRequiredStructEnabled())
		RegisterJSONFieldNames(modelValidator)
	})
	return modelValidator
}

// RegisterJSONFieldNames makes FieldError.Field() report JSON names. The router
// applies it to gin's binding engine as well.
func RegisterJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateModel runs the `validate` tags of a persistence model and returns a
// *ValidationError when any field fails.
func ValidateModel(model interface{}) error {
	err := getValidator().Struct(model)
	if err == nil {
		return nil
	}

	fields := FieldErrors(err)
	if fields == nil {
		return err
	}
	if mp, ok := model.(messageProvider); ok {
		for field, msg := range mp.ValidationMessages() {
			if _, failed := fields[field]; failed {
				fields[field] = msg
			}
		}
	}
	return &ValidationError{Fields: fields}
}

// FieldErrors flattens validator errors into a field map, or returns nil if
// err did not come from the validator.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
