package sitesettings

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	// FieldError describes one invalid field by its JSON name.
	FieldError struct {
		Field string `json:"field"`
		Tag   string `json:"tag"`
		Param string `json:"param,omitempty"`
	}

	// ValidationError lists every invalid field of a settings group.
	ValidationError struct {
		Fields []FieldError
	}
)

// Error implements error.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" ("+f.Tag+")")
	}

	return "invalid settings: " + strings.Join(names, ", ")
}

var structValidator = newValidator()

// newValidator reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// ValidateStruct checks the validate tags of data. Invalid fields are
// reported by their JSON name in a *ValidationError.
func ValidateStruct(data any) error {
	err := structValidator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err //nolint:wrapcheck
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}

	return out
}
