// Package validation holds the declarative input schemas for every resource.
// Schemas are struct tags; each Validate* function checks a trimmed copy of
// the input, collects every violation, and returns the normalized record.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the complete list of violations for one input.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Validator runs schemas. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	html     *bluemonday.Policy
	text     *bluemonday.Policy
}

// New builds a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, html: bluemonday.UGCPolicy(), text: bluemonday.StrictPolicy()}
}

// MalformedBody is returned when a request body cannot be decoded at all.
func MalformedBody() Errors {
	return Errors{{Field: "body", Message: "must be a valid JSON object"}}
}

func (v *Validator) check(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// merge appends extra field errors to the result of a schema check so one
// response lists every violation.
func merge(err error, extra ...*FieldError) error {
	var out Errors
	if err != nil {
		verrs, ok := err.(Errors)
		if !ok {
			return err
		}
		out = verrs
	}
	for _, fe := range extra {
		if fe != nil {
			out = append(out, *fe)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
