package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError is a field-scoped validation failure. Validation errors are
// caught before any network call and never sent to the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the typed result of a failed validation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Struct validates v against its `validate` tags, returning Errors on
// failure. Evaluated synchronously, no I/O.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   jsonName(fe),
			Message: message(fe),
		})
	}
	return out
}

// Var validates a single value against a tag expression.
func Var(field string, value any, tag, msg string) error {
	if err := validate.Var(value, tag); err != nil {
		return Errors{{Field: field, Message: msg}}
	}
	return nil
}

// jsonName lowercases the struct field into its snake_case wire name, which
// matches how the json tags in domain are spelled.
func jsonName(fe validator.FieldError) string {
	var b strings.Builder
	for i, r := range fe.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "e164":
		return "enter a valid phone number (e.g. +12025551234)"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must be numeric"
	case "eq":
		return fmt.Sprintf("must be %q", fe.Param())
	default:
		return "invalid value"
	}
}
