// Package validation checks request bodies and sample documents against the
// struct tags declared on the models.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody is returned by DecodeJSON when the body is not valid JSON
var ErrMalformedBody = errors.New("malformed request body")

// FieldError describes one offending field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every field that failed validation
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

// jsonName reports fields by their JSON name so errors match the request body
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// Validate checks v against its validate tags. It returns *Error when a field
// is missing, malformed or outside its enumeration.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate: %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the leading struct name: "Course.modules[0].id" -> "modules[0].id"
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("duplicate %s", strings.ToLower(fe.Param()))
		}
		return "duplicate values"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// DecodeJSON decodes a JSON object from r into dst. A body that is not JSON,
// or that carries anything but whitespace after the object, yields
// ErrMalformedBody; a value of the wrong JSON type yields *Error naming the
// field.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	err := dec.Decode(dst)
	if err == nil {
		return expectEOF(dec)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return &Error{Fields: []FieldError{{Field: "body", Message: "must be a JSON object"}}}
		}
		return &Error{Fields: []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("expected %s, got %s", jsonKind(typeErr.Type), typeErr.Value),
		}}}
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

func expectEOF(dec *json.Decoder) error {
	var trailing json.RawMessage
	err := dec.Decode(&trailing)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	default:
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "any"
	}
}
