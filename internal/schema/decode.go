package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var constraints = newConstraintValidator()

func newConstraintValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode validates body against s and, only if it conforms, unmarshals it
// into a T. Int fields written as whole non-integer literals (100.0, 1e2) are
// coerced to plain integers first. Value constraints declared with `validate` struct tags are checked
// on the constructed record afterwards.
//
// On failure the zero T is returned together with a *ValidationError listing
// every problem; a partially filled record is never handed out.
func Decode[T any](body []byte, s *Shape) (T, error) {
	var zero T

	w := walk(body, s)
	if len(w.errs) > 0 {
		return zero, &ValidationError{Shape: s.Name, Errors: w.errs}
	}

	var out T
	if err := json.Unmarshal(w.apply(body), &out); err != nil {
		return zero, &ValidationError{Shape: s.Name, Errors: []FieldError{unmarshalError(err)}}
	}

	if errs := checkConstraints(out); len(errs) > 0 {
		return zero, &ValidationError{Shape: s.Name, Errors: errs}
	}
	return out, nil
}

func checkConstraints(record any) []FieldError {
	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := constraints.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Reason: err.Error()}}
	}

	prefix := rv.Type().Name() + "."
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		path := strings.TrimPrefix(fe.Namespace(), prefix)
		if path == fe.Namespace() {
			path = fe.Field()
		}
		reason := fmt.Sprintf("Failed %s constraint.", fe.Tag())
		if fe.Param() != "" {
			reason = fmt.Sprintf("Failed %s=%s constraint.", fe.Tag(), fe.Param())
		}
		out = append(out, FieldError{Path: path, Reason: reason})
	}
	return out
}

func unmarshalError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return FieldError{Path: typeErr.Field, Reason: fmt.Sprintf("Cannot decode %s into %s.", typeErr.Value, typeErr.Type)}
	}
	return FieldError{Reason: err.Error()}
}
