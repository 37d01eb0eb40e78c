package schema

import (
	"fmt"
	"strings"
)

// Reasons reported for field errors.
const (
	ReasonMissing     = "Missing data for required field."
	ReasonNull        = "Field may not be null."
	ReasonUnknown     = "Unknown field."
	ReasonString      = "Not a valid string."
	ReasonInt         = "Not a valid integer."
	ReasonFloat       = "Not a valid number."
	ReasonDateTime    = "Not a valid datetime."
	ReasonObject      = "Invalid input type."
	ReasonList        = "Not a valid list."
	ReasonInvalidJSON = "Invalid JSON document."
)

// FieldError is one mismatch between a payload and its shape.
// Path uses dots for nesting and brackets for list positions, e.g. data[3].adj_high.
type FieldError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

// ValidationError carries every field error found for one payload.
type ValidationError struct {
	Shape  string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.String())
	}
	return fmt.Sprintf("schema %s: %d field error(s): %s", e.Shape, len(e.Errors), strings.Join(parts, "; "))
}

// Messages groups reasons by path.
func (e *ValidationError) Messages() map[string][]string {
	out := make(map[string][]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Path] = append(out[fe.Path], fe.Reason)
	}
	return out
}

// Has reports whether path failed with reason. An empty reason matches any.
func (e *ValidationError) Has(path, reason string) bool {
	for _, fe := range e.Errors {
		if fe.Path == path && (reason == "" || fe.Reason == reason) {
			return true
		}
	}
	return false
}
