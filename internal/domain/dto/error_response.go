package dto

import (
	"fmt"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

// APIError is a failure the stub reports to clients with a specific status
// and error code. It renders to the same envelope as the upstream API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Context map[string]any
}

// NewAPIError builds an APIError without context.
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithField returns a copy of e whose context reports key/message for param,
// mirroring the upstream validation detail layout:
//
//	"context": {"limit": [{"key": "invalid_value", "message": "..."}]}
func (e *APIError) WithField(param, key, message string) *APIError {
	cp := *e
	cp.Context = make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		cp.Context[k] = v
	}
	cp.Context[param] = []map[string]string{{"key": key, "message": message}}
	return &cp
}

// Response converts e into the wire envelope.
func (e *APIError) Response() models.ErrorResponse {
	return NewErrorResponse(e.Code, e.Message, e.Context)
}

// NewErrorResponse builds the {"error": {...}} envelope.
func NewErrorResponse(code, message string, context map[string]any) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.ErrorDetails{
			Code:    code,
			Message: message,
			Context: context,
		},
	}
}
