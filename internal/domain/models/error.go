package models

import "github.com/guttosm/marketprobe/internal/schema"

// Error codes returned by the market data API.
const (
	CodeValidationError    = "validation_error"
	CodeNoValidSymbols     = "no_valid_symbols_provided"
	CodeMissingAccessKey   = "missing_access_key"
	CodeInvalidAccessKey   = "invalid_access_key"
	CodeInvalidAPIFunction = "invalid_api_function"
	CodeTooManyRequests    = "too_many_requests"
	CodeInternalError      = "internal_error"
)

// ErrorDetails is the body of the "error" key in a failed response.
type ErrorDetails struct {
	Code    string         `json:"code" validate:"required"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// ErrorResponse is the envelope the API returns for 4xx/5xx responses.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

var ErrorDetailsShape = schema.Object("error_details",
	schema.String("code"),
	schema.String("message"),
	schema.Nested("context", nil).Optional().Nullable(),
)

var ErrorResponseShape = schema.Object("error_response",
	schema.Nested("error", ErrorDetailsShape),
)
