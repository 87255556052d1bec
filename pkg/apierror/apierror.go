package apierror

import (
	"fmt"
	"net/http"
	"strings"
)

// Well-known error types surfaced in response bodies.
const (
	TypeValidationFailed   = "validation-failed"
	TypeInvalidCredentials = "invalid-credentials"
	TypeUnauthenticated    = "unauthenticated"
	TypeInternal           = "internal-error"
)

// Field-level validation causes.
const (
	CauseRequired = "required"
	CauseRegexp   = "regexp"
	CauseUnique   = "unique"
)

type APIError struct {
	Type       string            `json:"errorType,omitempty"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"errors,omitempty"`
	HTTPStatus int               `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Fields) > 0 {
		pairs := make([]string, 0, len(e.Fields))
		for field, cause := range e.Fields {
			pairs = append(pairs, field+"="+cause)
		}
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, strings.Join(pairs, ", "))
	}

	if e.Type != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	return e.Message
}

func New(errType string, message string, status int) *APIError {
	return &APIError{Type: errType, Message: message, HTTPStatus: status}
}

// Message builds an error rendered as a bare {"message": ...} body, the shape
// resource handlers use for missing documents.
func Message(message string, status int) *APIError {
	return &APIError{Message: message, HTTPStatus: status}
}

// Validation builds a field-level failure rendered as {"errors": {field: cause}}.
func Validation(fields map[string]string) *APIError {
	return &APIError{
		Type:       TypeValidationFailed,
		Message:    "validation failed",
		Fields:     fields,
		HTTPStatus: http.StatusBadRequest,
	}
}
