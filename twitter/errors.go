package twitter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid twitter configuration")
	// ErrInvalidOptions indicates request options that cannot be encoded
	ErrInvalidOptions = errors.New("invalid request options")
	// ErrMissingArgument indicates a required argument was empty
	ErrMissingArgument = errors.New("missing required argument")
	// ErrNilStatus indicates a nil status message was passed where one is required
	ErrNilStatus = errors.New("status message is nil")
	// ErrNilResponse indicates a nil raw response was passed to a parser
	ErrNilResponse = errors.New("response is nil")
	// ErrUnexpectedBody indicates a 200 response without the expected JSON value
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// Error codes returned by the API that callers commonly branch on.
const (
	CodeNoStatusFound    = 144
	CodeRateLimited      = 88
	CodeDuplicateStatus  = 187
	CodeAlreadyRetweeted = 327
)

// ErrorDetail is a single entry of the API's "errors" array
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError represents a non-success response from the Twitter API
type APIError struct {
	StatusCode int
	Message    string
	Errors     []ErrorDetail
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("twitter API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.HasCode(CodeNoStatusFound)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the request was rejected by rate limiting
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.HasCode(CodeRateLimited)
}

// HasCode reports whether any of the error details carries code
func (e *APIError) HasCode(code int) bool {
	for _, d := range e.Errors {
		if d.Code == code {
			return true
		}
	}
	return false
}

// newAPIError builds an APIError from a raw response. The body is decoded on
// a best-effort basis; the status text is used when it has no error details.
func newAPIError(resp *Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}

	var payload struct {
		Errors []ErrorDetail `json:"errors"`
		Error  string        `json:"error"`
	}
	if err := decodeJSON(resp.Body, &payload); err == nil {
		apiErr.Errors = payload.Errors
		if payload.Error != "" && len(apiErr.Errors) == 0 {
			apiErr.Message = payload.Error
		}
	}

	if len(apiErr.Errors) > 0 {
		msgs := make([]string, 0, len(apiErr.Errors))
		for _, d := range apiErr.Errors {
			msgs = append(msgs, fmt.Sprintf("%s (code %d)", d.Message, d.Code))
		}
		apiErr.Message = strings.Join(msgs, "; ")
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
