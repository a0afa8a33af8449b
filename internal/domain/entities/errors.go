package entities

import "errors"

// FetchError is the failure variant of a price retrieval. Message is safe
// to surface to consumers; Cause (optional) carries the underlying error
// for logging and errors.Is/As checks.
type FetchError struct {
	Message string
	Cause   error
}

// NewFetchError creates a fetch error with a consumer-safe message.
func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{
		Message: message,
		Cause:   cause,
	}
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// SafeMessage extracts the consumer-safe message from an error. Pipeline
// errors are always *FetchError; anything else falls back to a generic
// message so upstream internals never leak to the response body.
func SafeMessage(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}
	return "Internal error."
}
