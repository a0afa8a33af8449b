package upstream

import "errors"

// Consumer-facing error messages. These are the exact strings surfaced in
// the error payload for each failure class.
const (
	MsgMissingBaseURL    = "Missing API base URL in settings."
	MsgUpstreamAPIError  = "Upstream API error."
	MsgMalformedResponse = "Malformed upstream response."
)

var (
	// ErrMissingBaseURL indicates no upstream base URL is configured
	ErrMissingBaseURL = errors.New("upstream base URL not configured")

	// ErrUpstreamStatus indicates a non-success status or empty body
	ErrUpstreamStatus = errors.New("upstream returned an unusable response")

	// ErrMalformedResponse indicates a body that parsed but lacks the
	// required id/price fields, or did not parse at all
	ErrMalformedResponse = errors.New("upstream response is malformed")
)
