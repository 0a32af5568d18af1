// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies a catalog request failure. Every non-success path out of
// the client yields exactly one Kind; there are no silent failures.
type Kind int

const (
	// KindInvalidQuery means the query text could not be encoded into a request.
	KindInvalidQuery Kind = iota

	// KindInvalidURL means the request URL could not be built.
	KindInvalidURL

	// KindInvalidResponse means the response was not HTTP or the envelope
	// was malformed.
	KindInvalidResponse

	// KindHTTP means the server answered with a non-200 status.
	KindHTTP

	// KindDecoding means the body did not decode into the expected schema.
	KindDecoding

	// KindNetwork means the underlying transport failed (reset, timeout, DNS).
	KindNetwork
)

// String returns the kind's label for logs.
func (k Kind) String() string {
	switch k {
	case KindInvalidQuery:
		return "invalid_query"
	case KindInvalidURL:
		return "invalid_url"
	case KindInvalidResponse:
		return "invalid_response"
	case KindHTTP:
		return "http_error"
	case KindDecoding:
		return "decoding_error"
	case KindNetwork:
		return "network_error"
	default:
		return "unknown"
	}
}

// Error is a typed catalog failure. StatusCode is set only for KindHTTP.
type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTP:
		return fmt.Sprintf("catalog: %s: HTTP %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("catalog: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("catalog: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from err. The second return is false
// when err is not a catalog error.
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// Retryable reports whether err is attributable to a transient condition:
// server errors (HTTP 5xx), transport failures, and malformed envelopes.
// Request- or data-attributed failures are terminal.
func Retryable(err error) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	switch ce.Kind {
	case KindNetwork, KindInvalidResponse:
		return true
	case KindHTTP:
		return ce.StatusCode >= 500
	default:
		return false
	}
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func newHTTPError(status int) *Error {
	return &Error{Kind: KindHTTP, StatusCode: status}
}
