package apiclient

import (
	"errors"
	"fmt"
)

// DefaultFailureMessage is used when a failed response has no body.
const DefaultFailureMessage = "API request failed"

// ErrMissingBaseURL is the configuration error for an unset API base URL.
var ErrMissingBaseURL = errors.New("apiclient: base URL is not configured")

// Kind classifies a RequestError.
type Kind string

const (
	// KindStatus: the server answered with a non-2xx status.
	KindStatus Kind = "status"
	// KindTransport: no response was received.
	KindTransport Kind = "transport"
	// KindStore: the token could not be read.
	KindStore Kind = "store"
	// KindEncode: the request body could not be encoded.
	KindEncode Kind = "encode"
	// KindDecode: a JSON response could not be parsed.
	KindDecode Kind = "decode"
)

// RequestError is the only error type returned by Client.Request.
// Error() is the human-readable message alone so screens can show it as is.
type RequestError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Method     string
	Endpoint   string
	Err        error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Detail includes the request line and cause, for logs.
func (e *RequestError) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s (%s): %v", e.Method, e.Endpoint, e.Message, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s (%s, status %d)", e.Method, e.Endpoint, e.Message, e.Kind, e.StatusCode)
}

// AsRequestError unwraps err into a *RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsKind reports whether err is a RequestError of the given kind.
func IsKind(err error, kind Kind) bool {
	reqErr, ok := AsRequestError(err)
	return ok && reqErr.Kind == kind
}
