package kaiascan

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; each typed error below matches exactly one.
var (
	ErrValidation = errors.New("invalid parameter")
	ErrTransport  = errors.New("transport failure")
	ErrEnvelope   = errors.New("malformed response envelope")
	ErrAPI        = errors.New("api error")
)

// ValidationError is returned before any request is sent when an argument
// breaks an endpoint's constraints.
type ValidationError struct {
	Endpoint string
	Param    string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Endpoint, e.Param, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TransportError wraps a failed round trip or a non-2xx HTTP status.
// StatusCode is 0 when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("error making request to %s: HTTP %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("error making request to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// EnvelopeError means the body was not a {code, data, msg} object.
type EnvelopeError struct {
	URL string
	Err error
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("parsing response from %s: %v", e.URL, e.Err)
}

func (e *EnvelopeError) Unwrap() error { return e.Err }

func (e *EnvelopeError) Is(target error) bool { return target == ErrEnvelope }

// APIError carries a non-zero envelope code and its message verbatim.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error! code: %d, message: %s", e.Code, e.Msg)
}

func (e *APIError) Is(target error) bool { return target == ErrAPI }
