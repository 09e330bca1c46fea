package networking

import (
	"errors"
	"fmt"
)

var errNoResponse = errors.New("no response received")

// TransportError is a failure below the SOAP layer: the request never
// reached the service or no usable SOAP body came back (network error,
// DNS failure, timeout, or a bare HTTP error status). Not retried here;
// retry policy is the caller's concern.
type TransportError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error calling %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("transport error calling %s: http status %d", e.Endpoint, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is a response body that did not parse against the
// expected schema. Treated as non-retryable; it usually indicates
// firmware the operation structs do not model.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
