package onvif

import "fmt"

// NotConnectedError is returned when an operation is attempted before
// Connect has succeeded, or after the session has latched Failed. A
// failed session is terminal; retrying means building a new Camera.
type NotConnectedError struct {
	State State
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("onvif: session not connected (state %s)", e.State)
}

// NotSupportedError is returned when an operation targets a service the
// device's capabilities do not advertise, e.g. a PTZ command against a
// fixed camera. No network call is attempted.
type NotSupportedError struct {
	Service string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("onvif: %s service not supported by device", e.Service)
}
