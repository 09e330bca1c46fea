package networking

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/camkit/onvif-go/gosoap"
)

// Response wraps the outcome of a Request. Failures surface as exactly
// one of the typed kinds: *TransportError, *gosoap.ProtocolFault or
// *DecodeError (errors set earlier by the request builder pass through
// unchanged).
type Response struct {
	endpoint string
	response *http.Response
	body     []byte
	err      error
}

// Error returns the error recorded while issuing the request, if any.
func (r *Response) Error() error {
	return r.err
}

// StatusOK reports whether the HTTP status was in the 2xx range.
func (r *Response) StatusOK() bool {
	if r.err != nil || r.response == nil {
		return false
	}
	return r.response.StatusCode >= 200 && r.response.StatusCode < 300
}

// Body returns the raw response body.
func (r *Response) Body() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.response == nil {
		return nil, &TransportError{Endpoint: r.endpoint, Err: errNoResponse}
	}
	return r.body, nil
}

// Unmarshal classifies the response and decodes the envelope body into
// the given targets. Calling it with no targets still performs the full
// fault and status classification, which is how operations with empty
// response bodies (ContinuousMove, Stop) are checked.
func (r *Response) Unmarshal(responses ...interface{}) error {
	body, err := r.Body()
	if err != nil {
		return err
	}

	// A SOAP Fault outranks the HTTP status: cameras pair fault bodies
	// with 400/500 but some return them under 200.
	if fault, ok := gosoap.SoapMessage(body).Fault(); ok {
		return fault
	}

	if !r.StatusOK() {
		return &TransportError{Endpoint: r.endpoint, Status: r.response.StatusCode}
	}

	inner, err := gosoap.SoapMessage(body).Body()
	if err != nil {
		return &DecodeError{Err: err}
	}

	for _, response := range responses {
		if err := xml.Unmarshal([]byte(inner), response); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return nil
}

func (r *Response) setResponse(response *http.Response) {
	if response == nil {
		return
	}
	r.response = response
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		r.err = &TransportError{Endpoint: r.endpoint, Err: err}
		return
	}
	r.body = body
}
