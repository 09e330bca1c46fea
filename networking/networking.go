// Package networking posts SOAP envelopes to ONVIF service endpoints
// and classifies what comes back.
package networking

import (
	"bytes"
	"context"
	"net/http"
)

const contentType = "application/soap+xml; charset=utf-8"

// SendSoap posts a SOAP message to an endpoint.
func SendSoap(httpClient *http.Client, endpoint, message string) (*http.Response, error) {
	return httpClient.Post(endpoint, contentType, bytes.NewBufferString(message))
}

// SendSoapWithCtx posts a SOAP message to an endpoint with a context so
// the call observes cancellation and deadlines.
func SendSoapWithCtx(ctx context.Context, httpClient *http.Client, endpoint, message string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(message))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	return httpClient.Do(req)
}
