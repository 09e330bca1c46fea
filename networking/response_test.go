package networking

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dev "github.com/camkit/onvif-go/device"
	"github.com/camkit/onvif-go/gosoap"
)

const deviceInfoResponse = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://www.w3.org/2003/05/soap-envelope"
                   xmlns:tds="http://www.onvif.org/ver10/device/wsdl">
  <SOAP-ENV:Body>
    <tds:GetDeviceInformationResponse>
      <tds:Manufacturer>Acme</tds:Manufacturer>
      <tds:Model>Turret 9000</tds:Model>
      <tds:FirmwareVersion>1.2.3</tds:FirmwareVersion>
      <tds:SerialNumber>SN-1</tds:SerialNumber>
      <tds:HardwareId>HW-1</tds:HardwareId>
    </tds:GetDeviceInformationResponse>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

const faultResponse = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://www.w3.org/2003/05/soap-envelope">
  <SOAP-ENV:Body>
    <SOAP-ENV:Fault>
      <SOAP-ENV:Code><SOAP-ENV:Value>SOAP-ENV:Receiver</SOAP-ENV:Value></SOAP-ENV:Code>
      <SOAP-ENV:Reason>
        <SOAP-ENV:Text xml:lang="en">Action failed</SOAP-ENV:Text>
      </SOAP-ENV:Reason>
    </SOAP-ENV:Fault>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

func doRequest(t *testing.T, endpoint string) *Response {
	t.Helper()
	return NewRequest(nil, dev.GetDeviceInformation{}).
		WithEndpoint(endpoint).
		WithUsernamePassword("admin", "secret").
		Do()
}

func TestUnmarshalSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/soap+xml")
		w.Write([]byte(deviceInfoResponse))
	}))
	defer server.Close()

	var info dev.GetDeviceInformationResponse
	err := doRequest(t, server.URL).Unmarshal(&info)
	require.NoError(t, err)
	assert.Equal(t, "Acme", info.Manufacturer)
	assert.Equal(t, "Turret 9000", info.Model)
	assert.Equal(t, "HW-1", info.HardwareID)
}

func TestUnmarshalSoapFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(faultResponse))
	}))
	defer server.Close()

	var info dev.GetDeviceInformationResponse
	err := doRequest(t, server.URL).Unmarshal(&info)
	require.Error(t, err)

	var fault *gosoap.ProtocolFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "SOAP-ENV:Receiver", fault.Code)
	assert.Equal(t, "Action failed", fault.Reason)
}

func TestUnmarshalMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml"))
	}))
	defer server.Close()

	var info dev.GetDeviceInformationResponse
	err := doRequest(t, server.URL).Unmarshal(&info)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestUnmarshalHTTPErrorWithoutFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := doRequest(t, server.URL).Unmarshal()
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusNotFound, transportErr.Status)
}

func TestUnmarshalConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := doRequest(t, server.URL).Unmarshal()
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, transportErr.Err)
}

func TestRequestContextTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewRequest(nil, dev.GetDeviceInformation{}).
		WithEndpoint(server.URL).
		WithContext(ctx).
		Do().
		Unmarshal()
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRequestCarriesSecurityHeader(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body = string(data)
		w.Write([]byte(deviceInfoResponse))
	}))
	defer server.Close()

	require.NoError(t, doRequest(t, server.URL).Unmarshal())
	assert.Contains(t, body, "UsernameToken")
	assert.Contains(t, body, "<Username>admin</Username>")
	assert.Contains(t, body, "GetDeviceInformation")
	assert.Contains(t, body, "MessageID")
	assert.NotContains(t, body, "secret") // digest only, never the cleartext password
}
