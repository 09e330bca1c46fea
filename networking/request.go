package networking

import (
	"context"
	"encoding/xml"
	"net/http"
	"reflect"
	"strings"

	"github.com/beevik/etree"

	"github.com/camkit/onvif-go/gosoap"
)

// device resolves service endpoints for a request. The session façade
// implements it; the state checks (connected, service supported) live
// behind GetEndpoint so a request against an unavailable service fails
// before any network I/O.
type device interface {
	GetEndpoint(name string) (string, error)
}

// Request builds and sends one ONVIF operation. A fresh WS-Security
// header is computed for every Do call, so a Request may be reused.
type Request struct {
	ctx        context.Context
	device     device
	method     interface{}
	httpClient *http.Client
	username   string
	password   string
	endpoint   string
}

// NewRequest returns a request for the given operation struct. The
// target endpoint is derived from the struct's package (device, media,
// ptz) unless WithEndpoint overrides it.
func NewRequest(device device, method interface{}) *Request {
	return &Request{
		device: device,
		method: method,
	}
}

// WithContext sets the context governing the network call.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// WithHTTPClient sets the HTTP client used for the call.
func (r *Request) WithHTTPClient(httpClient *http.Client) *Request {
	r.httpClient = httpClient
	return r
}

// WithUsernamePassword sets the credentials used to derive the
// WS-Security UsernameToken.
func (r *Request) WithUsernamePassword(username, password string) *Request {
	r.username = username
	r.password = password
	return r
}

// WithEndpoint pins the request to an explicit endpoint URL, bypassing
// endpoint resolution. Used during connect, before any endpoints are
// known.
func (r *Request) WithEndpoint(endpoint string) *Request {
	r.endpoint = endpoint
	return r
}

// Do sends the request. Failures are reported through the returned
// Response so callers have a single decode path.
func (r *Request) Do() *Response {
	resp := &Response{}

	endpoint, err := r.getEndpoint()
	if err != nil {
		resp.err = err
		return resp
	}
	resp.endpoint = endpoint

	soap, err := r.buildSOAP(endpoint)
	if err != nil {
		resp.err = err
		return resp
	}

	if r.httpClient == nil {
		r.httpClient = new(http.Client)
	}

	var response *http.Response
	if r.ctx != nil {
		response, err = SendSoapWithCtx(r.ctx, r.httpClient, endpoint, soap.String())
	} else {
		response, err = SendSoap(r.httpClient, endpoint, soap.String())
	}
	if err != nil {
		resp.err = &TransportError{Endpoint: endpoint, Err: err}
		return resp
	}

	resp.setResponse(response)
	return resp
}

func (r *Request) getEndpoint() (string, error) {
	if len(r.endpoint) > 0 {
		return r.endpoint, nil
	}

	pkgPath := strings.Split(reflect.TypeOf(r.method).PkgPath(), "/")
	pkg := strings.ToLower(pkgPath[len(pkgPath)-1])
	return r.device.GetEndpoint(pkg)
}

func (r *Request) buildSOAP(endpoint string) (gosoap.SoapMessage, error) {
	output, err := xml.MarshalIndent(r.method, "  ", "    ")
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(string(output)); err != nil {
		return "", err
	}

	soap, err := gosoap.NewEmptySOAP()
	if err != nil {
		return "", err
	}
	if err := soap.AddRootNamespaces(Xlmns); err != nil {
		return "", err
	}
	if err := soap.AddBodyContent(doc.Root()); err != nil {
		return "", err
	}

	if r.username != "" || r.password != "" {
		if err := soap.AddWSSecurity(r.username, r.password); err != nil {
			return "", err
		}
	}

	if err := soap.AddTo(endpoint); err != nil {
		return "", err
	}
	if err := soap.AddMessageID(); err != nil {
		return "", err
	}

	return soap, nil
}
