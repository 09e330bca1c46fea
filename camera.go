// Package onvif is a protocol-level ONVIF client for IP cameras: SOAP
// 1.2 over HTTP POST with WS-Security UsernameToken auth, typed
// Device, Media and PTZ operations, and a per-camera session façade.
package onvif

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/camkit/onvif-go/device"
	"github.com/camkit/onvif-go/media"
	"github.com/camkit/onvif-go/networking"
	"github.com/camkit/onvif-go/ptz"
	xsdonvif "github.com/camkit/onvif-go/xsd/onvif"
)

const (
	defaultTimeout = 10 * time.Second

	streamTypeRTPUnicast = "RTP-Unicast"
	streamSetupProtocol  = "RTSP"
)

// State is the lifecycle state of a camera session.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return strconv.Itoa(int(s))
	}
}

// DeviceParams configures a camera session.
type DeviceParams struct {
	Host     string
	Port     int
	Username string
	Password string

	// Timeout bounds each network call. Zero means 10 seconds. Ignored
	// when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the client used for SOAP calls.
	HTTPClient *http.Client

	// Logger receives structured connect and operation events. Nil
	// means no logging.
	Logger *zerolog.Logger
}

// Capabilities flags the services a device advertises. A service
// absent from the capability response reports false.
type Capabilities struct {
	Analytics bool
	Device    bool
	Events    bool
	Imaging   bool
	Media     bool
	PTZ       bool
}

// DeviceInformation is the identity record of a device.
type DeviceInformation struct {
	Manufacturer    string
	Model           string
	FirmwareVersion string
	SerialNumber    string
	HardwareID      string
}

// VideoEncoderConfig is the encoder section of a media profile.
type VideoEncoderConfig struct {
	Encoding       string
	Width          int
	Height         int
	FrameRateLimit int
}

// MediaProfile is an immutable snapshot of a device-reported media
// profile.
type MediaProfile struct {
	Token        string
	Name         string
	VideoEncoder VideoEncoderConfig
}

// PTZVelocity is a continuous-move velocity. Each component is in
// [-1.0, 1.0]; the move runs until Stop is called or the camera's own
// timeout fires.
type PTZVelocity struct {
	Pan  float64
	Tilt float64
	Zoom float64
}

// Camera is one logical session against one device. Endpoints,
// capabilities and credentials are read-only once Connect succeeds, so
// operations may be issued from concurrent goroutines; ordering between
// calls (a move followed by a stop) is the caller's concern.
type Camera struct {
	params     DeviceParams
	httpClient *http.Client
	logger     zerolog.Logger

	mu           sync.RWMutex
	state        State
	endpoints    map[string]string
	capabilities Capabilities
}

// NewCamera builds a session in the Disconnected state. No network
// traffic happens until Connect.
func NewCamera(params DeviceParams) *Camera {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if params.Logger != nil {
		logger = *params.Logger
	}

	return &Camera{
		params:     params,
		httpClient: httpClient,
		logger:     logger,
		state:      StateDisconnected,
		endpoints: map[string]string{
			"device": deviceServiceURL(params.Host, params.Port),
		},
	}
}

func deviceServiceURL(host string, port int) string {
	return fmt.Sprintf("http://%s/onvif/device_service", net.JoinHostPort(host, strconv.Itoa(port)))
}

// Connect resolves the device's service endpoints by issuing
// GetCapabilities against the well-known device service URL. The
// session reaches Connected only if the device and media services
// resolve; a missing PTZ service is non-fatal and latches
// Capabilities.PTZ false. Any failure latches Failed, which is
// terminal: retrying needs a fresh Camera.
func (c *Camera) Connect(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateConnected:
		c.mu.Unlock()
		return nil
	case StateFailed:
		c.mu.Unlock()
		return &NotConnectedError{State: StateFailed}
	}
	c.state = StateConnecting
	xaddr := c.endpoints["device"]
	c.mu.Unlock()

	c.logger.Info().Str("xaddr", xaddr).Msg("connecting")

	caps, endpoints, err := c.fetchCapabilities(ctx, xaddr)
	if err != nil {
		c.fail()
		c.logger.Error().Err(err).Str("xaddr", xaddr).Msg("connect failed")
		return err
	}

	if _, ok := endpoints["media"]; !ok {
		c.fail()
		err := fmt.Errorf("onvif: device at %s advertises no media service", xaddr)
		c.logger.Error().Err(err).Msg("connect failed")
		return err
	}

	c.mu.Lock()
	for name, endpoint := range endpoints {
		c.endpoints[name] = endpoint
	}
	c.capabilities = caps
	c.state = StateConnected
	c.mu.Unlock()

	c.logger.Info().
		Str("xaddr", xaddr).
		Bool("ptz", caps.PTZ).
		Bool("imaging", caps.Imaging).
		Msg("connected")
	return nil
}

func (c *Camera) fail() {
	c.mu.Lock()
	c.state = StateFailed
	c.mu.Unlock()
}

// fetchCapabilities issues GetCapabilities at the given endpoint and
// returns the capability flags plus the advertised service endpoint
// map (including vendor extension services).
func (c *Camera) fetchCapabilities(ctx context.Context, xaddr string) (Capabilities, map[string]string, error) {
	var zero Capabilities

	resp := c.CreateRequest(device.GetCapabilities{Category: "All"}).
		WithEndpoint(xaddr).
		WithContext(ctx).
		Do()

	var body device.GetCapabilitiesResponse
	if err := resp.Unmarshal(&body); err != nil {
		return zero, nil, err
	}

	caps := Capabilities{
		Analytics: body.Capabilities.Analytics != nil,
		Device:    body.Capabilities.Device != nil,
		Events:    body.Capabilities.Events != nil,
		Imaging:   body.Capabilities.Imaging != nil,
		Media:     body.Capabilities.Media != nil,
		PTZ:       body.Capabilities.PTZ != nil,
	}

	raw, err := resp.Body()
	if err != nil {
		return zero, nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return zero, nil, err
	}

	endpoints := make(map[string]string)
	services := doc.FindElements("./Envelope/Body/GetCapabilitiesResponse/Capabilities/*/XAddr")
	for _, s := range services {
		endpoints[strings.ToLower(s.Parent().Tag)] = c.rewriteHost(s.Text())
	}
	extensions := doc.FindElements("./Envelope/Body/GetCapabilitiesResponse/Capabilities/Extension/*/XAddr")
	for _, s := range extensions {
		endpoints[strings.ToLower(s.Parent().Tag)] = c.rewriteHost(s.Text())
	}
	return caps, endpoints, nil
}

// rewriteHost replaces the host of an advertised endpoint with the one
// this session dials. Cameras behind NAT report their internal
// addresses.
func (c *Camera) rewriteHost(value string) string {
	u, err := url.Parse(value)
	if err != nil {
		return value
	}
	u.Host = net.JoinHostPort(c.params.Host, strconv.Itoa(c.params.Port))
	return u.String()
}

// State returns the session state.
func (c *Camera) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Capabilities returns the capability flags captured at connect time.
func (c *Camera) Capabilities() Capabilities {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capabilities
}

// GetEndpoint resolves a service name to its endpoint URL. It fails
// with NotConnectedError before a successful Connect and with
// NotSupportedError for services the device does not advertise; no
// network call is attempted in either case.
func (c *Camera) GetEndpoint(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != StateConnected {
		return "", &NotConnectedError{State: c.state}
	}
	if endpoint, ok := c.endpoints[name]; ok {
		return endpoint, nil
	}
	// Fuzzy match covers vendors that report e.g. "events" for "event".
	for key, endpoint := range c.endpoints {
		if strings.Contains(key, name) {
			return endpoint, nil
		}
	}
	return "", &NotSupportedError{Service: name}
}

// CreateRequest prepares a request for an arbitrary operation struct
// with this session's credentials and HTTP client. The target endpoint
// is derived from the struct's package unless overridden.
func (c *Camera) CreateRequest(method interface{}) *networking.Request {
	return networking.NewRequest(c, method).
		WithHTTPClient(c.httpClient).
		WithUsernamePassword(c.params.Username, c.params.Password)
}

// GetDeviceInformation returns the device identity record.
func (c *Camera) GetDeviceInformation(ctx context.Context) (DeviceInformation, error) {
	var zero DeviceInformation

	var body device.GetDeviceInformationResponse
	if err := c.CreateRequest(device.GetDeviceInformation{}).WithContext(ctx).Do().Unmarshal(&body); err != nil {
		c.logger.Error().Err(err).Msg("get device information failed")
		return zero, err
	}

	info := DeviceInformation{
		Manufacturer:    body.Manufacturer,
		Model:           body.Model,
		FirmwareVersion: body.FirmwareVersion,
		SerialNumber:    body.SerialNumber,
		HardwareID:      body.HardwareID,
	}
	c.logger.Debug().
		Str("manufacturer", info.Manufacturer).
		Str("model", info.Model).
		Msg("device information retrieved")
	return info, nil
}

// GetCapabilities re-queries the device capability set. The endpoint
// map captured at connect time is not modified.
func (c *Camera) GetCapabilities(ctx context.Context) (Capabilities, error) {
	var zero Capabilities

	xaddr, err := c.GetEndpoint("device")
	if err != nil {
		return zero, err
	}

	caps, _, err := c.fetchCapabilities(ctx, xaddr)
	if err != nil {
		c.logger.Error().Err(err).Msg("get capabilities failed")
		return zero, err
	}
	c.logger.Debug().Bool("ptz", caps.PTZ).Msg("capabilities retrieved")
	return caps, nil
}

// GetProfiles fetches the device's media profiles. The list is fetched
// fresh on every call; nothing is cached between calls.
func (c *Camera) GetProfiles(ctx context.Context) ([]MediaProfile, error) {
	var body media.GetProfilesResponse
	if err := c.CreateRequest(media.GetProfiles{}).WithContext(ctx).Do().Unmarshal(&body); err != nil {
		c.logger.Error().Err(err).Msg("get profiles failed")
		return nil, err
	}

	profiles := make([]MediaProfile, 0, len(body.Profiles))
	for _, p := range body.Profiles {
		profiles = append(profiles, MediaProfile{
			Token: string(p.Token),
			Name:  p.Name,
			VideoEncoder: VideoEncoderConfig{
				Encoding:       p.VideoEncoderConfiguration.Encoding,
				Width:          p.VideoEncoderConfiguration.Resolution.Width,
				Height:         p.VideoEncoderConfiguration.Resolution.Height,
				FrameRateLimit: p.VideoEncoderConfiguration.RateControl.FrameRateLimit,
			},
		})
	}
	c.logger.Debug().Int("count", len(profiles)).Msg("profiles retrieved")
	return profiles, nil
}

// GetStreamURI returns the RTSP stream URI for a profile. An empty
// profileToken selects the first reported profile; the ONVIF spec does
// not guarantee list order across firmware, so callers needing a
// specific profile must pass its token.
func (c *Camera) GetStreamURI(ctx context.Context, profileToken string) (string, error) {
	token, err := c.resolveProfileToken(ctx, profileToken)
	if err != nil {
		return "", err
	}

	req := media.GetStreamUri{
		StreamSetup: xsdonvif.StreamSetup{
			Stream:    streamTypeRTPUnicast,
			Transport: xsdonvif.Transport{Protocol: streamSetupProtocol},
		},
		ProfileToken: xsdonvif.ReferenceToken(token),
	}

	var body media.GetStreamUriResponse
	if err := c.CreateRequest(req).WithContext(ctx).Do().Unmarshal(&body); err != nil {
		c.logger.Error().Err(err).Str("token", token).Msg("get stream uri failed")
		return "", err
	}

	uri := string(body.MediaUri.Uri)
	if uri == "" {
		return "", fmt.Errorf("onvif: empty stream uri for profile %q", token)
	}
	c.logger.Debug().Str("token", token).Str("uri", uri).Msg("stream uri retrieved")
	return uri, nil
}

// GetSnapshotURI returns the HTTP snapshot URI for a profile. An empty
// profileToken selects the first reported profile.
func (c *Camera) GetSnapshotURI(ctx context.Context, profileToken string) (string, error) {
	token, err := c.resolveProfileToken(ctx, profileToken)
	if err != nil {
		return "", err
	}

	var body media.GetSnapshotUriResponse
	req := media.GetSnapshotUri{ProfileToken: xsdonvif.ReferenceToken(token)}
	if err := c.CreateRequest(req).WithContext(ctx).Do().Unmarshal(&body); err != nil {
		c.logger.Error().Err(err).Str("token", token).Msg("get snapshot uri failed")
		return "", err
	}

	uri := string(body.MediaUri.Uri)
	if uri == "" {
		return "", fmt.Errorf("onvif: empty snapshot uri for profile %q", token)
	}
	c.logger.Debug().Str("token", token).Str("uri", uri).Msg("snapshot uri retrieved")
	return uri, nil
}

// ContinuousMove starts a continuous PTZ move at the given velocity.
// The command is fire-and-forget: the camera keeps moving until Stop is
// called or its own timeout fires, and no local state tracks the
// motion.
func (c *Camera) ContinuousMove(ctx context.Context, profileToken string, velocity PTZVelocity) error {
	if err := c.requirePTZ(); err != nil {
		return err
	}

	token, err := c.resolveProfileToken(ctx, profileToken)
	if err != nil {
		return err
	}

	req := ptz.ContinuousMove{
		ProfileToken: xsdonvif.ReferenceToken(token),
		Velocity: xsdonvif.PTZSpeed{
			PanTilt: xsdonvif.Vector2D{X: velocity.Pan, Y: velocity.Tilt},
			Zoom:    xsdonvif.Vector1D{X: velocity.Zoom},
		},
	}
	if err := c.CreateRequest(req).WithContext(ctx).Do().Unmarshal(); err != nil {
		c.logger.Error().Err(err).Str("token", token).Msg("continuous move failed")
		return err
	}

	c.logger.Debug().
		Str("token", token).
		Float64("pan", velocity.Pan).
		Float64("tilt", velocity.Tilt).
		Float64("zoom", velocity.Zoom).
		Msg("continuous move issued")
	return nil
}

// Stop halts PTZ motion on both the pan/tilt and zoom axes. An empty
// profileToken selects the first reported profile.
func (c *Camera) Stop(ctx context.Context, profileToken string) error {
	if err := c.requirePTZ(); err != nil {
		return err
	}

	token, err := c.resolveProfileToken(ctx, profileToken)
	if err != nil {
		return err
	}

	req := ptz.Stop{
		ProfileToken: xsdonvif.ReferenceToken(token),
		PanTilt:      true,
		Zoom:         true,
	}
	if err := c.CreateRequest(req).WithContext(ctx).Do().Unmarshal(); err != nil {
		c.logger.Error().Err(err).Str("token", token).Msg("stop failed")
		return err
	}

	c.logger.Debug().Str("token", token).Msg("ptz stopped")
	return nil
}

// GetPTZStatus returns the current PTZ position and per-axis motion
// state. ContinuousMove is fire-and-forget, so this is the only way to
// observe camera-side motion.
func (c *Camera) GetPTZStatus(ctx context.Context, profileToken string) (xsdonvif.PTZStatus, error) {
	var zero xsdonvif.PTZStatus

	if err := c.requirePTZ(); err != nil {
		return zero, err
	}

	token, err := c.resolveProfileToken(ctx, profileToken)
	if err != nil {
		return zero, err
	}

	var body ptz.GetStatusResponse
	req := ptz.GetStatus{ProfileToken: xsdonvif.ReferenceToken(token)}
	if err := c.CreateRequest(req).WithContext(ctx).Do().Unmarshal(&body); err != nil {
		c.logger.Error().Err(err).Str("token", token).Msg("get ptz status failed")
		return zero, err
	}
	return body.PTZStatus, nil
}

// GetSystemDateAndTime returns the device clock.
func (c *Camera) GetSystemDateAndTime(ctx context.Context) (device.SystemDateAndTime, error) {
	var zero device.SystemDateAndTime

	var body device.GetSystemDateAndTimeResponse
	if err := c.CreateRequest(device.GetSystemDateAndTime{}).WithContext(ctx).Do().Unmarshal(&body); err != nil {
		c.logger.Error().Err(err).Msg("get system date and time failed")
		return zero, err
	}
	return body.SystemDateAndTime, nil
}

func (c *Camera) requirePTZ() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != StateConnected {
		return &NotConnectedError{State: c.state}
	}
	if !c.capabilities.PTZ {
		return &NotSupportedError{Service: "ptz"}
	}
	return nil
}

// resolveProfileToken falls back to the first reported profile when the
// caller passes no token.
func (c *Camera) resolveProfileToken(ctx context.Context, token string) (string, error) {
	if token != "" {
		return token, nil
	}

	profiles, err := c.GetProfiles(ctx)
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", errors.New("onvif: no media profiles available")
	}
	return profiles[0].Token, nil
}
