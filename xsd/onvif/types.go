// Package onvif holds composite types from the ONVIF ver10 schema
// (http://www.onvif.org/ver10/schema) used by the Device, Media and PTZ
// services. Request-side types carry the onvif: prefix in their tags so
// they marshal into the envelope's declared namespaces; response-side
// types match by local name.
package onvif

import (
	"github.com/camkit/onvif-go/xsd"
)

// ReferenceToken is an opaque identifier for a device-side entity such
// as a media profile or PTZ configuration.
type ReferenceToken string

// CapabilityCategory selects which capability sections a
// GetCapabilities request asks for.
type CapabilityCategory string

// StreamType is the streaming mode of a stream setup (RTP-Unicast,
// RTP-Multicast).
type StreamType string

// TransportProtocol is the transport of a stream setup (RTSP, HTTP,
// UDP).
type TransportProtocol string

// Transport is the transport part of a StreamSetup.
type Transport struct {
	Protocol TransportProtocol `xml:"onvif:Protocol"`
}

// StreamSetup describes how a stream should be delivered.
type StreamSetup struct {
	Stream    StreamType `xml:"onvif:Stream"`
	Transport Transport  `xml:"onvif:Transport"`
}

// MediaUri is the payload of GetStreamUri and GetSnapshotUri responses.
type MediaUri struct {
	Uri                 xsd.AnyURI   `xml:"Uri"`
	InvalidAfterConnect xsd.Boolean  `xml:"InvalidAfterConnect"`
	InvalidAfterReboot  xsd.Boolean  `xml:"InvalidAfterReboot"`
	Timeout             xsd.Duration `xml:"Timeout"`
}

// Vector2D is a pan/tilt vector. Velocity components are in the
// normalized [-1.0, 1.0] space unless Space says otherwise.
type Vector2D struct {
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Space string  `xml:"space,attr,omitempty"`
}

// Vector1D is a zoom vector.
type Vector1D struct {
	X     float64 `xml:"x,attr"`
	Space string  `xml:"space,attr,omitempty"`
}

// PTZSpeed carries the velocity of a ContinuousMove request.
type PTZSpeed struct {
	PanTilt Vector2D `xml:"onvif:PanTilt"`
	Zoom    Vector1D `xml:"onvif:Zoom"`
}

// PTZVector is a decoded pan/tilt/zoom position as reported by
// GetStatus.
type PTZVector struct {
	PanTilt Vector2D `xml:"PanTilt"`
	Zoom    Vector1D `xml:"Zoom"`
}

// PTZStatus is the payload of a PTZ GetStatus response.
type PTZStatus struct {
	Position   PTZVector     `xml:"Position"`
	MoveStatus PTZMoveStatus `xml:"MoveStatus"`
	UtcTime    string        `xml:"UtcTime"`
}

// PTZMoveStatus reports per-axis motion state (IDLE, MOVING, UNKNOWN).
type PTZMoveStatus struct {
	PanTilt string `xml:"PanTilt"`
	Zoom    string `xml:"Zoom"`
}

// VideoResolution is a frame size in pixels.
type VideoResolution struct {
	Width  int `xml:"Width"`
	Height int `xml:"Height"`
}

// VideoRateControl bounds the encoder output.
type VideoRateControl struct {
	FrameRateLimit   int `xml:"FrameRateLimit"`
	EncodingInterval int `xml:"EncodingInterval"`
	BitrateLimit     int `xml:"BitrateLimit"`
}

// VideoEncoderConfiguration is the encoder section of a media profile.
type VideoEncoderConfiguration struct {
	Token       ReferenceToken   `xml:"token,attr"`
	Name        string           `xml:"Name"`
	Encoding    string           `xml:"Encoding"`
	Resolution  VideoResolution  `xml:"Resolution"`
	RateControl VideoRateControl `xml:"RateControl"`
	Quality     float64          `xml:"Quality"`
}

// Profile is a device-reported media profile. The Token attribute is
// the handle every profile-scoped operation takes.
type Profile struct {
	Token                     ReferenceToken            `xml:"token,attr"`
	Fixed                     xsd.Boolean               `xml:"fixed,attr"`
	Name                      string                    `xml:"Name"`
	VideoEncoderConfiguration VideoEncoderConfiguration `xml:"VideoEncoderConfiguration"`
}

// ServiceCapabilities is one service block of a GetCapabilities
// response. Only the XAddr is interpreted here; a nil block means the
// device does not advertise the service.
type ServiceCapabilities struct {
	XAddr xsd.AnyURI `xml:"XAddr"`
}

// Capabilities is the capability tree of a GetCapabilities response.
// Absent sections decode as nil pointers.
type Capabilities struct {
	Analytics *ServiceCapabilities `xml:"Analytics"`
	Device    *ServiceCapabilities `xml:"Device"`
	Events    *ServiceCapabilities `xml:"Events"`
	Imaging   *ServiceCapabilities `xml:"Imaging"`
	Media     *ServiceCapabilities `xml:"Media"`
	PTZ       *ServiceCapabilities `xml:"PTZ"`
}
