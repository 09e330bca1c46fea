// Package ptz holds the PTZ service operation structs
// (http://www.onvif.org/ver20/ptz/wsdl).
package ptz

import (
	"github.com/camkit/onvif-go/xsd"
	"github.com/camkit/onvif-go/xsd/onvif"
)

// ContinuousMove starts moving at the given velocity. The camera keeps
// moving until Stop is sent or its own timeout fires; nothing local
// tracks the motion.
type ContinuousMove struct {
	XMLName      string               `xml:"tptz:ContinuousMove"`
	ProfileToken onvif.ReferenceToken `xml:"tptz:ProfileToken"`
	Velocity     onvif.PTZSpeed       `xml:"tptz:Velocity"`
	Timeout      xsd.Duration         `xml:"tptz:Timeout,omitempty"`
}

// Stop halts motion on the selected axes.
type Stop struct {
	XMLName      string               `xml:"tptz:Stop"`
	ProfileToken onvif.ReferenceToken `xml:"tptz:ProfileToken"`
	PanTilt      xsd.Boolean          `xml:"tptz:PanTilt"`
	Zoom         xsd.Boolean          `xml:"tptz:Zoom"`
}

// GetStatus requests the current PTZ position and motion state.
type GetStatus struct {
	XMLName      string               `xml:"tptz:GetStatus"`
	ProfileToken onvif.ReferenceToken `xml:"tptz:ProfileToken"`
}

// GetStatusResponse is the body of a GetStatus response.
type GetStatusResponse struct {
	PTZStatus onvif.PTZStatus `xml:"PTZStatus"`
}
