// Package media holds the Media service operation structs
// (http://www.onvif.org/ver10/media/wsdl).
package media

import (
	"github.com/camkit/onvif-go/xsd/onvif"
)

// GetProfiles requests the device's media profiles.
type GetProfiles struct {
	XMLName string `xml:"trt:GetProfiles"`
}

// GetProfilesResponse is the body of a GetProfiles response.
type GetProfilesResponse struct {
	Profiles []onvif.Profile `xml:"Profiles"`
}

// GetStreamUri requests the stream URI for a profile.
type GetStreamUri struct {
	XMLName      string               `xml:"trt:GetStreamUri"`
	StreamSetup  onvif.StreamSetup    `xml:"trt:StreamSetup"`
	ProfileToken onvif.ReferenceToken `xml:"trt:ProfileToken"`
}

// GetStreamUriResponse is the body of a GetStreamUri response.
type GetStreamUriResponse struct {
	MediaUri onvif.MediaUri `xml:"MediaUri"`
}

// GetSnapshotUri requests the snapshot URI for a profile.
type GetSnapshotUri struct {
	XMLName      string               `xml:"trt:GetSnapshotUri"`
	ProfileToken onvif.ReferenceToken `xml:"trt:ProfileToken"`
}

// GetSnapshotUriResponse is the body of a GetSnapshotUri response.
type GetSnapshotUriResponse struct {
	MediaUri onvif.MediaUri `xml:"MediaUri"`
}
