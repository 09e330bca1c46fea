// Package device holds the Device service operation structs
// (http://www.onvif.org/ver10/device/wsdl).
package device

import (
	"github.com/camkit/onvif-go/xsd/onvif"
)

// GetDeviceInformation requests the device identity record.
type GetDeviceInformation struct {
	XMLName string `xml:"tds:GetDeviceInformation"`
}

// GetDeviceInformationResponse is the body of a GetDeviceInformation
// response.
type GetDeviceInformationResponse struct {
	Manufacturer    string `xml:"Manufacturer"`
	Model           string `xml:"Model"`
	FirmwareVersion string `xml:"FirmwareVersion"`
	SerialNumber    string `xml:"SerialNumber"`
	HardwareID      string `xml:"HardwareId"`
}

// GetCapabilities requests the capability tree for the given category.
type GetCapabilities struct {
	XMLName  string                   `xml:"tds:GetCapabilities"`
	Category onvif.CapabilityCategory `xml:"tds:Category"`
}

// GetCapabilitiesResponse is the body of a GetCapabilities response.
type GetCapabilitiesResponse struct {
	Capabilities onvif.Capabilities `xml:"Capabilities"`
}

// GetSystemDateAndTime requests the device clock. It is the one
// operation guaranteed to work without authentication, which makes it a
// useful liveness probe.
type GetSystemDateAndTime struct {
	XMLName string `xml:"tds:GetSystemDateAndTime"`
}

// GetSystemDateAndTimeResponse is the body of a GetSystemDateAndTime
// response.
type GetSystemDateAndTimeResponse struct {
	SystemDateAndTime SystemDateAndTime `xml:"SystemDateAndTime"`
}

// SystemDateAndTime is the device clock record.
type SystemDateAndTime struct {
	DateTimeType    string   `xml:"DateTimeType"`
	DaylightSavings bool     `xml:"DaylightSavings"`
	TimeZone        TimeZone `xml:"TimeZone"`
	UTCDateTime     DateTime `xml:"UTCDateTime"`
}

// TimeZone is a POSIX timezone string.
type TimeZone struct {
	TZ string `xml:"TZ"`
}

// DateTime is a schema-split calendar timestamp.
type DateTime struct {
	Time Time `xml:"Time"`
	Date Date `xml:"Date"`
}

// Time is the clock part of a DateTime.
type Time struct {
	Hour   int `xml:"Hour"`
	Minute int `xml:"Minute"`
	Second int `xml:"Second"`
}

// Date is the calendar part of a DateTime.
type Date struct {
	Year  int `xml:"Year"`
	Month int `xml:"Month"`
	Day   int `xml:"Day"`
}
