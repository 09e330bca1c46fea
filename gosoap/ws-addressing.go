package gosoap

import (
	"encoding/xml"

	"github.com/gofrs/uuid"
)

// To is a WS-Addressing To header naming the target service endpoint.
type To struct {
	XMLName xml.Name `xml:"wsa:To"`
	Address string   `xml:",chardata"`
}

// MessageID is a WS-Addressing MessageID header.
type MessageID struct {
	XMLName xml.Name `xml:"wsa:MessageID"`
	ID      string   `xml:",chardata"`
}

// AddTo adds a WS-Addressing To header for the given endpoint.
func (msg *SoapMessage) AddTo(endpoint string) error {
	data, err := xml.MarshalIndent(To{Address: endpoint}, "", "  ")
	if err != nil {
		return err
	}
	return msg.AddStringHeaderContent(string(data))
}

// AddMessageID adds a WS-Addressing MessageID header with a fresh
// urn:uuid identifier.
func (msg *SoapMessage) AddMessageID() error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	data, err := xml.MarshalIndent(MessageID{ID: "urn:uuid:" + id.String()}, "", "  ")
	if err != nil {
		return err
	}
	return msg.AddStringHeaderContent(string(data))
}
