// Package gosoap builds and parses the SOAP 1.2 envelopes carried by
// every ONVIF request and response.
package gosoap

import (
	"errors"

	"github.com/beevik/etree"
)

// SoapMessage is a serialized SOAP 1.2 envelope.
type SoapMessage string

// NewEmptySOAP returns an envelope with empty Header and Body sections.
func NewEmptySOAP() (SoapMessage, error) {
	var zero SoapMessage

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	env := doc.CreateElement("soap-env:Envelope")
	env.CreateElement("soap-env:Header")
	env.CreateElement("soap-env:Body")
	env.CreateAttr("xmlns:soap-env", "http://www.w3.org/2003/05/soap-envelope")
	env.CreateAttr("xmlns:soap-enc", "http://www.w3.org/2003/05/soap-encoding")

	res, err := doc.WriteToString()
	if err != nil {
		return zero, err
	}
	return SoapMessage(res), nil
}

func (msg SoapMessage) String() string {
	return string(msg)
}

// Body returns the first child element of the envelope Body as a
// standalone document, which is what the per-operation response structs
// unmarshal from.
func (msg SoapMessage) Body() (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(msg.String()); err != nil {
		return "", err
	}

	root := doc.Root()
	if root == nil {
		return "", errors.New("root element not found")
	}

	body := root.SelectElement("Body")
	if body == nil {
		return "", errors.New("body element not found")
	}

	children := body.ChildElements()
	if len(children) == 0 {
		return "", errors.New("body has no child elements")
	}

	doc.SetRoot(children[0])
	doc.IndentTabs()
	return doc.WriteToString()
}

// AddBodyContent appends an operation element to the envelope Body.
func (msg *SoapMessage) AddBodyContent(element *etree.Element) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(msg.String()); err != nil {
		return err
	}

	body := doc.Root().SelectElement("Body")
	if body == nil {
		return errors.New("body element not found")
	}
	body.AddChild(element)

	res, err := doc.WriteToString()
	if err != nil {
		return err
	}
	*msg = SoapMessage(res)
	return nil
}

// AddStringHeaderContent parses data and appends its root element to
// the envelope Header.
func (msg *SoapMessage) AddStringHeaderContent(data string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return err
	}
	element := doc.Root()

	doc = etree.NewDocument()
	if err := doc.ReadFromString(msg.String()); err != nil {
		return err
	}

	header := doc.Root().SelectElement("Header")
	if header == nil {
		return errors.New("header element not found")
	}
	header.AddChild(element)

	res, err := doc.WriteToString()
	if err != nil {
		return err
	}
	*msg = SoapMessage(res)
	return nil
}

// AddHeaderContent appends an element to the envelope Header.
func (msg *SoapMessage) AddHeaderContent(element *etree.Element) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(msg.String()); err != nil {
		return err
	}

	header := doc.Root().SelectElement("Header")
	if header == nil {
		return errors.New("header element not found")
	}
	header.AddChild(element)

	res, err := doc.WriteToString()
	if err != nil {
		return err
	}
	*msg = SoapMessage(res)
	return nil
}

// AddRootNamespace declares a namespace on the envelope root.
func (msg *SoapMessage) AddRootNamespace(key, value string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(msg.String()); err != nil {
		return err
	}
	doc.Root().CreateAttr("xmlns:"+key, value)

	res, err := doc.WriteToString()
	if err != nil {
		return err
	}
	*msg = SoapMessage(res)
	return nil
}

// AddRootNamespaces declares a set of namespaces on the envelope root.
func (msg *SoapMessage) AddRootNamespaces(namespaces map[string]string) error {
	for key, value := range namespaces {
		if err := msg.AddRootNamespace(key, value); err != nil {
			return err
		}
	}
	return nil
}
