// Package xsd holds XML Schema scalar types shared by the ONVIF service
// request and response structs.
package xsd

// Boolean maps to xs:boolean.
type Boolean bool

// Duration maps to xs:duration, kept as its lexical form (e.g. "PT5S").
type Duration string

// AnyURI maps to xs:anyURI.
type AnyURI string
