package gosoap

import (
	//nolint:gosec // SHA1 is what the WS-Security UsernameToken profile specifies.
	"crypto/sha1"
	"encoding/base64"
	"encoding/xml"
	"time"

	"github.com/elgs/gostrgen"
)

const (
	//nolint:gosec
	passwordType = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-username-token-profile-1.0#PasswordDigest"
	encodingType = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-soap-message-security-1.0#Base64Binary"

	nonceLength = 16
)

// Security is a WS-Security header carrying a UsernameToken.
type Security struct {
	XMLName xml.Name `xml:"http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd Security"`
	Auth    wsAuth
}

type password struct {
	Type     string `xml:"Type,attr"`
	Password string `xml:",chardata"`
}

type nonce struct {
	Type  string `xml:"EncodingType,attr"`
	Nonce string `xml:",chardata"`
}

type wsAuth struct {
	XMLName  xml.Name `xml:"UsernameToken"`
	Username string   `xml:"Username"`
	Password password `xml:"Password"`
	Nonce    nonce    `xml:"Nonce"`
	Created  string   `xml:"http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd Created"`
}

// AddWSSecurity adds a UsernameToken header to the envelope. A fresh
// nonce and timestamp are generated on every call; reusing a
// nonce/timestamp pair across requests would defeat the replay window
// cameras enforce.
func (msg *SoapMessage) AddWSSecurity(username, passwd string) error {
	auth, err := NewSecurity(username, passwd)
	if err != nil {
		return err
	}

	data, err := xml.MarshalIndent(auth, "", "  ")
	if err != nil {
		return err
	}
	return msg.AddStringHeaderContent(string(data))
}

// NewSecurity builds a UsernameToken with a fresh nonce and Created
// timestamp.
func NewSecurity(username, passwd string) (Security, error) {
	var zero Security

	nonceSeq, err := gostrgen.RandGen(nonceLength, gostrgen.Lower|gostrgen.Upper|gostrgen.Digit, "", "")
	if err != nil {
		return zero, err
	}
	created := time.Now().UTC().Format(time.RFC3339Nano)

	return Security{
		Auth: wsAuth{
			Username: username,
			Password: password{
				Type:     passwordType,
				Password: passwordDigest(nonceSeq, created, passwd),
			},
			Nonce: nonce{
				Type:  encodingType,
				Nonce: base64.StdEncoding.EncodeToString([]byte(nonceSeq)),
			},
			Created: created,
		},
	}, nil
}

// Digest = B64ENCODE( SHA1( nonce + created + password ) ), where nonce
// is the raw byte sequence the Nonce element carries base64-encoded.
func passwordDigest(nonceSeq, created, passwd string) string {
	//nolint:gosec
	h := sha1.New()
	h.Write([]byte(nonceSeq))
	h.Write([]byte(created))
	h.Write([]byte(passwd))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
