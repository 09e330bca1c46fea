package gosoap

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordDigestKnownVector(t *testing.T) {
	// base64(SHA1("")) — empty nonce, created and password.
	assert.Equal(t, "2jmj7l5rSw0yVb/vlWAYkK/YBwk=", passwordDigest("", "", ""))
}

func TestNewSecurityShape(t *testing.T) {
	sec, err := NewSecurity("admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, "admin", sec.Auth.Username)
	assert.Equal(t, passwordType, sec.Auth.Password.Type)
	assert.Equal(t, encodingType, sec.Auth.Nonce.Type)

	nonceBytes, err := base64.StdEncoding.DecodeString(sec.Auth.Nonce.Nonce)
	require.NoError(t, err)
	assert.Len(t, nonceBytes, nonceLength)

	_, err = time.Parse(time.RFC3339Nano, sec.Auth.Created)
	require.NoError(t, err)

	digest, err := base64.StdEncoding.DecodeString(sec.Auth.Password.Password)
	require.NoError(t, err)
	assert.Len(t, digest, 20)

	// The digest must be derived from exactly the nonce and timestamp
	// the header carries.
	assert.Equal(t,
		passwordDigest(string(nonceBytes), sec.Auth.Created, "secret"),
		sec.Auth.Password.Password)
}

func TestWSSecurityNonceFreshPerCall(t *testing.T) {
	nonces := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		msg, err := NewEmptySOAP()
		require.NoError(t, err)
		require.NoError(t, msg.AddWSSecurity("admin", "secret"))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(msg.String()))
		elem := doc.Root().FindElement("./Header/Security/UsernameToken/Nonce")
		require.NotNil(t, elem)
		nonces[elem.Text()] = struct{}{}
	}
	// Replay protection: identical credentials must never reuse a nonce.
	assert.Len(t, nonces, 5)
}

func TestWSSecurityHeaderInEnvelope(t *testing.T) {
	msg, err := NewEmptySOAP()
	require.NoError(t, err)
	require.NoError(t, msg.AddWSSecurity("admin", "secret"))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(msg.String()))

	token := doc.Root().FindElement("./Header/Security/UsernameToken")
	require.NotNil(t, token)
	assert.Equal(t, "admin", token.FindElement("./Username").Text())
	require.NotNil(t, token.FindElement("./Password"))
	require.NotNil(t, token.FindElement("./Created"))
}
