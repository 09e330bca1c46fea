package gosoap

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToAndMessageID(t *testing.T) {
	msg, err := NewEmptySOAP()
	require.NoError(t, err)
	require.NoError(t, msg.AddTo("http://192.0.2.10/onvif/device_service"))
	require.NoError(t, msg.AddMessageID())

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(msg.String()))

	to := doc.Root().FindElement("./Header/To")
	require.NotNil(t, to)
	assert.Equal(t, "http://192.0.2.10/onvif/device_service", to.Text())

	id := doc.Root().FindElement("./Header/MessageID")
	require.NotNil(t, id)
	assert.True(t, strings.HasPrefix(id.Text(), "urn:uuid:"))
}

func TestMessageIDUniquePerCall(t *testing.T) {
	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		msg, err := NewEmptySOAP()
		require.NoError(t, err)
		require.NoError(t, msg.AddMessageID())

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromString(msg.String()))
		ids[doc.Root().FindElement("./Header/MessageID").Text()] = struct{}{}
	}
	assert.Len(t, ids, 3)
}
