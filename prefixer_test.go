package cesr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixer_BasicFromVerfer(t *testing.T) {
	signer, err := NewSigner(WithSignerSeed(make([]byte, 32)))
	require.NoError(t, err)

	p, err := NewPrefixerFromVerfer(signer.Verfer())
	require.NoError(t, err)
	require.Equal(t, signer.Verfer().Qb64(), p.Qb64())

	ok, err := p.Verify([]byte("anything"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPrefixer_SelfAddressing(t *testing.T) {
	event := []byte(`{"v":"KERI10JSON000000_","t":"icp"}`)

	p, err := NewPrefixerFromEvent("E", event)
	require.NoError(t, err)

	ok, err := p.Verify(event)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Verify(bytes.Replace(event, []byte("icp"), []byte("rot"), 1))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPrefixer_Qb64RoundTrip(t *testing.T) {
	event := []byte(`{"t":"icp"}`)

	p, err := NewPrefixerFromEvent("E", event)
	require.NoError(t, err)

	p2, err := PrefixerFromQb64(p.Qb64())
	require.NoError(t, err)

	ok, err := p2.Verify(event)
	require.NoError(t, err)
	require.True(t, ok)
}
