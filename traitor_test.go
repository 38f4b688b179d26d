package cesr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraitor_Qb64RoundTrip(t *testing.T) {
	// "DONT" is quadlet-aligned, so the wire form's canonical re-decode
	// reproduces it exactly -- see decodeBextText in bexter.go.
	tr, err := NewTraitor("DONT")
	require.NoError(t, err)

	tr2, err := TraitorFromQb64(tr.Qb64())
	require.NoError(t, err)
	require.Equal(t, "DONT", tr2.Trait())
}

func TestTraitor_NonAlignedTraitPreservesNameInMemory(t *testing.T) {
	tr, err := NewTraitor("EO")
	require.NoError(t, err)
	require.Equal(t, "EO", tr.Trait())
}
