package b64

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadSize(t *testing.T) {
	require.Equal(t, 0, PadSize(0))
	require.Equal(t, 0, PadSize(3))
	require.Equal(t, 2, PadSize(1))
	require.Equal(t, 1, PadSize(2))
	require.Equal(t, 1, PadSize(32))
	require.Equal(t, 2, PadSize(64))
}

func TestEncodeDecodeFixed_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 8, 32, 33, 56, 64} {
		raw := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, n)[:n]
		ps := PadSize(len(raw))

		encoded := EncodeFixed(raw)
		decoded, err := DecodeFixed(encoded, ps)
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	}
}

func TestDecodeFixed_NonZeroPadding(t *testing.T) {
	raw := make([]byte, 32)
	encoded := EncodeFixed(raw)

	// Flip the first payload character to one whose high bits leak into
	// the reconstructed pad byte, making it nonzero.
	bad := "Q" + encoded[1:]
	_, err := DecodeFixed(bad, 1)
	require.Error(t, err)
}

func TestEncodeDecodeVariable_RoundTrip(t *testing.T) {
	for lead := 0; lead <= 2; lead++ {
		raw := []byte("hello, CESR world!")[:18-lead]
		encoded := EncodeVariable(raw, lead)
		decoded, err := DecodeVariable(encoded, lead)
		require.NoError(t, err)
		require.Equal(t, raw, decoded)
	}
}

func TestEncodeDecodeSoft_RoundTrip(t *testing.T) {
	for _, ss := range []int{2, 4} {
		for _, size := range []int{0, 1, 63, 64, 4095} {
			limit := 1 << uint(6*ss)
			if size >= limit {
				continue
			}
			s, err := EncodeSoft(size, ss)
			require.NoError(t, err)
			require.Len(t, s, ss)

			got, err := DecodeSoft(s)
			require.NoError(t, err)
			require.Equal(t, size, got)
		}
	}
}

func TestEncodeSoft_Overflow(t *testing.T) {
	_, err := EncodeSoft(1<<12, 2)
	require.Error(t, err)
}
