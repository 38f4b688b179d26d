package cesr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaidify_VerifyRoundTrip(t *testing.T) {
	payload := map[string]any{
		"v": "KERI10JSON000000_",
		"t": "icp",
		"d": "",
	}

	payload, said, err := Saidify(payload, "d", "E")
	require.NoError(t, err)
	require.NotEmpty(t, said)
	require.Equal(t, said, payload["d"])

	ok, err := VerifySaid(payload, "d")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifySaid_DetectsTampering(t *testing.T) {
	payload := map[string]any{"t": "icp", "d": ""}

	payload, _, err := Saidify(payload, "d", "E")
	require.NoError(t, err)

	payload["t"] = "rot"

	ok, err := VerifySaid(payload, "d")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifySaid_MissingLabel(t *testing.T) {
	ok, err := VerifySaid(map[string]any{}, "d")
	require.NoError(t, err)
	require.False(t, ok)
}
