package cesr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerser_Qb64RoundTrip(t *testing.T) {
	v, err := NewVerser("KERI", 1, 0, "keri")
	require.NoError(t, err)
	require.Equal(t, "0V", v.Code())

	v2, err := VerserFromQb64(v.Qb64())
	require.NoError(t, err)
	require.Equal(t, "KERI", v2.Protocol())
	require.Equal(t, uint8(1), v2.Major())
	require.Equal(t, uint8(0), v2.Minor())
	require.Equal(t, "keri", v2.Genus())
}

func TestVerser_StringMatchesDocComment(t *testing.T) {
	v, err := NewVerser("KERI", 1, 0, "keri")
	require.NoError(t, err)
	require.Equal(t, "KERI 1.0", v.String())
}

func TestVerser_RejectsWrongLengths(t *testing.T) {
	_, err := NewVerser("KER", 1, 0, "keri")
	require.Error(t, err)

	_, err = NewVerser("KERI", 1, 0, "ker")
	require.Error(t, err)
}
