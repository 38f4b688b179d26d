package cesr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIlker_Qb64RoundTrip(t *testing.T) {
	i, err := NewIlker("icp")
	require.NoError(t, err)

	i2, err := IlkerFromQb64(i.Qb64())
	require.NoError(t, err)
	require.Equal(t, "icp", i2.Ilk())
}

func TestIlker_RejectsWrongLength(t *testing.T) {
	_, err := NewIlker("inception")
	require.Error(t, err)
}
