package cesr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumber_Scenario2And3(t *testing.T) {
	n0, err := NewNumberFromUint64(0)
	require.NoError(t, err)
	require.Equal(t, "MAAA", n0.Qb64())

	n1, err := NewNumberFromUint64(1)
	require.NoError(t, err)
	require.Equal(t, "MAAB", n1.Qb64())
}

func TestNumber_AllOnesIsOrdinaryValue(t *testing.T) {
	n, err := NewNumberFromUint64(1<<16 - 1)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1<<16-1), n.Num())

	n2, err := NumberFromQb64(n.Qb64())
	require.NoError(t, err)
	require.Equal(t, n.Num(), n2.Num())
}

func TestNumber_Ordering(t *testing.T) {
	a, err := NewNumberFromUint64(5)
	require.NoError(t, err)

	b, err := NewNumberFromUint64(10)
	require.NoError(t, err)

	require.True(t, a.Num().Cmp(b.Num()) < 0)
}

func TestNumber_Overflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 192)
	_, err := NewNumber(huge)
	require.Error(t, err)
}

func TestNumber_LargeCodeRoundTrip(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 150)

	n, err := NewNumber(v)
	require.NoError(t, err)
	require.Equal(t, "2AAA", n.Code())

	n2, err := NumberFromQb64(n.Qb64())
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(n2.Num()))
}
