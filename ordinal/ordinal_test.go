package ordinal

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cesrkit/cesr/errs"
)

func TestEncode_WidthSelection(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		alias string
	}{
		{0, 2, "M"},
		{1, 2, "M"},
		{1<<16 - 1, 2, "M"},
		{1 << 16, 8, "N"},
		{1<<64 - 1, 8, "N"},
	}

	for _, c := range cases {
		raw, alias, err := EncodeUint64(c.v)
		require.NoError(t, err)
		require.Len(t, raw, c.width)
		require.Equal(t, c.alias, alias)
		require.Equal(t, 0, new(big.Int).SetUint64(c.v).Cmp(Decode(raw)))
	}
}

func TestEncode_LargeWidths(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 64)
	raw, alias, err := Encode(v)
	require.NoError(t, err)
	require.Len(t, raw, 16)
	require.Equal(t, "0H", alias)
	require.Equal(t, v, Decode(raw))

	v2 := new(big.Int).Lsh(big.NewInt(1), 128)
	raw2, alias2, err := Encode(v2)
	require.NoError(t, err)
	require.Len(t, raw2, 24)
	require.Equal(t, "2AAA", alias2)
	require.Equal(t, v2, Decode(raw2))
}

func TestEncode_Overflow(t *testing.T) {
	_, _, err := Encode(new(big.Int).Add(MaxValue, big.NewInt(1)))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrValueOverflow))
}

func TestEncode_Negative(t *testing.T) {
	_, _, err := Encode(big.NewInt(-1))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrValueOverflow))
}

func TestParseHex(t *testing.T) {
	v, err := ParseHex("0x10")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(16), v)

	v2, err := ParseHex("ff")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(255), v2)
}

func TestParseHex_Invalid(t *testing.T) {
	_, err := ParseHex("not-hex")
	require.Error(t, err)
}

func TestFixedWidth128(t *testing.T) {
	raw, err := FixedWidth128(big.NewInt(1))
	require.NoError(t, err)
	require.Len(t, raw, 16)
	require.Equal(t, byte(1), raw[15])

	_, err = FixedWidth128(big.NewInt(-1))
	require.Error(t, err)
}

func TestOrdering(t *testing.T) {
	a, _, err := EncodeUint64(5)
	require.NoError(t, err)
	b, _, err := EncodeUint64(10)
	require.NoError(t, err)

	require.True(t, Decode(a).Cmp(Decode(b)) < 0)
}
