// Package ordinal implements the Number / Ordinal codecs shared by the
// Number and Seqner typed primitives: big-endian integer encoding with
// compact-vs-large code selection, and hex-string parsing.
//
// Canonical integer encoding is big-endian, minimum-width among the
// admissible code sizes {2, 8, 16, 24} bytes, with values at or above
// 2^192 rejected as ErrValueOverflow per invariant 5.
package ordinal

import (
	"math/big"

	"github.com/cesrkit/cesr/endian"
	"github.com/cesrkit/cesr/errs"
)

// bigEndian is the byte order every CESR ordinal uses on the wire.
var bigEndian = endian.GetBigEndianEngine()

// MaxValue is the largest encodable ordinal, 2^192 - 1.
var MaxValue = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 192), big.NewInt(1))

// Width reports the admissible big-endian byte width for v, and the code
// alias that width corresponds to ("M", "N", "0H", or "2AAA").
func Width(v *big.Int) (width int, alias string, err error) {
	if v.Sign() < 0 {
		return 0, "", errs.ErrValueOverflow
	}

	switch {
	case v.Cmp(big.NewInt(1<<16)) < 0:
		return 2, "M", nil
	case v.Cmp(new(big.Int).Lsh(big.NewInt(1), 64)) < 0:
		return 8, "N", nil
	case v.Cmp(new(big.Int).Lsh(big.NewInt(1), 128)) < 0:
		return 16, "0H", nil
	case v.Cmp(new(big.Int).Lsh(big.NewInt(1), 192)) < 0:
		return 24, "2AAA", nil
	default:
		return 0, "", errs.ErrValueOverflow
	}
}

// Encode returns the minimum-width big-endian encoding of v, and the code
// alias for that width.
func Encode(v *big.Int) (raw []byte, alias string, err error) {
	width, alias, err := Width(v)
	if err != nil {
		return nil, "", err
	}

	// Widths that fit a machine word go through the endian engine, matching
	// how the rest of the corpus moves fixed-width integers to bytes;
	// wider ordinals (0H, 2AAA) exceed uint64 and fall back to
	// math/big.Int.FillBytes, which is exact for arbitrary widths.
	switch width {
	case 2:
		raw = bigEndian.AppendUint16(nil, uint16(v.Uint64()))
	case 8:
		raw = bigEndian.AppendUint64(nil, v.Uint64())
	default:
		raw = make([]byte, width)
		v.FillBytes(raw)
	}

	return raw, alias, nil
}

// EncodeUint64 is a convenience wrapper over Encode for uint64 values.
func EncodeUint64(v uint64) (raw []byte, alias string, err error) {
	return Encode(new(big.Int).SetUint64(v))
}

// Decode reverses Encode: raw is interpreted as a big-endian unsigned
// integer of whatever width it has.
func Decode(raw []byte) *big.Int {
	return new(big.Int).SetBytes(raw)
}

// ParseHex accepts a "0x"-prefixed or bare hex string, validates it, and
// returns the value it encodes.
func ParseHex(s string) (*big.Int, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}

	if s == "" {
		return nil, errs.ErrValueOverflow
	}

	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errs.ErrValueOverflow
	}

	if v.Sign() < 0 || v.Cmp(MaxValue) > 0 {
		return nil, errs.ErrValueOverflow
	}

	return v, nil
}

// FixedWidth128 returns the 16-byte big-endian encoding of v, for the
// Seqner primitive's fixed 128-bit sequence number. It fails with
// ErrValueOverflow if v is negative or does not fit in 128 bits.
func FixedWidth128(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return nil, errs.ErrValueOverflow
	}

	raw := make([]byte, 16)
	v.FillBytes(raw)

	return raw, nil
}
