// Package b64 implements the Base64-URL pad-bit plumbing the Matter engine
// needs: computing a pad class from a raw byte length, and encoding or
// decoding a raw payload against that pad class without ever materializing
// a padding character ('=') in the output.
//
// Two schemes live here, matching spec §4.2:
//
//   - Fixed-code padding: ps = (3 - len(raw)%3) % 3 zero bytes are
//     conceptually prepended to raw before Base64-URL-encoding; the
//     leading ps characters of that encoding are dropped because the
//     code's own hard-size characters already supply them (for every
//     fixed code registered in package codes, hs%4 equals this ps).
//   - Variable-code leading: lead zero bytes are prepended to raw itself
//     (not dropped anywhere) so that lead+len(raw) is a whole number of
//     3-byte quadlets; the resulting encoding needs no character drop.
package b64

import (
	"encoding/base64"
	"strings"

	"github.com/cesrkit/cesr/errs"
)

// PadSize returns (3 - rawLen%3) % 3, the number of zero bytes needed to
// bring rawLen up to the next multiple of 3.
func PadSize(rawLen int) int {
	return (3 - rawLen%3) % 3
}

// EncodeFixed Base64-URL-encodes raw as a fixed-code payload: ps zero bytes
// are prepended, the result is encoded, and the leading ps characters
// (always zero-valued, per the pad invariant) are dropped.
func EncodeFixed(raw []byte) string {
	ps := PadSize(len(raw))
	buf := make([]byte, ps+len(raw))
	copy(buf[ps:], raw)

	return base64.RawURLEncoding.EncodeToString(buf)[ps:]
}

// DecodeFixed reverses EncodeFixed given the pad class ps. It fails with
// ErrNonZeroPadding if the reconstructed pad bytes are not all zero.
func DecodeFixed(payload string, ps int) ([]byte, error) {
	full := strings.Repeat("A", ps) + payload

	decoded, err := base64.RawURLEncoding.DecodeString(full)
	if err != nil {
		return nil, err
	}

	for i := 0; i < ps; i++ {
		if decoded[i] != 0 {
			return nil, errs.ErrNonZeroPadding
		}
	}

	return decoded[ps:], nil
}

// EncodeVariable Base64-URL-encodes raw as a variable-code payload: lead
// zero bytes are prepended so the total length is a whole number of
// quadlets; no characters are dropped.
func EncodeVariable(raw []byte, lead int) string {
	buf := make([]byte, lead+len(raw))
	copy(buf[lead:], raw)

	return base64.RawURLEncoding.EncodeToString(buf)
}

// DecodeVariable reverses EncodeVariable given lead. It fails with
// ErrNonZeroPadding if the leading lead bytes are not all zero.
func DecodeVariable(payload string, lead int) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}

	if len(decoded) < lead {
		return nil, errs.ErrShortMaterial
	}

	for i := 0; i < lead; i++ {
		if decoded[i] != 0 {
			return nil, errs.ErrNonZeroPadding
		}
	}

	return decoded[lead:], nil
}

// softAlphabet is the Base64-URL digit alphabet used to read and write the
// soft field of a variable code as a plain base-64 numeral — a sequence of
// 6-bit digits, independent of byte alignment. This is deliberately not
// routed through encoding/base64: the soft field is an integer written in
// base 64, not a byte string that happens to decode as one.
const softAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// EncodeSoft encodes size (a quadlet count) as a ss-character base-64
// numeral, for the soft field of a variable code.
func EncodeSoft(size, ss int) (string, error) {
	limit := int64(1) << uint(6*ss)
	if size < 0 || int64(size) >= limit {
		return "", errs.ErrInvalidSoft
	}

	out := make([]byte, ss)
	for i := ss - 1; i >= 0; i-- {
		out[i] = softAlphabet[size&0x3F]
		size >>= 6
	}

	return string(out), nil
}

// DecodeSoft decodes a base-64-numeral soft field back into an integer
// quadlet count.
func DecodeSoft(soft string) (int, error) {
	v := 0
	for i := 0; i < len(soft); i++ {
		idx := strings.IndexByte(softAlphabet, soft[i])
		if idx < 0 {
			return 0, errs.ErrInvalidSoft
		}
		v = v<<6 | idx
	}

	return v, nil
}
