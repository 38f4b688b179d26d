package cesr

import (
	"math/big"

	"github.com/cesrkit/cesr/matter"
	"github.com/cesrkit/cesr/ordinal"
)

// Number is an arbitrary ordinal, auto-selecting the minimum admissible
// code width ("M" 2B, "N" 8B, "0H" 16B, "2AAA" 24B). See DESIGN.md for the
// resolution of spec.md's open question on whether the all-ones 2-byte
// value ("MAA_" / 2^16-1) is a valid value or a sentinel: here it is an
// ordinary value.
type Number struct {
	m   *matter.Matter
	num *big.Int
}

// NewNumber constructs a Number from an integer, selecting the minimum
// admissible code width. Fails with ErrValueOverflow for negative values
// or values >= 2^192.
func NewNumber(v *big.Int) (*Number, error) {
	raw, alias, err := ordinal.Encode(v)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw(alias, raw)
	if err != nil {
		return nil, err
	}

	return &Number{m: m, num: new(big.Int).Set(v)}, nil
}

// NewNumberFromUint64 is a convenience constructor for non-negative
// machine-word values.
func NewNumberFromUint64(v uint64) (*Number, error) {
	return NewNumber(new(big.Int).SetUint64(v))
}

// NewNumberFromHex constructs a Number from a "0x"-prefixed or bare hex
// string.
func NewNumberFromHex(hex string) (*Number, error) {
	v, err := ordinal.ParseHex(hex)
	if err != nil {
		return nil, err
	}

	return NewNumber(v)
}

// NumberFromQb64 constructs a Number by projecting a textual qualified
// form.
func NumberFromQb64(qb64 string) (*Number, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Number{m: m, num: ordinal.Decode(m.Raw())}, nil
}

func (n *Number) Qb64() string  { return n.m.Qb64() }
func (n *Number) Qb64b() []byte { return n.m.Qb64b() }
func (n *Number) Qb2() []byte   { return n.m.Qb2() }
func (n *Number) Code() string  { return n.m.Code() }
func (n *Number) Raw() []byte   { return n.m.Raw() }

// Num returns the ordinal value as an integer.
func (n *Number) Num() *big.Int { return new(big.Int).Set(n.num) }
