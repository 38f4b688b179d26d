package cesr

import (
	"math/big"

	"github.com/cesrkit/cesr/matter"
	"github.com/cesrkit/cesr/ordinal"
)

// Seqner is a 128-bit sequence number, carried in the fixed "0A" code.
type Seqner struct {
	m  *matter.Matter
	sn *big.Int
}

// NewSeqner constructs a Seqner from an integer sequence number.
func NewSeqner(sn *big.Int) (*Seqner, error) {
	raw, err := ordinal.FixedWidth128(sn)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw("0A", raw)
	if err != nil {
		return nil, err
	}

	return &Seqner{m: m, sn: new(big.Int).Set(sn)}, nil
}

// NewSeqnerFromUint64 is a convenience constructor for non-negative
// machine-word sequence numbers.
func NewSeqnerFromUint64(sn uint64) (*Seqner, error) {
	return NewSeqner(new(big.Int).SetUint64(sn))
}

// NewSeqnerFromHex constructs a Seqner from a "0x"-prefixed or bare hex
// string.
func NewSeqnerFromHex(hex string) (*Seqner, error) {
	v, err := ordinal.ParseHex(hex)
	if err != nil {
		return nil, err
	}

	return NewSeqner(v)
}

// SeqnerFromQb64 constructs a Seqner by projecting a textual qualified
// form.
func SeqnerFromQb64(qb64 string) (*Seqner, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Seqner{m: m, sn: ordinal.Decode(m.Raw())}, nil
}

func (s *Seqner) Qb64() string  { return s.m.Qb64() }
func (s *Seqner) Qb64b() []byte { return s.m.Qb64b() }
func (s *Seqner) Qb2() []byte   { return s.m.Qb2() }
func (s *Seqner) Code() string  { return s.m.Code() }
func (s *Seqner) Raw() []byte   { return s.m.Raw() }

// Sn returns the sequence number as an integer.
func (s *Seqner) Sn() *big.Int { return new(big.Int).Set(s.sn) }
