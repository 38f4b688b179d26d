package cesr

import (
	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/gateway"
	"github.com/cesrkit/cesr/matter"
)

// cigarCodes maps a signing family to the non-indexed signature code
// carrying that family's raw signature bytes.
var cigarCodes = map[gateway.Family]string{
	gateway.Ed25519:    "0B",
	gateway.ECDSA256k1: "0C",
	gateway.Ed448:      "1AAC",
}

// Cigar is a non-indexed signature, optionally carrying a reference to the
// Verfer it was produced against.
type Cigar struct {
	m      *matter.Matter
	verfer *Verfer
}

func newCigar(family gateway.Family, sig []byte, verfer *Verfer) (*Cigar, error) {
	code, ok := cigarCodes[family]
	if !ok {
		return nil, errs.ErrInvalidCode
	}

	m, err := matter.FromCodeRaw(code, sig)
	if err != nil {
		return nil, err
	}

	return &Cigar{m: m, verfer: verfer}, nil
}

// CigarFromQb64 constructs a Cigar by projecting a textual qualified form.
// The returned Cigar carries no Verfer reference.
func CigarFromQb64(qb64 string) (*Cigar, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Cigar{m: m}, nil
}

func (c *Cigar) Qb64() string  { return c.m.Qb64() }
func (c *Cigar) Qb64b() []byte { return c.m.Qb64b() }
func (c *Cigar) Qb2() []byte   { return c.m.Qb2() }
func (c *Cigar) Code() string  { return c.m.Code() }
func (c *Cigar) Raw() []byte   { return c.m.Raw() }

// Verfer returns the public key this Cigar was produced against, or nil if
// this Cigar was built without one (e.g. via CigarFromQb64).
func (c *Cigar) Verfer() *Verfer { return c.verfer }
