package cesr

import (
	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/gateway"
	"github.com/cesrkit/cesr/matter"
)

// verifierFamilies maps the public-key derivation codes Verfer accepts to
// the cipher-suite family the Cryptographic Gateway should use for verify.
var verifierFamilies = map[string]gateway.Family{
	"A": gateway.Ed25519, // seed code; not itself a public key, rejected below
	"B": gateway.Ed25519,
	"D": gateway.Ed25519,
	"J": gateway.ECDSA256k1,
	"1AAB": gateway.ECDSA256k1,
	"K": gateway.Ed448,
	"L": gateway.Ed448,
}

// verfierPublicCodes is the subset of verifierFamilies that are actual
// public keys, as opposed to seed codes sharing the same selector space.
var verfierPublicCodes = map[string]bool{
	"B": true, "D": true, "1AAB": true, "L": true,
}

// Verfer is a public verification key.
type Verfer struct {
	m *matter.Matter
}

// NewVerfer constructs a Verfer from a public-key derivation code and raw
// key bytes. It fails with ErrInvalidCode if code is not a public-key code.
func NewVerfer(code string, raw []byte) (*Verfer, error) {
	if !verfierPublicCodes[code] {
		return nil, errs.ErrInvalidCode
	}

	m, err := matter.FromCodeRaw(code, raw)
	if err != nil {
		return nil, err
	}

	return &Verfer{m: m}, nil
}

// VerferFromQb64 constructs a Verfer by projecting a textual qualified
// form, validating that the embedded code is a public-key code.
func VerferFromQb64(qb64 string) (*Verfer, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	if !verfierPublicCodes[m.Code()] {
		return nil, errs.ErrInvalidCode
	}

	return &Verfer{m: m}, nil
}

func (v *Verfer) Qb64() string  { return v.m.Qb64() }
func (v *Verfer) Qb64b() []byte { return v.m.Qb64b() }
func (v *Verfer) Qb2() []byte   { return v.m.Qb2() }
func (v *Verfer) Code() string  { return v.m.Code() }
func (v *Verfer) Raw() []byte   { return v.m.Raw() }

// Verify reports whether sig (raw signature bytes) is valid over message
// under this key, delegating through the Cryptographic Gateway selected by
// this Verfer's code.
func (v *Verfer) Verify(sig, message []byte) (bool, error) {
	fam, ok := verifierFamilies[v.m.Code()]
	if !ok {
		return false, errs.ErrInvalidCode
	}

	return gateway.Default().Verify(fam, v.m.Raw(), sig, message)
}
