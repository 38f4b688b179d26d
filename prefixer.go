package cesr

import (
	"crypto/subtle"

	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/gateway"
	"github.com/cesrkit/cesr/matter"
)

// Prefixer is a self-certifying identifier: either a basic prefix (the raw
// public key of a Verfer) or a self-addressing prefix (a digest over a
// serialized inception event).
type Prefixer struct {
	m      *matter.Matter
	family gateway.Family // zero value for basic prefixes
}

// NewPrefixerFromVerfer builds a basic prefix, copying the Verfer's code
// and raw public key bytes directly.
func NewPrefixerFromVerfer(v *Verfer) (*Prefixer, error) {
	m, err := matter.FromCodeRaw(v.Code(), v.Raw())
	if err != nil {
		return nil, err
	}

	return &Prefixer{m: m}, nil
}

// NewPrefixerFromEvent builds a self-addressing prefix by digesting the
// serialized inception event under code's hash family.
func NewPrefixerFromEvent(code string, event []byte) (*Prefixer, error) {
	family, ok := digerFamilies[code]
	if !ok {
		return nil, errs.ErrInvalidCode
	}

	digest, err := gateway.Default().Digest(family, event)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw(code, digest)
	if err != nil {
		return nil, err
	}

	return &Prefixer{m: m, family: family}, nil
}

// PrefixerFromQb64 constructs a Prefixer by projecting a textual qualified
// form. Whether it is self-addressing is inferred from the code.
func PrefixerFromQb64(qb64 string) (*Prefixer, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	family := digerFamilies[m.Code()] // zero Family if basic prefix

	return &Prefixer{m: m, family: family}, nil
}

func (p *Prefixer) Qb64() string  { return p.m.Qb64() }
func (p *Prefixer) Qb64b() []byte { return p.m.Qb64b() }
func (p *Prefixer) Qb2() []byte   { return p.m.Qb2() }
func (p *Prefixer) Code() string  { return p.m.Code() }
func (p *Prefixer) Raw() []byte   { return p.m.Raw() }

// Verify checks this Prefixer against a serialized event. For a
// self-addressing prefix, it re-digests event and compares. A basic prefix
// has no event to check against and always returns false.
func (p *Prefixer) Verify(event []byte) (bool, error) {
	if p.family == "" {
		return false, nil
	}

	digest, err := gateway.Default().Digest(p.family, event)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(digest, p.m.Raw()) == 1, nil
}
