package cesr

import (
	"crypto/subtle"

	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/gateway"
	"github.com/cesrkit/cesr/matter"
)

// digerFamilies maps a digest derivation code to the Cryptographic
// Gateway family that produced it.
var digerFamilies = map[string]gateway.Family{
	"E": gateway.Blake3_256,
	"F": gateway.Blake2b_256,
	"G": gateway.Blake2s_256,
	"H": gateway.SHA3_256,
	"I": gateway.SHA2_256,
}

// Diger is a digest primitive: a (code, raw digest) pair that can be
// checked against an externally supplied byte sequence.
type Diger struct {
	m      *matter.Matter
	family gateway.Family
}

// NewDiger digests message using the hash function code selects.
func NewDiger(code string, message []byte) (*Diger, error) {
	family, ok := digerFamilies[code]
	if !ok {
		return nil, errs.ErrInvalidCode
	}

	digest, err := gateway.Default().Digest(family, message)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw(code, digest)
	if err != nil {
		return nil, err
	}

	return &Diger{m: m, family: family}, nil
}

// DigerFromQb64 constructs a Diger by projecting a textual qualified form.
func DigerFromQb64(qb64 string) (*Diger, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	family, ok := digerFamilies[m.Code()]
	if !ok {
		return nil, errs.ErrInvalidCode
	}

	return &Diger{m: m, family: family}, nil
}

func (d *Diger) Qb64() string  { return d.m.Qb64() }
func (d *Diger) Qb64b() []byte { return d.m.Qb64b() }
func (d *Diger) Qb2() []byte   { return d.m.Qb2() }
func (d *Diger) Code() string  { return d.m.Code() }
func (d *Diger) Raw() []byte   { return d.m.Raw() }

// Verify re-digests message under this Diger's algorithm and compares the
// result against the stored digest in constant time.
func (d *Diger) Verify(message []byte) (bool, error) {
	digest, err := gateway.Default().Digest(d.family, message)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(digest, d.m.Raw()) == 1, nil
}
