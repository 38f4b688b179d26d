package cesr

import (
	"fmt"

	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/matter"
)

// verserCode is the fixed "Version" derivation code: 4 bytes protocol
// ASCII, 1 byte major version, 1 byte minor version, 4 bytes genus code,
// for a 10-byte raw payload.
const verserCode = "0V"

// Verser encodes a protocol version: (protocol, major, minor, genus) into
// a compact fixed code.
type Verser struct {
	m        *matter.Matter
	protocol string
	major    uint8
	minor    uint8
	genus    string
}

// NewVerser constructs a Verser. protocol and genus must each be exactly
// 4 ASCII characters.
func NewVerser(protocol string, major, minor uint8, genus string) (*Verser, error) {
	if len(protocol) != 4 || len(genus) != 4 {
		return nil, fmt.Errorf("%w: protocol and genus must be 4 characters", errs.ErrRawMaterialSize)
	}

	raw := make([]byte, 10)
	copy(raw[0:4], protocol)
	raw[4] = major
	raw[5] = minor
	copy(raw[6:10], genus)

	m, err := matter.FromCodeRaw(verserCode, raw)
	if err != nil {
		return nil, err
	}

	return &Verser{m: m, protocol: protocol, major: major, minor: minor, genus: genus}, nil
}

// VerserFromQb64 constructs a Verser by projecting a textual qualified
// form.
func VerserFromQb64(qb64 string) (*Verser, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	raw := m.Raw()
	if len(raw) != 10 {
		return nil, fmt.Errorf("%w: version raw must be 10 bytes, got %d", errs.ErrRawMaterialSize, len(raw))
	}

	return &Verser{
		m:        m,
		protocol: string(raw[0:4]),
		major:    raw[4],
		minor:    raw[5],
		genus:    string(raw[6:10]),
	}, nil
}

func (v *Verser) Qb64() string  { return v.m.Qb64() }
func (v *Verser) Qb64b() []byte { return v.m.Qb64b() }
func (v *Verser) Qb2() []byte   { return v.m.Qb2() }
func (v *Verser) Code() string  { return v.m.Code() }
func (v *Verser) Raw() []byte   { return v.m.Raw() }

func (v *Verser) Protocol() string { return v.protocol }
func (v *Verser) Major() uint8     { return v.major }
func (v *Verser) Minor() uint8     { return v.minor }
func (v *Verser) Genus() string    { return v.genus }

// String renders the version as "protocol major.minor".
func (v *Verser) String() string {
	return fmt.Sprintf("%s %d.%d", v.protocol, v.major, v.minor)
}
