package cesr

import "github.com/cesrkit/cesr/matter"

// Texter is variable-length arbitrary bytes, using the variable-bytes code
// family with lead-byte discrimination.
type Texter struct {
	m *matter.Matter
}

// NewTexter constructs a Texter from arbitrary raw bytes.
func NewTexter(raw []byte) (*Texter, error) {
	code, err := bexterFamilyCode("Texter", raw)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw(code, raw)
	if err != nil {
		return nil, err
	}

	return &Texter{m: m}, nil
}

// TexterFromQb64 constructs a Texter by projecting a textual qualified
// form.
func TexterFromQb64(qb64 string) (*Texter, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Texter{m: m}, nil
}

func (t *Texter) Qb64() string  { return t.m.Qb64() }
func (t *Texter) Qb64b() []byte { return t.m.Qb64b() }
func (t *Texter) Qb2() []byte   { return t.m.Qb2() }
func (t *Texter) Code() string  { return t.m.Code() }
func (t *Texter) Raw() []byte   { return t.m.Raw() }

// Text returns the raw bytes decoded as a UTF-8 string.
func (t *Texter) Text() string { return string(t.m.Raw()) }
