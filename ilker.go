package cesr

import "github.com/cesrkit/cesr/errs"

// Ilker is a three-character message-type marker ("icp", "rot", "ixn",
// ...), stored in a fixed-length Tagger code.
type Ilker struct {
	t *Tagger
}

// NewIlker constructs an Ilker from a three-character message-type code.
func NewIlker(ilk string) (*Ilker, error) {
	if len(ilk) != 3 {
		return nil, errs.ErrRawMaterialSize
	}

	t, err := NewTagger(ilk)
	if err != nil {
		return nil, err
	}

	return &Ilker{t: t}, nil
}

// IlkerFromQb64 constructs an Ilker by projecting a textual qualified form.
// A three-character ilk always pads to exactly one leading 'A' character
// before decoding (see decodeBextText in bexter.go), so the canonical
// re-decode TaggerFromQb64 reports is always that leading 'A' plus the
// original three-character ilk; IlkerFromQb64 strips it and rebuilds
// through NewTagger so Ilk reports the ilk itself, not the padded form.
func IlkerFromQb64(qb64 string) (*Ilker, error) {
	t, err := TaggerFromQb64(qb64)
	if err != nil {
		return nil, err
	}

	if len(t.Tag()) != 4 || t.Tag()[0] != 'A' {
		return nil, errs.ErrRawMaterialSize
	}

	ilk, err := NewTagger(t.Tag()[1:])
	if err != nil {
		return nil, err
	}

	return &Ilker{t: ilk}, nil
}

func (i *Ilker) Qb64() string  { return i.t.Qb64() }
func (i *Ilker) Qb64b() []byte { return i.t.Qb64b() }
func (i *Ilker) Qb2() []byte   { return i.t.Qb2() }
func (i *Ilker) Code() string  { return i.t.Code() }
func (i *Ilker) Raw() []byte   { return i.t.Raw() }

// Ilk returns the three-character message-type marker.
func (i *Ilker) Ilk() string { return i.t.Tag() }
