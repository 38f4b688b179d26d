package cesr

import (
	"encoding/base64"
	"fmt"

	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/matter"
)

// Tagger is a short Base64-URL token, 1-10 characters, stored in its own
// variable-code sibling family ("Tagger_L0/L1/L2", codes 4C/5C/6C and
// 7CAA/8CAA/9CAA). See DESIGN.md for why this reuses the variable-code
// machinery rather than the fixed single-quadlet family spec.md's prose
// names ("1AAH"..."1AAP"): no fixed-width encoding admits every length
// from 1 to 10 characters under strict quadlet alignment.
type Tagger struct {
	m   *matter.Matter
	tag string
}

// NewTagger constructs a Tagger from a 1-10 character Base64-URL token.
// Tokens of any length in that range are accepted, including ones whose
// length mod 4 is 1 (e.g. a single character) or that carry non-canonical
// trailing bits (e.g. "icp") -- see decodeBextText in bexter.go.
func NewTagger(tag string) (*Tagger, error) {
	if len(tag) < 1 || len(tag) > 10 {
		return nil, fmt.Errorf("%w: tag length %d outside [1,10]", errs.ErrRawMaterialSize, len(tag))
	}

	raw, err := decodeBextText(tag)
	if err != nil {
		return nil, err
	}

	code, err := bexterFamilyCode("Tagger", raw)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw(code, raw)
	if err != nil {
		return nil, err
	}

	return &Tagger{m: m, tag: tag}, nil
}

// TaggerFromQb64 constructs a Tagger by projecting a textual qualified
// form.
func TaggerFromQb64(qb64 string) (*Tagger, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Tagger{m: m, tag: base64.RawURLEncoding.EncodeToString(m.Raw())}, nil
}

func (tg *Tagger) Qb64() string  { return tg.m.Qb64() }
func (tg *Tagger) Qb64b() []byte { return tg.m.Qb64b() }
func (tg *Tagger) Qb2() []byte   { return tg.m.Qb2() }
func (tg *Tagger) Code() string  { return tg.m.Code() }
func (tg *Tagger) Raw() []byte   { return tg.m.Raw() }

// Tag returns the Base64-URL token.
func (tg *Tagger) Tag() string { return tg.tag }
