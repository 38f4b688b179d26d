package cesr

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cesrkit/cesr/codes"
	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/matter"
)

// smallSoftLimit is the largest quadlet count a 2-character soft field
// (ss=2) can hold: 64^2 - 1.
const smallSoftLimit = 1<<12 - 1

// Bexter is variable-length Base64 text. A Bexter built from text via
// NewBexter carries that exact text; Bext always returns it verbatim,
// never a value reconstructed by re-encoding raw (Base64-URL's canonical
// encoder would silently zero any non-canonical low bits of a
// non-quadlet-aligned input and change what Bext reports). A Bexter
// projected from a qualified form instead reports the canonical text its
// raw payload decodes to, which is the only text recoverable from the wire
// form alone.
type Bexter struct {
	m    *matter.Matter
	bext string
}

// NewBexter constructs a Bexter from Base64-URL text (no '=' padding).
func NewBexter(text string) (*Bexter, error) {
	raw, err := decodeBextText(text)
	if err != nil {
		return nil, err
	}

	code, err := bexterFamilyCode("Bexter", raw)
	if err != nil {
		return nil, err
	}

	m, err := matter.FromCodeRaw(code, raw)
	if err != nil {
		return nil, err
	}

	return &Bexter{m: m, bext: text}, nil
}

// BexterFromQb64 constructs a Bexter by projecting a textual qualified
// form.
func BexterFromQb64(qb64 string) (*Bexter, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Bexter{m: m, bext: base64.RawURLEncoding.EncodeToString(m.Raw())}, nil
}

func (b *Bexter) Qb64() string  { return b.m.Qb64() }
func (b *Bexter) Qb64b() []byte { return b.m.Qb64b() }
func (b *Bexter) Qb2() []byte   { return b.m.Qb2() }
func (b *Bexter) Code() string  { return b.m.Code() }
func (b *Bexter) Raw() []byte   { return b.m.Raw() }

// Bext returns the Base64-URL text this Bexter carries.
func (b *Bexter) Bext() string { return b.bext }

// bexterFamilyCode picks the lead-indexed sibling code (and small-vs-large
// variable table) for family ("Bexter", "Texter", or "Tagger") given the
// already-decoded raw payload, and returns it as the hard+soft template
// matter.FromCodeRaw expects (soft field zeroed; FromCodeRaw fills it in).
func bexterFamilyCode(family string, raw []byte) (string, error) {
	lead := (3 - len(raw)%3) % 3
	size := (len(raw) + lead) / 3

	code, err := codes.VariableCode(family, lead, size > smallSoftLimit)
	if err != nil {
		return "", err
	}

	_, ss, err := codes.HardSizeOf(code[0])
	if err != nil {
		return "", err
	}

	return code + strings.Repeat("A", ss), nil
}

// decodeBextText decodes arbitrary Base64-URL text (the Bexter/Tagger
// "bext" form) into raw bytes, left-padding with 'A' characters to the next
// 4-char boundary first. Go's base64 decoder only accepts strings whose
// length mod 4 is 0, 2, or 3 -- never 1 -- and silently drops the trailing
// unused bits of a partial final character, which are non-zero for ordinary
// text (ilks like "icp", arbitrary labels), so such text would not survive
// re-encoding. Padding to a 4-char boundary sidesteps both problems: the
// padded length is
// always a whole number of quadlets, so the decode always succeeds and
// always yields a byte count that is itself a whole number of 3-byte
// groups, needing no further lead-byte padding on the raw side (lead is
// always 0 for text produced this way). See DESIGN.md.
func decodeBextText(text string) ([]byte, error) {
	ls := (4 - len(text)%4) % 4
	padded := strings.Repeat("A", ls) + text

	raw, err := base64.RawURLEncoding.DecodeString(padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRawMaterialSize, err)
	}

	return raw, nil
}
