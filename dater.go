package cesr

import (
	"fmt"
	"strings"
	"time"

	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/matter"
)

// daterLayout is the canonical 32-character RFC-3339 form with
// microsecond precision CESR requires for Dater.
const daterLayout = "2006-01-02T15:04:05.000000-07:00"

// daterCode is the fixed "DateTime_Raw" derivation code: hard-size 4,
// raw-size 24, full-size 36. The 32 payload characters following the code
// are exactly the substituted dts text itself -- every character the
// substitution produces (digits, 'T', '-', 'c', 'd', 'p') is already a
// valid Base64-URL digit, so the textual qualified form IS the substituted
// string, and its decode is the raw 24 bytes. See DESIGN.md.
const daterCode = "1AAF"

// Dater is an RFC-3339 datetime with fractional seconds and a timezone
// offset. Its textual projection is the canonical 32-character form with
// ':' -> 'c', '.' -> 'd', and '+' -> 'p' substitutions, making it
// Base64-URL-safe; the substitutions are reversed to recover Dts.
type Dater struct {
	m   *matter.Matter
	dts string
}

// NewDater constructs a Dater from a time.Time, always materializing
// microsecond precision (".000000") even when t carries none.
func NewDater(t time.Time) (*Dater, error) {
	dts := t.UTC().Format(daterLayout)

	return newDaterFromCanonical(dts)
}

// NewDaterFromString constructs a Dater from an RFC-3339 datetime string,
// which must already carry the canonical 32-character microsecond form.
func NewDaterFromString(dts string) (*Dater, error) {
	if _, err := time.Parse(daterLayout, dts); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRawMaterialSize, err)
	}

	return newDaterFromCanonical(dts)
}

func newDaterFromCanonical(dts string) (*Dater, error) {
	qb64 := daterCode + encodeDaterText(dts)

	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Dater{m: m, dts: dts}, nil
}

// DaterFromQb64 constructs a Dater by projecting a textual qualified form.
func DaterFromQb64(qb64 string) (*Dater, error) {
	m, err := matter.FromQb64(qb64)
	if err != nil {
		return nil, err
	}

	hs := len(daterCode)
	dts := decodeDaterText(m.Qb64()[hs:])

	return &Dater{m: m, dts: dts}, nil
}

func (d *Dater) Qb64() string  { return d.m.Qb64() }
func (d *Dater) Qb64b() []byte { return d.m.Qb64b() }
func (d *Dater) Qb2() []byte   { return d.m.Qb2() }
func (d *Dater) Code() string  { return d.m.Code() }
func (d *Dater) Raw() []byte   { return d.m.Raw() }

// Dts returns the canonical RFC-3339 datetime string.
func (d *Dater) Dts() string { return d.dts }

// Datetime parses Dts back into a time.Time.
func (d *Dater) Datetime() (time.Time, error) {
	return time.Parse(daterLayout, d.dts)
}

func encodeDaterText(dts string) string {
	r := strings.NewReplacer(":", "c", ".", "d", "+", "p")

	return r.Replace(dts)
}

func decodeDaterText(raw string) string {
	r := strings.NewReplacer("c", ":", "d", ".", "p", "+")

	return r.Replace(raw)
}
