package cesr

import "strings"

// Pather is a SAD path expression: a Bexter whose text encodes a sequence
// of field labels separated by '-', with '-' inside a label escaped as
// "--".
type Pather struct {
	b     *Bexter
	parts []string
}

// NewPather constructs a Pather from a sequence of unescaped path
// components.
func NewPather(parts []string) (*Pather, error) {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = strings.ReplaceAll(p, "-", "--")
	}

	b, err := NewBexter(strings.Join(escaped, "-"))
	if err != nil {
		return nil, err
	}

	return &Pather{b: b, parts: append([]string(nil), parts...)}, nil
}

// PatherFromQb64 constructs a Pather by projecting a textual qualified
// form.
func PatherFromQb64(qb64 string) (*Pather, error) {
	b, err := BexterFromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Pather{b: b, parts: unescapePath(b.Bext())}, nil
}

func (p *Pather) Qb64() string  { return p.b.Qb64() }
func (p *Pather) Qb64b() []byte { return p.b.Qb64b() }
func (p *Pather) Qb2() []byte   { return p.b.Qb2() }
func (p *Pather) Code() string  { return p.b.Code() }
func (p *Pather) Raw() []byte   { return p.b.Raw() }

// Parts returns the unescaped path components.
func (p *Pather) Parts() []string { return append([]string(nil), p.parts...) }

// Path returns the escaped, '-'-joined path text.
func (p *Pather) Path() string { return p.b.Bext() }

func unescapePath(escaped string) []string {
	var parts []string

	var cur strings.Builder

	runes := []rune(escaped)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '-' {
			if i+1 < len(runes) && runes[i+1] == '-' {
				cur.WriteRune('-')
				i++

				continue
			}

			parts = append(parts, cur.String())
			cur.Reset()

			continue
		}

		cur.WriteRune(runes[i])
	}

	parts = append(parts, cur.String())

	return parts
}
