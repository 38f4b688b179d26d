package cesr

import (
	"math/big"

	"github.com/cesrkit/cesr/errs"
)

// labelKind distinguishes which underlying primitive a Labeler is
// carrying, selected by the content of the label at construction time.
type labelKind uint8

const (
	labelNumber labelKind = iota
	labelTag
	labelText
)

// Labeler is a field-map label: an integer label is carried in a Number
// code, a short Base64 label (1-10 chars) in a Tagger code, and anything
// else in a Texter code. Selection is by content; Label reverses it.
type Labeler struct {
	kind   labelKind
	number *Number
	tagger *Tagger
	texter *Texter
	label  string
}

// NewLabelerFromInt constructs a Labeler carrying an integer field label.
func NewLabelerFromInt(v int64) (*Labeler, error) {
	n, err := NewNumber(big.NewInt(v))
	if err != nil {
		return nil, err
	}

	return &Labeler{kind: labelNumber, number: n}, nil
}

// NewLabelerFromText constructs a Labeler from a string field label,
// selecting a Tagger code for short Base64-safe labels and a Texter code
// otherwise.
func NewLabelerFromText(label string) (*Labeler, error) {
	if len(label) >= 1 && len(label) <= 10 {
		if t, err := NewTagger(label); err == nil {
			return &Labeler{kind: labelTag, tagger: t, label: label}, nil
		}
	}

	t, err := NewTexter([]byte(label))
	if err != nil {
		return nil, err
	}

	return &Labeler{kind: labelText, texter: t, label: label}, nil
}

// LabelerFromQb64 constructs a Labeler by projecting a textual qualified
// form, inferring the underlying kind from the code's selector.
func LabelerFromQb64(qb64 string) (*Labeler, error) {
	if len(qb64) == 0 {
		return nil, errs.ErrEmptyMaterial
	}

	switch qb64[0] {
	case 'M', 'N':
		n, err := NumberFromQb64(qb64)
		if err != nil {
			return nil, err
		}

		return &Labeler{kind: labelNumber, number: n}, nil
	case '4', '5', '6', '7', '8', '9':
		// The second code character picks the sub-family ('A' Bexter, 'B'
		// Texter, 'C' Tagger) in both the small and large variable tables.
		if len(qb64) < 2 {
			return nil, errs.ErrShortMaterial
		}

		if qb64[1] == 'C' {
			t, err := TaggerFromQb64(qb64)
			if err != nil {
				return nil, err
			}

			return &Labeler{kind: labelTag, tagger: t, label: t.Tag()}, nil
		}

		t, err := TexterFromQb64(qb64)
		if err != nil {
			return nil, err
		}

		return &Labeler{kind: labelText, texter: t, label: t.Text()}, nil
	default:
		return nil, errs.ErrInvalidCode
	}
}

func (l *Labeler) Qb64() string {
	switch l.kind {
	case labelNumber:
		return l.number.Qb64()
	case labelTag:
		return l.tagger.Qb64()
	default:
		return l.texter.Qb64()
	}
}

func (l *Labeler) Qb64b() []byte { return []byte(l.Qb64()) }

func (l *Labeler) Qb2() []byte {
	switch l.kind {
	case labelNumber:
		return l.number.Qb2()
	case labelTag:
		return l.tagger.Qb2()
	default:
		return l.texter.Qb2()
	}
}

func (l *Labeler) Code() string {
	switch l.kind {
	case labelNumber:
		return l.number.Code()
	case labelTag:
		return l.tagger.Code()
	default:
		return l.texter.Code()
	}
}

// Label returns the label's textual form: the decimal string of an
// integer label, or the original text otherwise.
func (l *Labeler) Label() string {
	if l.kind == labelNumber {
		return l.number.Num().String()
	}

	return l.label
}
