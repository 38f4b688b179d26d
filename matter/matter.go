// Package matter implements the CESR Matter engine: the universal
// construct/project logic shared by every typed primitive in the CESR
// primitive layer.
//
// A Matter is an immutable (code, raw) pair. It is built from exactly one
// of a (code, raw) pair, a textual qualified form (qb64), or a binary
// qualified form (qb2), and thereafter only projects — it never mutates.
// Typed primitives (Verfer, Diger, Number, ...) contain a Matter and
// forward Qb64/Qb64b/Qb2/Code/Raw rather than inheriting from it; see
// DESIGN.md for why composition replaces the source implementation's class
// dispatch on code.
//
// # Basic usage
//
//	m, err := matter.New(matter.WithCode("E"), matter.WithRaw(digest))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Qb64())
//
//	m2, err := matter.New(matter.WithQb64(m.Qb64()))
//	// m2.Raw() == m.Raw(), m2.Code() == m.Code()
package matter

import (
	"encoding/base64"
	"fmt"

	"github.com/cesrkit/cesr/codes"
	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/internal/b64"
	"github.com/cesrkit/cesr/internal/options"
)

// Matter is the immutable (code, raw) state shared by every CESR primitive.
type Matter struct {
	code string
	raw  []byte
}

// Code returns the derivation code.
func (m *Matter) Code() string { return m.code }

// Raw returns the raw payload. Callers must not mutate the returned slice.
func (m *Matter) Raw() []byte { return m.raw }

// builder collects constructor inputs before New picks exactly one source.
type builder struct {
	code  string
	raw   []byte
	qb64  string
	qb2   []byte
	set   [4]bool // code, raw, qb64, qb2 given, in that order
}

// Option configures a Matter constructor call.
type Option = options.Option[*builder]

// WithCode supplies the derivation code for a (code, raw) construction.
func WithCode(code string) Option {
	return options.NoError(func(b *builder) { b.code = code; b.set[0] = true })
}

// WithRaw supplies the raw payload for a (code, raw) construction.
func WithRaw(raw []byte) Option {
	return options.NoError(func(b *builder) { b.raw = raw; b.set[1] = true })
}

// WithQb64 constructs from a textual qualified form.
func WithQb64(s string) Option {
	return options.NoError(func(b *builder) { b.qb64 = s; b.set[2] = true })
}

// WithQb64b constructs from a textual qualified form given as bytes.
func WithQb64b(s []byte) Option {
	return options.NoError(func(b *builder) { b.qb64 = string(s); b.set[2] = true })
}

// WithQb2 constructs from a binary qualified form.
func WithQb2(b2 []byte) Option {
	return options.NoError(func(b *builder) { b.qb2 = b2; b.set[3] = true })
}

// New constructs a Matter from exactly one of: a (code, raw) pair, a qb64
// string, or a qb2 byte slice. It fails with ErrEmptyMaterial if none of
// those was supplied.
func New(opts ...Option) (*Matter, error) {
	b := &builder{}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	switch {
	case b.set[2]:
		return FromQb64(b.qb64)
	case b.set[3]:
		return FromQb2(b.qb2)
	case b.set[0]:
		return FromCodeRaw(b.code, b.raw)
	default:
		return nil, errs.ErrEmptyMaterial
	}
}

// FromCodeRaw builds a Matter from an explicit (code, raw) pair. For
// variable-size code families, code must be the full hard+soft template
// (the soft digits are recomputed from len(raw) and overwritten, and the
// lead selector is switched to the sibling whose lead len(raw) needs).
func FromCodeRaw(code string, raw []byte) (*Matter, error) {
	if code == "" {
		return nil, errs.ErrEmptyMaterial
	}

	hs, ss, err := codes.HardSizeOf(code[0])
	if err != nil {
		return nil, err
	}

	if len(code) != hs+ss {
		return nil, fmt.Errorf("%w: code %q has length %d, want %d", errs.ErrInvalidCodeSize, code, len(code), hs+ss)
	}

	hardPrefix := code[:hs]

	entry, err := codes.Lookup(hardPrefix)
	if err != nil {
		return nil, err
	}

	switch entry.Category {
	case codes.Fixed:
		if len(raw) != entry.RS {
			return nil, fmt.Errorf("%w: code %q wants %d raw bytes, got %d", errs.ErrRawMaterialSize, code, entry.RS, len(raw))
		}

		return &Matter{code: code, raw: raw}, nil

	default: // codes.Variable
		// Sibling selectors are consecutive by lead ('4'/'5'/'6',
		// '7'/'8'/'9'), so the selector for len(raw)'s lead is an offset.
		if lead := b64.PadSize(len(raw)); lead != entry.Lead {
			hardPrefix = string(hardPrefix[0]-byte(entry.Lead)+byte(lead)) + hardPrefix[1:]

			entry, err = codes.Lookup(hardPrefix)
			if err != nil {
				return nil, err
			}
		}

		size := ceilDiv(len(raw)+entry.Lead, 3)

		soft, err := b64.EncodeSoft(size, ss)
		if err != nil {
			return nil, fmt.Errorf("%w: code %q size %d exceeds soft field capacity", errs.ErrRawMaterialSize, code, size)
		}

		return &Matter{code: hardPrefix + soft, raw: raw}, nil
	}
}

// FromQb64 builds a Matter from a textual qualified form, truncating to
// exactly the code's computed full-size.
func FromQb64(s string) (*Matter, error) {
	if s == "" {
		return nil, errs.ErrEmptyMaterial
	}

	hs, ss, err := codes.HardSizeOf(s[0])
	if err != nil {
		return nil, err
	}

	if len(s) < hs {
		return nil, fmt.Errorf("%w: %q shorter than hard-size %d", errs.ErrShortMaterial, s, hs)
	}

	hardPrefix := s[:hs]

	entry, err := codes.Lookup(hardPrefix)
	if err != nil {
		return nil, err
	}

	var fs, lead int

	switch entry.Category {
	case codes.Fixed:
		fs = entry.FS
	default: // codes.Variable
		if len(s) < hs+ss {
			return nil, fmt.Errorf("%w: %q shorter than hard+soft size %d", errs.ErrShortMaterial, s, hs+ss)
		}

		size, err := b64.DecodeSoft(s[hs : hs+ss])
		if err != nil {
			return nil, err
		}

		fs = hs + ss + size*4
		lead = entry.Lead
	}

	if len(s) < fs {
		return nil, fmt.Errorf("%w: %q (%d chars) shorter than full-size %d", errs.ErrShortMaterial, s, len(s), fs)
	}

	truncated := s[:fs]
	finalCode := truncated[:hs+ss]
	payload := truncated[hs+ss:]

	var raw []byte

	switch entry.Category {
	case codes.Fixed:
		ps := hs % 4

		raw, err = b64.DecodeFixed(payload, ps)
		if err != nil {
			return nil, err
		}
	default:
		raw, err = b64.DecodeVariable(payload, lead)
		if err != nil {
			return nil, err
		}
	}

	return &Matter{code: finalCode, raw: raw}, nil
}

// FromQb2 builds a Matter from a binary qualified form. Per the
// cross-format equivalence invariant (qb2(x) == base64url_decode(qb64(x))),
// this is implemented as the inverse transform: re-encode qb2 as text and
// delegate to FromQb64.
func FromQb2(qb2 []byte) (*Matter, error) {
	if len(qb2) == 0 {
		return nil, errs.ErrEmptyMaterial
	}

	return FromQb64(base64.RawURLEncoding.EncodeToString(qb2))
}

// Qb64 projects the Matter to its textual qualified form.
func (m *Matter) Qb64() string {
	hs, _, err := codes.HardSizeOf(m.code[0])
	if err != nil {
		// Unreachable for a Matter built through this package's own
		// constructors, which always validate the code up front.
		panic(err)
	}

	hardPrefix := m.code[:hs]

	entry, err := codes.Lookup(hardPrefix)
	if err != nil {
		panic(err)
	}

	switch entry.Category {
	case codes.Fixed:
		return m.code + b64.EncodeFixed(m.raw)
	default:
		return m.code + b64.EncodeVariable(m.raw, entry.Lead)
	}
}

// Qb64b projects the Matter to its textual qualified form as bytes.
func (m *Matter) Qb64b() []byte { return []byte(m.Qb64()) }

// Qb2 projects the Matter to its binary qualified form.
func (m *Matter) Qb2() []byte {
	decoded, err := base64.RawURLEncoding.DecodeString(m.Qb64())
	if err != nil {
		panic(err)
	}

	return decoded
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
