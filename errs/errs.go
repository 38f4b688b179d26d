// Package errs defines the flat error taxonomy shared by the CESR primitive
// layer: the code tables, the Matter engine, and every typed primitive built
// on top of it.
//
// Each error kind is a sentinel so callers can use errors.Is against a
// stable value while the wrapping fmt.Errorf call still attaches the
// offending code and the expected/actual sizes for debugging.
package errs

import "errors"

var (
	// ErrUnknownCode means a derivation code string is not present in any
	// of the small, fixed, or variable code tables.
	ErrUnknownCode = errors.New("cesr: unknown derivation code")

	// ErrUnknownSelector means a code's first character has no entry in
	// the selector-to-hard-size map.
	ErrUnknownSelector = errors.New("cesr: unknown code selector")

	// ErrInvalidCodeSize means len(code) != hard-size + soft-size for the
	// code's table entry.
	ErrInvalidCodeSize = errors.New("cesr: invalid code size")

	// ErrInvalidCode means a typed primitive constructor was given a code
	// outside its accepted family (e.g. a digest code given to Verfer).
	ErrInvalidCode = errors.New("cesr: invalid code for this primitive")

	// ErrRawMaterialSize means the raw payload length does not match what
	// the code requires (fixed raw-size, or variable code's size bound).
	ErrRawMaterialSize = errors.New("cesr: raw material size mismatch")

	// ErrShortMaterial means a qualified form is shorter than the code's
	// computed full-size.
	ErrShortMaterial = errors.New("cesr: qualified material too short")

	// ErrNonZeroPadding means a decoded pad region had a nonzero bit.
	ErrNonZeroPadding = errors.New("cesr: non-zero padding bits")

	// ErrValueOverflow means an integer value is negative or exceeds the
	// largest encodable ordinal (2^192 - 1).
	ErrValueOverflow = errors.New("cesr: value overflow")

	// ErrEmptyMaterial means none of (code+raw), qb64, or qb2 was given to
	// a constructor.
	ErrEmptyMaterial = errors.New("cesr: no material supplied")

	// ErrInvalidSoft means a variable code's soft (size) field failed to
	// decode as a Base64 integer, or decoded outside its representable
	// range.
	ErrInvalidSoft = errors.New("cesr: invalid soft size field")

	// ErrCryptoFailure means the Cryptographic Gateway could not perform
	// the requested sign/verify/digest/keygen operation (as opposed to a
	// verify returning false for a mismatch, which is not an error).
	ErrCryptoFailure = errors.New("cesr: cryptographic operation failed")
)
