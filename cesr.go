package cesr

import (
	"github.com/cesrkit/cesr/codes"
	"github.com/cesrkit/cesr/errs"
)

// Identify reports the registry alias for a qualified form's derivation
// code, e.g. "Ed25519" for a "D"-coded qb64 string. It is a thin
// convenience wrapper over the codes package for callers who only need to
// classify material without fully constructing a primitive.
func Identify(qb64 string) (alias string, err error) {
	if qb64 == "" {
		return "", errs.ErrEmptyMaterial
	}

	hs, ss, err := codes.HardSizeOf(qb64[0])
	if err != nil {
		return "", err
	}

	if len(qb64) < hs+ss {
		return "", errs.ErrShortMaterial
	}

	entry, err := codes.Lookup(qb64[:hs])
	if err != nil {
		return "", err
	}

	return entry.Alias, nil
}
