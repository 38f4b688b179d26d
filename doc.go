// Package cesr implements the CESR primitive layer: derivation-code tables,
// the Matter construct/project engine, and the typed primitive façades
// (Verfer, Signer, Cigar, Diger, Prefixer, Saider, Seqner, Number, Dater,
// Tagger, Texter, Bexter, Pather, Labeler, Ilker, Traitor, Verser) built on
// top of them.
//
// # Basic usage
//
//	seed := make([]byte, 32)
//	signer, err := cesr.NewSigner(cesr.WithSignerSeed(seed))
//	sig, err := signer.Sign(message)
//	ok, err := signer.Verfer().Verify(sig.Raw(), message)
//
// Every primitive is immutable once constructed and exposes Qb64/Qb64b/Qb2
// projections plus typed accessors. The lower-level packages (codes,
// matter, ordinal, gateway) are available directly for callers building new
// primitive kinds.
package cesr
