// Package gateway implements the Cryptographic Gateway: the narrow trait
// typed primitives call through for signature verification, digest
// computation, and keypair generation, dispatched by derivation-code
// family.
//
// The gateway is stateless and its Default implementation is safe for
// concurrent, re-entrant use from any goroutine, matching the Matter
// engine's pure-and-synchronous contract in spec.md §5.
package gateway

import (
	"fmt"

	"github.com/cesrkit/cesr/errs"
)

// Family identifies a cipher suite by derivation-code alias, independent of
// the specific code string a primitive happens to carry.
type Family string

const (
	Ed25519        Family = "Ed25519"
	ECDSA256k1     Family = "ECDSA_256k1"
	Ed448          Family = "Ed448"
	Blake3_256     Family = "Blake3_256"
	Blake2b_256    Family = "Blake2b_256"
	Blake2s_256    Family = "Blake2s_256"
	SHA3_256       Family = "SHA3_256"
	SHA2_256       Family = "SHA2_256"
)

// Gateway is the Cryptographic Gateway trait: everything a typed primitive
// needs from an external cipher-suite implementation.
type Gateway interface {
	// Sign produces a signature over message using the seed in family's
	// signing scheme.
	Sign(family Family, seed, message []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature over message under
	// pubkey. A structural problem (wrong key length, unsupported family)
	// is an error; a mismatched signature is (false, nil).
	Verify(family Family, pubkey, sig, message []byte) (bool, error)

	// Digest computes the digest of message under family's hash function.
	Digest(family Family, message []byte) ([]byte, error)

	// GenerateKeypair returns a fresh (seed, pubkey) pair for family.
	GenerateKeypair(family Family) (seed, pubkey []byte, err error)

	// PublicKey derives the public key for an existing seed, without
	// generating a new keypair.
	PublicKey(family Family, seed []byte) (pubkey []byte, err error)
}

// defaultGateway dispatches to the concrete implementations in this
// package. It holds no state, so a single instance is reused by Default().
type defaultGateway struct{}

var instance Gateway = defaultGateway{}

// Default returns the process-wide Cryptographic Gateway implementation.
func Default() Gateway { return instance }

func (defaultGateway) Sign(family Family, seed, message []byte) ([]byte, error) {
	switch family {
	case Ed25519:
		return signEd25519(seed, message)
	case ECDSA256k1:
		return signSecp256k1(seed, message)
	case Ed448:
		return signEd448(seed, message)
	default:
		return nil, fmt.Errorf("%w: no signer for family %q", errs.ErrCryptoFailure, family)
	}
}

func (defaultGateway) Verify(family Family, pubkey, sig, message []byte) (bool, error) {
	switch family {
	case Ed25519:
		return verifyEd25519(pubkey, sig, message)
	case ECDSA256k1:
		return verifySecp256k1(pubkey, sig, message)
	case Ed448:
		return verifyEd448(pubkey, sig, message)
	default:
		return false, fmt.Errorf("%w: no verifier for family %q", errs.ErrCryptoFailure, family)
	}
}

func (defaultGateway) Digest(family Family, message []byte) ([]byte, error) {
	switch family {
	case Blake3_256:
		return digestBlake3_256(message), nil
	case Blake2b_256:
		return digestBlake2b256(message)
	case Blake2s_256:
		return digestBlake2s256(message)
	case SHA3_256:
		return digestSHA3_256(message), nil
	case SHA2_256:
		return digestSHA2_256(message), nil
	default:
		return nil, fmt.Errorf("%w: no digest for family %q", errs.ErrCryptoFailure, family)
	}
}

func (defaultGateway) PublicKey(family Family, seed []byte) ([]byte, error) {
	switch family {
	case Ed25519:
		return publicKeyEd25519(seed)
	case ECDSA256k1:
		return publicKeySecp256k1(seed)
	case Ed448:
		return publicKeyEd448(seed)
	default:
		return nil, fmt.Errorf("%w: no key derivation for family %q", errs.ErrCryptoFailure, family)
	}
}

func (defaultGateway) GenerateKeypair(family Family) (seed, pubkey []byte, err error) {
	switch family {
	case Ed25519:
		return generateEd25519()
	case ECDSA256k1:
		return generateSecp256k1()
	case Ed448:
		return generateEd448()
	default:
		return nil, nil, fmt.Errorf("%w: no keygen for family %q", errs.ErrCryptoFailure, family)
	}
}
