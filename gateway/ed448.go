package gateway

import (
	"crypto/rand"
	"fmt"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/cesrkit/cesr/errs"
)

func signEd448(seed, message []byte) ([]byte, error) {
	if len(seed) != ed448.SeedSize {
		return nil, fmt.Errorf("%w: ed448 seed must be %d bytes, got %d", errs.ErrCryptoFailure, ed448.SeedSize, len(seed))
	}

	priv := ed448.NewKeyFromSeed(seed)

	return ed448.Sign(priv, message, ""), nil
}

func verifyEd448(pubkey, sig, message []byte) (bool, error) {
	if len(pubkey) != ed448.PublicKeySize {
		return false, fmt.Errorf("%w: ed448 pubkey must be %d bytes, got %d", errs.ErrCryptoFailure, ed448.PublicKeySize, len(pubkey))
	}

	return ed448.Verify(ed448.PublicKey(pubkey), message, sig, ""), nil
}

func publicKeyEd448(seed []byte) ([]byte, error) {
	if len(seed) != ed448.SeedSize {
		return nil, fmt.Errorf("%w: ed448 seed must be %d bytes, got %d", errs.ErrCryptoFailure, ed448.SeedSize, len(seed))
	}

	priv := ed448.NewKeyFromSeed(seed)
	pub, ok := priv.Public().(ed448.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: ed448 public key derivation failed", errs.ErrCryptoFailure)
	}

	return pub, nil
}

func generateEd448() (seed, pubkey []byte, err error) {
	pub, priv, err := ed448.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrCryptoFailure, err)
	}

	return priv.Seed(), pub, nil
}
