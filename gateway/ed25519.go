package gateway

import (
	"crypto/ed25519"
	"fmt"

	"github.com/cesrkit/cesr/errs"
)

func signEd25519(seed, message []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d", errs.ErrCryptoFailure, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)

	return ed25519.Sign(priv, message), nil
}

func verifyEd25519(pubkey, sig, message []byte) (bool, error) {
	if len(pubkey) != ed25519.PublicKeySize {
		return false, fmt.Errorf("%w: ed25519 pubkey must be %d bytes, got %d", errs.ErrCryptoFailure, ed25519.PublicKeySize, len(pubkey))
	}

	return ed25519.Verify(pubkey, message, sig), nil
}

func publicKeyEd25519(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d", errs.ErrCryptoFailure, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)

	return priv.Public().(ed25519.PublicKey), nil
}

func generateEd25519() (seed, pubkey []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrCryptoFailure, err)
	}

	return priv.Seed(), pub, nil
}
