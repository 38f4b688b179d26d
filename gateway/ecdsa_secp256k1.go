package gateway

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/cesrkit/cesr/errs"
)

// ECDSA_256k1 signatures are CESR's raw 64-byte (r||s) concatenation, not
// the DER encoding secp256k1/ecdsa.Signature.Serialize produces.

func signSecp256k1(seed, message []byte) ([]byte, error) {
	if len(seed) != 32 {
		return nil, fmt.Errorf("%w: secp256k1 seed must be 32 bytes, got %d", errs.ErrCryptoFailure, len(seed))
	}

	priv := secp256k1.PrivKeyFromBytes(seed)
	digest := sha256.Sum256(message)
	sig := ecdsa.Sign(priv, digest[:])

	r := sig.R().Bytes()
	s := sig.S().Bytes()

	out := make([]byte, 64)
	copy(out[:32], r[:])
	copy(out[32:], s[:])

	return out, nil
}

func verifySecp256k1(pubkey, sig, message []byte) (bool, error) {
	if len(sig) != 64 {
		return false, fmt.Errorf("%w: secp256k1 signature must be 64 bytes, got %d", errs.ErrCryptoFailure, len(sig))
	}

	pub, err := secp256k1.ParsePubKey(pubkey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrCryptoFailure, err)
	}

	var r, s secp256k1.ModNScalar
	r.SetByteSlice(sig[:32])
	s.SetByteSlice(sig[32:])

	digest := sha256.Sum256(message)

	return ecdsa.NewSignature(&r, &s).Verify(digest[:], pub), nil
}

func publicKeySecp256k1(seed []byte) ([]byte, error) {
	if len(seed) != 32 {
		return nil, fmt.Errorf("%w: secp256k1 seed must be 32 bytes, got %d", errs.ErrCryptoFailure, len(seed))
	}

	priv := secp256k1.PrivKeyFromBytes(seed)

	return priv.PubKey().SerializeCompressed(), nil
}

func generateSecp256k1() (seed, pubkey []byte, err error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrCryptoFailure, err)
	}

	return priv.Serialize(), priv.PubKey().SerializeCompressed(), nil
}
