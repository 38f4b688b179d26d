package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cesrkit/cesr/errs"
)

func TestEd25519_SignVerifyRoundTrip(t *testing.T) {
	gw := Default()

	seed, pub, err := gw.GenerateKeypair(Ed25519)
	require.NoError(t, err)

	msg := []byte("hello CESR")
	sig, err := gw.Sign(Ed25519, seed, msg)
	require.NoError(t, err)

	ok, err := gw.Verify(Ed25519, pub, sig, msg)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = gw.Verify(Ed25519, pub, sig, []byte("tampered"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEd25519_PublicKeyMatchesGenerated(t *testing.T) {
	gw := Default()

	seed, pub, err := gw.GenerateKeypair(Ed25519)
	require.NoError(t, err)

	derived, err := gw.PublicKey(Ed25519, seed)
	require.NoError(t, err)
	require.Equal(t, pub, derived)
}

func TestSecp256k1_SignVerifyRoundTrip(t *testing.T) {
	gw := Default()

	seed, pub, err := gw.GenerateKeypair(ECDSA256k1)
	require.NoError(t, err)

	msg := []byte("hello CESR")
	sig, err := gw.Sign(ECDSA256k1, seed, msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	ok, err := gw.Verify(ECDSA256k1, pub, sig, msg)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = gw.Verify(ECDSA256k1, pub, sig, []byte("tampered"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEd448_SignVerifyRoundTrip(t *testing.T) {
	gw := Default()

	seed, pub, err := gw.GenerateKeypair(Ed448)
	require.NoError(t, err)

	msg := []byte("hello CESR")
	sig, err := gw.Sign(Ed448, seed, msg)
	require.NoError(t, err)

	ok, err := gw.Verify(Ed448, pub, sig, msg)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDigest_AllFamilies(t *testing.T) {
	gw := Default()
	msg := []byte("hello CESR")

	families := []Family{Blake3_256, Blake2b_256, Blake2s_256, SHA3_256, SHA2_256}
	for _, fam := range families {
		d1, err := gw.Digest(fam, msg)
		require.NoError(t, err)
		require.Len(t, d1, 32)

		d2, err := gw.Digest(fam, msg)
		require.NoError(t, err)
		require.Equal(t, d1, d2)
	}

	// distinct families must not collide on the same message
	blake3Digest, err := gw.Digest(Blake3_256, msg)
	require.NoError(t, err)
	sha256Digest, err := gw.Digest(SHA2_256, msg)
	require.NoError(t, err)
	require.NotEqual(t, blake3Digest, sha256Digest)
}

func TestSign_UnsupportedFamily(t *testing.T) {
	gw := Default()

	_, err := gw.Sign("bogus", nil, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCryptoFailure))
}

func TestVerify_UnsupportedFamily(t *testing.T) {
	gw := Default()

	_, err := gw.Verify("bogus", nil, nil, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCryptoFailure))
}

func TestDigest_UnsupportedFamily(t *testing.T) {
	gw := Default()

	_, err := gw.Digest("bogus", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCryptoFailure))
}

func TestGenerateKeypair_UnsupportedFamily(t *testing.T) {
	gw := Default()

	_, _, err := gw.GenerateKeypair("bogus")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCryptoFailure))
}

func TestSign_WrongSeedSize(t *testing.T) {
	gw := Default()

	_, err := gw.Sign(Ed25519, make([]byte, 10), []byte("msg"))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCryptoFailure))
}

func TestVerify_WrongKeySize(t *testing.T) {
	gw := Default()

	_, err := gw.Verify(Ed25519, make([]byte, 10), make([]byte, 64), []byte("msg"))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCryptoFailure))
}
