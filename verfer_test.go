package cesr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cesrkit/cesr/errs"
)

func TestVerfer_VerifySignerSignature(t *testing.T) {
	signer, err := NewSigner(WithSignerSeed(make([]byte, 32)))
	require.NoError(t, err)

	msg := []byte("hello CESR")
	cig, err := signer.Sign(msg)
	require.NoError(t, err)

	ok, err := signer.Verfer().Verify(cig.Raw(), msg)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = signer.Verfer().Verify(cig.Raw(), []byte("tampered"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerfer_RejectsNonPublicKeyCode(t *testing.T) {
	_, err := NewVerfer("A", make([]byte, 32)) // seed code, not public key
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidCode))
}

func TestVerfer_Qb64RoundTrip(t *testing.T) {
	signer, err := NewSigner(WithSignerSeed(make([]byte, 32)))
	require.NoError(t, err)

	v2, err := VerferFromQb64(signer.Verfer().Qb64())
	require.NoError(t, err)
	require.Equal(t, signer.Verfer().Raw(), v2.Raw())
}
