package cesr

import (
	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/gateway"
	"github.com/cesrkit/cesr/internal/options"
	"github.com/cesrkit/cesr/matter"
)

// signerSeedCodes maps Signer's accepted seed codes to the verifier code
// the derived public key should carry, and the Gateway family to sign with.
var signerSeedCodes = map[string]struct {
	pubCode string
	family  gateway.Family
}{
	"A": {"D", gateway.Ed25519},
	"J": {"1AAB", gateway.ECDSA256k1},
	"K": {"L", gateway.Ed448},
}

// Signer is a secret key together with its derived Verfer.
type Signer struct {
	m      *matter.Matter
	verfer *Verfer
	family gateway.Family
}

type signerBuilder struct {
	seed []byte
	code string
}

// SignerOption configures NewSigner.
type SignerOption = options.Option[*signerBuilder]

// WithSignerSeed supplies the raw seed bytes.
func WithSignerSeed(seed []byte) SignerOption {
	return options.NoError(func(b *signerBuilder) { b.seed = seed })
}

// WithSignerCode selects the seed's derivation code family. Defaults to
// "A" (Ed25519) if not given.
func WithSignerCode(code string) SignerOption {
	return options.NoError(func(b *signerBuilder) { b.code = code })
}

// NewSigner constructs a Signer from a seed, deriving its Verfer through
// the Cryptographic Gateway.
func NewSigner(opts ...SignerOption) (*Signer, error) {
	b := &signerBuilder{code: "A"}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	entry, ok := signerSeedCodes[b.code]
	if !ok {
		return nil, errs.ErrInvalidCode
	}

	m, err := matter.FromCodeRaw(b.code, b.seed)
	if err != nil {
		return nil, err
	}

	pub, err := gateway.Default().PublicKey(entry.family, b.seed)
	if err != nil {
		return nil, err
	}

	verfer, err := NewVerfer(entry.pubCode, pub)
	if err != nil {
		return nil, err
	}

	return &Signer{m: m, verfer: verfer, family: entry.family}, nil
}

func (s *Signer) Qb64() string  { return s.m.Qb64() }
func (s *Signer) Qb64b() []byte { return s.m.Qb64b() }
func (s *Signer) Qb2() []byte   { return s.m.Qb2() }
func (s *Signer) Code() string  { return s.m.Code() }
func (s *Signer) Raw() []byte   { return s.m.Raw() }

// Verfer returns the public key derived from this Signer's seed.
func (s *Signer) Verfer() *Verfer { return s.verfer }

// Sign produces a Cigar (non-indexed signature) over message.
func (s *Signer) Sign(message []byte) (*Cigar, error) {
	sig, err := gateway.Default().Sign(s.family, s.m.Raw(), message)
	if err != nil {
		return nil, err
	}

	return newCigar(s.family, sig, s.verfer)
}
