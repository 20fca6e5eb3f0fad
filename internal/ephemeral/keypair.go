package ephemeral

import (
	"errors"
	"fmt"
	"io"

	"github.com/veilmint/mintasset/internal/jubjub"
	"github.com/veilmint/mintasset/internal/mintasset"
)

// ErrInvalidEncoding is returned when the input to FromBytesLE is not exactly
// 192 bytes long. Failures to decode the secret or the public point are
// returned as wrapped jubjub errors instead.
var ErrInvalidEncoding = errors.New("ephemeral: invalid key pair encoding")

// KeyPair is a one-shot Diffie-Hellman key pair: secret is a Jubjub scalar
// and public is [secret]*PublicKeyGenerator, the same generator the
// Mint-Asset statement uses to derive pk_d.
type KeyPair struct {
	secret jubjub.Scalar
	public jubjub.Point
}

// Generate samples a fresh key pair, drawing secret from rnd. The caller
// supplies the randomness source explicitly rather than this package
// reaching for a hidden global, so callers can substitute a deterministic
// source in tests.
func Generate(rnd io.Reader) (*KeyPair, error) {
	secret, err := jubjub.RandomScalar(rnd)
	if err != nil {
		return nil, fmt.Errorf("ephemeral: sample secret: %w", err)
	}
	public := mintasset.PublicKeyGenerator.ScalarMul(secret)
	return &KeyPair{secret: secret, public: public}, nil
}

// Secret returns the key pair's private scalar.
func (k *KeyPair) Secret() jubjub.Scalar { return k.secret }

// Public returns the key pair's public point.
func (k *KeyPair) Public() jubjub.Point { return k.public }

// ToBytesLE encodes the pair as 192 bytes: the 32-byte little-endian secret
// followed by the 160-byte extended encoding of the public point.
func (k *KeyPair) ToBytesLE() [192]byte {
	var out [192]byte
	secretBytes := k.secret.BytesLE()
	copy(out[0:32], secretBytes[:])
	ext := k.public.ToExtended()
	copy(out[32:192], ext[:])
	return out
}

// FromBytesLE decodes a 192-byte blob produced by ToBytesLE. It does not
// re-derive public from secret and verify the invariant holds — this is a
// storage round-trip contract, not validation of adversarial input. Callers
// that need the stricter guarantee should call Validate afterward.
func FromBytesLE(b []byte) (*KeyPair, error) {
	if len(b) != 192 {
		return nil, ErrInvalidEncoding
	}
	var secret jubjub.Scalar
	if err := secret.SetBytesLE(b[0:32]); err != nil {
		return nil, fmt.Errorf("ephemeral: decode secret: %w", err)
	}
	public, err := jubjub.SetExtended(b[32:192])
	if err != nil {
		return nil, fmt.Errorf("ephemeral: decode public: %w", err)
	}
	return &KeyPair{secret: secret, public: public}, nil
}

// Validate reports whether public is actually [secret]*PublicKeyGenerator,
// the stricter check FromBytesLE deliberately skips.
func (k *KeyPair) Validate() bool {
	expected := mintasset.PublicKeyGenerator.ScalarMul(k.secret)
	return expected.Equal(k.public)
}

// SharedSecret computes the Diffie-Hellman shared point [secret]*theirPublic.
func (k *KeyPair) SharedSecret(theirPublic jubjub.Point) jubjub.Point {
	return theirPublic.ScalarMul(k.secret)
}
