package mintasset

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/blake2s"

	"github.com/veilmint/mintasset/internal/jubjub"
)

// ProofGenerationKey is the (ak, nsk) pair a spender holds out of circuit:
// ak is the spend authorizing point, nsk the nullifier deriving scalar.
type ProofGenerationKey struct {
	Ak  jubjub.Point
	Nsk jubjub.Scalar
}

// GenerateProofGenerationKey samples a fresh (ak, nsk) pair from rnd. ak is
// drawn as [ask]*SpendingKeyGenerator so it lands in the prime-order
// subgroup by construction, matching what the circuit's subgroup check
// expects to pass.
func GenerateProofGenerationKey(rnd io.Reader) (*ProofGenerationKey, error) {
	ask, err := jubjub.RandomScalar(rnd)
	if err != nil {
		return nil, fmt.Errorf("mintasset: sample ask: %w", err)
	}
	nsk, err := jubjub.RandomScalar(rnd)
	if err != nil {
		return nil, fmt.Errorf("mintasset: sample nsk: %w", err)
	}
	ak := SpendingKeyGenerator.ScalarMul(ask)
	return &ProofGenerationKey{Ak: ak, Nsk: nsk}, nil
}

// Randomize computes rk = ak + [ar]*SpendingKeyGenerator, the public
// randomized authorizing key a caller exposes alongside a proof.
func (k *ProofGenerationKey) Randomize(ar jubjub.Scalar) jubjub.Point {
	arG := SpendingKeyGenerator.ScalarMul(ar)
	return k.Ak.Add(arG)
}

// NullifierDerivingKey computes nk = [nsk]*ProofGenerationKeyGenerator.
func (k *ProofGenerationKey) NullifierDerivingKey() jubjub.Point {
	return ProofGenerationKeyGenerator.ScalarMul(k.Nsk)
}

// IncomingViewingKey computes ivk = truncate(CRH_ivk(repr(ak) || repr(nk)), Capacity),
// the out-of-circuit twin of the circuit's BLAKE2s-based derivation.
func (k *ProofGenerationKey) IncomingViewingKey() (jubjub.Scalar, error) {
	nk := k.NullifierDerivingKey()

	akRepr := k.Ak.Compressed()
	nkRepr := nk.Compressed()

	h, err := blake2s.New256(&blake2s.Config{Person: CRHIvkPersonalization[:]})
	if err != nil {
		return jubjub.Scalar{}, fmt.Errorf("mintasset: blake2s init: %w", err)
	}
	h.Write(akRepr[:])
	h.Write(nkRepr[:])
	digest := h.Sum(nil)

	return truncateToCapacity(digest), nil
}

// DiversifiedPublicKey computes pk_d = [ivk]*PublicKeyGenerator.
func DiversifiedPublicKey(ivk jubjub.Scalar) jubjub.Point {
	return PublicKeyGenerator.ScalarMul(ivk)
}

// truncateToCapacity reduces a 32-byte little-endian digest to its lowest
// Capacity bits and folds the result into Fr. Because Capacity is strictly
// below the bit length of the Jubjub subgroup order, the resulting integer
// is automatically a canonical representative; no further reduction is
// needed, mirroring the circuit's bit-truncation step.
func truncateToCapacity(digest []byte) jubjub.Scalar {
	v := new(big.Int).SetBytes(reverse(digest))
	mask := new(big.Int).Lsh(big.NewInt(1), uint(Capacity))
	mask.Sub(mask, big.NewInt(1))
	v.And(v, mask)

	bits := make([]bool, Capacity)
	for i := 0; i < Capacity; i++ {
		bits[i] = v.Bit(i) == 1
	}
	return jubjub.ScalarFromBitsLE(bits)
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// RandomScalar samples a fresh uniformly random nonzero Jubjub scalar from
// crypto/rand; it is jubjub.RandomScalar with the randomness source fixed.
func RandomScalar() (jubjub.Scalar, error) {
	return jubjub.RandomScalar(rand.Reader)
}
