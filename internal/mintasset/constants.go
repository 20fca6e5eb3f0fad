package mintasset

import (
	"math/big"

	"github.com/veilmint/mintasset/internal/jubjub"
)

// CRHIvkPersonalization is the 8-byte personalization tag folded into the
// BLAKE2s chaining value when hashing ak || nk into the incoming viewing
// key, keeping that hash domain-separated from any other use of BLAKE2s.
var CRHIvkPersonalization = [8]byte{'M', 'n', 't', 'I', 'v', 'k', '0', '1'}

// Capacity is the number of ivk bits retained after truncating the BLAKE2s
// digest: the largest bit width guaranteed to fit under the Jubjub scalar
// field's modulus without an explicit range check.
var Capacity = jubjub.CapacityBits()

// Fixed protocol generators. This repository has no hash-to-curve gadget
// (out of scope), so the three generators are derived as small, distinct
// scalar multiples of the curve's own canonical base point rather than by
// hashing a domain tag to a curve point, while still being fixed and
// independent of any witness.
var (
	SpendingKeyGenerator        = deriveGenerator(2)
	ProofGenerationKeyGenerator = deriveGenerator(3)
	PublicKeyGenerator          = deriveGenerator(4)
)

func deriveGenerator(multiple int64) jubjub.Point {
	var scalarBits []bool
	for n := multiple; n > 0; n >>= 1 {
		scalarBits = append(scalarBits, n&1 == 1)
	}
	scalar := jubjub.ScalarFromBitsLE(scalarBits)
	return jubjub.Base().ScalarMul(scalar)
}

// generatorCoords returns a generator's affine coordinates as big.Int, for
// embedding as fixed circuit constants.
func generatorCoords(p jubjub.Point) (u, v *big.Int) {
	return p.U(), p.V()
}
