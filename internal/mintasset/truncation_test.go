package mintasset

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

// truncationCircuit isolates step 7 of CircuitMintAsset.Define: folding the
// low Capacity bits of a 256-bit digest into a scalar, independent of how
// those bits were produced. Exercising it directly lets the truncation edge
// case be checked against a crafted digest instead of needing a (ak, nsk)
// pair that happens to hash to one.
type truncationCircuit struct {
	Digest [256]frontend.Variable
	Ivk    frontend.Variable `gnark:",public"`
}

func (c *truncationCircuit) Define(api frontend.API) error {
	ivkScalar := bits.FromBinary(api, c.Digest[:Capacity])
	api.AssertIsEqual(ivkScalar, c.Ivk)
	return nil
}

// TestTruncationHighBitsSetAgreesWithCircuit covers the truncation edge
// case: a digest whose high 256-Capacity bits are all set. The in-circuit
// fold (truncationCircuit.Define) and the out-of-circuit fold
// (truncateToCapacity) must agree even though those high bits are present,
// since both are required to discard them rather than let them leak into
// the ivk.
func TestTruncationHighBitsSetAgreesWithCircuit(t *testing.T) {
	v := new(big.Int)
	for i := Capacity; i < 256; i++ {
		v.SetBit(v, i, 1)
	}
	v.SetBit(v, 0, 1)
	v.SetBit(v, 3, 1)

	be := make([]byte, 32)
	v.FillBytes(be)
	digest := reverse(be)

	expected := truncateToCapacity(digest)
	require.LessOrEqual(t, expected.BigInt().BitLen(), Capacity)

	var digestBits [256]frontend.Variable
	for i := 0; i < 256; i++ {
		digestBits[i] = int(v.Bit(i))
	}

	assert := test.NewAssert(t)
	witness := &truncationCircuit{Digest: digestBits, Ivk: expected.BigInt()}
	assert.ProverSucceeded(&truncationCircuit{}, witness, test.WithCurves(ecc.BLS12_381))
}
