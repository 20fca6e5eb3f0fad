package mintasset

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
	"github.com/consensys/gnark/std/math/bits"

	"github.com/veilmint/mintasset/internal/gadget/blake2s"
	"github.com/veilmint/mintasset/internal/jubjub"
)

// CircuitMintAsset proves knowledge of a spend authorizing key ak, a
// nullifier deriving scalar nsk and a randomizer ar such that the exposed
// (rk, pk_d) pair is the one those secrets derive, without revealing ak,
// nsk or ar.
//
// Define follows a fixed synthesis order: witness ak as an Edwards point and
// reject it if it falls in the small-order subgroup, rerandomize it into rk
// and expose rk, derive nk from nsk, hash ak and nk into the incoming
// viewing key with a single BLAKE2s call, truncate that digest to Capacity
// bits, and derive and expose pk_d from the result.
type CircuitMintAsset struct {
	// Public inputs: the randomized authorizing key and the diversified
	// incoming-viewing-key public point.
	RkU  frontend.Variable `gnark:",public"`
	RkV  frontend.Variable `gnark:",public"`
	PkDU frontend.Variable `gnark:",public"`
	PkDV frontend.Variable `gnark:",public"`

	// Private inputs.
	AkU frontend.Variable
	AkV frontend.Variable
	Nsk frontend.Variable
	Ar  frontend.Variable
}

func (c *CircuitMintAsset) Define(api frontend.API) error {
	curve, err := twistededwards.NewEdCurve(api, jubjub.ID)
	if err != nil {
		return err
	}

	// 1. Witness ak as a curve point and check it is on the curve.
	ak := twistededwards.Point{X: c.AkU, Y: c.AkV}
	curve.AssertIsOnCurve(ak)

	// 2. Reject ak if it lies in the order-8 torsion subgroup: tripling the
	// doubling maps every torsion element to the identity (0, 1), and maps
	// nothing else there.
	tripled := curve.Double(curve.Double(curve.Double(ak)))
	xIsZero := api.IsZero(tripled.X)
	yIsOne := api.IsZero(api.Sub(tripled.Y, 1))
	api.AssertIsEqual(api.And(xIsZero, yIsOne), 0)

	// 3. Rerandomize ak into rk = ak + [ar]*SpendingKeyGenerator and expose it.
	spendingGenU, spendingGenV := generatorCoords(SpendingKeyGenerator)
	spendingGen := twistededwards.Point{X: spendingGenU, Y: spendingGenV}

	arBits := bits.ToBinary(api, c.Ar, bits.WithNbDigits(jubjub.NumBits()))
	arScalar := bits.FromBinary(api, arBits)
	arG := curve.ScalarMul(spendingGen, arScalar)
	rk := curve.Add(ak, arG)
	api.AssertIsEqual(rk.X, c.RkU)
	api.AssertIsEqual(rk.Y, c.RkV)

	// 4. Derive nk = [nsk]*ProofGenerationKeyGenerator. No range check on nsk
	// beyond its bit decomposition: a congruent representative suffices.
	proofGenU, proofGenV := generatorCoords(ProofGenerationKeyGenerator)
	proofGen := twistededwards.Point{X: proofGenU, Y: proofGenV}

	nskBits := bits.ToBinary(api, c.Nsk, bits.WithNbDigits(jubjub.NumBits()))
	nskScalar := bits.FromBinary(api, nskBits)
	nk := curve.ScalarMul(proofGen, nskScalar)

	// 5. Build the 512-bit ivk preimage from repr(ak) || repr(nk).
	akRepr, err := pointRepr(api, ak)
	if err != nil {
		return err
	}
	nkRepr, err := pointRepr(api, nk)
	if err != nil {
		return err
	}
	preimage := append(append([]frontend.Variable{}, akRepr...), nkRepr...)

	// 6. Hash with BLAKE2s, domain separated by CRHIvkPersonalization.
	digest, err := blake2s.Hash(api, preimage, CRHIvkPersonalization)
	if err != nil {
		return err
	}

	// 7. Truncate the digest to Capacity bits and fold into a scalar.
	ivkScalar := bits.FromBinary(api, digest[:Capacity])

	// 8-9. Derive pk_d = [ivk]*PublicKeyGenerator and expose it.
	pubGenU, pubGenV := generatorCoords(PublicKeyGenerator)
	pubGen := twistededwards.Point{X: pubGenU, Y: pubGenV}
	pkD := curve.ScalarMul(pubGen, ivkScalar)
	api.AssertIsEqual(pkD.X, c.PkDU)
	api.AssertIsEqual(pkD.Y, c.PkDV)

	return nil
}

// baseFieldBits is the bit length of Fq, the Jubjub base field: the scalar
// field of BLS12-381, which is also the outer circuit's native field.
const baseFieldBits = 255

// pointRepr returns the 256-bit little-endian representation of a curve
// point used as a hash preimage: the 255-bit decomposition of V followed by
// the oddness bit of U, matching the native Point.Compressed encoding.
func pointRepr(api frontend.API, p twistededwards.Point) ([]frontend.Variable, error) {
	vBits := bits.ToBinary(api, p.Y, bits.WithNbDigits(baseFieldBits))
	uBits := bits.ToBinary(api, p.X, bits.WithNbDigits(baseFieldBits))

	repr := make([]frontend.Variable, 256)
	copy(repr[:baseFieldBits], vBits)
	repr[255] = uBits[0]
	return repr, nil
}
