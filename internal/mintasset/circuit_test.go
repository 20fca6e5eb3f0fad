package mintasset

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/veilmint/mintasset/internal/jubjub"
)

func buildValidAssignment(t *testing.T) *Assignment {
	t.Helper()
	pgk, err := GenerateProofGenerationKey(rand.Reader)
	require.NoError(t, err)
	ar, err := jubjub.RandomScalar(rand.Reader)
	require.NoError(t, err)
	a, err := BuildAssignment(pgk, ar)
	require.NoError(t, err)
	return a
}

func TestCircuitCompiles(t *testing.T) {
	var circuit CircuitMintAsset
	ccs, err := frontend.Compile(Curve.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, err)
	require.Greater(t, ccs.GetNbConstraints(), 0)
	LogCircuitStats(ccs.GetNbConstraints(), ccs.GetNbPublicVariables(), ccs.GetNbSecretVariables())
}

func TestCircuitProverSucceeds(t *testing.T) {
	a := buildValidAssignment(t)
	assert := test.NewAssert(t)
	assert.ProverSucceeded(&CircuitMintAsset{}, a.circuit(), test.WithCurves(ecc.BLS12_381))
}

func TestCircuitRejectsWrongRk(t *testing.T) {
	a := buildValidAssignment(t)
	bad := a.circuit()
	other, err := jubjub.RandomScalar(rand.Reader)
	require.NoError(t, err)
	wrongPoint := jubjub.Base().ScalarMul(other)
	bad.RkU = wrongPoint.U()
	bad.RkV = wrongPoint.V()

	assert := test.NewAssert(t)
	assert.ProverFailed(&CircuitMintAsset{}, bad, test.WithCurves(ecc.BLS12_381))
}

func TestCircuitRejectsWrongPkD(t *testing.T) {
	a := buildValidAssignment(t)
	bad := a.circuit()
	other, err := jubjub.RandomScalar(rand.Reader)
	require.NoError(t, err)
	wrongPoint := jubjub.Base().ScalarMul(other)
	bad.PkDU = wrongPoint.U()
	bad.PkDV = wrongPoint.V()

	assert := test.NewAssert(t)
	assert.ProverFailed(&CircuitMintAsset{}, bad, test.WithCurves(ecc.BLS12_381))
}

// TestCircuitRejectsSmallOrderAk substitutes the curve identity — order 1,
// which divides the cofactor 8 — for ak. The subgroup check must reject it
// even though the identity trivially satisfies the curve equation.
func TestCircuitRejectsSmallOrderAk(t *testing.T) {
	a := buildValidAssignment(t)
	bad := a.circuit()
	id := jubjub.Identity()
	bad.AkU = id.U()
	bad.AkV = id.V()

	assert := test.NewAssert(t)
	assert.ProverFailed(&CircuitMintAsset{}, bad, test.WithCurves(ecc.BLS12_381))
}
