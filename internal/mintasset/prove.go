package mintasset

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/veilmint/mintasset/internal/jubjub"
)

// Curve is the scalar field CircuitMintAsset is compiled over: the same
// BLS12-381 scalar field Jubjub's points live in.
var Curve = ecc.BLS12_381

// Compile builds the R1CS constraint system for CircuitMintAsset.
func Compile() (constraint.ConstraintSystem, error) {
	var circuit CircuitMintAsset
	ccs, err := frontend.Compile(Curve.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("mintasset: compile circuit: %w", err)
	}
	return ccs, nil
}

// Assignment captures the full public and private circuit inputs for a
// single Mint-Asset statement instance.
type Assignment struct {
	Ak  jubjub.Point
	Nk  jubjub.Point
	Ar  jubjub.Scalar
	Nsk jubjub.Scalar
	Rk  jubjub.Point
	PkD jubjub.Point
}

// BuildAssignment derives rk, ivk and pk_d from a proof generation key and
// randomizer, producing the full assignment a prover needs.
func BuildAssignment(pgk *ProofGenerationKey, ar jubjub.Scalar) (*Assignment, error) {
	rk := pgk.Randomize(ar)
	nk := pgk.NullifierDerivingKey()
	ivk, err := pgk.IncomingViewingKey()
	if err != nil {
		return nil, err
	}
	pkD := DiversifiedPublicKey(ivk)
	return &Assignment{
		Ak:  pgk.Ak,
		Nk:  nk,
		Ar:  ar,
		Nsk: pgk.Nsk,
		Rk:  rk,
		PkD: pkD,
	}, nil
}

// circuit converts the assignment into the gnark circuit struct the prover
// and witness builders share.
func (a *Assignment) circuit() *CircuitMintAsset {
	return &CircuitMintAsset{
		RkU:  a.Rk.U(),
		RkV:  a.Rk.V(),
		PkDU: a.PkD.U(),
		PkDV: a.PkD.V(),
		AkU:  a.Ak.U(),
		AkV:  a.Ak.V(),
		Nsk:  a.Nsk.BigInt(),
		Ar:   a.Ar.BigInt(),
	}
}

// Prove compiles a Groth16 witness from the assignment and produces a
// proof against the given proving key and constraint system.
func Prove(ccs constraint.ConstraintSystem, pk groth16.ProvingKey, a *Assignment) (groth16.Proof, error) {
	w, err := frontend.NewWitness(a.circuit(), Curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("mintasset: build witness: %w", err)
	}
	proof, err := groth16.Prove(ccs, pk, w)
	if err != nil {
		return nil, fmt.Errorf("mintasset: prove: %w", err)
	}
	return proof, nil
}

// Verify checks a proof against the four exposed public coordinates.
func Verify(vk groth16.VerifyingKey, proof groth16.Proof, rk, pkD jubjub.Point) error {
	pub := &CircuitMintAsset{
		RkU:  rk.U(),
		RkV:  rk.V(),
		PkDU: pkD.U(),
		PkDV: pkD.V(),
	}
	w, err := frontend.NewWitness(pub, Curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("mintasset: build public witness: %w", err)
	}
	if err := groth16.Verify(proof, vk, w); err != nil {
		return fmt.Errorf("mintasset: verify: %w", err)
	}
	return nil
}

// SaveProvingKey saves a Groth16 proving key to disk.
func SaveProvingKey(path string, pk groth16.ProvingKey) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mintasset: create proving key file: %w", err)
	}
	defer f.Close()
	_, err = pk.WriteTo(f)
	if err != nil {
		return fmt.Errorf("mintasset: write proving key: %w", err)
	}
	return nil
}

// SaveVerifyingKey saves a Groth16 verifying key to disk.
func SaveVerifyingKey(path string, vk groth16.VerifyingKey) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mintasset: create verifying key file: %w", err)
	}
	defer f.Close()
	_, err = vk.WriteTo(f)
	if err != nil {
		return fmt.Errorf("mintasset: write verifying key: %w", err)
	}
	return nil
}

// LoadProvingKey loads a Groth16 proving key from disk.
func LoadProvingKey(path string) (groth16.ProvingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pk := groth16.NewProvingKey(Curve)
	if _, err := pk.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("mintasset: read proving key: %w", err)
	}
	return pk, nil
}

// LoadVerifyingKey loads a Groth16 verifying key from disk.
func LoadVerifyingKey(path string) (groth16.VerifyingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vk := groth16.NewVerifyingKey(Curve)
	if _, err := vk.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("mintasset: read verifying key: %w", err)
	}
	return vk, nil
}

// SetupOrLoadKeys loads a Groth16 key pair from disk if present, or runs a
// local, non-trusted demo setup and persists the result. This is a smoke
// convenience for cmd/mintdemo, not a protocol-level trusted setup ceremony.
func SetupOrLoadKeys(ccs constraint.ConstraintSystem, pkPath, vkPath string) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	pk, pkErr := LoadProvingKey(pkPath)
	vk, vkErr := LoadVerifyingKey(vkPath)
	if pkErr == nil && vkErr == nil {
		return pk, vk, nil
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("mintasset: setup: %w", err)
	}
	if err := SaveProvingKey(pkPath, pk); err != nil {
		return nil, nil, err
	}
	if err := SaveVerifyingKey(vkPath, vk); err != nil {
		return nil, nil, err
	}
	return pk, vk, nil
}
