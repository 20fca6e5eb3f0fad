// main.go - Mint-Asset smoke-proof demo.
//
// This demonstrates a full compile / setup / prove / verify round trip of
// the Mint-Asset statement:
//   - a fresh proof generation key (ak, nsk) and randomizer ar are sampled
//   - the circuit is compiled and a Groth16 key pair is loaded or generated
//   - a proof is produced for the derived (rk, pk_d) pair and verified
//
// This is a local smoke check, not a trusted setup ceremony: the key pair
// it caches to disk is only fit for development use.
//
// Usage:
//   go run ./cmd/mintdemo
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"

	"github.com/veilmint/mintasset/internal/jubjub"
	"github.com/veilmint/mintasset/internal/mintasset"
)

func main() {
	configPath := flag.String("config", "mintdemo.json", "path to the demo config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	mintasset.Log.Info().Str("config", *configPath).Msg("starting mint-asset demo")

	ccs, err := mintasset.Compile()
	if err != nil {
		mintasset.Log.Fatal().Err(err).Msg("compile circuit")
	}
	mintasset.LogCircuitStats(ccs.GetNbConstraints(), ccs.GetNbPublicVariables(), ccs.GetNbSecretVariables())

	pk, vk, err := mintasset.SetupOrLoadKeys(ccs, cfg.ProvingKeyPath, cfg.VerifyingKeyPath)
	if err != nil {
		mintasset.Log.Fatal().Err(err).Msg("setup or load keys")
	}

	for i := 0; i < cfg.Iterations; i++ {
		if err := runOnce(ccs, pk, vk, i); err != nil {
			mintasset.Log.Fatal().Err(err).Int("iteration", i).Msg("round trip failed")
		}
	}

	mintasset.Log.Info().Int("iterations", cfg.Iterations).Msg("mint-asset demo complete")
}

func runOnce(ccs constraint.ConstraintSystem, pk groth16.ProvingKey, vk groth16.VerifyingKey, iteration int) error {
	pgk, err := mintasset.GenerateProofGenerationKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate proof generation key: %w", err)
	}
	ar, err := jubjub.RandomScalar(rand.Reader)
	if err != nil {
		return fmt.Errorf("sample randomizer: %w", err)
	}
	assignment, err := mintasset.BuildAssignment(pgk, ar)
	if err != nil {
		return fmt.Errorf("build assignment: %w", err)
	}

	proof, err := mintasset.Prove(ccs, pk, assignment)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	if err := mintasset.Verify(vk, proof, assignment.Rk, assignment.PkD); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	mintasset.Log.Info().Int("iteration", iteration).Msg("proof verified")
	return nil
}
