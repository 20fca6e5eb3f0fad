package blake2s

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"golang.org/x/crypto/blake2s"
)

var testPersonalization = [8]byte{'M', 'n', 't', 'I', 'v', 'k', '0', '1'}

type hashCircuit struct {
	Preimage [BlockBits]frontend.Variable
	Digest   [DigestBits]frontend.Variable `gnark:",public"`
}

func (c *hashCircuit) Define(api frontend.API) error {
	digest, err := Hash(api, c.Preimage[:], testPersonalization)
	if err != nil {
		return err
	}
	for i := 0; i < DigestBits; i++ {
		api.AssertIsEqual(digest[i], c.Digest[i])
	}
	return nil
}

// referenceDigestBits computes the expected digest bits out of circuit with
// golang.org/x/crypto/blake2s, using the same block and personalization, so
// the in-circuit gadget can be checked against a trusted implementation.
func referenceDigestBits(t *testing.T, block [64]byte) [DigestBits]int {
	t.Helper()
	h, err := blake2s.New256(&blake2s.Config{Person: testPersonalization[:]})
	if err != nil {
		t.Fatalf("blake2s.New256: %v", err)
	}
	h.Write(block[:])
	sum := h.Sum(nil)

	var bits [DigestBits]int
	for i, b := range sum {
		for j := 0; j < 8; j++ {
			bits[i*8+j] = int((b >> uint(j)) & 1)
		}
	}
	return bits
}

func bytesToLEBits(b []byte) [BlockBits]int {
	var bits [BlockBits]int
	for i, c := range b {
		for j := 0; j < 8; j++ {
			bits[i*8+j] = int((c >> uint(j)) & 1)
		}
	}
	return bits
}

func TestHashMatchesReference(t *testing.T) {
	var block [64]byte
	for i := range block {
		block[i] = byte(i * 7 % 251)
	}

	preimageBits := bytesToLEBits(block[:])
	digestBits := referenceDigestBits(t, block)

	assert := test.NewAssert(t)
	circuit := &hashCircuit{}
	witness := &hashCircuit{}
	for i := 0; i < BlockBits; i++ {
		witness.Preimage[i] = preimageBits[i]
	}
	for i := 0; i < DigestBits; i++ {
		witness.Digest[i] = digestBits[i]
	}

	assert.ProverSucceeded(circuit, witness, test.WithCurves(ecc.BLS12_381))
}

func TestHashRejectsWrongDigest(t *testing.T) {
	var block [64]byte
	preimageBits := bytesToLEBits(block[:])
	digestBits := referenceDigestBits(t, block)
	digestBits[0] ^= 1 // flip one output bit

	assert := test.NewAssert(t)
	circuit := &hashCircuit{}
	witness := &hashCircuit{}
	for i := 0; i < BlockBits; i++ {
		witness.Preimage[i] = preimageBits[i]
	}
	for i := 0; i < DigestBits; i++ {
		witness.Digest[i] = digestBits[i]
	}

	assert.ProverFailed(circuit, witness, test.WithCurves(ecc.BLS12_381))
}
