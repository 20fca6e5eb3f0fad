package mintasset

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilmint/mintasset/internal/jubjub"
)

func samplePGK(t *testing.T) *ProofGenerationKey {
	t.Helper()
	pgk, err := GenerateProofGenerationKey(rand.Reader)
	require.NoError(t, err)
	return pgk
}

func TestWitnessRoundTripBothPresent(t *testing.T) {
	pgk := samplePGK(t)
	ar, err := jubjub.RandomScalar(rand.Reader)
	require.NoError(t, err)

	w := &Witness{ProofGenerationKey: pgk, PublicKeyRandomness: &ar}
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	got, err := ReadWitness(&buf)
	require.NoError(t, err)
	require.NotNil(t, got.ProofGenerationKey)
	require.NotNil(t, got.PublicKeyRandomness)
	require.True(t, got.ProofGenerationKey.Ak.Equal(pgk.Ak))
	require.True(t, got.ProofGenerationKey.Nsk.Equal(pgk.Nsk))
	require.True(t, got.PublicKeyRandomness.Equal(ar))
}

func TestWitnessRoundTripNeitherPresent(t *testing.T) {
	w := &Witness{}
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	got, err := ReadWitness(&buf)
	require.NoError(t, err)
	require.Nil(t, got.ProofGenerationKey)
	require.Nil(t, got.PublicKeyRandomness)
}

func TestWitnessRoundTripOnlyProofGenerationKey(t *testing.T) {
	pgk := samplePGK(t)
	w := &Witness{ProofGenerationKey: pgk}
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	got, err := ReadWitness(&buf)
	require.NoError(t, err)
	require.NotNil(t, got.ProofGenerationKey)
	require.Nil(t, got.PublicKeyRandomness)
}

func TestWitnessRoundTripOnlyRandomizer(t *testing.T) {
	ar, err := jubjub.RandomScalar(rand.Reader)
	require.NoError(t, err)
	w := &Witness{PublicKeyRandomness: &ar}
	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	got, err := ReadWitness(&buf)
	require.NoError(t, err)
	require.Nil(t, got.ProofGenerationKey)
	require.NotNil(t, got.PublicKeyRandomness)
}

func TestWitnessMarshalBinaryRoundTrip(t *testing.T) {
	pgk := samplePGK(t)
	ar, err := jubjub.RandomScalar(rand.Reader)
	require.NoError(t, err)
	w := &Witness{ProofGenerationKey: pgk, PublicKeyRandomness: &ar}

	blob, err := w.MarshalBinary()
	require.NoError(t, err)

	var got Witness
	require.NoError(t, got.UnmarshalBinary(blob))
	require.True(t, got.ProofGenerationKey.Ak.Equal(pgk.Ak))
}

func TestWitnessReadTruncatedIsError(t *testing.T) {
	_, err := ReadWitness(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrTruncatedWitness)

	_, err = ReadWitness(bytes.NewReader([]byte{presencePresent}))
	require.ErrorIs(t, err, ErrTruncatedWitness)
}

func TestWitnessReadInvalidPresenceFlag(t *testing.T) {
	_, err := ReadWitness(bytes.NewReader([]byte{7}))
	require.Error(t, err)
}
