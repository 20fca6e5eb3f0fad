package ephemeral

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateConsistency(t *testing.T) {
	kp, err := Generate(rand.Reader)
	require.NoError(t, err)
	require.True(t, kp.Validate())
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	kp, err := Generate(rand.Reader)
	require.NoError(t, err)

	blob := kp.ToBytesLE()
	got, err := FromBytesLE(blob[:])
	require.NoError(t, err)

	require.True(t, got.Secret().Equal(kp.Secret()))
	require.True(t, got.Public().Equal(kp.Public()))
	require.True(t, got.Validate())
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	_, err := FromBytesLE(make([]byte, 191))
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestSharedSecretAgreement(t *testing.T) {
	alice, err := Generate(rand.Reader)
	require.NoError(t, err)
	bob, err := Generate(rand.Reader)
	require.NoError(t, err)

	s1 := alice.SharedSecret(bob.Public())
	s2 := bob.SharedSecret(alice.Public())
	require.True(t, s1.Equal(s2))
}
