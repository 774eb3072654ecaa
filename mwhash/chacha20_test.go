package mwhash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/mwcrypto"
)

func TestScalarChaCha20Deterministic(t *testing.T) {
	var seed [32]byte
	s1a, s2a := ScalarChaCha20(seed, 0)
	s1b, s2b := ScalarChaCha20(seed, 0)

	require.Equal(t, s1a, s1b)
	require.Equal(t, s2a, s2b)
	require.NotEqual(t, s1a, s2a)
}

func TestScalarChaCha20VariesWithIndex(t *testing.T) {
	var seed [32]byte
	s1, _ := ScalarChaCha20(seed, 0)
	s2, _ := ScalarChaCha20(seed, 1)
	require.NotEqual(t, s1, s2)
}

func TestScalarChaCha20OutputsInRange(t *testing.T) {
	var seed [32]byte
	for idx := uint64(0); idx < 8; idx++ {
		s1, s2 := ScalarChaCha20(seed, idx)
		require.False(t, s1.IsZero() && s2.IsZero())
		_, err := mwcrypto.ScalarFromCanonicalBytes(s1.Bytes())
		require.NoError(t, err)
		_, err = mwcrypto.ScalarFromCanonicalBytes(s2.Bytes())
		require.NoError(t, err)
	}
}

// TestScalarChaCha20KnownAnswer checks seed=0^256, idx=0 against the
// literal KAT in spec.md §8 (S4), derived from the ChaCha20 block
// function's well-known all-zero test vector (RFC 8439 §2.3.2).
func TestScalarChaCha20KnownAnswer(t *testing.T) {
	var seed [32]byte
	l, r := ScalarChaCha20(seed, 0)

	wantL, err := hex.DecodeString("76b8e0ada0f13d90405d6ae55386bd28bdd219b8a08ded1aa836efcc8b770dc7")
	require.NoError(t, err)
	wantR, err := hex.DecodeString("da41597c5157488d7724e03fb8d84a376a43b8f41518a11cc387b669b2ee6586")
	require.NoError(t, err)

	require.Equal(t, wantL, l.Bytes())
	require.Equal(t, wantR, r.Bytes())
}
