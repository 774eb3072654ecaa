package mwhash

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/stretchr/testify/require"
)

func TestRfc6979Deterministic(t *testing.T) {
	key := make([]byte, 64) // Gx || Gy sized seed
	d1 := NewRfc6979Drbg(key)
	d2 := NewRfc6979Drbg(key)

	require.Equal(t, d1.Generate(64), d2.Generate(64))
}

func TestRfc6979GeneratesDistinctChunks(t *testing.T) {
	d := NewRfc6979Drbg([]byte("seed"))
	out := d.Generate(96)
	require.Len(t, out, 96)
	require.NotEqual(t, out[0:32], out[32:64])
	require.NotEqual(t, out[32:64], out[64:96])
}

// TestRfc6979KnownAnswer checks the DRBG seeded with Gx||Gy (the same
// seed GetGenerators uses) against the literal KAT in spec.md §8 (S5).
// spec.md gives the first two outputs elided to a 4-byte prefix and a
// 2-byte suffix each rather than the full 32 bytes, so that is what this
// asserts against; it still pins the DRBG's byte layout at both ends of
// each output rather than leaving it unchecked.
func TestRfc6979KnownAnswer(t *testing.T) {
	gx, gy := mwcrypto.GeneratorG().Affine()
	seed := append(gx.Bytes(), gy.Bytes()...)
	d := NewRfc6979Drbg(seed)
	out := d.Generate(64)

	first := hex.EncodeToString(out[0:32])
	second := hex.EncodeToString(out[32:64])

	require.True(t, strings.HasPrefix(first, "edc883a9"), "first output: %s", first)
	require.True(t, strings.HasSuffix(first, "88c7"), "first output: %s", first)
	require.True(t, strings.HasPrefix(second, "d99994e5"), "second output: %s", second)
	require.True(t, strings.HasSuffix(second, "b65f"), "second output: %s", second)
}
