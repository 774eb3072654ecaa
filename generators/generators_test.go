package generators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/mwcrypto"
)

func TestGetGeneratorsDeterministicAndDistinct(t *testing.T) {
	gens1 := GetGenerators(8)
	gens2 := GetGenerators(8)
	require.Len(t, gens1, 8)

	for i := range gens1 {
		require.True(t, gens1[i].IsEqual(gens2[i]))
		require.False(t, gens1[i].IsInfinity())
		for j := range gens1 {
			if i == j {
				continue
			}
			require.False(t, gens1[i].IsEqual(gens1[j]), "generators %d and %d collided", i, j)
		}
	}
}

func TestHAndJAreDistinctFromGAndEachOther(t *testing.T) {
	g := H()
	j := J()
	require.False(t, g.IsEqual(j))
	require.False(t, g.IsEqual(mwcrypto.GeneratorG()))
	require.False(t, j.IsEqual(mwcrypto.GeneratorG()))
}
