package mwcrypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarAddNegSub(t *testing.T) {
	a, err := ScalarFromCanonicalBytes(make([]byte, 32))
	require.NoError(t, err)
	require.True(t, a.IsZero())

	one, err := ScalarFromCanonicalBytes(append(make([]byte, 31), 1))
	require.NoError(t, err)

	two := one.Add(one)
	require.False(t, two.IsZero())

	back := two.Sub(one)
	require.Equal(t, one, back)

	neg := one.Negate()
	require.True(t, one.Add(neg).IsZero())
}

func TestScalarOverflowRejected(t *testing.T) {
	overflow := make([]byte, 32)
	for i := range overflow {
		overflow[i] = 0xff
	}
	_, err := ScalarFromCanonicalBytes(overflow)
	require.ErrorIs(t, err, ErrScalarOutOfRange)
}

func TestScalarMulInverse(t *testing.T) {
	one, err := ScalarFromCanonicalBytes(append(make([]byte, 31), 1))
	require.NoError(t, err)
	three, err := ScalarFromCanonicalBytes(append(make([]byte, 31), 3))
	require.NoError(t, err)

	inv, err := three.Inverse()
	require.NoError(t, err)

	require.Equal(t, one, three.Mul(inv))
}

func TestPointAddNegate(t *testing.T) {
	g := GeneratorG()
	two := g.Add(g)
	back := two.Sub(g)
	require.True(t, back.IsEqual(g))

	zero := g.Add(g.Negate())
	require.True(t, zero.IsInfinity())
}

func TestPointCompressedRoundTrip(t *testing.T) {
	g := GeneratorG()
	b := g.SerializeCompressed()
	require.Len(t, b, 33)

	parsed, err := ParsePoint(b)
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(g))
}

func TestIsQuadraticResidue(t *testing.T) {
	// 4 is a perfect square, so it must be a quadratic residue mod any
	// prime field.
	var four FieldElement
	four[31] = 4
	require.True(t, IsQuadraticResidue(four))
}
