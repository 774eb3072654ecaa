package pedersen

import (
	"testing"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/stretchr/testify/require"
)

func scalar(b byte) mwcrypto.Scalar {
	var buf [32]byte
	buf[31] = b
	s, _ := mwcrypto.ScalarFromCanonicalBytes(buf[:])
	return s
}

func TestCommitDeterministic(t *testing.T) {
	r := scalar(7)
	c1 := Commit(100, r)
	c2 := Commit(100, r)
	require.True(t, c1.IsEqual(c2))
}

func TestCommitHomomorphicAddition(t *testing.T) {
	r1, r2 := scalar(3), scalar(5)
	c1 := Commit(10, r1)
	c2 := Commit(20, r2)

	sum := c1.Add(c2)
	expected := Commit(30, r1.Add(r2))
	require.True(t, sum.IsEqual(expected))
}

func TestBlindSwitchDeterministicAndValueBound(t *testing.T) {
	r := scalar(9)
	s1 := BlindSwitch(r, 100)
	s2 := BlindSwitch(r, 100)
	require.Equal(t, s1, s2)

	s3 := BlindSwitch(r, 200)
	require.NotEqual(t, s1, s3)
}

func TestAddBlindingFactors(t *testing.T) {
	pos := []mwcrypto.Scalar{scalar(1), scalar(2)}
	neg := []mwcrypto.Scalar{scalar(1)}
	sum := AddBlindingFactors(pos, neg)
	require.Equal(t, scalar(2), sum)
}

func TestCommitmentSerializeRoundTrip(t *testing.T) {
	c := Commit(42, scalar(1))
	b := c.SerializeCompressed()
	require.Len(t, b, 33)

	parsed, err := ParseCommitment(b)
	require.NoError(t, err)
	require.True(t, c.IsEqual(parsed))
}
