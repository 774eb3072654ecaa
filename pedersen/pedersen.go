// Package pedersen implements Pedersen commitments and the blinding-
// factor algebra MWEB balances transactions with (§4.4).
package pedersen

import (
	"math/big"

	"github.com/ltcsuite/mweb/generators"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
)

// Commitment is a Pedersen commitment C = v*H + r*G, carried as a curve
// point and serialized as a 33-byte compressed point.
type Commitment struct {
	Point mwcrypto.Point
}

// SerializeCompressed encodes the commitment as a 33-byte compressed
// point, tagged per the reference parity convention.
func (c Commitment) SerializeCompressed() []byte {
	return c.Point.SerializeCompressed()
}

// ParseCommitment decompresses a 33-byte commitment.
func ParseCommitment(b []byte) (Commitment, error) {
	p, err := mwcrypto.ParsePoint(b)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{Point: p}, nil
}

// Add returns the homomorphic sum of two commitments.
func (c Commitment) Add(o Commitment) Commitment {
	return Commitment{Point: c.Point.Add(o.Point)}
}

// Sub returns the homomorphic difference of two commitments.
func (c Commitment) Sub(o Commitment) Commitment {
	return Commitment{Point: c.Point.Sub(o.Point)}
}

// IsEqual reports whether two commitments are to the same point.
func (c Commitment) IsEqual(o Commitment) bool {
	return c.Point.IsEqual(o.Point)
}

// Commit computes C = v*H + r*G for a 64-bit value v and blinding
// factor r. Callers committing to an output value must pass
// BlindSwitch(r, v) rather than a raw blind, per invariant 1.
func Commit(v uint64, r mwcrypto.Scalar) Commitment {
	vScalar := scalarFromUint64(v)
	vH := generators.H().Mul(vScalar)
	rG := mwcrypto.MulG(r)
	return Commitment{Point: vH.Add(rG)}
}

// BlindSwitch re-randomizes a blinding factor to bind it to a specific
// value: r' = r + Blake3_B(Commit(v,r) || (v*J + r*G)) mod n (§4.4).
// Every output's on-chain commitment uses the switched blind, never the
// raw one, so balance checks cannot be fooled by reusing a blind across
// differently valued outputs.
func BlindSwitch(r mwcrypto.Scalar, v uint64) mwcrypto.Scalar {
	vScalar := scalarFromUint64(v)
	commit := Commit(v, r)

	vJ := generators.J().Mul(vScalar)
	rG := mwcrypto.MulG(r)
	switchPoint := vJ.Add(rG)

	tweak := mwhash.HashToScalar(mwhash.TagBlind,
		commit.Point.SerializeCompressed(),
		switchPoint.SerializeCompressed(),
	)
	return r.Add(tweak)
}

// AddBlindingFactors returns sum(pos) - sum(neg) mod n, the aggregate
// blind a transaction builder computes across its outputs and inputs.
func AddBlindingFactors(pos, neg []mwcrypto.Scalar) mwcrypto.Scalar {
	var sum mwcrypto.Scalar
	for _, p := range pos {
		sum = sum.Add(p)
	}
	for _, n := range neg {
		sum = sum.Sub(n)
	}
	return sum
}

func scalarFromUint64(v uint64) mwcrypto.Scalar {
	var b [32]byte
	big.NewInt(0).SetUint64(v).FillBytes(b[:])
	s, _ := mwcrypto.ScalarFromCanonicalBytes(b[:])
	return s
}
