// Package generators derives the independent secp256k1 generators MWEB
// needs beyond the standard base point: H and J for Pedersen commitments
// and blind-switching, and the 2N auxiliary generator vector the
// Bulletproof prover uses for its bit-commitment vectors (§4.3).
package generators

import (
	"math/big"

	"github.com/ltcsuite/mweb/mwcrypto"
)

// curveB is the secp256k1 curve parameter b in y^2 = x^3 + b.
var curveB = mwcrypto.FieldFromBigInt(big.NewInt(7))

// swuConstC and swuConstD are the Shallue-van de Woestijne constants:
// c = sqrt(-3) mod p, d = (c-1)/2 mod p.
var (
	swuConstC = mustSqrtNeg3()
	swuConstD = computeD(swuConstC)
)

func mustSqrtNeg3() mwcrypto.FieldElement {
	negThree := mwcrypto.FieldFromBigInt(big.NewInt(-3))
	root, ok := negThree.Sqrt()
	if !ok {
		panic("generators: sqrt(-3) does not exist mod p, secp256k1 field is broken")
	}
	return root
}

func computeD(c mwcrypto.FieldElement) mwcrypto.FieldElement {
	one := mwcrypto.FieldFromBigInt(big.NewInt(1))
	two := mwcrypto.FieldFromBigInt(big.NewInt(2))
	twoInv, err := two.Inverse()
	if err != nil {
		panic(err)
	}
	return c.Sub(one).Mul(twoInv)
}

// shallueVanDeWoestijne maps a field element t to a point on the curve,
// following §4.3: with w = c*t / (1 + b + t^2), the three candidate
// x-coordinates are x1 = d - t*w, x2 = -x1 - 1, x3 = 1 + 1/w^2. The first
// candidate whose curve equation value is a quadratic residue is chosen;
// y is negated if t is odd.
func shallueVanDeWoestijne(t mwcrypto.FieldElement) mwcrypto.Point {
	one := mwcrypto.FieldFromBigInt(big.NewInt(1))

	denom := one.Add(curveB).Add(t.Square())
	denomInv, err := denom.Inverse()
	if err != nil {
		// t^2 == -(1+b): retry with t+1. The generator seeds are hash
		// outputs, so hitting this branch has negligible probability.
		return shallueVanDeWoestijne(t.Add(one))
	}
	w := swuConstC.Mul(t).Mul(denomInv)

	x1 := swuConstD.Sub(t.Mul(w))
	x2 := x1.Negate().Sub(one)

	wInv, err := w.Inverse()
	var x3 mwcrypto.FieldElement
	if err != nil {
		x3 = one
	} else {
		x3 = one.Add(wInv.Square())
	}

	for _, x := range []mwcrypto.FieldElement{x1, x2, x3} {
		rhs := x.Square().Mul(x).Add(curveB)
		if mwcrypto.IsQuadraticResidue(rhs) {
			y, ok := rhs.Sqrt()
			if !ok {
				continue
			}
			if t.IsOdd() {
				y = y.Negate()
			}
			p, err := mwcrypto.NewPointFromAffine(x, y)
			if err == nil {
				return p
			}
		}
	}
	// Unreachable for a correctly implemented map: one of the three
	// candidates is always on-curve.
	panic("generators: shallue-van de woestijne map failed to find a point")
}
