package bulletproof

import (
	"encoding/binary"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
)

// ipaRoundPoints is one round's (L, R) pair from the recursive
// inner-product argument.
type ipaRoundPoints struct {
	L, R mwcrypto.Point
}

func innerProduct(a, b []mwcrypto.Scalar) mwcrypto.Scalar {
	var sum mwcrypto.Scalar
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

func msm(points []mwcrypto.Point, scalars []mwcrypto.Scalar) mwcrypto.Point {
	var sum mwcrypto.Point
	first := true
	for i, s := range scalars {
		if s.IsZero() {
			continue
		}
		term := points[i].Mul(s)
		if first {
			sum = term
			first = false
		} else {
			sum = sum.Add(term)
		}
	}
	return sum
}

// commitToScalar reduces a 32-byte transcript digest to a challenge
// scalar mod n.
func commitToScalar(h mwtypes.Hash) mwcrypto.Scalar {
	s, _ := mwcrypto.ScalarFromCanonicalBytes(reduceModN32(h))
	return s
}

func reduceModN32(h mwtypes.Hash) []byte {
	b := make([]byte, 32)
	copy(b, h[:])
	var s mwcrypto.Scalar
	copy(s[:], b)
	reduced := s.ModN().Bytes()
	return reduced[:]
}

// foldIPA runs the recursive halving of the inner-product argument,
// returning the round (L,R) points in order and the final, base-case a,
// b vectors (length IPAbScalars/2). The "ux" scalar scales every L/R
// cross-term, matching the reference's single shared blinding scalar
// across rounds; commit threads the Fiat-Shamir transcript forward so
// the verifier can recompute the same challenges.
func foldIPA(
	gi, hi []mwcrypto.Point,
	a, b []mwcrypto.Scalar,
	ux mwcrypto.Scalar,
	commit mwtypes.Hash,
) (rounds []ipaRoundPoints, aTail, bTail []mwcrypto.Scalar, finalCommit mwtypes.Hash) {
	for len(a) > IPAbScalars/2 {
		n := len(a)
		half := n / 2

		aL, aR := a[:half], a[half:]
		bL, bR := b[:half], b[half:]
		gL, gR := gi[:half], gi[half:]
		hL, hR := hi[:half], hi[half:]

		cL := innerProduct(aL, bR)
		cR := innerProduct(aR, bL)

		L := mwcrypto.MulG(cL.Mul(ux)).Add(msm(gR, aL)).Add(msm(hL, bR))
		R := mwcrypto.MulG(cR.Mul(ux)).Add(msm(gL, aR)).Add(msm(hR, bL))

		commit = mwhash.UpdateCommit(commit, L, R)
		xk := commitToScalar(commit)
		xkInv, err := xk.Inverse()
		if err != nil {
			// Vanishing challenge has negligible probability; retry
			// by perturbing the transcript deterministically.
			commit = mwhash.UpdateCommit(commit, L, R)
			xk = commitToScalar(commit)
			xkInv, _ = xk.Inverse()
		}

		newA := make([]mwcrypto.Scalar, half)
		newB := make([]mwcrypto.Scalar, half)
		newG := make([]mwcrypto.Point, half)
		newH := make([]mwcrypto.Point, half)
		for i := 0; i < half; i++ {
			newA[i] = aL[i].Mul(xk).Add(aR[i].Mul(xkInv))
			newB[i] = bL[i].Mul(xkInv).Add(bR[i].Mul(xk))
			newG[i] = gL[i].Mul(xkInv).Add(gR[i].Mul(xk))
			newH[i] = hL[i].Mul(xk).Add(hR[i].Mul(xkInv))
		}

		rounds = append(rounds, ipaRoundPoints{L: L, R: R})
		a, b, gi, hi = newA, newB, newG, newH
	}

	return rounds, a, b, commit
}

// serializeIPA lays out the inner-product argument per §4.5.2: the
// top-level inner product, the base-case a/b tail, then the round
// (L,R) points with their shared parity bitvector.
func serializeIPA(tHat mwcrypto.Scalar, aTail, bTail []mwcrypto.Scalar, rounds []ipaRoundPoints) []byte {
	out := make([]byte, 0, 32+32*len(aTail)+32*len(bTail))
	out = append(out, tHat.Bytes()...)
	for _, s := range aTail {
		out = append(out, s.Bytes()...)
	}
	for _, s := range bTail {
		out = append(out, s.Bytes()...)
	}

	points := make([]mwcrypto.Point, 0, 2*len(rounds))
	for _, r := range rounds {
		points = append(points, r.L, r.R)
	}
	out = append(out, SerializePoints(points)...)
	return out
}

// deserializeIPA parses the byte layout serializeIPA produces, given the
// expected vector size n.
func deserializeIPA(b []byte, n int) (tHat mwcrypto.Scalar, aTail, bTail []mwcrypto.Scalar, rounds []ipaRoundPoints, err error) {
	tailLen := IPAbScalars / 2
	need := 32 * (1 + 2*tailLen)
	if len(b) < need {
		return tHat, nil, nil, nil, ErrMalformedProof
	}

	off := 0
	tHat, err = mwcrypto.ScalarFromCanonicalBytes(b[off : off+32])
	if err != nil {
		return tHat, nil, nil, nil, err
	}
	off += 32

	aTail = make([]mwcrypto.Scalar, tailLen)
	for i := range aTail {
		aTail[i], err = mwcrypto.ScalarFromCanonicalBytes(b[off : off+32])
		if err != nil {
			return tHat, nil, nil, nil, err
		}
		off += 32
	}
	bTail = make([]mwcrypto.Scalar, tailLen)
	for i := range bTail {
		bTail[i], err = mwcrypto.ScalarFromCanonicalBytes(b[off : off+32])
		if err != nil {
			return tHat, nil, nil, nil, err
		}
		off += 32
	}

	numPoints := 2 * ipaRounds(n)
	pts, err := DeserializePoints(b[off:], numPoints)
	if err != nil {
		return tHat, nil, nil, nil, err
	}

	rounds = make([]ipaRoundPoints, numPoints/2)
	for i := range rounds {
		rounds[i] = ipaRoundPoints{L: pts[2*i], R: pts[2*i+1]}
	}
	return tHat, aTail, bTail, rounds, nil
}

// recomputeFold replays foldIPA's challenge derivation using the
// recorded round points, without needing the original a, b vectors —
// the verifier's half of the protocol. It returns the final folded
// generator vectors so the caller can check the base-case equality.
func recomputeFold(
	gi, hi []mwcrypto.Point,
	ux mwcrypto.Scalar,
	commit mwtypes.Hash,
	rounds []ipaRoundPoints,
) (foldedG, foldedH []mwcrypto.Point, challenges []mwcrypto.Scalar, finalCommit mwtypes.Hash) {
	_ = ux
	for _, rd := range rounds {
		n := len(gi)
		half := n / 2
		gL, gR := gi[:half], gi[half:]
		hL, hR := hi[:half], hi[half:]

		commit = mwhash.UpdateCommit(commit, rd.L, rd.R)
		xk := commitToScalar(commit)
		xkInv, err := xk.Inverse()
		if err != nil {
			commit = mwhash.UpdateCommit(commit, rd.L, rd.R)
			xk = commitToScalar(commit)
			xkInv, _ = xk.Inverse()
		}

		newG := make([]mwcrypto.Point, half)
		newH := make([]mwcrypto.Point, half)
		for i := 0; i < half; i++ {
			newG[i] = gL[i].Mul(xkInv).Add(gR[i].Mul(xk))
			newH[i] = hL[i].Mul(xk).Add(hR[i].Mul(xkInv))
		}
		challenges = append(challenges, xk)
		gi, hi = newG, newH
	}
	return gi, hi, challenges, commit
}

// scalarLE64 encodes v as an 8-byte big-endian slice. Nothing in the
// package calls it.
func scalarLE64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
