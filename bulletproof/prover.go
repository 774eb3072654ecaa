package bulletproof

import (
	"crypto/sha256"
	"math/big"

	"github.com/ltcsuite/mweb/generators"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/pedersen"
)

// ProveParams bundles Prove's inputs (§4.5).
type ProveParams struct {
	Value        uint64
	Blind        mwcrypto.Scalar
	PrivateNonce [32]byte
	RewindNonce  [32]byte
	ProofMessage Message
	ExtraData    []byte
}

// Prove builds a Bulletproof range proof attesting that Value lies in
// [0, 2^64), committed as Commit(Value, Blind) = Value*H + Blind*G. The
// proof additionally encrypts Value and ProofMessage into the alpha
// term so that whoever later holds RewindNonce can recover them
// (Rewind), without needing the original Blind.
func Prove(p ProveParams) (Proof, mwcrypto.Point, error) {
	gens := generators.GetGenerators(2 * NumBits)
	gi, hi := gens[:NumBits], gens[NumBits:]

	commitPoint := pedersen.Commit(p.Value, p.Blind).Point

	commit := mwhash.UpdateCommit(mwtypes.Hash{}, commitPoint, generators.H())
	commit = mixExtraData(commit, p.ExtraData)

	alpha, rho := mwhash.ScalarChaCha20(p.RewindNonce, 0)
	tau1, tau2 := mwhash.ScalarChaCha20(p.PrivateNonce, 1)

	alpha = alpha.Add(encryptedValueScalar(p.Value, p.ProofMessage).Negate())

	A := mwcrypto.MulG(alpha)
	for j := 0; j < NumBits; j++ {
		if (p.Value>>uint(j))&1 == 1 {
			A = A.Add(gi[j])
		} else {
			A = A.Sub(hi[j])
		}
	}

	sl := make([]mwcrypto.Scalar, NumBits)
	sr := make([]mwcrypto.Scalar, NumBits)
	for j := 0; j < NumBits; j++ {
		sl[j], sr[j] = mwhash.ScalarChaCha20(p.RewindNonce, uint64(j+2))
	}
	S := mwcrypto.MulG(rho)
	for j := 0; j < NumBits; j++ {
		S = S.Add(gi[j].Mul(sl[j])).Add(hi[j].Mul(sr[j]))
	}

	commit = mwhash.UpdateCommit(commit, A, S)
	y := commitToScalar(commit)
	commit = mwhash.UpdateCommit(commit, A, S)
	z := commitToScalar(commit)

	l0 := make([]mwcrypto.Scalar, NumBits)
	l1 := make([]mwcrypto.Scalar, NumBits)
	r0 := make([]mwcrypto.Scalar, NumBits)
	r1 := make([]mwcrypto.Scalar, NumBits)

	yn := oneScalar()
	z2 := z.Mul(z)
	z22n := z2
	var t0, aPrime, bPrime mwcrypto.Scalar
	for j := 0; j < NumBits; j++ {
		bit := (p.Value >> uint(j)) & 1
		bitS := bitScalar(bit)
		notBitS := bitScalar(1 - bit)

		l0[j] = bitS.Sub(z)
		l1[j] = sl[j]

		r0[j] = yn.Mul(z.Sub(notBitS)).Add(z22n)
		r1[j] = yn.Mul(sr[j])

		t0 = t0.Add(l0[j].Mul(r0[j]))
		aPrime = aPrime.Add(l0[j].Add(l1[j]).Mul(r0[j].Add(r1[j])))
		bPrime = bPrime.Add(l0[j].Sub(l1[j]).Mul(r0[j].Sub(r1[j])))

		yn = yn.Mul(y)
		z22n = z22n.Add(z22n)
	}

	two := scalarFromUint64(2)
	twoInv, _ := two.Inverse()
	t1 := aPrime.Sub(bPrime).Mul(twoInv)
	t2 := bPrime.Sub(t0).Add(t1)

	T1 := mwcrypto.MulG(tau1).Add(generators.H().Mul(t1))
	T2 := mwcrypto.MulG(tau2).Add(generators.H().Mul(t2))

	commit = mwhash.UpdateCommit(commit, T1, T2)
	x := commitToScalar(commit)

	x2 := x.Mul(x)
	// tau_x = -(tau1*x + tau2*x^2 + z^2*blind) mod n (§4.5): negated so
	// Verify can fold it into the same side of its check as t_hat
	// without a compensating subtraction.
	tauX := tau1.Mul(x).Add(tau2.Mul(x2)).Add(z2.Mul(p.Blind)).Negate()
	mu := rho.Mul(x).Add(alpha).Negate()

	a := make([]mwcrypto.Scalar, NumBits)
	b := make([]mwcrypto.Scalar, NumBits)
	for j := 0; j < NumBits; j++ {
		a[j] = l0[j].Add(l1[j].Mul(x))
		b[j] = r0[j].Add(r1[j].Mul(x))
	}

	points := []mwcrypto.Point{A, S, T1, T2}
	ptsBytes := SerializePoints(points)

	ux := commitToScalar(mixExtraData(commit, append(append(tauX.Bytes(), mu.Bytes()...), ptsBytes...)))

	tHat := innerProduct(a, b)
	rounds, aTail, bTail, _ := foldIPA(gi, hi, a, b, ux, commit)
	ipaBytes := serializeIPA(tHat, aTail, bTail, rounds)

	proof := make(Proof, 0, headerSize+len(ipaBytes))
	proof = append(proof, tauX.Bytes()...)
	proof = append(proof, mu.Bytes()...)
	proof = append(proof, ptsBytes...)
	proof = append(proof, ipaBytes...)

	return proof, commitPoint, nil
}

func mixExtraData(commit mwtypes.Hash, extra []byte) mwtypes.Hash {
	if len(extra) == 0 {
		return commit
	}
	h := sha256.New()
	h.Write(commit[:])
	h.Write(extra)
	var out mwtypes.Hash
	copy(out[:], h.Sum(nil))
	return out
}

func bitScalar(bit uint64) mwcrypto.Scalar {
	var b [32]byte
	b[31] = byte(bit)
	s, _ := mwcrypto.ScalarFromCanonicalBytes(b[:])
	return s
}

func oneScalar() mwcrypto.Scalar { return bitScalar(1) }

func scalarFromUint64(v uint64) mwcrypto.Scalar {
	var b [32]byte
	big.NewInt(0).SetUint64(v).FillBytes(b[:])
	s, _ := mwcrypto.ScalarFromCanonicalBytes(b[:])
	return s
}

// encryptedValueScalar packs Value as a 32-byte big-endian integer with
// bytes [4,24) overwritten by the proof message, matching §4.5's "value
// encryption into alpha" step. The result is subtracted from the
// nonce-derived alpha, so -mu = rho*x + alphaRaw - (encrypted value) lets
// the rewind holder recover it.
func encryptedValueScalar(value uint64, msg Message) mwcrypto.Scalar {
	var b [32]byte
	big.NewInt(0).SetUint64(value).FillBytes(b[:])
	copy(b[4:24], msg[:])
	s, _ := mwcrypto.ScalarFromCanonicalBytes(b[:])
	return s
}
