package bulletproof

import (
	"github.com/ltcsuite/mweb/generators"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
)

// parsedHeader is the decoded tau_x, mu, and point quadruple from a
// proof's fixed-size header.
type parsedHeader struct {
	tauX, mu   mwcrypto.Scalar
	a, s, t1, t2 mwcrypto.Point
	ptsBytes   []byte
}

func parseHeader(proof Proof) (parsedHeader, error) {
	var h parsedHeader
	if len(proof) < headerSize {
		return h, ErrMalformedProof
	}

	var err error
	h.tauX, err = mwcrypto.ScalarFromCanonicalBytes(proof[0:32])
	if err != nil {
		return h, ErrMalformedProof
	}
	h.mu, err = mwcrypto.ScalarFromCanonicalBytes(proof[32:64])
	if err != nil {
		return h, ErrMalformedProof
	}

	h.ptsBytes = proof[64:headerSize]
	pts, err := DeserializePoints(h.ptsBytes, 4)
	if err != nil {
		return h, ErrMalformedProof
	}
	h.a, h.s, h.t1, h.t2 = pts[0], pts[1], pts[2], pts[3]
	return h, nil
}

// deriveChallenges replays the Fiat-Shamir transcript for a proof
// against a commitment and extra data, returning y, z, x and the
// final transcript state (used as the seed for the inner-product
// argument's "ux" scalar).
func deriveChallenges(commitment mwcrypto.Point, h parsedHeader, extraData []byte) (y, z, x mwcrypto.Scalar, commit mwtypes.Hash) {
	commit = mwhash.UpdateCommit(mwtypes.Hash{}, commitment, generators.H())
	commit = mixExtraData(commit, extraData)

	commit = mwhash.UpdateCommit(commit, h.a, h.s)
	y = commitToScalar(commit)
	commit = mwhash.UpdateCommit(commit, h.a, h.s)
	z = commitToScalar(commit)

	commit = mwhash.UpdateCommit(commit, h.t1, h.t2)
	x = commitToScalar(commit)
	return y, z, x, commit
}
