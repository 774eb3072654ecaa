package mwhash

import (
	"crypto/sha256"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwtypes"
)

// UpdateCommit folds two points into a running SHA-256 transcript
// commitment, as used between every round of the Bulletproof proof to
// derive Fiat-Shamir challenges (§4.2). The one-byte parity prefix
// records which of L, R has a non-quadratic-residue Y coordinate, so the
// verifier can recompute the same challenge without needing the full Y
// coordinate.
func UpdateCommit(commit mwtypes.Hash, l, r mwcrypto.Point) mwtypes.Hash {
	var parity byte
	if !l.IsQuadY() {
		parity |= 2
	}
	if !r.IsQuadY() {
		parity |= 1
	}

	h := sha256.New()
	h.Write(commit[:])
	h.Write([]byte{parity})
	h.Write(l.X().Bytes())
	h.Write(r.X().Bytes())

	var out mwtypes.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Bytes is a convenience alias so callers working with mwcrypto.FieldElement
// style APIs can pull raw bytes for a hash.
func Bytes(h mwtypes.Hash) []byte { return h[:] }
