package mwhash

import "github.com/ltcsuite/mweb/mwcrypto"

// HashToScalar reduces a tagged Blake3 digest over parts into a scalar mod
// n. Used for every H_<name> derivation in §4.4 and §4.6 (blind switch,
// per-index spend tweak, ephemeral send scalar, shared secret, output-key
// tweak).
func HashToScalar(tag byte, parts ...[]byte) mwcrypto.Scalar {
	digest := Tagged(tag, parts...)
	s, _ := mwcrypto.ScalarFromCanonicalBytes(reduceModN(digest[:]))
	return s
}

// reduceModN reduces an arbitrary 32-byte string mod n by round-tripping
// it through a ModNScalar, which performs the reduction internally.
func reduceModN(b []byte) []byte {
	var s mwcrypto.Scalar
	copy(s[:], b)
	reduced := s.ModN().Bytes()
	return reduced[:]
}
