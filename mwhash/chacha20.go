package mwhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/ltcsuite/mweb/mwcrypto"
)

// chacha20Constants are the standard "expand 32-byte k" constant words.
var chacha20Constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

func quarterRound(a, b, c, d *uint32) {
	*a += *b
	*d ^= *a
	*d = bits.RotateLeft32(*d, 16)
	*c += *d
	*b ^= *c
	*b = bits.RotateLeft32(*b, 12)
	*a += *b
	*d ^= *a
	*d = bits.RotateLeft32(*d, 8)
	*c += *d
	*b ^= *c
	*b = bits.RotateLeft32(*b, 7)
}

// chacha20Block runs the 20-round (10 double-round) ChaCha20 core over
// the given 16-word state and returns the keystream words, with the
// original state added back in per the standard construction.
func chacha20Block(state [16]uint32) [16]uint32 {
	x := state
	for i := 0; i < 10; i++ {
		quarterRound(&x[0], &x[4], &x[8], &x[12])
		quarterRound(&x[1], &x[5], &x[9], &x[13])
		quarterRound(&x[2], &x[6], &x[10], &x[14])
		quarterRound(&x[3], &x[7], &x[11], &x[15])

		quarterRound(&x[0], &x[5], &x[10], &x[15])
		quarterRound(&x[1], &x[6], &x[11], &x[12])
		quarterRound(&x[2], &x[7], &x[8], &x[13])
		quarterRound(&x[3], &x[4], &x[9], &x[14])
	}
	for i := range x {
		x[i] += state[i]
	}
	return x
}

// ScalarChaCha20 derives two scalars deterministically from a 32-byte
// seed and an index, as used by the Bulletproof prover for alpha/rho
// (idx=0), tau1/tau2 (idx=1), and sl_j/sr_j (idx=j+2). Per §4.2, the
// block's 64-byte keystream (each word serialized little-endian, in
// word order) is split into two 32-byte halves taken directly as
// big-endian scalar encodings; outputs that are not strictly less than
// n are rejected and the over-counter word is incremented until both
// halves are in range.
func ScalarChaCha20(seed [32]byte, idx uint64) (mwcrypto.Scalar, mwcrypto.Scalar) {
	var state [16]uint32
	copy(state[0:4], chacha20Constants[:])
	for i := 0; i < 8; i++ {
		state[4+i] = binary.LittleEndian.Uint32(seed[i*4 : i*4+4])
	}
	state[12] = uint32(idx)
	state[13] = uint32(idx >> 32)
	state[14] = 0

	for over := uint32(0); ; over++ {
		state[15] = over
		out := chacha20Block(state)

		var stream [64]byte
		for i, w := range out {
			binary.LittleEndian.PutUint32(stream[i*4:i*4+4], w)
		}

		s1, err1 := mwcrypto.ScalarFromCanonicalBytes(stream[0:32])
		s2, err2 := mwcrypto.ScalarFromCanonicalBytes(stream[32:64])
		if err1 == nil && err2 == nil {
			return s1, s2
		}
	}
}
