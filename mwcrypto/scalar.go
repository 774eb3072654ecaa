package mwcrypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is a 32-byte big-endian integer modulo the secp256k1 group order
// n. It is the wire and in-memory form of every blinding factor, private
// key, and Schnorr nonce in the package.
type Scalar [32]byte

// ScalarFromModN packs a secp256k1.ModNScalar into its canonical 32-byte
// big-endian form.
func ScalarFromModN(s *secp256k1.ModNScalar) Scalar {
	var out Scalar
	b := s.Bytes()
	copy(out[:], b[:])
	return out
}

// ModN unpacks the Scalar into a secp256k1.ModNScalar, reducing mod n.
// Reduction should never occur for a well-formed Scalar; callers that need
// to detect overflow should use ScalarFromCanonicalBytes instead.
func (s Scalar) ModN() *secp256k1.ModNScalar {
	var ms secp256k1.ModNScalar
	ms.SetByteSlice(s[:])
	return &ms
}

// ScalarFromCanonicalBytes parses b as a Scalar, rejecting any value that
// is not strictly less than the group order n (§3 invariant 6).
func ScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	var out Scalar
	if len(b) != 32 {
		return out, ErrScalarOutOfRange
	}
	var ms secp256k1.ModNScalar
	overflow := ms.SetByteSlice(b)
	if overflow {
		return out, ErrScalarOutOfRange
	}
	copy(out[:], b)
	return out, nil
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.ModN().IsZero()
}

// Add returns s + t mod n.
func (s Scalar) Add(t Scalar) Scalar {
	sum := s.ModN().Add(t.ModN())
	return ScalarFromModN(sum)
}

// Negate returns -s mod n.
func (s Scalar) Negate() Scalar {
	ms := s.ModN()
	ms.Negate()
	return ScalarFromModN(ms)
}

// Sub returns s - t mod n.
func (s Scalar) Sub(t Scalar) Scalar {
	return s.Add(t.Negate())
}

// Mul returns s * t mod n.
func (s Scalar) Mul(t Scalar) Scalar {
	ms := s.ModN()
	ms.Mul(t.ModN())
	return ScalarFromModN(ms)
}

// Inverse returns s^-1 mod n. Returns ErrInversionFailed for a zero scalar.
func (s Scalar) Inverse() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrInversionFailed
	}
	ms := s.ModN()
	ms.InverseNonConst()
	return ScalarFromModN(ms), nil
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (s Scalar) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, s[:])
	return out
}

// Zero overwrites s with zeroes, for callers releasing secret material
// (§5 resource model).
func Zero(s *Scalar) {
	for i := range s {
		s[i] = 0
	}
}
