package bulletproof

import (
	"errors"

	"github.com/ltcsuite/mweb/mwcrypto"
)

// Verify-kind errors (§7), returned by Verify and Rewind.
var (
	ErrRangeProofInvalid = errors.New("bulletproof: range proof failed to verify")
	ErrMalformedProof    = errors.New("bulletproof: malformed proof encoding")
	ErrOversizedProof    = errors.New("bulletproof: proof exceeds maximum size")
)

// curveBField is the secp256k1 curve parameter b, as a field element.
var curveBField = func() mwcrypto.FieldElement {
	var b mwcrypto.FieldElement
	b[31] = 7
	return b
}()

// pointFromXAndParity reconstructs a point from its X coordinate and the
// quadratic-residue parity of its intended Y coordinate (the encoding
// SerializePoints/DeserializePoints use).
func pointFromXAndParity(x [32]byte, wantQuad bool) (mwcrypto.Point, error) {
	var fx mwcrypto.FieldElement
	copy(fx[:], x[:])

	rhs := fx.Square().Mul(fx).Add(curveBField)
	y, ok := rhs.Sqrt()
	if !ok {
		return mwcrypto.Point{}, ErrMalformedProof
	}
	if mwcrypto.IsQuadraticResidue(y) != wantQuad {
		y = y.Negate()
	}
	return mwcrypto.NewPointFromAffine(fx, y)
}
