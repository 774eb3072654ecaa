package mwcrypto

import "errors"

// Crypto-kind errors, corresponding to the `Crypto{...}` error family in
// the design's error-handling section. These are returned by primitives
// in this package and by callers that detect the same failure modes
// (e.g. a parsed point that fails to decompress).
var (
	// ErrNotOnCurve is returned when a candidate point does not satisfy
	// the curve equation.
	ErrNotOnCurve = errors.New("mwcrypto: point is not on curve")

	// ErrNotQuadraticResidue reports a field element that is not a
	// quadratic residue. No function in the module returns it: the
	// Shallue-van de Woestijne map panics on failure and point parsing
	// reports ErrNotOnCurve.
	ErrNotQuadraticResidue = errors.New("mwcrypto: field element is not a quadratic residue")

	// ErrScalarOutOfRange is returned when a 32-byte string does not
	// represent a value strictly less than the group order n.
	ErrScalarOutOfRange = errors.New("mwcrypto: scalar is out of range")

	// ErrInversionFailed is returned when a scalar or field inverse is
	// requested for the zero element.
	ErrInversionFailed = errors.New("mwcrypto: cannot invert zero element")
)
