package mwcrypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Point is an affine secp256k1 point, carried in Jacobian form internally
// so repeated additions and scalar multiplications avoid intermediate
// inversions. It serializes to the 33-byte compressed form used
// everywhere in the wire format.
type Point struct {
	j secp256k1.JacobianPoint
}

// generatorG is the standard secp256k1 base point.
var generatorG = func() Point {
	g := secp256k1.Generator()
	var p Point
	g.AsJacobian(&p.j)
	return p
}()

// GeneratorG returns the standard secp256k1 base point G.
func GeneratorG() Point { return generatorG }

// NewPointFromAffine builds a Point from field-element affine coordinates,
// verifying the result lies on the curve.
func NewPointFromAffine(x, y FieldElement) (Point, error) {
	pub := secp256k1.NewPublicKey(x.Val(), y.Val())
	var p Point
	pub.AsJacobian(&p.j)
	if !secp256k1.IsOnCurve(x.Val(), y.Val()) {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}

// ParsePoint decompresses a 33-byte compressed point.
func ParsePoint(b []byte) (Point, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return Point{}, ErrNotOnCurve
	}
	var p Point
	pub.AsJacobian(&p.j)
	return p, nil
}

// Affine returns the normalized affine X, Y coordinates of p.
func (p Point) Affine() (FieldElement, FieldElement) {
	j := p.j
	j.ToAffine()
	return FieldFromVal(&j.X), FieldFromVal(&j.Y)
}

// X returns the normalized affine X coordinate of p.
func (p Point) X() FieldElement {
	x, _ := p.Affine()
	return x
}

// Y returns the normalized affine Y coordinate of p.
func (p Point) Y() FieldElement {
	_, y := p.Affine()
	return y
}

// IsQuadY reports whether p's Y coordinate is a quadratic residue, the
// parity bit used throughout the Bulletproof transcript (§4.2, §4.5.1).
func (p Point) IsQuadY() bool {
	return IsQuadraticResidue(p.Y())
}

// SerializeCompressed encodes p as a 33-byte compressed point.
func (p Point) SerializeCompressed() []byte {
	j := p.j
	j.ToAffine()
	pub := secp256k1.NewPublicKey(&j.X, &j.Y)
	return pub.SerializeCompressed()
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	var r Point
	secp256k1.AddNonConst(&p.j, &q.j, &r.j)
	return r
}

// Negate returns -p.
func (p Point) Negate() Point {
	j := p.j
	j.ToAffine()
	j.Y.Negate(1)
	j.Y.Normalize()
	return Point{j: j}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// Mul returns k*p.
func (p Point) Mul(k Scalar) Point {
	var r Point
	secp256k1.ScalarMultNonConst(k.ModN(), &p.j, &r.j)
	return r
}

// MulG returns k*G, the scalar base-point multiplication.
func MulG(k Scalar) Point {
	var r Point
	secp256k1.ScalarBaseMultNonConst(k.ModN(), &r.j)
	return r
}

// IsEqual reports whether p and q represent the same affine point.
func (p Point) IsEqual(q Point) bool {
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px == qx && py == qy
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	j := p.j
	j.ToAffine()
	return j.X.IsZero() && j.Y.IsZero()
}
