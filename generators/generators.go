package generators

import (
	"crypto/sha256"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
)

// GeneratorGenerate derives a single curve point deterministically from a
// 32-byte key, per §4.3: P1 from SHA256("1st generation: "||key) mapped
// through Shallue-van de Woestijne, P2 likewise from "2nd generation: ",
// and the result is P1 + P2.
func GeneratorGenerate(key [32]byte) mwcrypto.Point {
	t1 := sha256.Sum256(append([]byte("1st generation: "), key[:]...))
	t2 := sha256.Sum256(append([]byte("2nd generation: "), key[:]...))

	var f1, f2 mwcrypto.FieldElement
	copy(f1[:], t1[:])
	copy(f2[:], t2[:])

	p1 := shallueVanDeWoestijne(f1)
	p2 := shallueVanDeWoestijne(f2)
	return p1.Add(p2)
}

// GetGenerators derives n deterministic auxiliary generators by seeding
// an RFC6979 DRBG with Gx||Gy and drawing one 32-byte key per generator
// (§4.3). Used to build the Bulletproof prover's 2*N vector of Gi/Hi
// generators.
func GetGenerators(n int) []mwcrypto.Point {
	gx, gy := mwcrypto.GeneratorG().Affine()
	seed := append(gx.Bytes(), gy.Bytes()...)
	drbg := mwhash.NewRfc6979Drbg(seed)

	out := make([]mwcrypto.Point, n)
	for i := 0; i < n; i++ {
		var key [32]byte
		copy(key[:], drbg.Generate(32))
		out[i] = GeneratorGenerate(key)
	}
	return out
}

// generatorH and generatorJ are the fixed independent generators used by
// Pedersen commitments and blind-switching. They are derived once, at
// package init, from fixed domain-separated 32-byte seeds via the same
// GeneratorGenerate construction used for the Bulletproof auxiliary
// vector — see DESIGN.md for why the literal byte values cannot be
// pinned against the C reference in this environment.
var (
	generatorH = GeneratorGenerate(sha256.Sum256([]byte("secp256k1_generator_H")))
	generatorJ = GeneratorGenerate(sha256.Sum256([]byte("secp256k1_generator_J")))
)

// H returns the independent generator used as the value-generator in
// Pedersen commitments.
func H() mwcrypto.Point { return generatorH }

// J returns the independent generator used by BlindSwitch.
func J() mwcrypto.Point { return generatorJ }
