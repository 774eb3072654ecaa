// Package bulletproof implements the 64-bit, single-value Bulletproof
// range proof MWEB attaches to every output (§4.5), including the
// recursive inner-product argument and the rewind path that lets the
// value holder recover v and an embedded message from -mu.
package bulletproof

import (
	"math/bits"
)

const (
	// NumBits is the width of the value range proved, [0, 2^64).
	NumBits = 64

	// IPAbScalars is the number of scalars (a and b combined) the
	// inner-product argument's base case emits directly instead of
	// recursing further.
	IPAbScalars = 4

	// MessageSize is the length of the embedded proof message that
	// rides inside the encrypted alpha term.
	MessageSize = 20

	// MaxProofSize is the reference proof size for a single-value
	// 64-bit range proof (§4.5): 32 (tau_x) + 32 (mu) + 129 (A,S,T1,T2
	// serialized with a shared parity bitvector) + the inner-product
	// argument (482 bytes for n=64). Deserializers MUST reject any
	// proof larger than this.
	MaxProofSize = 675

	// headerSize is tau_x || mu || SerializePoints({A,S,T1,T2}).
	headerSize = 32 + 32 + 1 + 4*32
)

// Proof is a serialized Bulletproof range proof. Prove always emits
// exactly headerSize + InnerProductProofLength(NumBits) bytes; Verify
// rejects anything longer than MaxProofSize (§4.7).
type Proof []byte

// Message is the 20-byte value embedded in the range proof alongside v,
// recoverable only by the holder of the rewind nonce.
type Message [MessageSize]byte

// InnerProductProofLength returns the serialized length, in bytes, of
// the inner-product argument for a vector of size n (§4.5.2). Below
// IPAbScalars/2 the short form is used (just the scalars); otherwise the
// recursive form's point list and final scalar tail are accounted for.
func InnerProductProofLength(n int) int {
	if n < IPAbScalars/2 {
		return 32 * (1 + 2*n)
	}

	rounds := ipaRounds(n)
	pc := bits.OnesCount(uint(n))
	scalarWords := 1 + 2*(pc-1+rounds) + IPAbScalars
	bitvectorBytes := (2*rounds + 7) / 8
	return 32*scalarWords + bitvectorBytes
}

// ipaRounds is the number of halving rounds the recursive inner-product
// argument performs before reaching its base case, i.e. floor(log2(2n /
// IPAbScalars)).
func ipaRounds(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(2*n/IPAbScalars)) - 1
}
