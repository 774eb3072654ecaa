package bulletproof

import (
	"encoding/binary"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
)

// RewindResult is the value and message Rewind recovers from a proof's
// encrypted alpha term.
type RewindResult struct {
	Value   uint64
	Message Message
}

// Rewind recovers the value and proof message a range proof encrypted
// into its mu term, given the rewind nonce used at Prove time (§4.6
// step 6). It does not need the blinding factor or the original
// private nonce: only whoever can reconstruct alpha, rho from
// rewindNonce can undo the encryption.
//
// Rewind does not itself prove the recovered value is correct; callers
// that don't already trust commitment's blinding factor should confirm
// the result against Commit(value, blind) before relying on it.
func Rewind(commitment mwcrypto.Point, proof Proof, rewindNonce [32]byte, extraData []byte) (RewindResult, error) {
	var result RewindResult

	if len(proof) > MaxProofSize {
		return result, ErrOversizedProof
	}

	h, err := parseHeader(proof)
	if err != nil {
		return result, err
	}

	_, _, x, _ := deriveChallenges(commitment, h, extraData)

	alphaRaw, rho := mwhash.ScalarChaCha20(rewindNonce, 0)

	// mu = -(rho*x + alpha), where alpha = alphaRaw - encrypted, so
	// encrypted = alphaRaw - alpha = alphaRaw + mu + rho*x.
	encrypted := alphaRaw.Add(h.mu).Add(rho.Mul(x))

	b := encrypted.Bytes()
	result.Value = binary.BigEndian.Uint64(b[24:32])
	copy(result.Message[:], b[4:24])
	return result, nil
}
