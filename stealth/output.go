package stealth

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/ltcsuite/mweb/bulletproof"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/pedersen"
)

// outputBlindDomain disambiguates the output blind derivation from
// BlindSwitch's own use of TagBlind (§4.4, §4.6): both are tagged 'B'
// hashes, but over disjoint input shapes, so there is no collision.
var outputBlindDomain = []byte("output-blind")

// CreateOutput builds a one-time confidential output paying amount to
// recipient, with nonce as the 16-byte value the receiver will recover
// alongside the amount (§4.6). extraData, if non-empty, rides in the
// output message's optional trailing field and so is covered by the
// output signature; the range proof's transcript binds Ko instead.
//
// The output's blinding factor is not drawn by the caller: it is itself
// derived from the ECDH shared secret t, so the receiver can recompute it
// during rewind without any side channel beyond the shared secret.
func CreateOutput(recipient mwtypes.StealthAddress, amount uint64, nonce [16]byte, extraData []byte) (*mwebwire.Output, error) {
	out, _, err := CreateOutputWithBlind(recipient, amount, nonce, extraData)
	return out, err
}

// CreateOutputWithBlind is CreateOutput but additionally returns the
// output's switched Pedersen blinding factor, needed by a transaction
// builder to balance the kernel excess (§4.8).
func CreateOutputWithBlind(recipient mwtypes.StealthAddress, amount uint64, nonce [16]byte, extraData []byte) (*mwebwire.Output, mwcrypto.Scalar, error) {
	Bi, Ai := recipient.SpendPubKey, recipient.ScanPubKey

	var vLE [8]byte
	binary.LittleEndian.PutUint64(vLE[:], amount)

	s := mwhash.HashToScalar(mwhash.TagSendKey,
		Ai.SerializeCompressed(), Bi.SerializeCompressed(), vLE[:], nonce[:])
	Ke := Bi.Mul(s)

	sharedPoint := Ai.Mul(s)
	t := mwhash.Tagged(mwhash.TagDerive, sharedPoint.SerializeCompressed())

	outKeyTweak := mwhash.HashToScalar(mwhash.TagOutputKey, t[:])
	Ko := Bi.Mul(outKeyTweak)

	maskValue := binary.BigEndian.Uint64(mwhash.Tagged(mwhash.TagValueMask, t[:])[:8])
	maskNonce := mwhash.Tagged(mwhash.TagNonceMask, t[:])

	var maskedNonce [16]byte
	for i := range maskedNonce {
		maskedNonce[i] = nonce[i] ^ maskNonce[i]
	}
	viewTag := mwhash.Tagged(mwhash.TagViewTag, sharedPoint.SerializeCompressed())[0]

	blind := deriveOutputBlind(t)
	switched := pedersen.BlindSwitch(blind, amount)
	commitment := pedersen.Commit(amount, switched)

	var rewindNonce [32]byte
	copy(rewindNonce[:], t[:])
	privateNonce, err := deriveBulletproofPrivateNonce(t)
	if err != nil {
		return nil, mwcrypto.Scalar{}, err
	}

	proofExtra := Ko.SerializeCompressed()
	proof, _, err := bulletproof.Prove(bulletproof.ProveParams{
		Value:        amount,
		Blind:        switched,
		PrivateNonce: privateNonce,
		RewindNonce:  rewindNonce,
		ExtraData:    proofExtra,
	})
	if err != nil {
		return nil, mwcrypto.Scalar{}, err
	}

	features := mwebwire.StandardFieldsFeatureBit
	if len(extraData) > 0 {
		features |= mwebwire.ExtraDataFeatureBit
	}

	out := &mwebwire.Output{
		Commitment:        commitment,
		SenderPublicKey:   mwcrypto.MulG(s),
		ReceiverPublicKey: Ko,
		Message: mwebwire.OutputMessage{
			Features:          features,
			KeyExchangePubkey: Ke,
			ViewTag:           viewTag,
			MaskedValue:       amount ^ maskValue,
			MaskedNonce:       maskedNonce,
			ExtraData:         extraData,
		},
		RangeProof: proof,
	}

	sigHash := out.SignatureHash()
	sig, err := mwcrypto.Sign(s, sigHash)
	if err != nil {
		return nil, mwcrypto.Scalar{}, err
	}
	out.Signature = sig

	return out, switched, nil
}

// deriveOutputBlind derives the output's raw Pedersen blinding factor from
// the ECDH shared secret, so the receiver needs nothing beyond t to
// recompute it at rewind time.
func deriveOutputBlind(t mwtypes.Hash) mwcrypto.Scalar {
	return mwhash.HashToScalar(mwhash.TagBlind, t[:], outputBlindDomain)
}

// bulletproofNonceInfo separates the Bulletproof's private nonce from
// its rewind nonce, both derived from the same shared secret t: the
// rewind nonce is t itself (§4.5.3 hands it to the verifier-side
// rewinder), so the private nonce must come from an independent
// subkey, not another tagged hash of the same domain.
var bulletproofNonceInfo = []byte("mweb-bulletproof-private-nonce")

// deriveBulletproofPrivateNonce expands the shared secret into the
// Bulletproof prover's private nonce via HKDF, keeping it independent
// of the rewind nonce (which is t itself) without a second Blake3 tag.
func deriveBulletproofPrivateNonce(t mwtypes.Hash) ([32]byte, error) {
	var out [32]byte
	kdf := hkdf.New(sha256.New, t[:], nil, bulletproofNonceInfo)
	if _, err := io.ReadFull(kdf, out[:]); err != nil {
		return out, err
	}
	return out, nil
}

