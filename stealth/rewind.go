package stealth

import (
	"encoding/binary"

	"github.com/davecgh/go-spew/spew"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwlog"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/pedersen"
)

// rewoundOutput holds the fields recovered from a successful rewind,
// before the owning index's spend key (if any) is attached.
type rewoundOutput struct {
	address      mwtypes.StealthAddress
	amount       uint64
	nonce        [16]byte
	sharedT      mwtypes.Hash
	outKeyTweak  mwcrypto.Scalar
	senderKey    mwcrypto.Point
	outputPubKey mwcrypto.Point
	blind        mwcrypto.Scalar
}

func (r *rewoundOutput) toCoin(outputID mwtypes.Hash) *mwtypes.Coin {
	var secret [32]byte
	copy(secret[:], r.sharedT[:])
	blind := r.blind
	return &mwtypes.Coin{
		Amount:       mwtypes.Amount(r.amount),
		OutputID:     outputID,
		Address:      r.address,
		SharedSecret: secret,
		SenderKey:    r.senderKey,
		OutputPubKey: r.outputPubKey,
		Blind:        &blind,
	}
}

// rewindCommon implements §4.6's output-rewind steps 1-7, shared by both
// the full and read-only key chains. It returns ok=false (with a nil
// error) for any output not addressed to this key chain, and the real
// wallet index it resolved to. An output whose spend key has no cache
// entry (StealthAddress was never called for its index) also returns
// ok=false.
func rewindCommon(out *mwebwire.Output, scanKey mwcrypto.Scalar, cache *spendKeyCache) (*rewoundOutput, uint32, bool, error) {
	msg := out.Message
	if msg.Features&mwebwire.StandardFieldsFeatureBit == 0 {
		return nil, 0, false, nil
	}

	sharedPoint := msg.KeyExchangePubkey.Mul(scanKey)
	viewTag := mwhash.Tagged(mwhash.TagViewTag, sharedPoint.SerializeCompressed())[0]
	if viewTag != msg.ViewTag {
		mwlog.Tracef("rewind: view tag mismatch, output not ours")
		return nil, 0, false, nil
	}

	t := mwhash.Tagged(mwhash.TagDerive, sharedPoint.SerializeCompressed())
	outKeyTweak := mwhash.HashToScalar(mwhash.TagOutputKey, t[:])

	outKeyTweakInv, err := outKeyTweak.Inverse()
	if err != nil {
		return nil, 0, false, nil
	}
	Bi := out.ReceiverPublicKey.Mul(outKeyTweakInv)

	index, ok := cache.lookup(Bi)
	if !ok {
		mwlog.Tracef("rewind: view tag matched but spend key %x not in cache", Bi.SerializeCompressed())
		return nil, 0, false, nil
	}
	mwlog.Debugf("rewind: candidate output resolved to address index %d", index)
	mwlog.Tracef("rewind: candidate message %v", mwlog.NewClosure(func() string {
		return spew.Sdump(msg)
	}))

	maskValue := binary.BigEndian.Uint64(mwhash.Tagged(mwhash.TagValueMask, t[:])[:8])
	maskNonce := mwhash.Tagged(mwhash.TagNonceMask, t[:])

	amount := msg.MaskedValue ^ maskValue
	var nonce [16]byte
	for i := range nonce {
		nonce[i] = msg.MaskedNonce[i] ^ maskNonce[i]
	}

	blind := deriveOutputBlind(t)
	switched := pedersen.BlindSwitch(blind, amount)
	if !out.Commitment.IsEqual(pedersen.Commit(amount, switched)) {
		return nil, 0, false, nil
	}

	Ai := Bi.Mul(scanKey)
	var vLE [8]byte
	binary.LittleEndian.PutUint64(vLE[:], amount)
	s := mwhash.HashToScalar(mwhash.TagSendKey,
		Ai.SerializeCompressed(), Bi.SerializeCompressed(), vLE[:], nonce[:])
	if !Bi.Mul(s).IsEqual(msg.KeyExchangePubkey) {
		return nil, 0, false, nil
	}

	return &rewoundOutput{
		address:      mwtypes.StealthAddress{SpendPubKey: Bi, ScanPubKey: Ai},
		amount:       amount,
		nonce:        nonce,
		sharedT:      t,
		outKeyTweak:  outKeyTweak,
		senderKey:    mwcrypto.MulG(s),
		outputPubKey: out.ReceiverPublicKey,
		blind:        blind,
	}, index, true, nil
}
