package mwebwire

import (
	"encoding/binary"
	"io"

	"github.com/ltcsuite/mweb/bulletproof"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/pedersen"
)

// OutputMessage carries the recipient's stealth-address fields plus
// optional sender extra data (§3, §4.6).
type OutputMessage struct {
	Features          OutputFeatureBit
	KeyExchangePubkey mwcrypto.Point
	ViewTag           byte
	MaskedValue       uint64
	MaskedNonce       [16]byte
	ExtraData         []byte
}

// Write serializes the message: feature byte, then the standard fields if
// present, then the extra data blob if present.
func (m *OutputMessage) Write(w io.Writer) error {
	if m.Features&^AllOutputFeatureBits != 0 {
		return ErrUnknownFeatureBit
	}
	if _, err := w.Write([]byte{byte(m.Features)}); err != nil {
		return err
	}

	if m.Features&StandardFieldsFeatureBit != 0 {
		if _, err := w.Write(m.KeyExchangePubkey.SerializeCompressed()); err != nil {
			return err
		}
		if _, err := w.Write([]byte{m.ViewTag}); err != nil {
			return err
		}
		var valBuf [8]byte
		binary.BigEndian.PutUint64(valBuf[:], m.MaskedValue)
		if _, err := w.Write(valBuf[:]); err != nil {
			return err
		}
		if _, err := w.Write(m.MaskedNonce[:]); err != nil {
			return err
		}
	}

	if m.Features&ExtraDataFeatureBit != 0 {
		if err := writeVarInt(w, uint64(len(m.ExtraData))); err != nil {
			return err
		}
		if _, err := w.Write(m.ExtraData); err != nil {
			return err
		}
	}
	return nil
}

// Read parses an OutputMessage previously written by Write.
func (m *OutputMessage) Read(r io.Reader) error {
	var featureByte [1]byte
	if _, err := io.ReadFull(r, featureByte[:]); err != nil {
		return err
	}
	m.Features = OutputFeatureBit(featureByte[0])
	if m.Features&^AllOutputFeatureBits != 0 {
		return ErrUnknownFeatureBit
	}

	if m.Features&StandardFieldsFeatureBit != 0 {
		var pub [33]byte
		if _, err := io.ReadFull(r, pub[:]); err != nil {
			return err
		}
		p, err := mwcrypto.ParsePoint(pub[:])
		if err != nil {
			return err
		}
		m.KeyExchangePubkey = p

		var rest [1 + 8 + 16]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return err
		}
		m.ViewTag = rest[0]
		m.MaskedValue = binary.BigEndian.Uint64(rest[1:9])
		copy(m.MaskedNonce[:], rest[9:25])
	}

	if m.Features&ExtraDataFeatureBit != 0 {
		n, err := readVarInt(r)
		if err != nil {
			return err
		}
		m.ExtraData = make([]byte, n)
		if _, err := io.ReadFull(r, m.ExtraData); err != nil {
			return err
		}
	}
	return nil
}

// Output is a single confidential MWEB output (§3, §4.6).
type Output struct {
	Commitment        pedersen.Commitment
	SenderPublicKey   mwcrypto.Point
	ReceiverPublicKey mwcrypto.Point
	Message           OutputMessage
	RangeProof        bulletproof.Proof
	Signature         [64]byte
}

// Write serializes the output per §4.7: commitment, both pubkeys, the
// message, the varint-length-prefixed range proof, then the signature.
func (o *Output) Write(w io.Writer) error {
	if _, err := w.Write(o.Commitment.SerializeCompressed()); err != nil {
		return err
	}
	if _, err := w.Write(o.SenderPublicKey.SerializeCompressed()); err != nil {
		return err
	}
	if _, err := w.Write(o.ReceiverPublicKey.SerializeCompressed()); err != nil {
		return err
	}
	if err := o.Message.Write(w); err != nil {
		return err
	}
	if len(o.RangeProof) > bulletproof.MaxProofSize {
		return ErrProofTooLarge
	}
	if err := writeVarInt(w, uint64(len(o.RangeProof))); err != nil {
		return err
	}
	if _, err := w.Write(o.RangeProof); err != nil {
		return err
	}
	if _, err := w.Write(o.Signature[:]); err != nil {
		return err
	}
	return nil
}

// Read parses an Output previously written by Write.
func (o *Output) Read(r io.Reader) error {
	var err error
	o.Commitment, err = readCommitment(r)
	if err != nil {
		return err
	}
	o.SenderPublicKey, err = readPoint(r)
	if err != nil {
		return err
	}
	o.ReceiverPublicKey, err = readPoint(r)
	if err != nil {
		return err
	}
	if err := o.Message.Read(r); err != nil {
		return err
	}

	proofLen, err := readVarInt(r)
	if err != nil {
		return err
	}
	if proofLen > bulletproof.MaxProofSize {
		return ErrProofTooLarge
	}
	o.RangeProof = make(bulletproof.Proof, proofLen)
	if _, err := io.ReadFull(r, o.RangeProof); err != nil {
		return err
	}

	if _, err := io.ReadFull(r, o.Signature[:]); err != nil {
		return err
	}
	return nil
}

// SignatureHash returns the digest the sender and output signatures are
// computed over: the fields a forger could alter without invalidating
// the range proof (the commitment, both public keys, and the message).
func (o *Output) SignatureHash() [32]byte {
	return mwhash.Tagged(0,
		o.Commitment.SerializeCompressed(),
		o.SenderPublicKey.SerializeCompressed(),
		o.ReceiverPublicKey.SerializeCompressed(),
		o.messageBytes(),
	)
}

// ID returns the output identifier later used to reference this output
// from an Input: the tagged hash of the signature hash and signature,
// so it is fixed only once the output is fully signed.
func (o *Output) ID() mwtypes.Hash {
	sigHash := o.SignatureHash()
	return mwhash.Tagged(0, sigHash[:], o.Signature[:])
}

func (o *Output) messageBytes() []byte {
	m := o.Message
	out := []byte{byte(m.Features)}
	if m.Features&StandardFieldsFeatureBit != 0 {
		out = append(out, m.KeyExchangePubkey.SerializeCompressed()...)
		out = append(out, m.ViewTag)
		var v [8]byte
		binary.BigEndian.PutUint64(v[:], m.MaskedValue)
		out = append(out, v[:]...)
		out = append(out, m.MaskedNonce[:]...)
	}
	if m.Features&ExtraDataFeatureBit != 0 {
		out = append(out, m.ExtraData...)
	}
	return out
}

func readPoint(r io.Reader) (mwcrypto.Point, error) {
	var b [33]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return mwcrypto.Point{}, err
	}
	return mwcrypto.ParsePoint(b[:])
}

func readCommitment(r io.Reader) (pedersen.Commitment, error) {
	var b [33]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return pedersen.Commitment{}, err
	}
	return pedersen.ParseCommitment(b[:])
}

func readScalar(r io.Reader) (mwcrypto.Scalar, error) {
	var b [32]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return mwcrypto.Scalar{}, err
	}
	return mwcrypto.ScalarFromCanonicalBytes(b[:])
}
