package mwebwire

import (
	"io"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/pedersen"
)

// Input spends a prior MWEB output by its commitment (§3).
type Input struct {
	Features     InputFeatureBit
	OutputID     mwtypes.Hash
	Commitment   pedersen.Commitment
	InputPubKey  *mwcrypto.Point
	OutputPubKey mwcrypto.Point
	ExtraData    []byte
	Signature    [64]byte
}

// Write serializes the input per §4.7.
func (in *Input) Write(w io.Writer) error {
	if in.Features&^AllInputFeatureBits != 0 {
		return ErrUnknownFeatureBit
	}
	if _, err := w.Write([]byte{byte(in.Features)}); err != nil {
		return err
	}
	if _, err := w.Write(in.OutputID[:]); err != nil {
		return err
	}
	if _, err := w.Write(in.Commitment.SerializeCompressed()); err != nil {
		return err
	}
	if _, err := w.Write(in.OutputPubKey.SerializeCompressed()); err != nil {
		return err
	}

	if in.Features&StealthKeyFeatureBit != 0 {
		if in.InputPubKey == nil {
			return ErrUnknownFeatureBit
		}
		if _, err := w.Write(in.InputPubKey.SerializeCompressed()); err != nil {
			return err
		}
	}
	if in.Features&InputExtraDataFeatureBit != 0 {
		if err := writeVarInt(w, uint64(len(in.ExtraData))); err != nil {
			return err
		}
		if _, err := w.Write(in.ExtraData); err != nil {
			return err
		}
	}
	if _, err := w.Write(in.Signature[:]); err != nil {
		return err
	}
	return nil
}

// Read parses an Input previously written by Write.
func (in *Input) Read(r io.Reader) error {
	var featureByte [1]byte
	if _, err := io.ReadFull(r, featureByte[:]); err != nil {
		return err
	}
	in.Features = InputFeatureBit(featureByte[0])
	if in.Features&^AllInputFeatureBits != 0 {
		return ErrUnknownFeatureBit
	}

	if _, err := io.ReadFull(r, in.OutputID[:]); err != nil {
		return err
	}
	var err error
	in.Commitment, err = readCommitment(r)
	if err != nil {
		return err
	}
	in.OutputPubKey, err = readPoint(r)
	if err != nil {
		return err
	}

	if in.Features&StealthKeyFeatureBit != 0 {
		p, err := readPoint(r)
		if err != nil {
			return err
		}
		in.InputPubKey = &p
	}
	if in.Features&InputExtraDataFeatureBit != 0 {
		n, err := readVarInt(r)
		if err != nil {
			return err
		}
		in.ExtraData = make([]byte, n)
		if _, err := io.ReadFull(r, in.ExtraData); err != nil {
			return err
		}
	}
	if _, err := io.ReadFull(r, in.Signature[:]); err != nil {
		return err
	}
	return nil
}

// SignatureHash returns the digest an input's signature is computed
// over: the fields a forger could alter without changing which output
// is being spent (§4.8's "input signature" over output_id, commitment,
// and output pubkey).
func (in *Input) SignatureHash() [32]byte {
	parts := [][]byte{
		{byte(in.Features)},
		in.OutputID[:],
		in.Commitment.SerializeCompressed(),
		in.OutputPubKey.SerializeCompressed(),
	}
	if in.Features&StealthKeyFeatureBit != 0 && in.InputPubKey != nil {
		parts = append(parts, in.InputPubKey.SerializeCompressed())
	}
	if in.Features&InputExtraDataFeatureBit != 0 {
		parts = append(parts, in.ExtraData)
	}
	return mwhash.Tagged(0, parts...)
}
