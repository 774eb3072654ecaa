package mwebwire

import (
	"encoding/binary"
	"io"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwhash"
	"github.com/ltcsuite/mweb/mwtypes"
)

// PegoutOutput is a single pegout recipient: an amount and the outer
// Litecoin scriptPubKey it pays.
type PegoutOutput struct {
	Amount        mwtypes.Amount
	ScriptPubKey []byte
}

// Kernel carries a transaction's fee, pegin/pegout amounts, lock height
// and the excess commitment + Schnorr signature balancing it (§3, §4.8,
// §4.9).
type Kernel struct {
	Features      KernelFeatureBit
	Fee           mwtypes.Amount
	Pegin         mwtypes.Amount
	Pegouts       []PegoutOutput
	LockHeight    int32
	StealthExcess mwcrypto.Point
	ExtraData     []byte
	Excess        mwcrypto.Point
	Signature     [64]byte
}

// Write serializes the kernel per §4.7.
func (k *Kernel) Write(w io.Writer) error {
	if k.Features&^AllKernelFeatureBits != 0 {
		return ErrUnknownFeatureBit
	}
	if _, err := w.Write([]byte{byte(k.Features)}); err != nil {
		return err
	}

	if k.Features&FeeFeatureBit != 0 {
		if err := writeVarInt(w, uint64(k.Fee)); err != nil {
			return err
		}
	}
	if k.Features&PeginFeatureBit != 0 {
		if err := writeVarInt(w, uint64(k.Pegin)); err != nil {
			return err
		}
	}
	if k.Features&PegoutFeatureBit != 0 {
		if err := writeVarInt(w, uint64(len(k.Pegouts))); err != nil {
			return err
		}
		for _, p := range k.Pegouts {
			if err := writeVarInt(w, uint64(p.Amount)); err != nil {
				return err
			}
			if err := writeVarInt(w, uint64(len(p.ScriptPubKey))); err != nil {
				return err
			}
			if _, err := w.Write(p.ScriptPubKey); err != nil {
				return err
			}
		}
	}
	if k.Features&HeightLockFeatureBit != 0 {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(k.LockHeight))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	if k.Features&StealthExcessFeatureBit != 0 {
		if _, err := w.Write(k.StealthExcess.SerializeCompressed()); err != nil {
			return err
		}
	}
	if k.Features&KernelExtraDataFeatureBit != 0 {
		if err := writeVarInt(w, uint64(len(k.ExtraData))); err != nil {
			return err
		}
		if _, err := w.Write(k.ExtraData); err != nil {
			return err
		}
	}

	if _, err := w.Write(k.Excess.SerializeCompressed()); err != nil {
		return err
	}
	if _, err := w.Write(k.Signature[:]); err != nil {
		return err
	}
	return nil
}

// Read parses a Kernel previously written by Write.
func (k *Kernel) Read(r io.Reader) error {
	var featureByte [1]byte
	if _, err := io.ReadFull(r, featureByte[:]); err != nil {
		return err
	}
	k.Features = KernelFeatureBit(featureByte[0])
	if k.Features&^AllKernelFeatureBits != 0 {
		return ErrUnknownFeatureBit
	}

	if k.Features&FeeFeatureBit != 0 {
		fee, err := readVarInt(r)
		if err != nil {
			return err
		}
		k.Fee = mwtypes.Amount(fee)
	}
	if k.Features&PeginFeatureBit != 0 {
		pegin, err := readVarInt(r)
		if err != nil {
			return err
		}
		k.Pegin = mwtypes.Amount(pegin)
	}
	if k.Features&PegoutFeatureBit != 0 {
		count, err := readVarInt(r)
		if err != nil {
			return err
		}
		k.Pegouts = make([]PegoutOutput, count)
		for i := range k.Pegouts {
			amt, err := readVarInt(r)
			if err != nil {
				return err
			}
			scriptLen, err := readVarInt(r)
			if err != nil {
				return err
			}
			script := make([]byte, scriptLen)
			if _, err := io.ReadFull(r, script); err != nil {
				return err
			}
			k.Pegouts[i] = PegoutOutput{Amount: mwtypes.Amount(amt), ScriptPubKey: script}
		}
	}
	if k.Features&HeightLockFeatureBit != 0 {
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		k.LockHeight = int32(binary.BigEndian.Uint32(buf[:]))
	}
	if k.Features&StealthExcessFeatureBit != 0 {
		p, err := readPoint(r)
		if err != nil {
			return err
		}
		k.StealthExcess = p
	}
	if k.Features&KernelExtraDataFeatureBit != 0 {
		n, err := readVarInt(r)
		if err != nil {
			return err
		}
		k.ExtraData = make([]byte, n)
		if _, err := io.ReadFull(r, k.ExtraData); err != nil {
			return err
		}
	}

	excess, err := readPoint(r)
	if err != nil {
		return err
	}
	k.Excess = excess

	if _, err := io.ReadFull(r, k.Signature[:]); err != nil {
		return err
	}
	return nil
}

// SignatureHash returns the digest a kernel's signature is computed
// over, per §4.8's kernel message: every feature-gated field except the
// excess and signature itself.
func (k *Kernel) SignatureHash() [32]byte {
	var parts [][]byte
	parts = append(parts, []byte{byte(k.Features)})
	if k.Features&FeeFeatureBit != 0 {
		parts = append(parts, amountBytes(uint64(k.Fee)))
	}
	if k.Features&PeginFeatureBit != 0 {
		parts = append(parts, amountBytes(uint64(k.Pegin)))
	}
	if k.Features&PegoutFeatureBit != 0 {
		for _, p := range k.Pegouts {
			parts = append(parts, amountBytes(uint64(p.Amount)), p.ScriptPubKey)
		}
	}
	if k.Features&HeightLockFeatureBit != 0 {
		parts = append(parts, amountBytes(uint64(k.LockHeight)))
	}
	if k.Features&StealthExcessFeatureBit != 0 {
		parts = append(parts, k.StealthExcess.SerializeCompressed())
	}
	if k.Features&KernelExtraDataFeatureBit != 0 {
		parts = append(parts, k.ExtraData)
	}
	return mwhash.Tagged(0, parts...)
}

func amountBytes(v uint64) []byte {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v >> uint(8*i))
	}
	return b[:]
}
