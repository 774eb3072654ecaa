package mwebwire

import (
	"bytes"
	"io"

	"github.com/ltcsuite/mweb/mwcrypto"
)

// mwebTxVersion is the single supported MWEB transaction version byte
// carried in the outer extension envelope.
const mwebTxVersion byte = 0

// Transaction is the top-level MWEB transaction object: a kernel offset
// and stealth offset balancing the body's blinding factors, plus the body
// itself (§3).
type Transaction struct {
	KernelOffset  mwcrypto.Scalar
	StealthOffset mwcrypto.Scalar
	Body          TxBody
}

// Write serializes the transaction.
func (t *Transaction) Write(w io.Writer) error {
	if _, err := w.Write(t.KernelOffset.Bytes()); err != nil {
		return err
	}
	if _, err := w.Write(t.StealthOffset.Bytes()); err != nil {
		return err
	}
	return t.Body.Write(w)
}

// Read parses a Transaction previously written by Write.
func (t *Transaction) Read(r io.Reader) error {
	var err error
	t.KernelOffset, err = readScalar(r)
	if err != nil {
		return err
	}
	t.StealthOffset, err = readScalar(r)
	if err != nil {
		return err
	}
	return t.Body.Read(r)
}

// Serialize encodes the transaction alone (no outer envelope), for use
// when only the MWEB portion is exchanged out of band.
func (t *Transaction) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadMWEBExtension consumes the MWEB transaction version byte and body
// from r, the portion of the outer Litecoin envelope that follows the
// extension flag (§4.7).
func ReadMWEBExtension(r io.Reader) (*Transaction, error) {
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, err
	}
	if version[0] != mwebTxVersion {
		return nil, ErrMalformedVarInt
	}
	tx := new(Transaction)
	if err := tx.Read(r); err != nil {
		return nil, err
	}
	return tx, nil
}

// WriteMWEBExtension writes the MWEB transaction version byte followed by
// the transaction body, the portion of the outer envelope that follows
// the extension flag.
func WriteMWEBExtension(w io.Writer, tx *Transaction) error {
	if _, err := w.Write([]byte{mwebTxVersion}); err != nil {
		return err
	}
	return tx.Write(w)
}

// HasMWEBExtension reports whether flags sets the MWEB extension bit,
// rejecting any bit outside {witnessFlag, extensionFlag}.
func HasMWEBExtension(flags byte) (bool, error) {
	if flags&^allFlagBits != 0 {
		return false, ErrUnknownFlagBit
	}
	return flags&extensionFlag != 0, nil
}
