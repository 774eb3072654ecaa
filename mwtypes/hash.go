// Package mwtypes holds the plain data types shared across the MWEB
// packages: hashes, amounts, and the reserved coin indices. It mirrors the
// shape of btcsuite/btcd/chaincfg/chainhash.Hash, but a distinct type is
// used because MWEB hashes are Blake3 output, not double-SHA256.
package mwtypes

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the size, in bytes, of a Blake3-derived MWEB hash.
const HashSize = 32

// Hash is a 32-byte Blake3 digest, used throughout MWEB as an output ID,
// kernel message digest, or generic commitment tag.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash, matching the convention used by chainhash.Hash for display.
func (h Hash) String() string {
	for i, j := 0, HashSize-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
	return hex.EncodeToString(h[:])
}

// CloneBytes returns a newly allocated copy of the bytes in the hash.
func (h Hash) CloneBytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// SetBytes sets the bytes of the hash to the passed slice, which must be
// exactly HashSize bytes.
func (h *Hash) SetBytes(b []byte) error {
	if len(b) != HashSize {
		return fmt.Errorf("invalid hash length %d, want %d", len(b), HashSize)
	}
	copy(h[:], b)
	return nil
}

// IsZero reports whether the hash is the all-zero value, used to signal an
// unset optional field during serialization.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Amount represents a signed MWEB value in satoshis, mirroring the role
// played by btcutil.Amount in the outer Litecoin transaction.
type Amount int64

// String formats the amount as a plain decimal count of satoshis.
func (a Amount) String() string {
	return fmt.Sprintf("%d sat", int64(a))
}
