package mwebwire

import (
	"io"

	"github.com/lightningnetwork/lnd/tlv"
)

// writeVarInt and readVarInt delegate to the tlv package's BigSize varint,
// the same variable-length integer encoding already used elsewhere in the
// ecosystem for length-prefixed fields. Every array in an MWEB wire object
// is preceded by one of these (§4.7).
func writeVarInt(w io.Writer, n uint64) error {
	var buf [8]byte
	return tlv.WriteVarInt(w, n, &buf)
}

func readVarInt(r io.Reader) (uint64, error) {
	var buf [8]byte
	return tlv.ReadVarInt(r, &buf)
}
