package mwhash

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Rfc6979Drbg is the HMAC-SHA256 deterministic bit generator from RFC
// 6979 §3.2 steps b–g, used by GetGenerators to turn a fixed seed into an
// arbitrarily long deterministic byte stream.
type Rfc6979Drbg struct {
	k        [sha256.Size]byte
	v        [sha256.Size]byte
	first    bool
	leftover []byte
}

// NewRfc6979Drbg seeds a DRBG from key, following RFC 6979's
// initialization: K = 0x00*32, V = 0x01*32, then two HMAC update rounds
// mixing in key.
func NewRfc6979Drbg(key []byte) *Rfc6979Drbg {
	d := &Rfc6979Drbg{first: true}
	for i := range d.v {
		d.v[i] = 0x01
	}

	mac := hmac.New(sha256.New, d.k[:])
	mac.Write(d.v[:])
	mac.Write([]byte{0x00})
	mac.Write(key)
	copy(d.k[:], mac.Sum(nil))

	mac = hmac.New(sha256.New, d.k[:])
	mac.Write(d.v[:])
	copy(d.v[:], mac.Sum(nil))

	mac = hmac.New(sha256.New, d.k[:])
	mac.Write(d.v[:])
	mac.Write([]byte{0x01})
	mac.Write(key)
	copy(d.k[:], mac.Sum(nil))

	mac = hmac.New(sha256.New, d.k[:])
	mac.Write(d.v[:])
	copy(d.v[:], mac.Sum(nil))

	return d
}

// generateBlock performs one K/V update, emitting 32 bytes. The first
// call after construction skips the retry step (the V update has already
// happened during seeding); every subsequent call performs it.
func (d *Rfc6979Drbg) generateBlock() []byte {
	if !d.first {
		mac := hmac.New(sha256.New, d.k[:])
		mac.Write(d.v[:])
		mac.Write([]byte{0x00})
		copy(d.k[:], mac.Sum(nil))

		mac = hmac.New(sha256.New, d.k[:])
		mac.Write(d.v[:])
		copy(d.v[:], mac.Sum(nil))
	}
	d.first = false

	mac := hmac.New(sha256.New, d.k[:])
	mac.Write(d.v[:])
	copy(d.v[:], mac.Sum(nil))

	out := make([]byte, sha256.Size)
	copy(out, d.v[:])
	return out
}

// Generate emits n bytes, drawn in 32-byte chunks.
func (d *Rfc6979Drbg) Generate(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		if len(d.leftover) == 0 {
			d.leftover = d.generateBlock()
		}
		take := n - len(out)
		if take > len(d.leftover) {
			take = len(d.leftover)
		}
		out = append(out, d.leftover[:take]...)
		d.leftover = d.leftover[take:]
	}
	return out
}
