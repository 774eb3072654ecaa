package stealth

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/ltcsuite/mweb/mwcrypto"
)

// hardenedOffset marks a BIP32 child index as hardened, per the standard
// convention of deriving keychain leaves entirely from hardened paths so
// no extended public key ever needs to be shared.
const hardenedOffset = 0x80000000

// bip32Seed is the HMAC key BIP32 uses to derive a master key from wallet
// seed entropy.
var bip32Seed = []byte("Bitcoin seed")

// extendedKey is a private key and chain code pair, the minimal subset of
// BIP32 this package needs: master derivation from seed, plus hardened
// child derivation along m/0'/100'/0' (scan key) and m/0'/100'/1' (spend
// master). No extended public keys are ever derived or serialized, so the
// full BIP32 key-tree machinery (xpub/xpriv encoding, non-hardened
// derivation via parent pubkeys) is deliberately not implemented.
type extendedKey struct {
	key       mwcrypto.Scalar
	chainCode [32]byte
}

func masterKeyFromSeed(seed []byte) extendedKey {
	mac := hmac.New(sha512.New, bip32Seed)
	mac.Write(seed)
	i := mac.Sum(nil)

	var ek extendedKey
	s, err := mwcrypto.ScalarFromCanonicalBytes(i[:32])
	if err != nil {
		// Overflow against the curve order on a raw HMAC output has
		// negligible probability; where it happens the value is reduced
		// mod n rather than rejected and retried as BIP32 does.
		var raw mwcrypto.Scalar
		copy(raw[:], i[:32])
		s = mwcrypto.ScalarFromModN(raw.ModN())
	}
	ek.key = s
	copy(ek.chainCode[:], i[32:])
	return ek
}

// deriveHardened derives the hardened child at index, per BIP32 §"Private
// parent key -> private child key" restricted to the hardened case
// (0x00 || ser256(kpar) || ser32(index')).
func (ek extendedKey) deriveHardened(index uint32) extendedKey {
	var data [1 + 32 + 4]byte
	copy(data[1:33], ek.key.Bytes())
	putUint32BE(data[33:37], index|hardenedOffset)

	mac := hmac.New(sha512.New, ek.chainCode[:])
	mac.Write(data[:])
	i := mac.Sum(nil)

	il, err := mwcrypto.ScalarFromCanonicalBytes(i[:32])
	if err != nil {
		il = mwcrypto.ScalarFromModN(il.ModN())
	}

	var child extendedKey
	child.key = il.Add(ek.key)
	copy(child.chainCode[:], i[32:])
	return child
}

func putUint32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
