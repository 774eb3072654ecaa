package mwcrypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// Signature is a 64-byte BIP-340 Schnorr signature, the form carried by
// every Output, Input and Kernel signature field.
type Signature [64]byte

// Sign produces a BIP-340 Schnorr signature over a 32-byte message digest
// using the secp256k1 private key key.
func Sign(key Scalar, msg [32]byte) (Signature, error) {
	priv, _ := btcec.PrivKeyFromBytes(key[:])
	sig, err := schnorr.Sign(priv, msg[:])
	if err != nil {
		return Signature{}, err
	}
	var out Signature
	copy(out[:], sig.Serialize())
	return out, nil
}

// Verify checks a BIP-340 Schnorr signature against a public key and
// 32-byte message digest.
func Verify(pub Point, msg [32]byte, sig Signature) bool {
	parsed, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return false
	}
	btcecPub, err := btcec.ParsePubKey(pub.SerializeCompressed())
	if err != nil {
		return false
	}
	return parsed.Verify(msg[:], btcecPub)
}
