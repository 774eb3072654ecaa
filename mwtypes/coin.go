package mwtypes

import "github.com/ltcsuite/mweb/mwcrypto"

// StealthAddress is a receiving address: a spend public key and a scan
// public key bound to it, Ai = a*Bi for the owning wallet's private scan
// scalar a.
type StealthAddress struct {
	SpendPubKey mwcrypto.Point
	ScanPubKey  mwcrypto.Point
}

// Coin is an MWEB output a wallet has successfully rewound: the amount,
// the blinding factor (when recoverable), and the key material needed to
// later spend it. Coins are produced by stealth-address rewinding and
// consumed by the transaction builder's input selection.
type Coin struct {
	// AddressIndex is the wallet-derived spend index this coin belongs
	// to, or one of the reserved pseudo-indices (ChangeIndex,
	// PeginIndex, UnknownIndex, CustomKeyIndex).
	AddressIndex uint32

	// Blind is the coin's raw (pre-switch) blinding factor, when known.
	// A coin recovered from a read-only scan may have no blind.
	Blind *mwcrypto.Scalar

	// Amount is the coin's value in satoshis.
	Amount Amount

	// OutputID is the hash identifying the output this coin came from.
	OutputID Hash

	// Address is the stealth address (Bi, Ai) the output was sent to.
	Address StealthAddress

	// SharedSecret is the ECDH-derived secret t recovered while
	// rewinding the output.
	SharedSecret [32]byte

	// SpendKey is the coin's one-time private spend key, when the
	// owning key chain was able to derive it (not set for a read-only
	// rewind).
	SpendKey *mwcrypto.Scalar

	// SenderKey is the output's sender public key s*G, recomputed at
	// rewind; a later spend uses it as its Input's InputPubKey.
	SenderKey mwcrypto.Point

	// OutputPubKey is the one-time output public key Ko the original
	// output was sent to, carried forward so a later spend's Input can
	// reference it.
	OutputPubKey mwcrypto.Point
}
