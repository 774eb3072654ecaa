package stealth

import (
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/mwtypes"
)

// WalletKeyChain holds both the private scan key and the private spend
// master key, so it can derive spend keys for owned coins in addition to
// identifying them.
type WalletKeyChain struct {
	scanKey       mwcrypto.Scalar
	spendMaster   mwcrypto.Scalar
	spendMasterPt mwcrypto.Point
	cache         *spendKeyCache
}

// NewWalletKeyChain derives a full key chain from wallet seed entropy via
// the m/0'/100'/{0',1'} path (§4.6).
func NewWalletKeyChain(seed []byte) *WalletKeyChain {
	mweb := mwebKeyPath(seed)
	scan := mweb.deriveHardened(scanChildIndex)
	spend := mweb.deriveHardened(spendChildIndex)

	return &WalletKeyChain{
		scanKey:       scan.key,
		spendMaster:   spend.key,
		spendMasterPt: mwcrypto.MulG(spend.key),
		cache:         newSpendKeyCache(),
	}
}

// ReadOnly returns a view of this key chain that can identify owned
// outputs but not derive their spend keys.
func (w *WalletKeyChain) ReadOnly() *ReadOnlyKeyChain {
	return &ReadOnlyKeyChain{
		scanKey:       w.scanKey,
		spendMasterPt: w.spendMasterPt,
		cache:         w.cache,
	}
}

func (w *WalletKeyChain) PrivateScanKey() mwcrypto.Scalar { return w.scanKey }

// StealthAddress derives (and caches) the address at index: Bi = B0 +
// mi*G, private bi = b0 + mi; Ai = a*Bi.
func (w *WalletKeyChain) StealthAddress(index uint32) (mwtypes.StealthAddress, error) {
	mi := perIndexSpendKeyTweak(index, w.scanKey)
	bi := w.spendMaster.Add(mi)
	Bi := mwcrypto.MulG(bi)
	w.cache.insert(Bi, index)

	Ai := Bi.Mul(w.scanKey)
	return mwtypes.StealthAddress{SpendPubKey: Bi, ScanPubKey: Ai}, nil
}

// spendPrivateKey returns the one-time private spend key bi = b0 + mi for
// index, without touching the cache (StealthAddress already populates it
// for any index this wallet has handed out).
func (w *WalletKeyChain) spendPrivateKey(index uint32) mwcrypto.Scalar {
	mi := perIndexSpendKeyTweak(index, w.scanKey)
	return w.spendMaster.Add(mi)
}

// RewindOutput attempts to recover a Coin from out, deriving the spend
// key when the owning index is a real wallet index.
func (w *WalletKeyChain) RewindOutput(out *mwebwire.Output, outputID mwtypes.Hash) (*mwtypes.Coin, error) {
	rewound, index, ok, err := rewindCommon(out, w.scanKey, w.cache)
	if err != nil || !ok {
		return nil, err
	}

	coin := rewound.toCoin(outputID)
	coin.AddressIndex = index
	if !mwtypes.IsReservedIndex(index) {
		bi := w.spendPrivateKey(index)
		spendKey := bi.Mul(rewound.outKeyTweak)
		coin.SpendKey = &spendKey
	}
	return coin, nil
}

// ReadOnlyKeyChain can identify a wallet's owned outputs from its scan
// key and public spend master, but cannot derive spend keys (the
// REDESIGN-flagged read-only view, §7.3).
type ReadOnlyKeyChain struct {
	scanKey       mwcrypto.Scalar
	spendMasterPt mwcrypto.Point
	cache         *spendKeyCache
}

func (r *ReadOnlyKeyChain) PrivateScanKey() mwcrypto.Scalar { return r.scanKey }

// StealthAddress derives the public address at index; it never needs the
// private spend master since Bi = B0 + mi*G only requires B0's point.
func (r *ReadOnlyKeyChain) StealthAddress(index uint32) (mwtypes.StealthAddress, error) {
	mi := perIndexSpendKeyTweak(index, r.scanKey)
	Bi := r.spendMasterPt.Add(mwcrypto.MulG(mi))
	r.cache.insert(Bi, index)

	Ai := Bi.Mul(r.scanKey)
	return mwtypes.StealthAddress{SpendPubKey: Bi, ScanPubKey: Ai}, nil
}

// RewindOutput identifies a Coin without a spend key, per the read-only
// contract.
func (r *ReadOnlyKeyChain) RewindOutput(out *mwebwire.Output, outputID mwtypes.Hash) (*mwtypes.Coin, error) {
	rewound, index, ok, err := rewindCommon(out, r.scanKey, r.cache)
	if err != nil || !ok {
		return nil, err
	}
	coin := rewound.toCoin(outputID)
	coin.AddressIndex = index
	return coin, nil
}
