package stealth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateOutputRewindRoundTrip(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	wallet := NewWalletKeyChain(seed)

	addr, err := wallet.StealthAddress(5)
	require.NoError(t, err)

	var nonce [16]byte
	copy(nonce[:], "0123456789abcdef")

	out, err := CreateOutput(addr, 4_200_000, nonce, []byte("memo"))
	require.NoError(t, err)

	coin, err := wallet.RewindOutput(out, testOutputID(1))
	require.NoError(t, err)
	require.NotNil(t, coin)
	require.EqualValues(t, 4_200_000, coin.Amount)
	require.NotNil(t, coin.SpendKey)
}

func TestReadOnlyRewindHasNoSpendKey(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	wallet := NewWalletKeyChain(seed)
	viewer := wallet.ReadOnly()

	addr, err := viewer.StealthAddress(2)
	require.NoError(t, err)

	var nonce [16]byte
	out, err := CreateOutput(addr, 77, nonce, nil)
	require.NoError(t, err)

	coin, err := viewer.RewindOutput(out, testOutputID(2))
	require.NoError(t, err)
	require.NotNil(t, coin)
	require.EqualValues(t, 77, coin.Amount)
	require.Nil(t, coin.SpendKey)
}

func TestRewindSkipsOutputForOtherWallet(t *testing.T) {
	seedA := make([]byte, 32)
	seedB := make([]byte, 32)
	for i := range seedA {
		seedA[i] = byte(i)
		seedB[i] = byte(255 - i)
	}
	walletA := NewWalletKeyChain(seedA)
	walletB := NewWalletKeyChain(seedB)

	addrA, err := walletA.StealthAddress(0)
	require.NoError(t, err)

	var nonce [16]byte
	out, err := CreateOutput(addrA, 10, nonce, nil)
	require.NoError(t, err)

	coin, err := walletB.RewindOutput(out, testOutputID(3))
	require.NoError(t, err)
	require.Nil(t, coin)
}

func testOutputID(b byte) (id [32]byte) {
	id[0] = b
	return id
}
