package txbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/stealth"
	"github.com/ltcsuite/mweb/validate"
)

func mintCoin(t *testing.T, chain *stealth.WalletKeyChain, amount uint64) mwtypes.Coin {
	addr, err := chain.StealthAddress(0)
	require.NoError(t, err)

	out, _, err := stealth.CreateOutputWithBlind(addr, amount, [16]byte{1, 2, 3}, nil)
	require.NoError(t, err)

	coin, err := chain.RewindOutput(out, out.ID())
	require.NoError(t, err)
	require.NotNil(t, coin)
	require.NotNil(t, coin.SpendKey)
	return *coin
}

func TestBuildTransactionSpendBalances(t *testing.T) {
	sender := stealth.NewWalletKeyChain([]byte("sender seed for txbuilder tests"))
	recipient := stealth.NewWalletKeyChain([]byte("recipient seed for txbuilder tests"))

	coin := mintCoin(t, sender, 100_000)

	recipientAddr, err := recipient.StealthAddress(0)
	require.NoError(t, err)

	result, err := BuildTransaction(BuildParams{
		KeyChain: sender,
		Coins:    []mwtypes.Coin{coin},
		Recipients: []Recipient{
			{Amount: 60_000, Address: recipientAddr},
		},
		Fee: 500,
	})
	require.NoError(t, err)
	require.Len(t, result.Transaction.Body.Outputs, 2) // payment + change
	require.Len(t, result.Transaction.Body.Inputs, 1)
	require.NotNil(t, result.ChangeCoin)
	require.Equal(t, mwtypes.Amount(39_500), result.ChangeCoin.Amount)

	require.NoError(t, validate.ValidateTransactionBody(&result.Transaction.Body))
	require.NoError(t, validate.ValidateKernelSum(&result.Transaction))

	var outKeys, inKeys []mwcrypto.Point
	for i := range result.Transaction.Body.Outputs {
		outKeys = append(outKeys, result.Transaction.Body.Outputs[i].SenderPublicKey)
	}
	for i := range result.Transaction.Body.Inputs {
		inKeys = append(inKeys, *result.Transaction.Body.Inputs[i].InputPubKey)
	}
	require.NoError(t, validate.ValidateStealthSum(&result.Transaction, inKeys, outKeys))
}

func TestBuildTransactionInsufficientFunds(t *testing.T) {
	sender := stealth.NewWalletKeyChain([]byte("insufficient funds seed"))
	recipient := stealth.NewWalletKeyChain([]byte("insufficient funds recipient seed"))

	coin := mintCoin(t, sender, 1_000)
	recipientAddr, err := recipient.StealthAddress(0)
	require.NoError(t, err)

	_, err = BuildTransaction(BuildParams{
		KeyChain: sender,
		Coins:    []mwtypes.Coin{coin},
		Recipients: []Recipient{
			{Amount: 5_000, Address: recipientAddr},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestBuildTransactionPeginNoChange(t *testing.T) {
	recipient := stealth.NewWalletKeyChain([]byte("pegin recipient seed"))
	sender := stealth.NewWalletKeyChain([]byte("pegin sender seed"))
	recipientAddr, err := recipient.StealthAddress(0)
	require.NoError(t, err)

	result, err := BuildTransaction(BuildParams{
		KeyChain: sender,
		Recipients: []Recipient{
			{Amount: 10_000, Address: recipientAddr},
		},
		Pegin: 10_000,
	})
	require.NoError(t, err)
	require.Nil(t, result.ChangeCoin)
	require.Empty(t, result.Transaction.Body.Inputs)

	require.NoError(t, validate.ValidateTransactionBody(&result.Transaction.Body))
	require.NoError(t, validate.ValidateKernelSum(&result.Transaction))
}
