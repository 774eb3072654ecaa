package txbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/stealth"
	"github.com/ltcsuite/mweb/validate"
)

// These scenario tests correspond to spec.md §8's S1/S2/S3/S6. The pack
// has no real `transaction1`/`transaction2`/`transaction3` network
// fixtures (they'd need to come from the live Litecoin MWEB chain, not
// this retrieval pack) and no outer-LTC-transaction wrapper parser to
// strip a `RegularLTCPeginTranasctionSize*2` prefix from one, so rather
// than fabricate fixture bytes, each scenario is reproduced by building
// a transaction with the matching shape and checking the same
// assertions S1/S2/S3 specify against the result. See DESIGN.md.

// TestScenarioPeginParse covers S1: a pure pegin (no spent coins) must
// be built with Inputs=0, a single kernel carrying Pegin and no
// pegouts, at least one output, and a valid body + kernel sum.
func TestScenarioPeginParse(t *testing.T) {
	recipient := stealth.NewWalletKeyChain([]byte("s1 pegin recipient seed"))
	sender := stealth.NewWalletKeyChain([]byte("s1 pegin sender seed"))
	recipientAddr, err := recipient.StealthAddress(0)
	require.NoError(t, err)

	result, err := BuildTransaction(BuildParams{
		KeyChain: sender,
		Recipients: []Recipient{
			{Amount: 50_000, Address: recipientAddr},
		},
		Pegin: 50_000,
	})
	require.NoError(t, err)

	tx := result.Transaction
	require.Empty(t, tx.Body.Inputs)
	require.Len(t, tx.Body.Kernels, 1)
	require.GreaterOrEqual(t, len(tx.Body.Outputs), 1)
	require.NotZero(t, tx.Body.Kernels[0].Features&mwebwire.PeginFeatureBit)
	require.NotZero(t, tx.Body.Kernels[0].Pegin)
	require.Empty(t, tx.Body.Kernels[0].Pegouts)

	require.NoError(t, validate.ValidateTransactionBody(&tx.Body))
	require.NoError(t, validate.ValidateKernelSum(&tx))
}

// TestScenarioHogExParse covers S2: a transaction that only spends
// existing coins, with no pegin and no pegouts (the shape a HogEx
// sweep's per-transaction kernels take).
func TestScenarioHogExParse(t *testing.T) {
	sender := stealth.NewWalletKeyChain([]byte("s2 hogex sender seed"))
	recipient := stealth.NewWalletKeyChain([]byte("s2 hogex recipient seed"))

	coin := mintCoin(t, sender, 200_000)
	recipientAddr, err := recipient.StealthAddress(0)
	require.NoError(t, err)

	result, err := BuildTransaction(BuildParams{
		KeyChain: sender,
		Coins:    []mwtypes.Coin{coin},
		Recipients: []Recipient{
			{Amount: 150_000, Address: recipientAddr},
		},
		Fee: 500,
	})
	require.NoError(t, err)

	tx := result.Transaction
	require.GreaterOrEqual(t, len(tx.Body.Inputs), 1)
	require.Len(t, tx.Body.Kernels, 1)
	require.Zero(t, tx.Body.Kernels[0].Pegin)
	require.Empty(t, tx.Body.Kernels[0].Pegouts)

	require.NoError(t, validate.ValidateTransactionBody(&tx.Body))
	require.NoError(t, validate.ValidateKernelSum(&tx))
}

// TestScenarioPegoutParse covers S3: a transaction with a single pegout
// of the literal spec.md amount.
func TestScenarioPegoutParse(t *testing.T) {
	sender := stealth.NewWalletKeyChain([]byte("s3 pegout sender seed"))
	coin := mintCoin(t, sender, 200_000)

	result, err := BuildTransaction(BuildParams{
		KeyChain: sender,
		Coins:    []mwtypes.Coin{coin},
		Pegouts: []mwebwire.PegoutOutput{
			{Amount: 97_490, ScriptPubKey: []byte{0x00, 0x14}},
		},
		Fee: 500,
	})
	require.NoError(t, err)

	tx := result.Transaction
	require.Len(t, tx.Body.Kernels, 1)
	require.Len(t, tx.Body.Kernels[0].Pegouts, 1)
	require.EqualValues(t, 97_490, tx.Body.Kernels[0].Pegouts[0].Amount)

	require.NoError(t, validate.ValidateTransactionBody(&tx.Body))
	require.NoError(t, validate.ValidateKernelSum(&tx))
}

// TestScenarioBuildRewindRoundTrip covers S6: a zero-seed wallet builds
// a pegin paying itself at its own PeginIndex address, then rewinds
// every resulting output. Exactly one owned Coin should surface, at
// PeginIndex, carrying the full pegin payment amount.
func TestScenarioBuildRewindRoundTrip(t *testing.T) {
	seed := make([]byte, 32)
	chain := stealth.NewWalletKeyChain(seed)

	peginAddr, err := chain.StealthAddress(mwtypes.PeginIndex)
	require.NoError(t, err)

	const amount = 1_000_000_00
	const fee = 1000

	result, err := BuildTransaction(BuildParams{
		KeyChain: chain,
		Recipients: []Recipient{
			{Amount: amount, Address: peginAddr},
		},
		Pegin: amount + fee,
		Fee:   fee,
	})
	require.NoError(t, err)

	var owned []*mwtypes.Coin
	for i := range result.Transaction.Body.Outputs {
		out := &result.Transaction.Body.Outputs[i]
		coin, err := chain.RewindOutput(out, out.ID())
		require.NoError(t, err)
		if coin != nil {
			owned = append(owned, coin)
		}
	}

	require.Len(t, owned, 1)
	require.Equal(t, mwtypes.PeginIndex, owned[0].AddressIndex)
	require.EqualValues(t, amount, owned[0].Amount)
}
