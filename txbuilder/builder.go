package txbuilder

import (
	"crypto/rand"
	"sort"

	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/mwlog"
	"github.com/ltcsuite/mweb/mwtypes"
	"github.com/ltcsuite/mweb/pedersen"
	"github.com/ltcsuite/mweb/stealth"
)

// Recipient is a single payment destination: an amount and the stealth
// address it is sent to, plus any sender extra data carried in the
// output.
type Recipient struct {
	Amount    uint64
	Address   mwtypes.StealthAddress
	ExtraData []byte
}

// BuildParams describes a transaction to assemble. Coins (a spend) and
// Pegin (a pegin) may each be used alone or combined; selected coins and
// the pegin amount together fund the recipients and fee.
type BuildParams struct {
	// KeyChain is used to derive the change address. Inputs are signed
	// with each coin's own SpendKey, not through the key chain.
	KeyChain stealth.KeyChain

	// Coins are the candidate spendable inputs, each of which must
	// carry a Blind and SpendKey (i.e. not a read-only rewind).
	Coins []mwtypes.Coin

	// Recipients are the payments this transaction makes into the
	// MWEB output set.
	Recipients []Recipient

	// Pegouts send value out of MWEB to outer Litecoin scriptPubKeys.
	Pegouts []mwebwire.PegoutOutput

	// Pegin is the amount of new value entering MWEB from the outer
	// transaction, or 0 if this transaction only spends existing
	// coins.
	Pegin uint64

	// Fee is the transaction's fee, contributed to the kernel's
	// value-conservation equation (§4.8, §4.9).
	Fee uint64
}

// Result is a fully assembled and signed transaction, along with the
// coins it spent and any change coin it created for the calling wallet
// to track.
type Result struct {
	Transaction mwebwire.Transaction
	SpentCoins  []mwtypes.Coin
	ChangeCoin  *mwtypes.Coin
}

// BuildTransaction selects inputs, builds outputs (plus change if
// needed), and balances the kernel offset so the result satisfies
// invariant 4 (§4.8, §4.9) without any further adjustment.
func BuildTransaction(p BuildParams) (*Result, error) {
	if len(p.Recipients) == 0 && len(p.Pegouts) == 0 {
		return nil, ErrNoRecipients
	}

	needed := p.Fee
	for _, r := range p.Recipients {
		needed += r.Amount
	}
	for _, po := range p.Pegouts {
		needed += uint64(po.Amount)
	}

	mwlog.Debugf("txbuilder: need %d (fee %d, pegin %d) across %d candidate coins",
		needed, p.Fee, p.Pegin, len(p.Coins))

	selected, selectedTotal, err := selectCoins(p.Coins, needed, p.Pegin)
	if err != nil {
		return nil, err
	}
	mwlog.Debugf("txbuilder: selected %d coins totaling %d", len(selected), selectedTotal)

	var rOut, rIn mwcrypto.Scalar
	var outputs []mwebwire.Output
	var inputs []mwebwire.Input

	for _, rec := range p.Recipients {
		out, blind, err := buildOutput(rec)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, *out)
		rOut = rOut.Add(blind)
	}

	leftover := p.Pegin + selectedTotal - needed
	var changeCoin *mwtypes.Coin
	if leftover > 0 {
		changeAddr, err := p.KeyChain.StealthAddress(mwtypes.ChangeIndex)
		if err != nil {
			return nil, err
		}
		out, blind, err := buildOutput(Recipient{Amount: leftover, Address: changeAddr})
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, *out)
		rOut = rOut.Add(blind)

		changeCoin = &mwtypes.Coin{
			AddressIndex: mwtypes.ChangeIndex,
			Blind:        &blind,
			Amount:       mwtypes.Amount(leftover),
			OutputID:     out.ID(),
			Address:      changeAddr,
			OutputPubKey: out.ReceiverPublicKey,
		}
	}

	for _, coin := range selected {
		in, err := buildInput(coin)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *in)
		switched := pedersen.BlindSwitch(*coin.Blind, uint64(coin.Amount))
		rIn = rIn.Add(switched)
	}

	kernelOffset, err := randomScalar()
	if err != nil {
		return nil, err
	}
	stealthOffset, err := randomScalar()
	if err != nil {
		return nil, err
	}

	kernel, err := buildKernel(outputs, inputs, rOut, rIn, kernelOffset, stealthOffset, p.Pegin, p.Pegouts, p.Fee)
	if err != nil {
		return nil, err
	}

	tx := mwebwire.Transaction{
		KernelOffset:  kernelOffset,
		StealthOffset: stealthOffset,
		Body: mwebwire.TxBody{
			Inputs:  inputs,
			Outputs: outputs,
			Kernels: []mwebwire.Kernel{*kernel},
		},
	}

	return &Result{Transaction: tx, SpentCoins: selected, ChangeCoin: changeCoin}, nil
}

func buildOutput(rec Recipient) (*mwebwire.Output, mwcrypto.Scalar, error) {
	var nonce [16]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, mwcrypto.Scalar{}, err
	}
	return stealth.CreateOutputWithBlind(rec.Address, rec.Amount, nonce, rec.ExtraData)
}

// buildInput assembles the Input spending coin. The signature is over
// the input's own fields, keyed by the coin's one-time spend key,
// mirroring how Output.SignatureHash binds an output's fields to its
// sender key.
func buildInput(coin mwtypes.Coin) (*mwebwire.Input, error) {
	if coin.Blind == nil || coin.SpendKey == nil {
		return nil, ErrUnspendableCoin
	}

	switched := pedersen.BlindSwitch(*coin.Blind, uint64(coin.Amount))
	commitment := pedersen.Commit(uint64(coin.Amount), switched)

	in := &mwebwire.Input{
		Features:     mwebwire.StealthKeyFeatureBit,
		OutputID:     coin.OutputID,
		Commitment:   commitment,
		OutputPubKey: coin.OutputPubKey,
	}
	senderKey := coin.SenderKey
	in.InputPubKey = &senderKey

	sigHash := in.SignatureHash()
	sig, err := mwcrypto.Sign(*coin.SpendKey, sigHash)
	if err != nil {
		return nil, err
	}
	in.Signature = sig
	return in, nil
}

// buildKernel computes the kernel excess and stealth excess that make
// the built transaction balance under validate.ValidateKernelSum and
// ValidateStealthSum.
//
// The kernel excess is the pure scalar e = sum(r'_out) - sum(r'_in) -
// kernel_offset, whose E = e*G satisfies invariant 4 exactly because
// value conservation (enforced by selectCoins and the change output
// above) cancels every pegin/pegout/fee term from the underlying
// commitments.
//
// The stealth excess is a point, not a scalar: the spender knows the
// discrete log of every output's ephemeral key (it drew them), but not
// of an input's, since that key belongs to whoever originally sent the
// coin being spent. So rather than solve for a scalar, stealth_excess
// absorbs the public-key difference directly, leaving stealth_offset
// free to be drawn at random for unlinkability.
func buildKernel(outputs []mwebwire.Output, inputs []mwebwire.Input, rOut, rIn, kernelOffset, stealthOffset mwcrypto.Scalar, pegin uint64, pegouts []mwebwire.PegoutOutput, fee uint64) (*mwebwire.Kernel, error) {
	e := rOut.Sub(rIn).Sub(kernelOffset)
	excess := mwcrypto.MulG(e)

	var sumOutKeys, sumInKeys mwcrypto.Point
	for i := range outputs {
		sumOutKeys = sumOutKeys.Add(outputs[i].SenderPublicKey)
	}
	for i := range inputs {
		if inputs[i].InputPubKey != nil {
			sumInKeys = sumInKeys.Add(*inputs[i].InputPubKey)
		}
	}
	stealthExcess := sumOutKeys.Sub(sumInKeys).Sub(mwcrypto.MulG(stealthOffset))
	mwlog.Debugf("txbuilder: balanced kernel over %d inputs, %d outputs, fee %d, pegin %d, %d pegouts",
		len(inputs), len(outputs), fee, pegin, len(pegouts))

	features := mwebwire.StealthExcessFeatureBit
	k := &mwebwire.Kernel{Excess: excess, StealthExcess: stealthExcess}
	if fee > 0 {
		features |= mwebwire.FeeFeatureBit
		k.Fee = mwtypes.Amount(fee)
	}
	if pegin > 0 {
		features |= mwebwire.PeginFeatureBit
		k.Pegin = mwtypes.Amount(pegin)
	}
	if len(pegouts) > 0 {
		features |= mwebwire.PegoutFeatureBit
		k.Pegouts = pegouts
	}
	k.Features = features

	sig, err := mwcrypto.Sign(e, k.SignatureHash())
	if err != nil {
		return nil, err
	}
	k.Signature = sig
	return k, nil
}

// selectCoins picks the smallest-amount-first prefix of coins whose sum,
// combined with pegin, covers needed; it errs if no such prefix exists.
func selectCoins(coins []mwtypes.Coin, needed uint64, pegin uint64) ([]mwtypes.Coin, uint64, error) {
	if pegin >= needed {
		return nil, 0, nil
	}

	sorted := make([]mwtypes.Coin, len(coins))
	copy(sorted, coins)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Amount < sorted[j].Amount })

	var sum uint64
	for i, c := range sorted {
		sum += uint64(c.Amount)
		if pegin+sum >= needed {
			return sorted[:i+1], sum, nil
		}
	}
	return nil, 0, ErrInsufficientFunds
}

func randomScalar() (mwcrypto.Scalar, error) {
	var b [32]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return mwcrypto.Scalar{}, err
		}
		s, err := mwcrypto.ScalarFromCanonicalBytes(b[:])
		if err == nil && !s.IsZero() {
			return s, nil
		}
	}
}
