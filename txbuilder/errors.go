// Package txbuilder assembles a balanced MWEB transaction from a
// wallet's spendable coins: input selection, one-time output creation,
// change, and the kernel/stealth offset arithmetic that makes the
// result pass validate.ValidateKernelSum and ValidateStealthSum by
// construction (§4.8).
package txbuilder

import "errors"

var (
	// ErrInsufficientFunds is returned when the offered coins plus any
	// pegin amount cannot cover the requested recipients, pegouts and
	// fee.
	ErrInsufficientFunds = errors.New("txbuilder: insufficient funds")

	// ErrNoRecipients is returned when a build has nothing to pay and
	// no pegout either.
	ErrNoRecipients = errors.New("txbuilder: no recipients or pegouts")

	// ErrUnspendableCoin is returned when a selected input coin has no
	// known blinding factor or spend key (e.g. a read-only rewind).
	ErrUnspendableCoin = errors.New("txbuilder: coin missing blind or spend key")
)
