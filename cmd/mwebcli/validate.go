package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/validate"
)

type validateCommand struct {
	Args struct {
		TxHex string `positional-arg-name:"tx-hex" description:"hex-encoded serialized MWEB transaction"`
	} `positional-args:"yes" required:"yes"`
}

// Execute checks the range proofs, signatures, and kernel balance
// equation. The stealth balance equation is not checked:
// validate.ValidateStealthSum takes the input and output stealth keys as
// separate arguments, and this command does not collect them from the
// parsed transaction.
func (c *validateCommand) Execute(_ []string) error {
	raw, err := hex.DecodeString(c.Args.TxHex)
	if err != nil {
		return fmt.Errorf("decoding tx hex: %w", err)
	}

	var tx mwebwire.Transaction
	if err := tx.Read(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("parsing transaction: %w", err)
	}

	if err := validate.ValidateTransactionBody(&tx.Body); err != nil {
		return err
	}
	if err := validate.ValidateKernelSum(&tx); err != nil {
		return err
	}

	fmt.Println("ok")
	return nil
}
