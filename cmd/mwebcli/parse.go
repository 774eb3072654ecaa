package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ltcsuite/mweb/mwebwire"
)

type parseCommand struct {
	Args struct {
		TxHex string `positional-arg-name:"tx-hex" description:"hex-encoded serialized MWEB transaction"`
	} `positional-args:"yes" required:"yes"`
}

func (c *parseCommand) Execute(_ []string) error {
	raw, err := hex.DecodeString(c.Args.TxHex)
	if err != nil {
		return fmt.Errorf("decoding tx hex: %w", err)
	}

	var tx mwebwire.Transaction
	if err := tx.Read(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("parsing transaction: %w", err)
	}

	fmt.Printf("inputs:  %d\n", len(tx.Body.Inputs))
	fmt.Printf("outputs: %d\n", len(tx.Body.Outputs))
	fmt.Printf("kernels: %d\n", len(tx.Body.Kernels))
	for i := range tx.Body.Outputs {
		out := &tx.Body.Outputs[i]
		fmt.Printf("  output[%d] id=%x proof_len=%d\n", i, out.ID(), len(out.RangeProof))
	}
	for i := range tx.Body.Kernels {
		k := &tx.Body.Kernels[i]
		fmt.Printf("  kernel[%d] features=%#x fee=%d pegin=%d pegouts=%d\n",
			i, byte(k.Features), k.Fee, k.Pegin, len(k.Pegouts))
	}
	return nil
}
