package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/stealth"
)

type rewindCommand struct {
	SeedHex string `long:"seed-hex" description:"hex-encoded wallet seed" required:"true"`

	Args struct {
		OutputsHex []string `positional-arg-name:"output-hex" description:"hex-encoded candidate outputs"`
	} `positional-args:"yes" required:"yes"`
}

func (c *rewindCommand) Execute(_ []string) error {
	seed, err := hex.DecodeString(c.SeedHex)
	if err != nil {
		return fmt.Errorf("decoding seed hex: %w", err)
	}
	chain := stealth.NewWalletKeyChain(seed)

	for i, outHex := range c.Args.OutputsHex {
		raw, err := hex.DecodeString(outHex)
		if err != nil {
			return fmt.Errorf("decoding output[%d] hex: %w", i, err)
		}
		var out mwebwire.Output
		if err := out.Read(bytes.NewReader(raw)); err != nil {
			return fmt.Errorf("parsing output[%d]: %w", i, err)
		}

		coin, err := chain.RewindOutput(&out, out.ID())
		if err != nil {
			return fmt.Errorf("rewinding output[%d]: %w", i, err)
		}
		if coin == nil {
			fmt.Printf("output[%d]: not ours\n", i)
			continue
		}
		fmt.Printf("output[%d]: amount=%d index=%d\n", i, coin.Amount, coin.AddressIndex)
	}
	return nil
}
