// mwebcli is a thin command-line harness over the mweb packages: parse
// a serialized MWEB transaction, check its range proofs, signatures and
// kernel sum, or rewind a set of outputs against a wallet seed.
package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/ltcsuite/mweb/mwlog"
)

type options struct {
	Debug bool `long:"debug" description:"log rewind scan progress and builder balancing to stderr"`
}

// maybeEnableDebugLogging wires mwlog to a stderr backend at trace level
// when --debug appears anywhere in argv. Checked ahead of flags.Parse so
// rewind scanning and builder balancing already log by the time a
// subcommand's Execute runs.
func maybeEnableDebugLogging(args []string) {
	for _, a := range args {
		if a == "--debug" {
			backend := btclog.NewBackend(os.Stderr)
			logger := backend.Logger("MWEB")
			logger.SetLevel(btclog.LevelTrace)
			mwlog.UseLogger(logger)
			return
		}
	}
}

func main() {
	maybeEnableDebugLogging(os.Args[1:])

	parser := flags.NewParser(&options{}, flags.Default)
	parser.AddCommand("parse", "Parse a serialized MWEB transaction",
		"Decode a hex-encoded MWEB transaction and print its structure.",
		&parseCommand{})
	parser.AddCommand("validate", "Validate a serialized MWEB transaction",
		"Check range proofs, signatures, and the kernel/stealth balance equations.",
		&validateCommand{})
	parser.AddCommand("rewind", "Rewind candidate outputs against a wallet seed",
		"Scan a hex-encoded list of outputs and report which belong to the given seed.",
		&rewindCommand{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
