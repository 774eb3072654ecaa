package mwebwire

import "io"

// TxBody is the varint-length-prefixed array of Inputs, Outputs and
// Kernels making up an MWEB transaction (§3, §4.7).
type TxBody struct {
	Inputs  []Input
	Outputs []Output
	Kernels []Kernel
}

// Write serializes the body: inputs, then outputs, then kernels, each
// array preceded by its varint count.
func (b *TxBody) Write(w io.Writer) error {
	if err := writeVarInt(w, uint64(len(b.Inputs))); err != nil {
		return err
	}
	for i := range b.Inputs {
		if err := b.Inputs[i].Write(w); err != nil {
			return err
		}
	}

	if err := writeVarInt(w, uint64(len(b.Outputs))); err != nil {
		return err
	}
	for i := range b.Outputs {
		if err := b.Outputs[i].Write(w); err != nil {
			return err
		}
	}

	if err := writeVarInt(w, uint64(len(b.Kernels))); err != nil {
		return err
	}
	for i := range b.Kernels {
		if err := b.Kernels[i].Write(w); err != nil {
			return err
		}
	}
	return nil
}

// Read parses a TxBody previously written by Write.
func (b *TxBody) Read(r io.Reader) error {
	inCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	b.Inputs = make([]Input, inCount)
	for i := range b.Inputs {
		if err := b.Inputs[i].Read(r); err != nil {
			return err
		}
	}

	outCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	b.Outputs = make([]Output, outCount)
	for i := range b.Outputs {
		if err := b.Outputs[i].Read(r); err != nil {
			return err
		}
	}

	kernCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	b.Kernels = make([]Kernel, kernCount)
	for i := range b.Kernels {
		if err := b.Kernels[i].Read(r); err != nil {
			return err
		}
	}
	return nil
}
