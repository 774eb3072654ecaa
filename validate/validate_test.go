package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/generators"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/pedersen"
)

func testScalar(b byte) mwcrypto.Scalar {
	var raw [32]byte
	raw[31] = b
	s, err := mwcrypto.ScalarFromCanonicalBytes(raw[:])
	if err != nil {
		panic(err)
	}
	return s
}

// buildBalancedPegin constructs a single-output pegin transaction whose
// kernel excess is solved directly from §4.9's validator equation, so
// ValidateKernelSum is exercised against its own definition of balance.
func buildBalancedPegin(t *testing.T, value uint64, blind, offset mwcrypto.Scalar) mwebwire.Transaction {
	commitment := pedersen.Commit(value, blind)

	excess := commitment.Point.
		Sub(mwcrypto.MulG(offset)).
		Sub(generators.H().Mul(scalarFromUint64(value)))

	return mwebwire.Transaction{
		KernelOffset: offset,
		Body: mwebwire.TxBody{
			Outputs: []mwebwire.Output{{Commitment: commitment}},
			Kernels: []mwebwire.Kernel{{
				Features: mwebwire.PeginFeatureBit,
				Pegin:    0, // set below once cast is available
				Excess:   excess,
			}},
		},
	}
}

func TestValidateKernelSumBalances(t *testing.T) {
	value := uint64(50_000)
	blind := testScalar(3)
	offset := testScalar(7)

	tx := buildBalancedPegin(t, value, blind, offset)
	tx.Body.Kernels[0].Pegin = 50_000

	require.NoError(t, ValidateKernelSum(&tx))
}

func TestValidateKernelSumRejectsTamperedExcess(t *testing.T) {
	value := uint64(1000)
	blind := testScalar(1)
	offset := testScalar(2)

	tx := buildBalancedPegin(t, value, blind, offset)
	tx.Body.Kernels[0].Pegin = 1000
	tx.Body.Kernels[0].Excess = tx.Body.Kernels[0].Excess.Add(mwcrypto.GeneratorG())

	require.ErrorIs(t, ValidateKernelSum(&tx), ErrKernelSumMismatch)
}
