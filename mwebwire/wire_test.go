package mwebwire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/mwcrypto"
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

func TestOutputMessageRoundTrip(t *testing.T) {
	msg := OutputMessage{
		Features:          StandardFieldsFeatureBit | ExtraDataFeatureBit,
		KeyExchangePubkey: mwcrypto.MulG(testScalar(3)),
		ViewTag:           0x42,
		MaskedValue:       123456,
		ExtraData:         []byte("memo"),
	}
	copy(msg.MaskedNonce[:], "0123456789abcdef")

	var buf bytes.Buffer
	require.NoError(t, msg.Write(&buf))

	var got OutputMessage
	require.NoError(t, got.Read(&buf))
	require.Equal(t, msg.Features, got.Features)
	require.Equal(t, msg.ViewTag, got.ViewTag)
	require.Equal(t, msg.MaskedValue, got.MaskedValue)
	require.Equal(t, msg.MaskedNonce, got.MaskedNonce)
	require.Equal(t, msg.ExtraData, got.ExtraData)
	require.True(t, msg.KeyExchangePubkey.IsEqual(got.KeyExchangePubkey))
}

func TestOutputRoundTrip(t *testing.T) {
	out := Output{
		Commitment:        pedersen.Commit(1000, testScalar(1)),
		SenderPublicKey:   mwcrypto.MulG(testScalar(2)),
		ReceiverPublicKey: mwcrypto.MulG(testScalar(3)),
		Message: OutputMessage{
			Features:          StandardFieldsFeatureBit,
			KeyExchangePubkey: mwcrypto.MulG(testScalar(4)),
			ViewTag:           7,
			MaskedValue:       1000,
		},
		RangeProof: make([]byte, 10),
	}
	copy(out.Signature[:], bytes.Repeat([]byte{0xAB}, 64))

	var buf bytes.Buffer
	require.NoError(t, out.Write(&buf))

	var got Output
	require.NoError(t, got.Read(&buf))
	require.True(t, out.Commitment.IsEqual(got.Commitment))
	require.Equal(t, []byte(out.RangeProof), []byte(got.RangeProof))
	require.Equal(t, out.Signature, got.Signature)
}

func TestKernelRoundTrip(t *testing.T) {
	k := Kernel{
		Features: FeeFeatureBit | PegoutFeatureBit | HeightLockFeatureBit,
		Fee:      500,
		Pegouts: []PegoutOutput{
			{Amount: 2500, ScriptPubKey: []byte{0x76, 0xa9, 0x14}},
		},
		LockHeight: 42,
		Excess:     mwcrypto.MulG(testScalar(9)),
	}

	var buf bytes.Buffer
	require.NoError(t, k.Write(&buf))

	var got Kernel
	require.NoError(t, got.Read(&buf))
	require.Equal(t, k.Features, got.Features)
	require.Equal(t, k.Fee, got.Fee)
	require.Equal(t, k.Pegouts, got.Pegouts)
	require.Equal(t, k.LockHeight, got.LockHeight)
	require.True(t, k.Excess.IsEqual(got.Excess))
}

func TestTransactionRoundTrip(t *testing.T) {
	tx := Transaction{
		KernelOffset:  testScalar(5),
		StealthOffset: testScalar(6),
		Body: TxBody{
			Kernels: []Kernel{{Excess: mwcrypto.MulG(testScalar(7))}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMWEBExtension(&buf, &tx))

	got, err := ReadMWEBExtension(&buf)
	require.NoError(t, err)
	require.Equal(t, tx.KernelOffset, got.KernelOffset)
	require.Len(t, got.Body.Kernels, 1)
}

func TestHasMWEBExtensionRejectsUnknownFlag(t *testing.T) {
	_, err := HasMWEBExtension(0x04)
	require.ErrorIs(t, err, ErrUnknownFlagBit)
}

func TestHasMWEBExtension(t *testing.T) {
	has, err := HasMWEBExtension(extensionFlag | witnessFlag)
	require.NoError(t, err)
	require.True(t, has)
}
