package bulletproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltcsuite/mweb/mwcrypto"
)

func testBlind(b byte) mwcrypto.Scalar {
	var raw [32]byte
	raw[31] = b
	s, err := mwcrypto.ScalarFromCanonicalBytes(raw[:])
	if err != nil {
		panic(err)
	}
	return s
}

func testNonce(b byte) [32]byte {
	var n [32]byte
	for i := range n {
		n[i] = b
	}
	return n
}

func TestProveVerifyRoundTrip(t *testing.T) {
	blind := testBlind(7)
	var msg Message
	copy(msg[:], "hello stealth output")

	params := ProveParams{
		Value:        1234567,
		Blind:        blind,
		PrivateNonce: testNonce(1),
		RewindNonce:  testNonce(2),
		ProofMessage: msg,
		ExtraData:    []byte("extra"),
	}

	proof, commitment, err := Prove(params)
	require.NoError(t, err)
	require.LessOrEqual(t, len(proof), MaxProofSize)

	err = Verify(commitment, proof, params.ExtraData)
	require.NoError(t, err)
}

func TestVerifyRejectsWrongExtraData(t *testing.T) {
	params := ProveParams{
		Value:        42,
		Blind:        testBlind(9),
		PrivateNonce: testNonce(3),
		RewindNonce:  testNonce(4),
		ExtraData:    []byte("tx-1"),
	}
	proof, commitment, err := Prove(params)
	require.NoError(t, err)

	err = Verify(commitment, proof, []byte("tx-2"))
	require.ErrorIs(t, err, ErrRangeProofInvalid)
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	params := ProveParams{
		Value:        1000,
		Blind:        testBlind(11),
		PrivateNonce: testNonce(5),
		RewindNonce:  testNonce(6),
	}
	proof, commitment, err := Prove(params)
	require.NoError(t, err)

	tampered := make(Proof, len(proof))
	copy(tampered, proof)
	tampered[0] ^= 0xff

	err = Verify(commitment, tampered, nil)
	require.Error(t, err)
}

func TestVerifyRejectsOversizedProof(t *testing.T) {
	oversized := make(Proof, MaxProofSize+1)
	err := Verify(mwcrypto.GeneratorG(), oversized, nil)
	require.ErrorIs(t, err, ErrOversizedProof)
}

func TestRewindRecoversValueAndMessage(t *testing.T) {
	var msg Message
	copy(msg[:], "rewind-recoverable-msg")

	params := ProveParams{
		Value:        987654321,
		Blind:        testBlind(13),
		PrivateNonce: testNonce(7),
		RewindNonce:  testNonce(8),
		ProofMessage: msg,
		ExtraData:    []byte("rewind-extra"),
	}

	proof, commitment, err := Prove(params)
	require.NoError(t, err)

	result, err := Rewind(commitment, proof, params.RewindNonce, params.ExtraData)
	require.NoError(t, err)
	require.Equal(t, params.Value, result.Value)
	require.Equal(t, params.ProofMessage, result.Message)
}

func TestRewindWrongNonceGivesGarbage(t *testing.T) {
	params := ProveParams{
		Value:        55,
		Blind:        testBlind(14),
		PrivateNonce: testNonce(9),
		RewindNonce:  testNonce(10),
	}
	proof, commitment, err := Prove(params)
	require.NoError(t, err)

	result, err := Rewind(commitment, proof, testNonce(99), nil)
	require.NoError(t, err)
	require.NotEqual(t, params.Value, result.Value)
}

func TestInnerProductProofLengthMatchesHeaderBudget(t *testing.T) {
	ipaLen := InnerProductProofLength(NumBits)
	require.Equal(t, headerSize+ipaLen, MaxProofSize)
}
