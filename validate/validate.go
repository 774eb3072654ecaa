package validate

import (
	"math/big"

	"github.com/ltcsuite/mweb/generators"
	"github.com/ltcsuite/mweb/mwcrypto"
	"github.com/ltcsuite/mweb/mwebwire"
)

// ValidateTransactionBody checks every output's range proof and
// signature, and every input's signature, per §4.9. It does not check
// the kernel/stealth balance equations; call ValidateKernelSum and
// ValidateStealthSum for those.
func ValidateTransactionBody(body *mwebwire.TxBody) error {
	for i := range body.Outputs {
		out := &body.Outputs[i]
		if err := validateOutput(out); err != nil {
			return err
		}
	}
	for i := range body.Inputs {
		if err := validateInputSignature(&body.Inputs[i]); err != nil {
			return err
		}
	}
	for i := range body.Kernels {
		if err := validateKernelSignature(&body.Kernels[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateOutput(out *mwebwire.Output) error {
	proofExtra := out.ReceiverPublicKey.SerializeCompressed()
	if err := bulletproofVerify(out, proofExtra); err != nil {
		return ErrRangeProofInvalid
	}

	sigHash := out.SignatureHash()
	if !mwcrypto.Verify(out.SenderPublicKey, sigHash, out.Signature) {
		return ErrSignatureInvalid
	}
	return nil
}

// validateInputSignature checks the input's signature against the
// one-time output public key it spends: proof of knowledge of that
// output's spend key is what authorizes the spend. Invariant 2 (no
// double spend) is enforced by the caller tracking spent OutputIDs, not
// by this package.
func validateInputSignature(in *mwebwire.Input) error {
	if !mwcrypto.Verify(in.OutputPubKey, in.SignatureHash(), in.Signature) {
		return ErrSignatureInvalid
	}
	return nil
}

func validateKernelSignature(k *mwebwire.Kernel) error {
	if !mwcrypto.Verify(k.Excess, k.SignatureHash(), k.Signature) {
		return ErrSignatureInvalid
	}
	return nil
}

// ValidateKernelSum checks invariant 4: the aggregate of every kernel's
// excess and the single transaction-wide kernel offset must balance the
// sum of output commitments against inputs, pegin and pegouts.
func ValidateKernelSum(tx *mwebwire.Transaction) error {
	sumOut := sumCommitments(tx.Body.Outputs)
	sumIn := sumInputCommitments(tx.Body.Inputs)

	lhs := sumOut.Sub(sumIn)

	rhs := mwcrypto.MulG(tx.KernelOffset)
	for i := range tx.Body.Kernels {
		k := &tx.Body.Kernels[i]
		rhs = rhs.Add(k.Excess)
		if k.Features&mwebwire.PeginFeatureBit != 0 {
			rhs = rhs.Add(generators.H().Mul(scalarFromUint64(uint64(k.Pegin))))
		}
		if k.Features&mwebwire.PegoutFeatureBit != 0 {
			for _, p := range k.Pegouts {
				rhs = rhs.Sub(generators.H().Mul(scalarFromUint64(uint64(p.Amount))))
			}
		}
		if k.Features&mwebwire.FeeFeatureBit != 0 {
			rhs = rhs.Sub(generators.H().Mul(scalarFromUint64(uint64(k.Fee))))
		}
	}

	if !lhs.IsEqual(rhs) {
		return ErrKernelSumMismatch
	}
	return nil
}

// ValidateStealthSum checks the analogous balance equation over the
// transaction's stealth excess points and offset (§4.9).
func ValidateStealthSum(tx *mwebwire.Transaction, inputStealthKeys, outputSenderKeys []mwcrypto.Point) error {
	sumOut := sumPoints(outputSenderKeys)
	sumIn := sumPoints(inputStealthKeys)
	lhs := sumOut.Sub(sumIn)

	rhs := mwcrypto.MulG(tx.StealthOffset)
	for i := range tx.Body.Kernels {
		k := &tx.Body.Kernels[i]
		if k.Features&mwebwire.StealthExcessFeatureBit != 0 {
			rhs = rhs.Add(k.StealthExcess)
		}
	}

	if !lhs.IsEqual(rhs) {
		return ErrStealthSumMismatch
	}
	return nil
}

func sumCommitments(outs []mwebwire.Output) mwcrypto.Point {
	var sum mwcrypto.Point
	for i := range outs {
		sum = sum.Add(outs[i].Commitment.Point)
	}
	return sum
}

func sumInputCommitments(ins []mwebwire.Input) mwcrypto.Point {
	var sum mwcrypto.Point
	for i := range ins {
		sum = sum.Add(ins[i].Commitment.Point)
	}
	return sum
}

func sumPoints(points []mwcrypto.Point) mwcrypto.Point {
	var sum mwcrypto.Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum
}

func scalarFromUint64(v uint64) mwcrypto.Scalar {
	var b [32]byte
	big.NewInt(0).SetUint64(v).FillBytes(b[:])
	s, _ := mwcrypto.ScalarFromCanonicalBytes(b[:])
	return s
}
