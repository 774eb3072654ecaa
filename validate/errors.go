// Package validate checks a parsed MWEB transaction against every
// invariant the wire format does not already enforce on its own: range
// proofs, signatures, and the kernel/stealth balance equations (§4.9).
package validate

import "errors"

// Failure classifies why a transaction failed validation (§4.9, §7).
var (
	ErrRangeProofInvalid   = errors.New("validate: output range proof failed to verify")
	ErrSignatureInvalid    = errors.New("validate: signature failed to verify")
	ErrKernelSumMismatch   = errors.New("validate: kernel sum does not balance")
	ErrStealthSumMismatch  = errors.New("validate: stealth sum does not balance")
	ErrMalformedProof      = errors.New("validate: malformed proof or commitment")
)
