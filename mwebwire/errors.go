package mwebwire

import "errors"

var (
	// ErrUnknownFeatureBit is returned when a parsed feature byte sets a
	// bit outside the type's known set.
	ErrUnknownFeatureBit = errors.New("mwebwire: unknown feature bit")

	// ErrProofTooLarge is returned when a range proof's length exceeds
	// bulletproof.MaxProofSize.
	ErrProofTooLarge = errors.New("mwebwire: range proof exceeds maximum size")

	// ErrMalformedVarInt is returned by ReadMWEBExtension when the MWEB
	// transaction version byte is not the supported version.
	ErrMalformedVarInt = errors.New("mwebwire: malformed varint or field encoding")

	// ErrUnknownFlagBit is returned when the outer transaction's flag
	// byte sets a bit outside {witnessFlag, extensionFlag}.
	ErrUnknownFlagBit = errors.New("mwebwire: unknown transaction flag bit")
)
