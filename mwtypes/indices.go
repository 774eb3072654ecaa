package mwtypes

// Reserved coin address indices, drawn from the top of the u32 range so
// they never collide with a real wallet-derived spend index. Values match
// the reference implementation.
const (
	// ChangeIndex marks a Coin produced as leftover change from a build.
	ChangeIndex uint32 = 0xFFFFFFFF

	// PeginIndex marks a Coin representing the pegged-in amount of a
	// transaction the wallet itself built.
	PeginIndex uint32 = 0xFFFFFFFE

	// UnknownIndex marks a Coin whose owning index could not be
	// determined (e.g. recovered from a raw spend key rather than a
	// derivation path).
	UnknownIndex uint32 = 0xFFFFFFFD

	// CustomKeyIndex marks a Coin built against an externally supplied
	// spend key rather than one derived from the wallet's key chain.
	CustomKeyIndex uint32 = 0xFFFFFFFC
)

// IsReservedIndex reports whether idx is one of the reserved pseudo-indices
// above rather than a real, wallet-derived address index.
func IsReservedIndex(idx uint32) bool {
	switch idx {
	case ChangeIndex, PeginIndex, UnknownIndex, CustomKeyIndex:
		return true
	default:
		return false
	}
}
