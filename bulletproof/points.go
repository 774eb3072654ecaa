package bulletproof

import "github.com/ltcsuite/mweb/mwcrypto"

// SerializePoints encodes a slice of points as a shared parity bitvector
// (bit i set iff points[i]'s Y coordinate is not a quadratic residue)
// followed by each point's X coordinate, 32 bytes each (§4.5.1).
func SerializePoints(points []mwcrypto.Point) []byte {
	bitvecLen := (len(points) + 7) / 8
	out := make([]byte, bitvecLen+32*len(points))

	for i, p := range points {
		if !p.IsQuadY() {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	for i, p := range points {
		copy(out[bitvecLen+i*32:], p.X().Bytes())
	}
	return out
}

// DeserializePoints reconstructs k points from their serialized X
// coordinates and parity bitvector, recomputing Y via the curve equation
// and the quadratic-residue bit.
func DeserializePoints(b []byte, k int) ([]mwcrypto.Point, error) {
	bitvecLen := (k + 7) / 8
	if len(b) < bitvecLen+32*k {
		return nil, ErrMalformedProof
	}

	out := make([]mwcrypto.Point, k)
	for i := 0; i < k; i++ {
		wantQuad := b[i/8]&(1<<uint(i%8)) == 0

		var xBytes [32]byte
		copy(xBytes[:], b[bitvecLen+i*32:bitvecLen+i*32+32])

		p, err := pointFromXAndParity(xBytes, wantQuad)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
