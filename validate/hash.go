package validate

import (
	"github.com/ltcsuite/mweb/bulletproof"
	"github.com/ltcsuite/mweb/mwebwire"
)

func bulletproofVerify(out *mwebwire.Output, extraData []byte) error {
	return bulletproof.Verify(out.Commitment.Point, out.RangeProof, extraData)
}
