package signature

import (
	"github.com/drand/hashsig/symmetric/messagehash"
)

// Verify reports whether sig is a valid signature for message under epoch
// against pk. It recomputes the codeword from sig.Randomness rather than
// trusting sig.Codeword, walks each revealed chain value forward to the
// fixed endpoint every signer would reach, and checks the Merkle co-path
// reconstructs pk.Root.
func Verify(pk *PublicKey, epoch uint32, message [messagehash.MessageLength]byte, sig *Signature) bool {
	if sig == nil || sig.Epoch != epoch || epoch >= pk.Params.NumLeaves {
		return false
	}

	enc, err := pk.Params.newEncoding()
	if err != nil {
		return false
	}
	codeword, err := enc.Encode(pk.Parameter, message, sig.Randomness, epoch)
	if err != nil {
		return false
	}
	if len(codeword) != len(sig.Revealed) {
		return false
	}

	endpoints := make([][]byte, len(codeword))
	for i, digit := range codeword {
		remaining := pk.Params.Base - 1 - int(digit)
		if remaining < 0 {
			return false
		}
		endpoints[i] = walkChain(pk.Params.Hash, pk.Parameter, epoch, uint16(i), sig.Revealed[i], int(digit), remaining)
	}

	leafHash := compressLeaf(pk.Params.Hash, pk.Parameter, epoch, endpoints)
	return verifyMerklePath(pk.Params.Hash, pk.Parameter, epoch, leafHash, sig.MerklePath, pk.Root)
}
