package signature

import (
	"crypto/rand"
	"fmt"

	"github.com/drand/hashsig/encoding"
	"github.com/drand/hashsig/symmetric/messagehash"
)

// Sign produces a signature for message under epoch, using sk. epoch must
// be less than sk.Params.NumLeaves, or ErrEpochExhausted is returned.
func Sign(sk *SecretKey, epoch uint32, message [messagehash.MessageLength]byte) (*Signature, error) {
	if epoch >= sk.Params.NumLeaves {
		return nil, fmt.Errorf("%w: epoch %d, have %d leaves", ErrEpochExhausted, epoch, sk.Params.NumLeaves)
	}
	if sk.LeafHashes == nil {
		if err := RebuildLeafHashes(sk); err != nil {
			return nil, fmt.Errorf("signature: rebuilding leaf cache: %w", err)
		}
	}

	enc, err := sk.Params.newEncoding()
	if err != nil {
		return nil, err
	}

	randomness, codeword, err := encoding.EncodeWithRetry(enc, rand.Reader, sk.Parameter, message, epoch)
	if err != nil {
		return nil, fmt.Errorf("signature: encoding message: %w", err)
	}

	revealed := make([][]byte, len(codeword))
	for i, digit := range codeword {
		start := sk.Params.PRF.Apply(sk.Seed, epoch, uint64(i))
		revealed[i] = walkChain(sk.Params.Hash, sk.Parameter, epoch, uint16(i), start, 0, int(digit))
	}

	tree, err := buildMerkleTree(sk.Params.Hash, sk.Parameter, sk.LeafHashes)
	if err != nil {
		return nil, fmt.Errorf("signature: rebuilding merkle tree: %w", err)
	}
	path := tree.Path(epoch)

	return &Signature{
		Epoch:      epoch,
		Randomness: randomness,
		Codeword:   codeword,
		Revealed:   revealed,
		MerklePath: path,
	}, nil
}
