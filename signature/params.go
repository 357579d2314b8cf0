// Package signature implements the hash-based one-time/few-time signature
// driver: key generation, signing and verification built on top of the
// hypercube encodings and the tweakable-hash/PRF primitives.
package signature

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/drand/hashsig/encoding"
	"github.com/drand/hashsig/symmetric/messagehash"
	"github.com/drand/hashsig/symmetric/prf"
	"github.com/drand/hashsig/symmetric/tweakhash"
)

// Sentinel errors for the signature driver's own failure modes, layered
// on top of the encoding/hypercube package's InvalidDimension/InvalidLayer
// and EncodingExhausted kinds.
var (
	ErrEpochExhausted    = errors.New("signature: epoch exceeds the key's number of leaves")
	ErrMerklePathInvalid = errors.New("signature: merkle co-path does not reconstruct the public root")
)

// Params bundles everything needed to generate keys, sign and verify: the
// encoding scheme, the tweakable hash used for chain-walking and Merkle
// compression, the PRF used to derive chain secrets, and the tree shape.
type Params struct {
	// NumLeaves is the number of one-time key pairs aggregated under the
	// public root, i.e. the number of epochs this key can sign for.
	// Must be a power of two.
	NumLeaves uint32

	// Base is the Winternitz base (w); each chain has Base steps
	// (0..Base-1).
	Base int

	PRF    prf.Pseudorandom
	Hash   tweakhash.TweakableHash
	Encode func(mh messagehash.MessageHash) (encoding.Encoding, error)

	MessageHash messagehash.MessageHash
}

// TreeHeight returns log2(NumLeaves).
func (p Params) TreeHeight() int {
	h := 0
	for n := p.NumLeaves; n > 1; n >>= 1 {
		h++
	}
	return h
}

// newEncoding builds the configured Encoding instance from p's MessageHash.
func (p Params) newEncoding() (encoding.Encoding, error) {
	if p.Encode == nil {
		return nil, fmt.Errorf("signature: params has no Encode constructor")
	}
	return p.Encode(p.MessageHash)
}

// Validate checks internal consistency: NumLeaves a power of two, a sane
// base, and that the configured encoding can actually be constructed. All
// violated checks are collected rather than returning on the first one, so
// a misconfigured Params reports every problem in a single error.
func (p Params) Validate() error {
	var result *multierror.Error
	if p.NumLeaves == 0 || p.NumLeaves&(p.NumLeaves-1) != 0 {
		result = multierror.Append(result, fmt.Errorf("signature: NumLeaves=%d must be a power of two", p.NumLeaves))
	}
	if p.Base < 2 {
		result = multierror.Append(result, fmt.Errorf("signature: Base=%d must be >= 2", p.Base))
	}
	if p.PRF == nil {
		result = multierror.Append(result, errors.New("signature: PRF must be set"))
	}
	if p.Hash == nil {
		result = multierror.Append(result, errors.New("signature: Hash must be set"))
	}
	if p.MessageHash == nil {
		result = multierror.Append(result, errors.New("signature: MessageHash must be set"))
	} else if _, err := p.newEncoding(); err != nil {
		result = multierror.Append(result, fmt.Errorf("signature: invalid encoding configuration: %w", err))
	}
	return result.ErrorOrNil()
}
