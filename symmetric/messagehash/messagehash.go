// Package messagehash implements the MessageHash capability the encodings
// depend on: it maps a message together with per-signature randomness and
// an epoch to a fixed-size digest, viewed as NumChunks integers each below
// 2^ChunkSize.
package messagehash

import (
	"fmt"
	"io"
)

// MessageLength is the fixed length, in bytes, of messages accepted by
// every MessageHash implementation.
const MessageLength = 32

// TweakSeparator is the domain separator byte mixed into every message-hash
// tweak, distinguishing it from chain-hash (0x00) and tree-hash (0x01) uses.
const TweakSeparator = 0x02

// MessageHash maps (parameter, epoch, randomness, message) to a chunked
// digest consumed by the Winternitz encodings.
type MessageHash interface {
	// NumChunks is the number of chunks the digest is split into.
	NumChunks() int
	// ChunkSize is the number of bits per chunk; one of 1, 2, 4, 8.
	ChunkSize() int
	// RandomnessLen is the byte length of a Randomness value.
	RandomnessLen() int
	// Rand draws fresh per-signature randomness.
	Rand(rng io.Reader) ([]byte, error)
	// Apply returns NumChunks() bytes, each below 2^ChunkSize().
	Apply(parameter []byte, epoch uint32, randomness []byte, message [MessageLength]byte) ([]byte, error)
}

// CheckConsistency verifies that ChunkSize is one of the supported widths
// and that NumChunks and RandomnessLen are positive. It does not compare
// NumChunks()*ChunkSize() against the bit-width of the underlying hash
// output. Intended for use in tests.
func CheckConsistency(h MessageHash) error {
	switch h.ChunkSize() {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("messagehash: unsupported chunk size %d", h.ChunkSize())
	}
	if h.NumChunks() <= 0 {
		return fmt.Errorf("messagehash: NumChunks must be positive, got %d", h.NumChunks())
	}
	if h.RandomnessLen() <= 0 {
		return fmt.Errorf("messagehash: RandomnessLen must be positive, got %d", h.RandomnessLen())
	}
	return nil
}
