package messagehash

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
)

// SHA2MessageHash is the SHA-256 sibling of SHA3MessageHash.
type SHA2MessageHash struct {
	numChunks     int
	chunkSize     int
	randomnessLen int
}

// NewSHA2MessageHash returns a SHA-256 based MessageHash producing
// numChunks chunks of chunkSize bits each (1, 2, 4 or 8), using
// randomnessLen bytes of per-signature randomness.
func NewSHA2MessageHash(numChunks, chunkSize, randomnessLen int) *SHA2MessageHash {
	switch chunkSize {
	case 1, 2, 4, 8:
	default:
		panic("messagehash: chunkSize must be 1, 2, 4 or 8")
	}
	return &SHA2MessageHash{numChunks: numChunks, chunkSize: chunkSize, randomnessLen: randomnessLen}
}

func (h *SHA2MessageHash) NumChunks() int     { return h.numChunks }
func (h *SHA2MessageHash) ChunkSize() int     { return h.chunkSize }
func (h *SHA2MessageHash) RandomnessLen() int { return h.randomnessLen }

func (h *SHA2MessageHash) Rand(rng io.Reader) ([]byte, error) {
	r := make([]byte, h.randomnessLen)
	if _, err := io.ReadFull(rng, r); err != nil {
		return nil, fmt.Errorf("messagehash: drawing randomness: %w", err)
	}
	return r, nil
}

func (h *SHA2MessageHash) Apply(parameter []byte, epoch uint32, randomness []byte, message [MessageLength]byte) ([]byte, error) {
	d := sha256.New()
	d.Write(parameter)
	var tweak [5]byte
	tweak[0] = TweakSeparator
	binary.BigEndian.PutUint32(tweak[1:], epoch)
	d.Write(tweak[:])
	d.Write(randomness)
	d.Write(message[:])
	digest := d.Sum(nil)
	return splitIntoChunks(digest, h.numChunks, h.chunkSize), nil
}
