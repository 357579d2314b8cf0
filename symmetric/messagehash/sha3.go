package messagehash

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// SHA3MessageHash derives its digest from SHA3-256 over parameter, a
// domain-separated epoch tweak, randomness and the message, then splits
// the resulting bytes into fixed-width chunks.
type SHA3MessageHash struct {
	numChunks     int
	chunkSize     int
	randomnessLen int
}

// NewSHA3MessageHash returns a SHA3-based MessageHash producing numChunks
// chunks of chunkSize bits each (chunkSize must be 1, 2, 4 or 8), using
// randomnessLen bytes of per-signature randomness.
func NewSHA3MessageHash(numChunks, chunkSize, randomnessLen int) *SHA3MessageHash {
	switch chunkSize {
	case 1, 2, 4, 8:
	default:
		panic("messagehash: chunkSize must be 1, 2, 4 or 8")
	}
	return &SHA3MessageHash{numChunks: numChunks, chunkSize: chunkSize, randomnessLen: randomnessLen}
}

func (h *SHA3MessageHash) NumChunks() int     { return h.numChunks }
func (h *SHA3MessageHash) ChunkSize() int     { return h.chunkSize }
func (h *SHA3MessageHash) RandomnessLen() int { return h.randomnessLen }

func (h *SHA3MessageHash) Rand(rng io.Reader) ([]byte, error) {
	r := make([]byte, h.randomnessLen)
	if _, err := io.ReadFull(rng, r); err != nil {
		return nil, fmt.Errorf("messagehash: drawing randomness: %w", err)
	}
	return r, nil
}

func (h *SHA3MessageHash) Apply(parameter []byte, epoch uint32, randomness []byte, message [MessageLength]byte) ([]byte, error) {
	d := sha3.New256()
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

// splitIntoChunks reads digest as a big-endian bit string and writes its
// leading numChunks*chunkSize bits, chunkSize bits per byte, into numChunks
// bytes. A digest shorter than that is left-padded with zero bytes first.
func splitIntoChunks(digest []byte, numChunks, chunkSize int) []byte {
	needBits := numChunks * chunkSize
	needBytes := (needBits + 7) / 8
	if len(digest) < needBytes {
		padded := make([]byte, needBytes)
		copy(padded[needBytes-len(digest):], digest)
		digest = padded
	}

	out := make([]byte, numChunks)
	bitPos := 0
	totalBits := len(digest) * 8
	for i := 0; i < numChunks; i++ {
		var v uint16
		for b := 0; b < chunkSize; b++ {
			v <<= 1
			pos := bitPos + b
			if pos < totalBits {
				byteIdx := pos / 8
				bitIdx := 7 - uint(pos%8)
				bit := (digest[byteIdx] >> bitIdx) & 1
				v |= uint16(bit)
			}
		}
		out[i] = byte(v)
		bitPos += chunkSize
	}
	return out
}
