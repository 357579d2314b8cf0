package encoding

import (
	"fmt"
	"io"

	"github.com/drand/hashsig/symmetric/messagehash"
)

// BasicWinternitz is the deterministic, non-rejecting encoding: a message
// digest split into v chunks, plus a checksum of c chunks that makes the
// whole codeword incomparable across distinct messages.
type BasicWinternitz struct {
	w, v, c int
	hash    messagehash.MessageHash
}

// NewBasicWinternitz builds a basic Winternitz encoding over base w with v
// message chunks and c checksum chunks, backed by hash. c must satisfy
// w^c > (w-1)*v so the checksum never overflows its digit budget.
func NewBasicWinternitz(w, v, c int, hash messagehash.MessageHash) (*BasicWinternitz, error) {
	if w < 2 || v < 1 || c < 1 {
		return nil, fmt.Errorf("%w: w=%d v=%d c=%d", ErrInvalidDimension, w, v, c)
	}
	if hash.NumChunks() != v {
		return nil, fmt.Errorf("%w: message hash produces %d chunks, encoding needs %d", ErrInvalidDimension, hash.NumChunks(), v)
	}
	maxChecksum := (w - 1) * v
	capacity := 1
	for i := 0; i < c; i++ {
		capacity *= w
	}
	if capacity <= maxChecksum {
		return nil, fmt.Errorf("%w: checksum capacity w^c=%d too small for max checksum %d", ErrInvalidDimension, capacity, maxChecksum)
	}
	return &BasicWinternitz{w: w, v: v, c: c, hash: hash}, nil
}

func (e *BasicWinternitz) Dimension() int { return e.v + e.c }
func (e *BasicWinternitz) Base() int      { return e.w }
func (e *BasicWinternitz) MaxTries() int  { return 1 }

func (e *BasicWinternitz) Rand(rng io.Reader) ([]byte, error) {
	return e.hash.Rand(rng)
}

func (e *BasicWinternitz) Encode(parameter []byte, message [messagehash.MessageLength]byte, randomness []byte, epoch uint32) ([]uint16, error) {
	digest, err := e.hash.Apply(parameter, epoch, randomness, message)
	if err != nil {
		return nil, fmt.Errorf("encoding: message hash: %w", err)
	}
	if len(digest) != e.v {
		return nil, fmt.Errorf("encoding: message hash returned %d chunks, want %d", len(digest), e.v)
	}

	codeword := make([]uint16, e.v+e.c)
	checksum := 0
	for i, m := range digest {
		codeword[i] = uint16(m)
		checksum += (e.w - 1) - int(m)
	}

	for i := 0; i < e.c; i++ {
		codeword[e.v+i] = uint16(checksum % e.w)
		checksum /= e.w
	}
	return codeword, nil
}
