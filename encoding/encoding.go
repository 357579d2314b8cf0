// Package encoding implements the incomparable-encoding layer: it turns a
// message into a codeword no two distinct encodings of which can dominate
// one another coordinate-wise, the property the Winternitz chain-walking
// signature scheme depends on for its one-wayness argument.
package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/drand/hashsig/symmetric/messagehash"
)

// ErrEncodingExhausted is returned by EncodeWithRetry once it has drawn
// MaxTries() worth of randomness without landing in the target layer. A
// single target-sum Encode attempt that misses its layer also wraps it.
var ErrEncodingExhausted = errors.New("encoding: rejection sampling exhausted its attempt budget")

// ErrInvalidDimension mirrors the layer engine's precondition-violation
// error for callers that construct an encoding with bad parameters.
var ErrInvalidDimension = errors.New("encoding: invalid dimension or base")

// Encoding is the uniform surface both Winternitz variants expose to the
// signature driver.
type Encoding interface {
	// Dimension is the codeword length (DIM).
	Dimension() int
	// Base is the exclusive upper bound on each codeword entry (BASE).
	Base() int
	// MaxTries bounds the number of internal rejection-sampling attempts;
	// 1 for the basic (non-rejecting) variant.
	MaxTries() int
	// Rand draws fresh per-signature randomness.
	Rand(rng io.Reader) ([]byte, error)
	// Encode attempts to turn message into a codeword using the supplied
	// randomness and epoch. The basic variant always succeeds; the
	// target-sum variant fails with ErrEncodingExhausted-wrapped detail
	// unless randomness happens to land in the target layer, leaving the
	// retry loop to the caller (see EncodeWithRetry).
	Encode(parameter []byte, message [messagehash.MessageLength]byte, randomness []byte, epoch uint32) ([]uint16, error)
}

// EncodeWithRetry drives Encode's rejection-sampling loop up to
// e.MaxTries() times, drawing fresh randomness from rng on every attempt,
// and returns the first successful (randomness, codeword) pair.
func EncodeWithRetry(e Encoding, rng io.Reader, parameter []byte, message [messagehash.MessageLength]byte, epoch uint32) ([]byte, []uint16, error) {
	var lastErr error
	for attempt := 0; attempt < e.MaxTries(); attempt++ {
		randomness, err := e.Rand(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding: drawing randomness: %w", err)
		}
		codeword, err := e.Encode(parameter, message, randomness, epoch)
		if err == nil {
			return randomness, codeword, nil
		}
		lastErr = err
	}
	return nil, nil, fmt.Errorf("%w: %v", ErrEncodingExhausted, lastErr)
}
