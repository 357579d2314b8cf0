package encoding

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/hashsig/symmetric/messagehash"
)

// TestTargetSumInvariant is property 6: every codeword produced sums to
// v(w-1) - d.
func TestTargetSumInvariant(t *testing.T) {
	w, v, d := 4, 16, 24
	mh := messagehash.NewSHA3MessageHash(v, 2, 32)
	enc, err := NewTargetSumWinternitz(w, v, d, 100_000, mh)
	require.NoError(t, err)
	require.Equal(t, v*(w-1)-d, enc.TargetSum())

	parameter := bytes.Repeat([]byte{0x3}, 16)
	var message [messagehash.MessageLength]byte
	copy(message[:], "another fixed test message value")

	for trial := 0; trial < 20; trial++ {
		_, codeword, err := EncodeWithRetry(enc, rand.Reader, parameter, message, uint32(trial))
		require.NoError(t, err)

		sum := 0
		for _, c := range codeword {
			sum += int(c)
		}
		require.Equal(t, enc.TargetSum(), sum)
	}
}

func TestTargetSumRejectsUndersizedDigestBudget(t *testing.T) {
	// 40 one-bit chunks give a 40-bit digest space, too small to cover
	// w^v = 4^40 = 2^80 without biased or incomplete sampling.
	mh := messagehash.NewSHA3MessageHash(40, 1, 32)
	_, err := NewTargetSumWinternitz(4, 40, 20, 10, mh)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

// TestTargetSumHandlesWideDigestBudget is scenario S5: w=4, v=64, d=96
// requires cap = w^v = 4^64 = 2^128, a digest width no 64-bit integer
// could hold. The big.Int-based implementation must accept it.
func TestTargetSumHandlesWideDigestBudget(t *testing.T) {
	w, v, d := 4, 64, 96
	mh := messagehash.NewSHA3MessageHash(v, 2, 32)
	enc, err := NewTargetSumWinternitz(w, v, d, 1_000_000, mh)
	require.NoError(t, err)
	require.Equal(t, v*(w-1)-d, enc.TargetSum())

	parameter := bytes.Repeat([]byte{0x7}, 16)
	var message [messagehash.MessageLength]byte
	copy(message[:], "a wide-digest target-sum test message")

	_, codeword, err := EncodeWithRetry(enc, rand.Reader, parameter, message, 0)
	require.NoError(t, err)
	require.Len(t, codeword, v)

	sum := 0
	for _, c := range codeword {
		sum += int(c)
	}
	require.Equal(t, enc.TargetSum(), sum)
}

func TestTargetSumRejectsOutOfRangeLayer(t *testing.T) {
	mh := messagehash.NewSHA3MessageHash(16, 2, 32)
	_, err := NewTargetSumWinternitz(4, 16, 100, 10, mh)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestTargetSumSingleAttemptCanFail(t *testing.T) {
	w, v, d := 4, 16, 24
	mh := messagehash.NewSHA3MessageHash(v, 2, 32)
	enc, err := NewTargetSumWinternitz(w, v, d, 1, mh)
	require.NoError(t, err)

	parameter := bytes.Repeat([]byte{0x3}, 16)
	var message [messagehash.MessageLength]byte

	sawSuccess, sawFailure := false, false
	for attempt := 0; attempt < 500 && !(sawSuccess && sawFailure); attempt++ {
		randomness, err := enc.Rand(rand.Reader)
		require.NoError(t, err)
		_, err = enc.Encode(parameter, message, randomness, uint32(attempt))
		if err == nil {
			sawSuccess = true
		} else {
			require.ErrorIs(t, err, ErrEncodingExhausted)
			sawFailure = true
		}
	}
	require.True(t, sawFailure, "a single rejection-sampling attempt should sometimes miss its target layer")
}
