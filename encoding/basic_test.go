package encoding

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/hashsig/symmetric/messagehash"
)

func dominates(a, b []uint16) bool {
	allGE, anyGT := true, false
	for i := range a {
		if a[i] < b[i] {
			allGE = false
		}
		if a[i] > b[i] {
			anyGT = true
		}
	}
	return allGE && anyGT
}

func incomparable(a, b []uint16) bool {
	return !dominates(a, b) && !dominates(b, a)
}

// TestBasicWinternitzIncomparability is scenario S4 and property 5, with
// c=4 checksum chunks: the maximum checksum (w-1)*v = 192 needs 4 base-4
// digits (4^3 = 64 is too small).
func TestBasicWinternitzIncomparability(t *testing.T) {
	mh := messagehash.NewSHA3MessageHash(64, 2, 32)
	enc, err := NewBasicWinternitz(4, 64, 4, mh)
	require.NoError(t, err)
	require.Equal(t, 68, enc.Dimension())

	parameter := bytes.Repeat([]byte{0x1}, 16)

	for trial := 0; trial < 200; trial++ {
		var m1, m2 [messagehash.MessageLength]byte
		_, err := rand.Read(m1[:])
		require.NoError(t, err)
		m2 = m1
		m2[0] ^= 0xFF

		r1, err := enc.Rand(rand.Reader)
		require.NoError(t, err)
		r2, err := enc.Rand(rand.Reader)
		require.NoError(t, err)

		cw1, err := enc.Encode(parameter, m1, r1, 0)
		require.NoError(t, err)
		cw2, err := enc.Encode(parameter, m2, r2, 0)
		require.NoError(t, err)

		if !bytes.Equal(toBytes(cw1), toBytes(cw2)) {
			require.True(t, incomparable(cw1, cw2), "codewords must be incomparable")
		}
	}
}

func toBytes(cw []uint16) []byte {
	b := make([]byte, len(cw))
	for i, v := range cw {
		b[i] = byte(v)
	}
	return b
}

func TestBasicWinternitzRejectsUndersizedChecksum(t *testing.T) {
	mh := messagehash.NewSHA3MessageHash(8, 2, 32)
	_, err := NewBasicWinternitz(4, 8, 1, mh)
	require.ErrorIs(t, err, ErrInvalidDimension)
}
