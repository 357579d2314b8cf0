package prf

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPRF(t *testing.T, p Pseudorandom) {
	t.Helper()

	key, err := p.Gen(rand.Reader)
	require.NoError(t, err)

	out1 := p.Apply(key, 0, 0)
	out2 := p.Apply(key, 0, 0)
	require.Equal(t, out1, out2, "Apply must be deterministic")

	out3 := p.Apply(key, 0, 1)
	require.False(t, bytes.Equal(out1, out3), "different index must change output")

	out4 := p.Apply(key, 1, 0)
	require.False(t, bytes.Equal(out1, out4), "different epoch must change output")

	key2, err := p.Gen(rand.Reader)
	require.NoError(t, err)
	out5 := p.Apply(key2, 0, 0)
	require.False(t, bytes.Equal(out1, out5), "different key must change output")
}

func TestSHA3PRF(t *testing.T) {
	testPRF(t, NewSHA3PRF(24))
}

func TestSHA2PRF(t *testing.T) {
	testPRF(t, NewSHA2PRF(24))
}

func TestNewSHA3PRFRejectsBadLength(t *testing.T) {
	require.Panics(t, func() { NewSHA3PRF(0) })
	require.Panics(t, func() { NewSHA3PRF(33) })
}
