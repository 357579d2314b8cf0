package tweakhash

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testTweakableHash(t *testing.T, h TweakableHash) {
	t.Helper()

	parameter := bytes.Repeat([]byte{0x42}, h.ParameterLen())
	msgA := []byte("message-a")
	msgB := []byte("message-b")

	out1 := h.Apply(parameter, ChainTweak(0, 0, 1), msgA)
	require.Len(t, out1, h.OutputLen())

	out2 := h.Apply(parameter, ChainTweak(0, 0, 1), msgA)
	require.Equal(t, out1, out2, "Apply must be deterministic")

	out3 := h.Apply(parameter, ChainTweak(0, 0, 2), msgA)
	require.NotEqual(t, out1, out3, "different tweak step must change output")

	out4 := h.Apply(parameter, ChainTweak(0, 0, 1), msgB)
	require.NotEqual(t, out1, out4, "different message must change output")

	out5 := h.Apply(parameter, TreeTweak(0, 0), msgA)
	require.NotEqual(t, out1, out5, "chain and tree tweaks must not collide")

	left, right := []byte("left-child"), []byte("right-child")
	node := h.Apply(parameter, TreeTweak(0, 0), left, right)
	require.Len(t, node, h.OutputLen())
}

func TestSHA3Hash(t *testing.T) {
	testTweakableHash(t, NewSHA3Hash(16, 24))
}

func TestSHA2Hash(t *testing.T) {
	testTweakableHash(t, NewSHA2Hash(16, 24))
}

func TestPoseidon2Hash(t *testing.T) {
	testTweakableHash(t, NewPoseidon2Hash(16, 24))
}

func TestTweakBytesDomainSeparatesChainAndTree(t *testing.T) {
	chain := ChainTweak(1, 2, 3)
	tree := TreeTweak(2, 1)
	require.NotEqual(t, chain.Bytes(), tree.Bytes())
	require.Equal(t, SeparatorChainHash, chain.Bytes()[0])
	require.Equal(t, SeparatorTreeHash, tree.Bytes()[0])
}

func TestOTSTweakDoesNotCollideWithTreeLevels(t *testing.T) {
	ots := OTSTweak(5)
	tree := TreeTweak(0, 5)
	require.NotEqual(t, ots.Bytes(), tree.Bytes())
}
