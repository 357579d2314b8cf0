package signature

import (
	"bytes"
	"fmt"

	"github.com/drand/hashsig/symmetric/tweakhash"
)

// merkleTree aggregates the NumLeaves one-time public keys into a single
// root public key: a binary hash tree whose internal nodes are tweaked
// compressions of their two children, domain-separated from chain-hash
// applications by the tree-hash tag.
type merkleTree struct {
	levels [][][]byte // levels[0] = leaves, levels[height] = [root]
}

// buildMerkleTree compresses leafHashes (one per one-time key) into a
// binary tree using th, tweaking every internal node with (level, index).
// len(leafHashes) must be a power of two.
func buildMerkleTree(th tweakhash.TweakableHash, parameter []byte, leafHashes [][]byte) (*merkleTree, error) {
	n := len(leafHashes)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("signature: merkle tree needs a power-of-two leaf count, got %d", n)
	}

	levels := make([][][]byte, 0)
	levels = append(levels, leafHashes)
	level := uint16(0)
	for len(levels[len(levels)-1]) > 1 {
		cur := levels[len(levels)-1]
		next := make([][]byte, len(cur)/2)
		for i := 0; i < len(next); i++ {
			tweak := tweakhash.TreeTweak(level, uint32(i))
			next[i] = th.Apply(parameter, tweak, cur[2*i], cur[2*i+1])
		}
		levels = append(levels, next)
		level++
	}
	return &merkleTree{levels: levels}, nil
}

// Root returns the aggregated public key.
func (t *merkleTree) Root() []byte {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Path returns the authentication co-path for leafIndex, bottom-up: one
// sibling hash per tree level.
func (t *merkleTree) Path(leafIndex uint32) [][]byte {
	path := make([][]byte, 0, len(t.levels)-1)
	idx := leafIndex
	for level := 0; level < len(t.levels)-1; level++ {
		siblingIdx := idx ^ 1
		path = append(path, t.levels[level][siblingIdx])
		idx /= 2
	}
	return path
}

// verifyMerklePath recomputes the root from leafHash, leafIndex and its
// co-path, and reports whether it matches root.
func verifyMerklePath(th tweakhash.TweakableHash, parameter []byte, leafIndex uint32, leafHash []byte, path [][]byte, root []byte) bool {
	current := leafHash
	idx := leafIndex
	for level, sibling := range path {
		var left, right []byte
		if idx%2 == 0 {
			left, right = current, sibling
		} else {
			left, right = sibling, current
		}
		tweak := tweakhash.TreeTweak(uint16(level), idx/2)
		current = th.Apply(parameter, tweak, left, right)
		idx /= 2
	}
	return bytes.Equal(current, root)
}
