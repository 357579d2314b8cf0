package signature

import (
	"fmt"
	"io"

	"github.com/drand/hashsig/symmetric/prf"
	"github.com/drand/hashsig/symmetric/tweakhash"
)

// GenerateKeyPair samples a fresh parameter and PRF seed, derives every
// leaf's chain secrets, walks each chain to its endpoint, compresses each
// leaf's endpoints into a one-time public key, and Merkle-aggregates the
// NumLeaves one-time public keys into the returned root.
func GenerateKeyPair(rng io.Reader, params Params) (*PublicKey, *SecretKey, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	enc, err := params.newEncoding()
	if err != nil {
		return nil, nil, err
	}
	dim := enc.Dimension()

	parameter := make([]byte, params.Hash.ParameterLen())
	if _, err := io.ReadFull(rng, parameter); err != nil {
		return nil, nil, fmt.Errorf("signature: sampling parameter: %w", err)
	}

	seed, err := params.PRF.Gen(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("signature: sampling PRF seed: %w", err)
	}

	leafHashes := make([][]byte, params.NumLeaves)
	for leaf := uint32(0); leaf < params.NumLeaves; leaf++ {
		endpoints := walkAllChains(params, parameter, seed, leaf, dim, 0, params.Base-1)
		leafHashes[leaf] = compressLeaf(params.Hash, parameter, leaf, endpoints)
	}

	tree, err := buildMerkleTree(params.Hash, parameter, leafHashes)
	if err != nil {
		return nil, nil, fmt.Errorf("signature: aggregating public key: %w", err)
	}

	pk := &PublicKey{Root: tree.Root(), Parameter: parameter, Params: params}
	sk := &SecretKey{Seed: seed, Parameter: parameter, Params: params, LeafHashes: leafHashes}
	return pk, sk, nil
}

// RebuildLeafHashes recomputes sk.LeafHashes from its seed and parameter,
// needed after loading a SecretKey from TOML (which does not persist the
// cache).
func RebuildLeafHashes(sk *SecretKey) error {
	enc, err := sk.Params.newEncoding()
	if err != nil {
		return err
	}
	dim := enc.Dimension()
	sk.LeafHashes = make([][]byte, sk.Params.NumLeaves)
	for leaf := uint32(0); leaf < sk.Params.NumLeaves; leaf++ {
		endpoints := walkAllChains(sk.Params, sk.Parameter, sk.Seed, leaf, dim, 0, sk.Params.Base-1)
		sk.LeafHashes[leaf] = compressLeaf(sk.Params.Hash, sk.Parameter, leaf, endpoints)
	}
	return nil
}

// walkAllChains derives leaf's dim chain-start secrets from seed via the
// configured PRF, then walks each chain fromStep steps onward, steps
// further, returning one value per chain.
func walkAllChains(params Params, parameter []byte, seed [prf.KeyLength]byte, leaf uint32, dim, fromStep, steps int) [][]byte {
	out := make([][]byte, dim)
	for i := 0; i < dim; i++ {
		start := params.PRF.Apply(seed, leaf, uint64(i))
		out[i] = walkChain(params.Hash, parameter, leaf, uint16(i), start, fromStep, steps)
	}
	return out
}

// compressLeaf folds leaf's chain endpoints into its one-time public key
// hash.
func compressLeaf(th tweakhash.TweakableHash, parameter []byte, leaf uint32, endpoints [][]byte) []byte {
	return th.Apply(parameter, tweakhash.OTSTweak(leaf), endpoints...)
}
