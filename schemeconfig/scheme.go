// Package schemeconfig names and loads concrete scheme configurations: a
// choice of base, dimension, target layer (or checksum length), hash
// family and tree size, the way the teacher's common/scheme package names
// a fixed set of beacon schemes by ID.
package schemeconfig

import (
	"fmt"
	"os"

	"github.com/drand/hashsig/encoding"
	"github.com/drand/hashsig/signature"
	"github.com/drand/hashsig/symmetric/messagehash"
	"github.com/drand/hashsig/symmetric/prf"
	"github.com/drand/hashsig/symmetric/tweakhash"
)

// DefaultSchemeID is the scheme used when none is specified.
const DefaultSchemeID = "sha3-w4-targetsum"

// HashFamily selects which concrete hash/PRF implementations back a
// scheme: classical SHA-2/SHA-3 byte hashing, or the Poseidon2
// arithmetization-friendly permutation.
type HashFamily string

const (
	HashFamilySHA2     HashFamily = "sha2"
	HashFamilySHA3     HashFamily = "sha3"
	HashFamilyPoseidon HashFamily = "poseidon2"
)

// Variant selects the Winternitz encoding: plain digest-plus-checksum, or
// rejection-sampled target-sum.
type Variant string

const (
	VariantBasic     Variant = "basic"
	VariantTargetSum Variant = "targetsum"
)

// Scheme names one fixed, reproducible choice of every parameter the
// signature driver needs.
type Scheme struct {
	ID         string
	HashFamily HashFamily
	Variant    Variant

	Base          int // w
	Dimension     int // v
	ChecksumLen   int // c, basic variant only
	TargetLayer   int // d, target-sum variant only
	MaxTries      int // target-sum variant only
	ChunkSize     int
	RandomnessLen int
	ParameterLen  int
	OutputLen     int
	NumLeaves     uint32
}

var schemes = []Scheme{
	{
		ID: "sha3-w4-targetsum", HashFamily: HashFamilySHA3, Variant: VariantTargetSum,
		Base: 4, Dimension: 16, TargetLayer: 24, MaxTries: 100_000,
		ChunkSize: 2, RandomnessLen: 32, ParameterLen: 16, OutputLen: 24, NumLeaves: 1024,
	},
	{
		ID: "sha2-w16-basic", HashFamily: HashFamilySHA2, Variant: VariantBasic,
		Base: 16, Dimension: 64, ChecksumLen: 3,
		ChunkSize: 4, RandomnessLen: 32, ParameterLen: 16, OutputLen: 24, NumLeaves: 1024,
	},
	{
		ID: "poseidon2-w4-targetsum", HashFamily: HashFamilyPoseidon, Variant: VariantTargetSum,
		Base: 4, Dimension: 16, TargetLayer: 24, MaxTries: 100_000,
		ChunkSize: 2, RandomnessLen: 32, ParameterLen: 16, OutputLen: 24, NumLeaves: 1024,
	},
}

// GetSchemeByID retrieves a named scheme, reporting whether it was found.
func GetSchemeByID(id string) (Scheme, bool) {
	for _, s := range schemes {
		if s.ID == id {
			return s, true
		}
	}
	return Scheme{}, false
}

// GetSchemeByIDWithDefault is GetSchemeByID, falling back to
// DefaultSchemeID when id is empty, and returning an error when the
// (possibly defaulted) ID is unknown.
func GetSchemeByIDWithDefault(id string) (Scheme, error) {
	if id == "" {
		id = DefaultSchemeID
	}
	s, ok := GetSchemeByID(id)
	if !ok {
		return Scheme{}, fmt.Errorf("schemeconfig: unknown scheme id %q", id)
	}
	return s, nil
}

// ListSchemes returns every known scheme ID.
func ListSchemes() []string {
	ids := make([]string, len(schemes))
	for i, s := range schemes {
		ids[i] = s.ID
	}
	return ids
}

// ReadSchemeByEnv looks up the scheme named by the HASHSIG_SCHEME_ID
// environment variable, defaulting to DefaultSchemeID when unset.
func ReadSchemeByEnv() (Scheme, error) {
	id := os.Getenv("HASHSIG_SCHEME_ID")
	return GetSchemeByIDWithDefault(id)
}

// Params builds the concrete signature.Params this scheme describes.
func (s Scheme) Params() (signature.Params, error) {
	mh, err := s.messageHash()
	if err != nil {
		return signature.Params{}, err
	}
	th, err := s.tweakableHash()
	if err != nil {
		return signature.Params{}, err
	}
	p, err := s.prf()
	if err != nil {
		return signature.Params{}, err
	}

	variant := s.Variant
	base, dim, checksumLen, targetLayer, maxTries := s.Base, s.Dimension, s.ChecksumLen, s.TargetLayer, s.MaxTries

	return signature.Params{
		NumLeaves: s.NumLeaves,
		Base:      base,
		PRF:       p,
		Hash:      th,
		Encode: func(mh messagehash.MessageHash) (encoding.Encoding, error) {
			switch variant {
			case VariantBasic:
				return encoding.NewBasicWinternitz(base, dim, checksumLen, mh)
			case VariantTargetSum:
				return encoding.NewTargetSumWinternitz(base, dim, targetLayer, maxTries, mh)
			default:
				return nil, fmt.Errorf("schemeconfig: unknown variant %q", variant)
			}
		},
		MessageHash: mh,
	}, nil
}

func (s Scheme) messageHash() (messagehash.MessageHash, error) {
	switch s.HashFamily {
	case HashFamilySHA2:
		return messagehash.NewSHA2MessageHash(s.Dimension, s.ChunkSize, s.RandomnessLen), nil
	case HashFamilySHA3:
		return messagehash.NewSHA3MessageHash(s.Dimension, s.ChunkSize, s.RandomnessLen), nil
	case HashFamilyPoseidon:
		return messagehash.NewPoseidon2MessageHash(s.Dimension, s.ChunkSize, s.RandomnessLen), nil
	default:
		return nil, fmt.Errorf("schemeconfig: unknown hash family %q", s.HashFamily)
	}
}

func (s Scheme) tweakableHash() (tweakhash.TweakableHash, error) {
	switch s.HashFamily {
	case HashFamilySHA2:
		return tweakhash.NewSHA2Hash(s.ParameterLen, s.OutputLen), nil
	case HashFamilySHA3:
		return tweakhash.NewSHA3Hash(s.ParameterLen, s.OutputLen), nil
	case HashFamilyPoseidon:
		return tweakhash.NewPoseidon2Hash(s.ParameterLen, s.OutputLen), nil
	default:
		return nil, fmt.Errorf("schemeconfig: unknown hash family %q", s.HashFamily)
	}
}

func (s Scheme) prf() (prf.Pseudorandom, error) {
	switch s.HashFamily {
	case HashFamilySHA2:
		return prf.NewSHA2PRF(s.RandomnessLen), nil
	case HashFamilySHA3, HashFamilyPoseidon:
		return prf.NewSHA3PRF(s.RandomnessLen), nil
	default:
		return nil, fmt.Errorf("schemeconfig: unknown hash family %q", s.HashFamily)
	}
}
