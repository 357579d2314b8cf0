package signature

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/drand/hashsig/symmetric/prf"
)

// SecretKey holds everything needed to sign under one public key: the PRF
// seed every chain secret is derived from, and the public parameter shared
// by every tweakable-hash invocation.
type SecretKey struct {
	Seed      [prf.KeyLength]byte
	Parameter []byte
	Params    Params

	// LeafHashes caches every leaf's one-time public key hash so Sign can
	// build a Merkle co-path without re-deriving and re-walking every
	// other leaf's chains. It is fully determined by Seed and Parameter,
	// so it is recomputed rather than persisted across TOML round trips.
	LeafHashes [][]byte
}

// PublicKey is the Merkle root aggregating every leaf's one-time public
// key, plus the parameter and scheme parameters needed to verify against
// it.
type PublicKey struct {
	Root      []byte
	Parameter []byte
	Params    Params
}

// Signature reveals one intermediate chain value per codeword dimension,
// plus the Merkle co-path proving the corresponding leaf is part of the
// public key this signature verifies against.
type Signature struct {
	Epoch      uint32
	Randomness []byte
	Codeword   []uint16
	Revealed   [][]byte
	MerklePath [][]byte
}

// secretKeyTOML is the TOML-marshalled shape of a SecretKey: binary fields
// hex-encoded, mirroring the teacher's PairTOML/PublicTOML convention of a
// hex-string shadow struct for on-disk key material.
type secretKeyTOML struct {
	Seed      string
	Parameter string
	Base      int
	NumLeaves uint32
}

// TOML returns sk's TOML-compatible representation, ready to be written by
// a TOML encoder.
func (sk *SecretKey) TOML() interface{} {
	return &secretKeyTOML{
		Seed:      hex.EncodeToString(sk.Seed[:]),
		Parameter: hex.EncodeToString(sk.Parameter),
		Base:      sk.Params.Base,
		NumLeaves: sk.Params.NumLeaves,
	}
}

// FromTOML populates sk from a decoded secretKeyTOML value.
func (sk *SecretKey) FromTOML(i interface{}) error {
	t, ok := i.(*secretKeyTOML)
	if !ok {
		return errors.New("signature: secret key can't decode from non secretKeyTOML struct")
	}
	seed, err := hex.DecodeString(t.Seed)
	if err != nil {
		return err
	}
	if len(seed) != prf.KeyLength {
		return errors.New("signature: decoded seed has the wrong length")
	}
	copy(sk.Seed[:], seed)
	sk.Parameter, err = hex.DecodeString(t.Parameter)
	if err != nil {
		return err
	}
	sk.Params.Base = t.Base
	sk.Params.NumLeaves = t.NumLeaves
	return nil
}

type publicKeyTOML struct {
	Root      string
	Parameter string
	Base      int
	NumLeaves uint32
}

// TOML returns pk's TOML-compatible representation.
func (pk *PublicKey) TOML() interface{} {
	return &publicKeyTOML{
		Root:      hex.EncodeToString(pk.Root),
		Parameter: hex.EncodeToString(pk.Parameter),
		Base:      pk.Params.Base,
		NumLeaves: pk.Params.NumLeaves,
	}
}

// FromTOML populates pk from a decoded publicKeyTOML value.
func (pk *PublicKey) FromTOML(i interface{}) error {
	t, ok := i.(*publicKeyTOML)
	if !ok {
		return errors.New("signature: public key can't decode from non publicKeyTOML struct")
	}
	var err error
	pk.Root, err = hex.DecodeString(t.Root)
	if err != nil {
		return err
	}
	pk.Parameter, err = hex.DecodeString(t.Parameter)
	if err != nil {
		return err
	}
	pk.Params.Base = t.Base
	pk.Params.NumLeaves = t.NumLeaves
	return nil
}

// signatureTOML is the TOML-marshalled shape of a Signature.
type signatureTOML struct {
	Epoch      uint32
	Randomness string
	Codeword   []uint16
	Revealed   []string
	MerklePath []string
}

// TOML returns sig's TOML-compatible representation.
func (sig *Signature) TOML() interface{} {
	revealed := make([]string, len(sig.Revealed))
	for i, r := range sig.Revealed {
		revealed[i] = hex.EncodeToString(r)
	}
	path := make([]string, len(sig.MerklePath))
	for i, p := range sig.MerklePath {
		path[i] = hex.EncodeToString(p)
	}
	return &signatureTOML{
		Epoch:      sig.Epoch,
		Randomness: hex.EncodeToString(sig.Randomness),
		Codeword:   sig.Codeword,
		Revealed:   revealed,
		MerklePath: path,
	}
}

// FromTOML populates sig from a decoded signatureTOML value.
func (sig *Signature) FromTOML(i interface{}) error {
	t, ok := i.(*signatureTOML)
	if !ok {
		return errors.New("signature: signature can't decode from non signatureTOML struct")
	}
	var err error
	sig.Epoch = t.Epoch
	sig.Codeword = t.Codeword
	sig.Randomness, err = hex.DecodeString(t.Randomness)
	if err != nil {
		return err
	}
	sig.Revealed = make([][]byte, len(t.Revealed))
	for i, r := range t.Revealed {
		if sig.Revealed[i], err = hex.DecodeString(r); err != nil {
			return fmt.Errorf("signature: decoding revealed[%d]: %w", i, err)
		}
	}
	sig.MerklePath = make([][]byte, len(t.MerklePath))
	for i, p := range t.MerklePath {
		if sig.MerklePath[i], err = hex.DecodeString(p); err != nil {
			return fmt.Errorf("signature: decoding merkle path[%d]: %w", i, err)
		}
	}
	return nil
}
