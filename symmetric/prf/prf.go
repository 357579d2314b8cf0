// Package prf implements the keyed pseudorandom functions used to derive
// the secret starting value of each Winternitz hash chain from a compact
// per-key seed, keyed by leaf (epoch) and chain index.
package prf

import "io"

// KeyLength is the size, in bytes, of a PRF key.
const KeyLength = 32

// Pseudorandom is a keyed PRF over (epoch, index) pairs, where epoch
// identifies a one-time leaf and index identifies a chain within that leaf.
type Pseudorandom interface {
	// Gen samples a fresh key from rng.
	Gen(rng io.Reader) ([KeyLength]byte, error)
	// Apply derives pseudorandom output for (epoch, index) under key.
	Apply(key [KeyLength]byte, epoch uint32, index uint64) []byte
}
