package prf

import (
	"crypto/sha256"
	"io"
)

// SHA2PRF is the SHA-256 sibling of SHA3PRF, offered so a scheme instance
// can be built entirely on classical SHA-2 without touching SHA-3/Keccak.
type SHA2PRF struct {
	OutputLength int
}

// NewSHA2PRF returns a SHA-256 PRF that produces outputLength bytes, which
// must be at most 32 (the digest size of SHA-256).
func NewSHA2PRF(outputLength int) *SHA2PRF {
	if outputLength <= 0 || outputLength > 32 {
		panic("prf: SHA2PRF output length must be in (0, 32]")
	}
	return &SHA2PRF{OutputLength: outputLength}
}

func (p *SHA2PRF) Gen(rng io.Reader) ([KeyLength]byte, error) {
	var key [KeyLength]byte
	_, err := io.ReadFull(rng, key[:])
	return key, err
}

func (p *SHA2PRF) Apply(key [KeyLength]byte, epoch uint32, index uint64) []byte {
	h := sha256.New()
	h.Write(domainSep[:])
	h.Write(key[:])
	var be [4]byte
	be[0], be[1], be[2], be[3] = byte(epoch>>24), byte(epoch>>16), byte(epoch>>8), byte(epoch)
	h.Write(be[:])
	var ibe [8]byte
	for i := 0; i < 8; i++ {
		ibe[i] = byte(index >> (56 - 8*i))
	}
	h.Write(ibe[:])
	digest := h.Sum(nil)
	return digest[:p.OutputLength]
}
