package prf

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// domainSep is mixed into every PRF invocation so that the PRF cannot be
// confused with any other keyed use of the same hash function.
var domainSep = [16]byte{
	0x00, 0x01, 0x12, 0xff, 0x00, 0x01, 0xfa, 0xff,
	0x00, 0xaf, 0x12, 0xff, 0x01, 0xfa, 0xff, 0x00,
}

// SHA3PRF is a SHA3-256-based PRF producing OutputLength bytes of output.
type SHA3PRF struct {
	OutputLength int
}

// NewSHA3PRF returns a SHA3-256 PRF that produces outputLength bytes, which
// must be at most 32 (the digest size of SHA3-256).
func NewSHA3PRF(outputLength int) *SHA3PRF {
	if outputLength <= 0 || outputLength > 32 {
		panic("prf: SHA3PRF output length must be in (0, 32]")
	}
	return &SHA3PRF{OutputLength: outputLength}
}

func (p *SHA3PRF) Gen(rng io.Reader) ([KeyLength]byte, error) {
	var key [KeyLength]byte
	_, err := io.ReadFull(rng, key[:])
	return key, err
}

func (p *SHA3PRF) Apply(key [KeyLength]byte, epoch uint32, index uint64) []byte {
	h := sha3.New256()
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
