package tweakhash

import "golang.org/x/crypto/sha3"

// SHA3Hash is a SHA3-256-based TweakableHash: parameter || tweak || messages
// hashed together, truncated to OutputSize bytes.
type SHA3Hash struct {
	OutputSize int
	ParamSize  int
}

// NewSHA3Hash returns a SHA3-256 tweakable hash with the given parameter and
// output sizes (output must be at most 32 bytes).
func NewSHA3Hash(paramSize, outputSize int) *SHA3Hash {
	if outputSize <= 0 || outputSize > 32 {
		panic("tweakhash: SHA3Hash output size must be in (0, 32]")
	}
	return &SHA3Hash{OutputSize: outputSize, ParamSize: paramSize}
}

func (h *SHA3Hash) OutputLen() int    { return h.OutputSize }
func (h *SHA3Hash) ParameterLen() int { return h.ParamSize }

func (h *SHA3Hash) Apply(parameter []byte, tweak Tweak, messages ...[]byte) []byte {
	d := sha3.New256()
	d.Write(parameter)
	d.Write(tweak.Bytes())
	for _, m := range messages {
		d.Write(m)
	}
	digest := d.Sum(nil)
	return digest[:h.OutputSize]
}
