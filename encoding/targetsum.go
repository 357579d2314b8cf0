package encoding

import (
	"fmt"
	"io"
	"math/big"

	"github.com/drand/hashsig/hypercube"
	"github.com/drand/hashsig/symmetric/messagehash"
)

// TargetSumWinternitz is the rejection-sampling encoding: a message digest
// is treated as an integer, rejected unless it lands in the target layer
// d of the hypercube [0,w-1]^v, and then unranked into a vertex. Every
// codeword it emits therefore sums to the same target T = v(w-1) - d,
// which is what makes distinct codewords mutually incomparable.
type TargetSumWinternitz struct {
	w, v, d  int
	maxTries int
	cap      *big.Int
	hash     messagehash.MessageHash
}

// NewTargetSumWinternitz builds a target-sum Winternitz encoding over base
// w, dimension v, target layer d, backed by hash. maxTries bounds the
// rejection-sampling budget; the caller should size it comfortably above
// w^v / L_d^v, the expected number of attempts.
func NewTargetSumWinternitz(w, v, d, maxTries int, hash messagehash.MessageHash) (*TargetSumWinternitz, error) {
	if w < 2 || v < 1 || maxTries < 1 {
		return nil, fmt.Errorf("%w: w=%d v=%d maxTries=%d", ErrInvalidDimension, w, v, maxTries)
	}
	if d < 0 || d > (w-1)*v {
		return nil, fmt.Errorf("%w: d=%d out of range for w=%d v=%d", ErrInvalidDimension, d, w, v)
	}

	cap := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(int64(v)), nil)
	digestBits := hash.NumChunks() * hash.ChunkSize()
	n := new(big.Int).Lsh(big.NewInt(1), uint(digestBits))
	if n.Cmp(cap) < 0 {
		return nil, fmt.Errorf("%w: digest space 2^%d smaller than w^v=%s, sampling would be biased or incomplete", ErrInvalidDimension, digestBits, cap)
	}

	return &TargetSumWinternitz{w: w, v: v, d: d, maxTries: maxTries, cap: cap, hash: hash}, nil
}

// TargetSum is T = v(w-1) - d, the coordinate sum every emitted codeword
// satisfies.
func (e *TargetSumWinternitz) TargetSum() int { return e.v*(e.w-1) - e.d }

func (e *TargetSumWinternitz) Dimension() int { return e.v }
func (e *TargetSumWinternitz) Base() int      { return e.w }
func (e *TargetSumWinternitz) MaxTries() int  { return e.maxTries }

func (e *TargetSumWinternitz) Rand(rng io.Reader) ([]byte, error) {
	return e.hash.Rand(rng)
}

// Encode performs a single rejection-sampling attempt: it succeeds only if
// the digest derived from randomness happens to land in layer d. Callers
// driving the full MaxTries budget should use EncodeWithRetry.
func (e *TargetSumWinternitz) Encode(parameter []byte, message [messagehash.MessageLength]byte, randomness []byte, epoch uint32) ([]uint16, error) {
	digest, err := e.hash.Apply(parameter, epoch, randomness, message)
	if err != nil {
		return nil, fmt.Errorf("encoding: message hash: %w", err)
	}

	x := digestToInt(digest, e.hash.ChunkSize())
	if x.Cmp(e.cap) >= 0 {
		return nil, fmt.Errorf("%w: digest %s out of range [0, %s)", ErrEncodingExhausted, x, e.cap)
	}

	layer, residual, err := hypercube.FindLayer(e.w, e.v, x)
	if err != nil {
		return nil, fmt.Errorf("encoding: find_layer: %w", err)
	}
	if layer != e.d {
		return nil, fmt.Errorf("%w: digest landed in layer %d, want %d", ErrEncodingExhausted, layer, e.d)
	}

	vertex, err := hypercube.Unrank(e.w, e.v, e.d, residual)
	if err != nil {
		return nil, fmt.Errorf("encoding: unrank: %w", err)
	}

	codeword := make([]uint16, e.v)
	for i, a := range vertex {
		codeword[i] = uint16(a)
	}
	return codeword, nil
}

// digestToInt interprets digest's chunkSize-bit chunks as the digits of a
// big-endian integer, most significant chunk first.
func digestToInt(digest []byte, chunkSize int) *big.Int {
	x := new(big.Int)
	base := big.NewInt(1 << uint(chunkSize))
	for _, chunk := range digest {
		x.Mul(x, base)
		x.Add(x, big.NewInt(int64(chunk)))
	}
	return x
}
