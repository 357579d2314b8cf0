package hypercube

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	num := big.NewInt(1)
	den := big.NewInt(1)
	for i := 0; i < k; i++ {
		num.Mul(num, big.NewInt(int64(n-i)))
		den.Mul(den, big.NewInt(int64(i+1)))
	}
	return num.Div(num, den)
}

// layerSizeByInclusionExclusion computes L_d^v via the binomial
// inclusion-exclusion closed form, independent of the recurrence under
// test.
func layerSizeByInclusionExclusion(w, v, d int) *big.Int {
	sum := new(big.Int)
	for s := 0; s*w <= d; s++ {
		term := new(big.Int).Mul(binomial(v, s), binomial(d-s*w+v-1, v-1))
		if s%2 == 1 {
			term.Neg(term)
		}
		sum.Add(sum, term)
	}
	return sum
}

func TestLayerTableAgreesWithClosedForm(t *testing.T) {
	for w := 2; w <= 12; w++ {
		for v := 1; v <= 20; v++ {
			maxD := (w - 1) * v
			for d := 0; d <= maxD; d++ {
				got, err := Size(w, v, d)
				require.NoError(t, err)
				want := layerSizeByInclusionExclusion(w, v, d)
				require.Equalf(t, want.String(), got.String(), "w=%d v=%d d=%d", w, v, d)
			}
		}
	}
}

func TestRowSumsEqualWToTheV(t *testing.T) {
	for w := 2; w <= 8; w++ {
		for v := 1; v <= 12; v++ {
			maxD := (w - 1) * v
			sum := new(big.Int)
			for d := 0; d <= maxD; d++ {
				size, err := Size(w, v, d)
				require.NoError(t, err)
				sum.Add(sum, size)
			}
			want := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(int64(v)), nil)
			require.Equal(t, want.String(), sum.String())
		}
	}
}

func TestSizeRejectsInvalidDimension(t *testing.T) {
	_, err := Size(4, 0, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = Size(4, MaxDimension+1, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = Size(4, 8, 100)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestPartSizeIsCumulative(t *testing.T) {
	w, v := 4, 8
	maxD := (w - 1) * v
	running := new(big.Int)
	for d := 0; d <= maxD; d++ {
		size, err := Size(w, v, d)
		require.NoError(t, err)
		running.Add(running, size)

		part, err := PartSize(w, v, d)
		require.NoError(t, err)
		require.Equal(t, running.String(), part.String())
	}
}

func TestEnsureLayerSizesConcurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 16; i++ {
		go func() {
			EnsureLayerSizes(7)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}
	size, err := Size(7, 10, 30)
	require.NoError(t, err)
	require.True(t, size.Sign() > 0)
}
