package hypercube

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func distance(w int, a []byte) int {
	d := 0
	for _, ai := range a {
		d += w - 1 - int(ai)
	}
	return d
}

// TestBijectionRoundTrip covers property 3 (S1-adjacent): w=4, v=8, d=20,
// every x in [0, L_d^v) round-trips through unrank/rank.
func TestBijectionRoundTrip(t *testing.T) {
	w, v, d := 4, 8, 20
	size, err := Size(w, v, d)
	require.NoError(t, err)

	n := size.Int64()
	for xi := int64(0); xi < n; xi++ {
		x := big.NewInt(xi)
		a, err := Unrank(w, v, d, x)
		require.NoError(t, err)
		require.Equal(t, d, distance(w, a))

		got, err := Rank(w, v, d, a)
		require.NoError(t, err)
		require.Equal(t, x.String(), got.String())

		a2, err := Unrank(w, v, d, got)
		require.NoError(t, err)
		require.Equal(t, a, a2)
	}
}

// TestLargeParameterRoundTrip is property 4: a 40-dimensional,
// base-12 vertex whose rank index no longer fits in a machine word.
func TestLargeParameterRoundTrip(t *testing.T) {
	w, v, d := 12, 40, 174
	x, ok := new(big.Int).SetString("21790506781852242898091207809690042074412", 10)
	require.True(t, ok)

	a, err := Unrank(w, v, d, x)
	require.NoError(t, err)
	require.Equal(t, d, distance(w, a))

	got, err := Rank(w, v, d, a)
	require.NoError(t, err)
	require.Equal(t, x.String(), got.String())

	a2, err := Unrank(w, v, d, got)
	require.NoError(t, err)
	require.Equal(t, a, a2)
}

// TestUniqueVertexAtZeroDistance is scenario S2.
func TestUniqueVertexAtZeroDistance(t *testing.T) {
	w, v, d := 2, 5, 0
	size, err := Size(w, v, d)
	require.NoError(t, err)
	require.Equal(t, "1", size.String())

	a, err := Unrank(w, v, d, big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, []byte{1, 1, 1, 1, 1}, a)
}

// TestTenVerticesAtLayerTwo is scenario S3.
func TestTenVerticesAtLayerTwo(t *testing.T) {
	w, v, d := 3, 4, 2
	size, err := Size(w, v, d)
	require.NoError(t, err)
	require.Equal(t, "10", size.String())

	seen := make(map[string]bool)
	for xi := int64(0); xi < 10; xi++ {
		a, err := Unrank(w, v, d, big.NewInt(xi))
		require.NoError(t, err)
		require.Equal(t, d, distance(w, a))
		key := string(a)
		require.False(t, seen[key], "duplicate vertex for x=%d", xi)
		seen[key] = true
	}
}

func TestUnrankRejectsOutOfRangeIndex(t *testing.T) {
	w, v, d := 4, 8, 20
	size, err := Size(w, v, d)
	require.NoError(t, err)

	_, err = Unrank(w, v, d, size)
	require.ErrorIs(t, err, ErrInvalidLayer)

	_, err = Unrank(w, v, d, big.NewInt(-1))
	require.ErrorIs(t, err, ErrInvalidLayer)
}

func TestRankRejectsWrongLayer(t *testing.T) {
	w, v, d := 4, 8, 20
	a, err := Unrank(w, v, d, big.NewInt(0))
	require.NoError(t, err)

	_, err = Rank(w, v, d+1, a)
	require.ErrorIs(t, err, ErrInvalidLayer)
}

// TestFindLayerMonotonicity covers property 7.
func TestFindLayerMonotonicity(t *testing.T) {
	w, v := 4, 8
	cap := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(int64(v)), nil)

	prevLayer := 0
	step := new(big.Int).Div(cap, big.NewInt(500))
	if step.Sign() == 0 {
		step = big.NewInt(1)
	}
	for x := big.NewInt(0); x.Cmp(cap) < 0; x.Add(x, step) {
		layer, _, err := FindLayer(w, v, x)
		require.NoError(t, err)
		require.GreaterOrEqual(t, layer, prevLayer)
		prevLayer = layer
	}
}

func TestFindLayerAndUnrankAgree(t *testing.T) {
	w, v := 3, 6
	cap := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(int64(v)), nil)
	for x := big.NewInt(0); x.Cmp(cap) < 0; x.Add(x, big.NewInt(1)) {
		layer, residual, err := FindLayer(w, v, x)
		require.NoError(t, err)

		a, err := Unrank(w, v, layer, residual)
		require.NoError(t, err)
		require.Equal(t, layer, distance(w, a))
	}
}
