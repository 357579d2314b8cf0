// Package hypercube implements the combinatorial core of the signature
// scheme: a memoized layer-size table for the bounded hypercube [0, w-1]^v
// and a bijection between integers and the vertices of a given layer.
package hypercube

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MaxDimension is the largest dimension v for which layer sizes are
// precomputed for any given base w.
const MaxDimension = 100

// ErrInvalidDimension is returned when v is outside [1, MaxDimension] or d is
// outside [0, (w-1)*v].
var ErrInvalidDimension = errors.New("hypercube: invalid dimension or distance")

// layerTable holds L_d^v for one base w, rows indexed by v (1..MaxDimension),
// each row a slice of length (w-1)*v+1 indexed by d.
type layerTable struct {
	rows [][]*big.Int // rows[v][d], rows[0] unused
}

var (
	tables    sync.Map // w (int) -> *layerTable
	computing singleflight.Group
)

// EnsureLayerSizes materializes the layer-size table for base w, computing it
// once process-wide. It is idempotent and safe to call from any number of
// goroutines concurrently: the first caller for a given w computes the table,
// every concurrent caller for the same w blocks on that single computation.
func EnsureLayerSizes(w int) {
	if w < 2 {
		panic(fmt.Sprintf("hypercube: base must be >= 2, got %d", w))
	}
	if _, ok := tables.Load(w); ok {
		return
	}
	_, _, _ = computing.Do(fmt.Sprintf("%d", w), func() (interface{}, error) {
		if _, ok := tables.Load(w); !ok {
			tables.Store(w, buildLayerTable(w))
		}
		return nil, nil
	})
}

// buildLayerTable computes L_d^v for v = 1..MaxDimension by the recurrence of
// spec.md's Invariant L1, seeded by Invariant L2.
func buildLayerTable(w int) *layerTable {
	t := &layerTable{rows: make([][]*big.Int, MaxDimension+1)}

	row1 := make([]*big.Int, w)
	for d := 0; d < w; d++ {
		row1[d] = big.NewInt(1)
	}
	t.rows[1] = row1

	for v := 2; v <= MaxDimension; v++ {
		maxDistance := (w - 1) * v
		prev := t.rows[v-1]
		row := make([]*big.Int, maxDistance+1)
		for d := 0; d <= maxDistance; d++ {
			lo := max(w-d, 1)
			hi := min(w, w+(w-1)*(v-1)-d)
			sum := new(big.Int)
			// a_1 ranges over [lo, hi]; the corresponding previous-row index
			// is d - (w - a_1), which runs from d-(w-lo) to d-(w-hi).
			for a1 := lo; a1 <= hi; a1++ {
				idx := d - (w - a1)
				sum.Add(sum, prev[idx])
			}
			row[d] = sum
		}
		t.rows[v] = row
	}
	return t
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// getTable returns the published layer table for base w, ensuring it exists.
func getTable(w int) *layerTable {
	EnsureLayerSizes(w)
	v, _ := tables.Load(w)
	return v.(*layerTable)
}

// Size returns L_d^v, the number of vertices in layer d of [0,w-1]^v.
func Size(w, v, d int) (*big.Int, error) {
	if v < 1 || v > MaxDimension {
		return nil, fmt.Errorf("%w: v=%d not in [1,%d]", ErrInvalidDimension, v, MaxDimension)
	}
	t := getTable(w)
	maxDistance := (w - 1) * v
	if d < 0 || d > maxDistance {
		return nil, fmt.Errorf("%w: d=%d not in [0,%d] for v=%d", ErrInvalidDimension, d, maxDistance, v)
	}
	return new(big.Int).Set(t.rows[v][d]), nil
}

// PartSize returns the total size of layers 0..=d (inclusive) of [0,w-1]^v.
func PartSize(w, v, d int) (*big.Int, error) {
	if v < 1 || v > MaxDimension {
		return nil, fmt.Errorf("%w: v=%d not in [1,%d]", ErrInvalidDimension, v, MaxDimension)
	}
	t := getTable(w)
	maxDistance := (w - 1) * v
	if d < 0 || d > maxDistance {
		return nil, fmt.Errorf("%w: d=%d not in [0,%d] for v=%d", ErrInvalidDimension, d, maxDistance, v)
	}
	sum := new(big.Int)
	for l := 0; l <= d; l++ {
		sum.Add(sum, t.rows[v][l])
	}
	return sum, nil
}
