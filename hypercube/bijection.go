package hypercube

import (
	"fmt"
	"math/big"
)

// ErrInvalidLayer is returned when a vertex or index does not belong to the
// layer it is claimed to belong to.
var ErrInvalidLayer = fmt.Errorf("hypercube: value does not belong to the declared layer")

// Unrank maps an integer x in [0, L_d^v) to the x-th vertex of layer d of
// [0, w-1]^v, under the canonical order of spec.md §4.B: vertices are
// ordered by a_1 descending, ties broken recursively on the (v-1)-suffix.
//
// The returned slice has length v, each entry in [0, w-1].
func Unrank(w, v, d int, x *big.Int) ([]byte, error) {
	size, err := Size(w, v, d)
	if err != nil {
		return nil, err
	}
	if x.Sign() < 0 || x.Cmp(size) >= 0 {
		return nil, fmt.Errorf("%w: x=%s not in [0, %s) for w=%d v=%d d=%d", ErrInvalidLayer, x, size, w, v, d)
	}

	t := getTable(w)
	xCurr := new(big.Int).Set(x)
	dCurr := d
	out := make([]byte, v)

	for i := 1; i < v; i++ {
		remaining := v - i
		lo := max(dCurr-(w-1)*remaining, 0)
		hi := min(w-1, dCurr)
		found := false
		for j := lo; j <= hi; j++ {
			count := t.rows[remaining][dCurr-j]
			if xCurr.Cmp(count) >= 0 {
				xCurr.Sub(xCurr, count)
				continue
			}
			ai := w - 1 - j
			out[i-1] = byte(ai)
			dCurr -= w - 1 - ai
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("%w: unrank ran out of candidates (corrupt layer table)", ErrInvalidLayer)
		}
	}

	// Post-condition: x_curr + d_curr < w; the last coordinate is forced.
	last := xCurr.Int64()
	out[v-1] = byte(w - 1 - int(last) - dCurr)
	return out, nil
}

// Rank maps a vertex a of layer d of [0,w-1]^v back to its index x in
// [0, L_d^v). It is the inverse of Unrank.
func Rank(w, v, d int, a []byte) (*big.Int, error) {
	if len(a) != v {
		return nil, fmt.Errorf("%w: vertex has length %d, want %d", ErrInvalidLayer, len(a), v)
	}
	for _, ai := range a {
		if int(ai) > w-1 {
			return nil, fmt.Errorf("%w: coordinate %d out of range [0,%d]", ErrInvalidLayer, ai, w-1)
		}
	}

	t := getTable(w)
	x := new(big.Int)
	dCurr := w - 1 - int(a[v-1])

	for i := v - 2; i >= 0; i-- {
		remaining := v - i - 1
		ji := w - 1 - int(a[i])
		dCurr += ji
		lo := max(dCurr-(w-1)*remaining, 0)
		for j := lo; j < ji; j++ {
			x.Add(x, t.rows[remaining][dCurr-j])
		}
	}

	if dCurr != d {
		return nil, fmt.Errorf("%w: vertex sums to layer %d, want %d", ErrInvalidLayer, dCurr, d)
	}
	return x, nil
}

// FindLayer finds the unique d such that PartSize(w,v,d-1) <= x <
// PartSize(w,v,d), and returns (d, x - PartSize(w,v,d-1)). Requires
// x < w^v. FindLayer is monotone non-decreasing in x (property 7 of
// spec.md §8).
func FindLayer(w, v int, x *big.Int) (int, *big.Int, error) {
	if v < 1 || v > MaxDimension {
		return 0, nil, fmt.Errorf("%w: v=%d not in [1,%d]", ErrInvalidDimension, v, MaxDimension)
	}
	t := getTable(w)
	maxDistance := (w - 1) * v
	val := new(big.Int).Set(x)
	if val.Sign() < 0 {
		return 0, nil, fmt.Errorf("%w: x must be non-negative", ErrInvalidLayer)
	}
	d := 0
	for d <= maxDistance && val.Cmp(t.rows[v][d]) >= 0 {
		val.Sub(val, t.rows[v][d])
		d++
	}
	if d > maxDistance {
		return 0, nil, fmt.Errorf("%w: x=%s is not less than w^v", ErrInvalidLayer, x)
	}
	return d, val, nil
}
