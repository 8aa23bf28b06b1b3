package rmq

import "math/bits"

// Table answers O(1) range-extremum queries (index of the min, or index of
// the max, depending on how it was built) over a fixed []int after O(n log
// n) preprocessing.
type Table struct {
	values []int
	sparse [][]int // sparse[k][i] = index in [i, i+2^k) holding the extremum
	isMax  bool
}

// NewMin builds a Table that answers range-minimum-index queries over
// values. values is retained by reference and must not be mutated
// afterwards.
//
// Complexity: O(n log n) time and memory.
func NewMin(values []int) *Table { return build(values, false) }

// NewMax builds a Table that answers range-maximum-index queries over
// values. values is retained by reference and must not be mutated
// afterwards.
//
// Complexity: O(n log n) time and memory.
func NewMax(values []int) *Table { return build(values, true) }

func build(values []int, isMax bool) *Table {
	n := len(values)
	t := &Table{values: values, isMax: isMax}
	if n == 0 {
		return t
	}

	levels := bits.Len(uint(n)) // floor(log2 n)+1: widths 1, 2, 4, ... <= n
	t.sparse = make([][]int, levels)

	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	t.sparse[0] = base

	for k := 1; k < levels; k++ {
		width := 1 << uint(k)
		half := width >> 1
		prev := t.sparse[k-1]
		row := make([]int, n-width+1)
		for i := 0; i+width <= n; i++ {
			left := prev[i]
			right := prev[i+half]
			row[i] = t.better(left, right)
		}
		t.sparse[k] = row
	}

	return t
}

// better returns whichever of indices a, b holds the table's extremum value.
func (t *Table) better(a, b int) int {
	if t.isMax {
		if t.values[b] > t.values[a] {
			return b
		}

		return a
	}

	if t.values[b] < t.values[a] {
		return b
	}

	return a
}

// Query returns the index of the extremum value within the inclusive range
// [lo, hi]. Bounds are swapped automatically if lo > hi, so callers never
// need to pre-sort them. Query panics if the table is empty or the (sorted)
// range falls outside [0, n).
//
// Complexity: O(1).
func (t *Table) Query(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	width := hi - lo + 1
	k := bits.Len(uint(width)) - 1
	half := 1 << uint(k)

	left := t.sparse[k][lo]
	right := t.sparse[k][hi-half+1]

	return t.better(left, right)
}
