// Package fenwick provides a list data structure supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, is a space-efficient list
// data structure that can efficiently update elements and calculate
// prefix sums in a list of numbers.
//
// Compared to a common array, a Fenwick tree achieves better balance
// between element update and prefix sum calculation – both operations
// run in O(log n) time – while using the same amount of memory.
// This is achieved by representing the list as an implicit tree,
// where the value of each node is the sum of the numbers in that
// subtree.
//
// Range queries follow a half-open convention that excludes the left
// index: QueryRange(left, right) sums the elements left+1 through right.
package fenwick

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/Luv-Ray/Algorithm/internal/bitutil"
)

// Number is the set of element types a Tree can hold: any type whose
// values can be added and subtracted.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tree represents a list of numbers with support for efficient
// prefix sum computation. The zero value is an empty tree.
//
// A Tree is not safe for concurrent use. Only Edit and Set modify it.
type Tree[T Number] struct {
	// The tree slice stores range sums of an underlying array t.
	// tree[0] holds t[0] alone, and for k > 0 tree[k] holds the sum
	// t[k-lowbit(k)+1] + … + t[k].
	//
	// For example, this is how the prefix sum t[0] + … + t[13] is
	// computed: 13 is 1101₂ in binary, so clearing its low bits one at
	// a time visits 1101₂, 1100₂, 1000₂ and finally 0; those slots
	// contain t[13], t[9] + … + t[12], t[1] + … + t[8] and t[0],
	// respectively.
	//
	tree []T
}

// New creates a new tree holding the given elements. The elements are
// copied; later changes to the caller's slice do not affect the tree.
func New[T Number](values ...T) *Tree[T] {
	n := len(values)
	t := make([]T, n)
	copy(t, values)
	for i := 1; i < n; i++ {
		if j := i + bitutil.Lowbit(i); j < n {
			t[j] += t[i]
		}
	}
	return &Tree[T]{
		tree: t,
	}
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return len(t.tree)
}

// Edit adds delta to the element at index i.
func (t *Tree[T]) Edit(i int, delta T) {
	t.checkIndex(i)
	if i == 0 {
		t.tree[0] += delta
		return
	}
	for n := len(t.tree); i < n; i += bitutil.Lowbit(i) {
		t.tree[i] += delta
	}
}

// QueryOne returns the sum of the elements from index 0 to index i,
// both inclusive.
func (t *Tree[T]) QueryOne(i int) T {
	t.checkIndex(i)
	sum := t.tree[i]
	for i != 0 {
		i -= bitutil.Lowbit(i)
		sum += t.tree[i]
	}
	return sum
}

// QueryRange returns the sum of the elements from index left+1 to index
// right. The element at left is NOT included, so QueryRange(i, i) is
// always zero and QueryRange(a, b) + QueryRange(b, c) == QueryRange(a, c).
// To include element 0, use QueryOne.
func (t *Tree[T]) QueryRange(left, right int) T {
	return t.QueryOne(right) - t.QueryOne(left)
}

// Get returns the element at index i.
func (t *Tree[T]) Get(i int) T {
	t.checkIndex(i)
	sum := t.tree[i]
	j := i - bitutil.Lowbit(i)
	for k := i - 1; k > j; k -= bitutil.Lowbit(k) {
		sum -= t.tree[k]
	}
	return sum
}

// Set sets the element at index i to v.
func (t *Tree[T]) Set(i int, v T) {
	t.Edit(i, v-t.Get(i))
}

// Total returns the sum of all elements, zero for an empty tree.
func (t *Tree[T]) Total() T {
	if len(t.tree) == 0 {
		var zero T
		return zero
	}
	return t.QueryOne(len(t.tree) - 1)
}

// Values returns a copy of the elements, in order.
func (t *Tree[T]) Values() []T {
	n := len(t.tree)
	v := make([]T, n)
	copy(v, t.tree)
	for i := n - 1; i > 0; i-- {
		if j := i + bitutil.Lowbit(i); j < n {
			v[j] -= v[i]
		}
	}
	return v
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("BIT<len=%d, total=%v>", t.Len(), t.Total())
}

func (t *Tree[T]) checkIndex(i int) {
	if i < 0 || i >= len(t.tree) {
		panic(fmt.Sprintf("fenwick: index %d out of range [0:%d)", i, len(t.tree)))
	}
}
