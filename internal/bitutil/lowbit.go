// Package bitutil holds the index arithmetic shared by the tree walks.
package bitutil

// Lowbit returns the value of the lowest set bit of x, e.g. 36 (100100₂)
// yields 4 (100₂). Lowbit(0) is 0.
//
// x must be non-negative.
func Lowbit(x int) int {
	if x == 0 {
		return 0
	}
	return x & -x
}
