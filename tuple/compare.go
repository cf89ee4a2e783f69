package tuple

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Returns -1, 0 or +1 depending on whether x is less than, equal to or greater
// than y. A floating point NaN sorts before every other value and equals NaN.
func CompareUnits[A constraints.Ordered](x, y Unit[A]) int {
	return cmp.Compare(x.val0, y.val0)
}

// Lexicographic: slot 1 only decides when slot 0 is equal. NaN is ordered as in
// [CompareUnits].
func ComparePairs[A, B constraints.Ordered](x, y Pair[A, B]) int {
	if c := cmp.Compare(x.val0, y.val0); c != 0 {
		return c
	}
	return cmp.Compare(x.val1, y.val1)
}
