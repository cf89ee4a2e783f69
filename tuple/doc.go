// Package tuple provides immutable, fixed-arity tuple types.
//
// A [Unit] holds one value and a [Pair] holds two. Each arity is its own
// generic type with positional accessors (Value0, Value1), so the slot types
// are checked at compile time. Tuples are plain values: every "setter"
// returns a new tuple and leaves the receiver alone, which makes them safe to
// share between goroutines without locking.
//
// # Construction
//
// Build a tuple directly from typed values:
//
//	u := tuple.NewUnit("a")
//	p := tuple.NewPair("a", 1)
//
// Or from a source of elements of a single type. There are two policies and
// they are deliberately different:
//
//   - Exact: [UnitFromSlice], [UnitFromCollection], [UnitFromSeq] and their
//     Pair counterparts require the source to hold precisely as many elements
//     as the tuple has slots. Anything else is an invalid-argument error.
//   - Lenient: [UnitFromSeqAt] and [PairFromSeqAt] skip to an offset and read
//     one window of elements. Extra elements are never looked at and missing
//     ones leave the zero value in their slot. Use these to take a tuple from
//     a prefix or slice of a longer, possibly unbounded, sequence.
//
// For example:
//
//	_, err := tuple.PairFromSeq(slices.Values([]int{1, 2, 3})) // too many elements
//	p, _ := tuple.PairFromSeqAt(slices.Values([]int{1, 2, 3}), 1) // [2, 3]
//
// A nil source is an error under both policies. All errors can be inspected
// with package [invalidarg].
//
// # Updating
//
// SetAtN returns a copy with one slot replaced. Because Go methods cannot
// introduce type parameters, replacing a slot with a value of a different type
// is done with the package functions [UnitSetAt0], [PairSetAt0] and
// [PairSetAt1]. RemoveFromN drops a slot and returns the next smaller arity,
// and [UnitAddAt0], [UnitAddAt1] and [UnitJoin] grow a Unit into a Pair.
//
// # Generic access
//
// Every arity implements [Tuple], and [ValueAt], [Contains], [IndexOf], [All]
// and friends work on any of them. Tuples marshal to and from JSON arrays.
package tuple
