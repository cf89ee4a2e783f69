package tuple

import (
	"encoding/json"
	"iter"
)

const pairSize = 2

// A tuple of two elements. Slot 0 is held by the embedded [Unit], so a Pair
// answers [Unit.Value0] the same way a Unit does; everything that depends on
// arity is redefined here.
type Pair[A, B any] struct {
	Unit[A]
	val1 B
}

// Creates a Pair holding [value0] and [value1].
func NewPair[A, B any](value0 A, value1 B) Pair[A, B] {
	return Pair[A, B]{Unit: NewUnit(value0), val1: value1}
}

// Create a Pair from a slice. The slice must be non-nil and have exactly two
// elements; both slots take the slice's element type.
func PairFromSlice[X any](s []X) (Pair[X, X], error) {
	if err := fromSlice(s, "slice", "Pair", pairSize); err != nil {
		return Pair[X, X]{}, err
	}
	return NewPair(s[0], s[1]), nil
}

// Create a Pair from a collection. The collection must have exactly two elements.
func PairFromCollection[X any](c Collection[X]) (Pair[X, X], error) {
	var vals [pairSize]X
	if err := fromCollection(c, vals[:], "Pair"); err != nil {
		return Pair[X, X]{}, err
	}
	return NewPair(vals[0], vals[1]), nil
}

// Create a Pair from a sequence that yields exactly two elements.
func PairFromSeq[X any](seq iter.Seq[X]) (Pair[X, X], error) {
	return pairFromSeq(seq, 0, true)
}

// Create a Pair from the two elements starting at [index] of [seq]. Trailing
// elements are ignored and missing ones leave the zero value of [X]; only a
// nil sequence is an error.
func PairFromSeqAt[X any](seq iter.Seq[X], index int) (Pair[X, X], error) {
	return pairFromSeq(seq, index, false)
}

func pairFromSeq[X any](seq iter.Seq[X], index int, exact bool) (Pair[X, X], error) {
	var vals [pairSize]X
	if err := fill(seq, index, vals[:], exact, "Pair"); err != nil {
		return Pair[X, X]{}, err
	}
	return NewPair(vals[0], vals[1]), nil
}

// Returns slot 1.
func (p Pair[A, B]) Value1() B {
	return p.val1
}

// Always 2.
func (p Pair[A, B]) Size() int {
	return pairSize
}

func (p Pair[A, B]) Values() []any {
	return []any{p.val0, p.val1}
}

// Returns both slots, for destructuring: `k, v := p.Unpack()`.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.val0, p.val1
}

func (p Pair[A, B]) String() string {
	return Format(p)
}

func (p Pair[A, B]) SetAt0(value A) Pair[A, B] {
	return NewPair(value, p.val1)
}

// Returns a copy of [p] with slot 1 replaced.
func (p Pair[A, B]) SetAt1(value B) Pair[A, B] {
	return NewPair(p.val0, value)
}

func PairSetAt0[A, B, X any](p Pair[A, B], value X) Pair[X, B] {
	return NewPair(value, p.val1)
}

// Like [Pair.SetAt1], but [value] may be of a different type.
func PairSetAt1[A, B, X any](p Pair[A, B], value X) Pair[A, X] {
	return NewPair(p.val0, value)
}

// Drops slot 0.
func (p Pair[A, B]) RemoveFrom0() Unit[B] {
	return NewUnit(p.val1)
}

// Drops slot 1.
func (p Pair[A, B]) RemoveFrom1() Unit[A] {
	return NewUnit(p.val0)
}

// Returns a Pair with the slots of [p] in reverse order.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return NewPair(p.val1, p.val0)
}

func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([pairSize]any{p.val0, p.val1})
}

func (p *Pair[A, B]) UnmarshalJSON(data []byte) error {
	raw, err := decodeArray(data, "Pair", pairSize)
	if err != nil || raw == nil {
		return err
	}

	var (
		v0 A
		v1 B
	)
	if err := json.Unmarshal(raw[0], &v0); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &v1); err != nil {
		return err
	}
	*p = NewPair(v0, v1)
	return nil
}
