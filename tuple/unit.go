package tuple

import (
	"encoding/json"
	"iter"
)

const unitSize = 1

// A tuple of one element. The zero value holds the zero value of [A].
type Unit[A any] struct {
	val0 A
}

// Creates a Unit holding [value0].
func NewUnit[A any](value0 A) Unit[A] {
	return Unit[A]{val0: value0}
}

// Create a Unit from a slice. The slice must be non-nil and have exactly one element.
func UnitFromSlice[X any](s []X) (Unit[X], error) {
	if err := fromSlice(s, "slice", "Unit", unitSize); err != nil {
		return Unit[X]{}, err
	}
	return NewUnit(s[0]), nil
}

// Create a Unit from a collection. The collection must have exactly one element.
func UnitFromCollection[X any](c Collection[X]) (Unit[X], error) {
	var vals [unitSize]X
	if err := fromCollection(c, vals[:], "Unit"); err != nil {
		return Unit[X]{}, err
	}
	return NewUnit(vals[0]), nil
}

// Create a Unit from a sequence that yields exactly one element.
func UnitFromSeq[X any](seq iter.Seq[X]) (Unit[X], error) {
	return unitFromSeq(seq, 0, true)
}

// Create a Unit from the element at [index] of [seq]. The sequence may be
// longer, or shorter, than needed: if it runs out the Unit holds the zero
// value of [X]. Only a nil sequence is an error.
func UnitFromSeqAt[X any](seq iter.Seq[X], index int) (Unit[X], error) {
	return unitFromSeq(seq, index, false)
}

func unitFromSeq[X any](seq iter.Seq[X], index int, exact bool) (Unit[X], error) {
	var vals [unitSize]X
	if err := fill(seq, index, vals[:], exact, "Unit"); err != nil {
		return Unit[X]{}, err
	}
	return NewUnit(vals[0]), nil
}

func (u Unit[A]) Value0() A {
	return u.val0
}

func (u Unit[A]) Size() int {
	return unitSize
}

func (u Unit[A]) Values() []any {
	return []any{u.val0}
}

func (u Unit[A]) String() string {
	return Format(u)
}

// Returns a copy of [u] holding [value].
func (u Unit[A]) SetAt0(value A) Unit[A] {
	return NewUnit(value)
}

// Like [Unit.SetAt0], but [value] may be of a different type.
func UnitSetAt0[A, X any](_ Unit[A], value X) Unit[X] {
	return NewUnit(value)
}

// Grows [u] into a Pair with [value] in front.
func UnitAddAt0[A, X any](u Unit[A], value X) Pair[X, A] {
	return NewPair(value, u.val0)
}

// Grows [u] into a Pair with [value] behind.
func UnitAddAt1[A, X any](u Unit[A], value X) Pair[A, X] {
	return NewPair(u.val0, value)
}

func UnitJoin[A, X any](u Unit[A], w Unit[X]) Pair[A, X] {
	return NewPair(u.val0, w.val0)
}

func (u Unit[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal([unitSize]any{u.val0})
}

func (u *Unit[A]) UnmarshalJSON(data []byte) error {
	raw, err := decodeArray(data, "Unit", unitSize)
	if err != nil || raw == nil {
		return err
	}

	var v0 A
	if err := json.Unmarshal(raw[0], &v0); err != nil {
		return err
	}
	*u = NewUnit(v0)
	return nil
}
