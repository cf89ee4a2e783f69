package tuple

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/uberbrodt/fungo/fun"

	"github.com/uberbrodt/tuples/tuple/invalidarg"
)

// Implemented by every arity in this package.
type Tuple interface {
	// Number of slots. Constant for a given type.
	Size() int
	// A fresh slice holding the slot values in positional order. Mutating it
	// does not affect the tuple.
	Values() []any
}

var (
	_ Tuple = Unit[int]{}
	_ Tuple = Pair[int, string]{}
)

// Slot values are compared with go-cmp. A type's Equal method is used when it
// has one; otherwise fields are compared one by one, and the exporter lets that
// reach into unexported fields of any type.
var slotEqual = gocmp.Exporter(func(reflect.Type) bool { return true })

func equal(a, b any) bool {
	return gocmp.Equal(a, b, slotEqual)
}

// Returns the value at [pos]. Fails with an invalid-argument error when [pos]
// is not a slot of [t].
func ValueAt(t Tuple, pos int) (any, error) {
	if pos < 0 || pos >= t.Size() {
		return nil, invalidarg.OutOfRange(pos, t.Size())
	}
	return t.Values()[pos], nil
}

func Contains(t Tuple, v any) bool {
	return IndexOf(t, v) >= 0
}

// True if every one of [vs] is held by some slot of [t]. Trivially true for no values.
func ContainsAll(t Tuple, vs ...any) bool {
	// fun.Reduce rejects a nil list
	if len(vs) == 0 {
		return true
	}
	return fun.Reduce(vs, true, func(v any, acc bool) bool {
		return acc && Contains(t, v)
	})
}

// Position of the first slot equal to [v], or -1.
func IndexOf(t Tuple, v any) int {
	for i, x := range t.Values() {
		if equal(x, v) {
			return i
		}
	}
	return -1
}

// Position of the last slot equal to [v], or -1.
func LastIndexOf(t Tuple, v any) int {
	values := t.Values()
	for i := len(values) - 1; i >= 0; i-- {
		if equal(values[i], v) {
			return i
		}
	}
	return -1
}

// Iterate the slots of [t] with their positions:
//
//	for pos, v := range tuple.All(p) {
//		fmt.Println(pos, v)
//	}
func All(t Tuple) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, v := range t.Values() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Renders [t] as `[v0, v1, ...]`.
func Format(t Tuple) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range t.Values() {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
