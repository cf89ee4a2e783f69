package tuple

import (
	"iter"
	"slices"

	"github.com/uberbrodt/tuples/tuple/invalidarg"
)

// A sized source of elements. The tuple constructors check [Len] before
// reading anything from [All].
type Collection[X any] interface {
	Len() int
	All() iter.Seq[X]
}

// Adapts a slice to [Collection].
type SliceCollection[X any] []X

func (s SliceCollection[X]) Len() int {
	return len(s)
}

func (s SliceCollection[X]) All() iter.Seq[X] {
	return slices.Values(s)
}

// Reads len(dst) elements from [seq] into [dst] after skipping [index] of them.
// Every arity builds itself from a sequence through here.
//
// When [exact] is set, the sequence must hold exactly index+len(dst) elements:
// a shortfall is reported before any check for trailing elements. When it is
// not, fill never fails and never pulls past the window it needs; slots it
// could not read keep their zero value.
func fill[X any](seq iter.Seq[X], index int, dst []X, exact bool, name string) error {
	if seq == nil {
		return invalidarg.NilSource("iterable")
	}

	next, stop := iter.Pull(seq)
	defer stop()

	tooFew := false

	for i := 0; i < index; i++ {
		if _, ok := next(); !ok {
			tooFew = true
			break
		}
	}

	for i := range dst {
		if tooFew {
			break
		}
		v, ok := next()
		if !ok {
			tooFew = true
			break
		}
		dst[i] = v
	}

	if !exact {
		if tooFew {
			DebugPrintf("%s built from a short iterable at offset %d, missing slots left empty", name, index)
		}
		return nil
	}

	if tooFew {
		return invalidarg.Shortfall(name, len(dst))
	}

	if _, ok := next(); ok {
		return invalidarg.Excess(name, len(dst))
	}

	return nil
}

func fromSlice[X any](s []X, kind string, name string, n int) error {
	if s == nil {
		return invalidarg.NilSource(kind)
	}
	if len(s) != n {
		return invalidarg.WrongSize(kind, name, n, len(s))
	}
	return nil
}

func fromCollection[X any](c Collection[X], dst []X, name string) error {
	if c == nil {
		return invalidarg.NilSource("collection")
	}
	if c.Len() != len(dst) {
		return invalidarg.WrongSize("collection", name, len(dst), c.Len())
	}
	return fill(c.All(), 0, dst, true, name)
}
