// Every constructor in package tuple that rejects its input returns an error
// created by this package. All of them are invalid-argument errors; the
// specific reason can be tested with the `Is*(err) bool` functions.
//
// Nothing here is ever recovered internally: a failing constructor returns the
// zero tuple together with one of these errors.
package invalidarg

import (
	"errors"
	"fmt"
)

const (
	invalidArgument = "invalid_argument"
	nilSource       = "nil_source"
	wrongSize       = "wrong_size"
	shortfall       = "shortfall"
	excess          = "excess"
	outOfRange      = "out_of_range"
)

// Opaque error type. Use the functions in this package to create new instances
// and test them with the `Is*(err) bool` functions.
type S struct {
	short  string
	msg    string
	err    error
	got    int
	needed int
}

func (s *S) Error() string {
	if s.msg == "" {
		return fmt.Sprintf("INVALID{%s}", s.short)
	}
	return s.msg
}

func (s *S) Unwrap() error {
	return s.err
}

// Number of elements the source actually had. Only meaningful for wrong size
// and out of range reasons.
func (s *S) Got() int {
	return s.got
}

// Number of elements the tuple needed.
func (s *S) Needed() int {
	return s.needed
}

// private sentinels that get wrapped
var (
	nilSourceErr  = &S{short: nilSource, err: InvalidArgument}
	wrongSizeErr  = &S{short: wrongSize, err: InvalidArgument}
	shortfallErr  = &S{short: shortfall, err: InvalidArgument}
	excessErr     = &S{short: excess, err: InvalidArgument}
	outOfRangeErr = &S{short: outOfRange, err: InvalidArgument}
)

// Wrapped by every error this package creates.
var InvalidArgument = &S{short: invalidArgument}

// The source (slice, collection, iterator) was nil.
func NilSource(kind string) error {
	return &S{
		short: nilSource,
		msg:   fmt.Sprintf("%s cannot be nil", kind),
		err:   nilSourceErr,
	}
}

// A sized source had [got] elements where exactly [needed] were required to
// build a [name].
func WrongSize(kind string, name string, needed int, got int) error {
	return &S{
		short:  wrongSize,
		msg:    fmt.Sprintf("%s must have exactly %d %s in order to create a %s. Size is %d", kind, needed, elements(needed), name, got),
		err:    wrongSizeErr,
		got:    got,
		needed: needed,
	}
}

// An iterator was exhausted before [needed] elements were read.
func Shortfall(name string, needed int) error {
	return &S{
		short:  shortfall,
		msg:    fmt.Sprintf("not enough elements for creating a %s (%d needed)", name, needed),
		err:    shortfallErr,
		needed: needed,
	}
}

// An iterator still had elements after [needed] were read.
func Excess(name string, needed int) error {
	return &S{
		short:  excess,
		msg:    fmt.Sprintf("iterable must have exactly %d available %s in order to create a %s", needed, elements(needed), name),
		err:    excessErr,
		needed: needed,
	}
}

// Position [pos] is outside a tuple of [size] slots.
func OutOfRange(pos int, size int) error {
	return &S{
		short:  outOfRange,
		msg:    fmt.Sprintf("cannot retrieve position %d in a tuple of size %d", pos, size),
		err:    outOfRangeErr,
		got:    pos,
		needed: size,
	}
}

func elements(n int) string {
	if n == 1 {
		return "element"
	}
	return "elements"
}

// Tests to see if error is or wraps a *S. If not, returns nil
func To(e error) (err *S) {
	if errors.As(e, &err) {
		return err
	}
	return nil
}

func IsInvalidArgument(e error) bool {
	return errors.Is(e, InvalidArgument)
}

func IsNilSource(e error) bool {
	return errors.Is(e, nilSourceErr)
}

func IsWrongSize(e error) bool {
	return errors.Is(e, wrongSizeErr)
}

// Test if the source had too few elements
func IsShortfall(e error) bool {
	return errors.Is(e, shortfallErr)
}

// Test if the source had trailing elements
func IsExcess(e error) bool {
	return errors.Is(e, excessErr)
}

func IsOutOfRange(e error) bool {
	return errors.Is(e, outOfRangeErr)
}
