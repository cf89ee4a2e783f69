/*
* This package provides checks for comparing tuples in tests. Every function
* reports through [gotest.tools/v3/assert.Check] and returns whether it passed,
* so a test can keep going after a failed check and chain several of them.
 */
package tupletest

import (
	"reflect"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/uberbrodt/tuples/tuple"
	"github.com/uberbrodt/tuples/tuple/invalidarg"
)

var allowUnexported = gocmp.Exporter(func(reflect.Type) bool { return true })

// returns false if any item in [checks] fails.
func Chain(t *testing.T, checks ...bool) bool {
	t.Helper()
	for idx, check := range checks {
		if !check {
			t.Logf("[tupletest.Chain] check #%d failed\n", idx)
			return check
		}
	}
	return true
}

// Compares the slots of [actual] with [expected], in order, using [go-cmp/cmp].
func Values(t *testing.T, actual tuple.Tuple, expected ...any) bool {
	t.Helper()
	return assert.Check(t, cmp.DeepEqual(actual.Values(), expected, allowUnexported))
}

func Size(t *testing.T, actual tuple.Tuple, expected int) bool {
	t.Helper()
	return assert.Check(t, cmp.Equal(actual.Size(), expected))
}

// Compares two tuples of the same type, unexported slots included.
func DeepEqual[T tuple.Tuple](t *testing.T, actual, expected T, opts ...gocmp.Option) bool {
	t.Helper()
	opts = append(opts, allowUnexported)
	return assert.Check(t, cmp.DeepEqual(actual, expected, opts...))
}

// returns true if [e] is an invalid-argument error
func InvalidArgument(t *testing.T, e error, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Check(t, invalidarg.IsInvalidArgument(e), msgAndArgs...)
}

// returns true if [e] is an invalid-argument error and its message is [expected]
func InvalidArgumentError(t *testing.T, e error, expected string) bool {
	t.Helper()
	return Chain(t,
		InvalidArgument(t, e),
		assert.Check(t, cmp.Error(e, expected)),
	)
}
