package tuple_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/uberbrodt/tuples/tuple"
	"github.com/uberbrodt/tuples/tuple/invalidarg"
)

type point struct {
	x, y int
}

func TestValueAt(t *testing.T) {
	p := tuple.NewPair("a", 1)

	v, err := tuple.ValueAt(p, 1)
	assert.NilError(t, err)
	assert.Equal(t, v, 1)

	_, err = tuple.ValueAt(p, 2)
	assert.Assert(t, invalidarg.IsOutOfRange(err))
	assert.Error(t, err, "cannot retrieve position 2 in a tuple of size 2")

	_, err = tuple.ValueAt(tuple.NewUnit(1), -1)
	assert.Assert(t, invalidarg.IsOutOfRange(err))
}

func TestContains(t *testing.T) {
	p := tuple.NewPair(point{1, 2}, []string{"a"})

	assert.Assert(t, tuple.Contains(p, point{1, 2}))
	assert.Assert(t, tuple.Contains(p, []string{"a"}))
	assert.Assert(t, !tuple.Contains(p, point{2, 1}))
	// different dynamic type
	assert.Assert(t, !tuple.Contains(tuple.NewUnit(int64(1)), 1))
}

func TestContainsAll(t *testing.T) {
	p := tuple.NewPair("a", "b")

	assert.Assert(t, tuple.ContainsAll(p, "b", "a"))
	assert.Assert(t, tuple.ContainsAll(p))
	assert.Assert(t, !tuple.ContainsAll(p, "a", "c"))
}

func TestContainsAll_NoValues(t *testing.T) {
	p := tuple.NewPair("a", "b")

	assert.Assert(t, tuple.ContainsAll(p, []any(nil)...))
	assert.Assert(t, tuple.ContainsAll(p, []any{}...))
	assert.Assert(t, tuple.ContainsAll(tuple.NewUnit(1)))
}

func TestIndexOf(t *testing.T) {
	p := tuple.NewPair(7, 7)

	assert.Equal(t, tuple.IndexOf(p, 7), 0)
	assert.Equal(t, tuple.LastIndexOf(p, 7), 1)
	assert.Equal(t, tuple.IndexOf(p, 8), -1)
	assert.Equal(t, tuple.LastIndexOf(p, 8), -1)
}

func TestIndexOf_NilSlot(t *testing.T) {
	var s *string
	p := tuple.NewPair("a", s)

	assert.Equal(t, tuple.IndexOf(p, s), 1)
}

func TestAll(t *testing.T) {
	var got []any
	for pos, v := range tuple.All(tuple.NewPair("a", 1)) {
		assert.Equal(t, pos, len(got))
		got = append(got, v)
	}
	assert.DeepEqual(t, got, []any{"a", 1})
}

func TestAll_Break(t *testing.T) {
	count := 0
	for range tuple.All(tuple.NewPair("a", 1)) {
		count++
		break
	}
	assert.Equal(t, count, 1)
}

func TestValues_IsACopy(t *testing.T) {
	p := tuple.NewPair("a", 1)

	vs := p.Values()
	vs[0] = "z"

	assert.Equal(t, p.Value0(), "a")
}
