package tuple

import "github.com/uberbrodt/tuples/tuple/invalidarg"

// Builds a map keyed by slot 0. If a key repeats, the later pair wins.
func PairsToMap[K comparable, V any](pairs ...Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))

	for _, p := range pairs {
		m[p.val0] = p.val1
	}

	return m
}

// One pair per entry of [m], in no particular order.
func PairsFromMap[K comparable, V any](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))

	for k, v := range m {
		pairs = append(pairs, NewPair(k, v))
	}

	return pairs
}

// Zips [keys] and [vals] position by position. Both slices must have the same length.
func Zip[K, V any](keys []K, vals []V) ([]Pair[K, V], error) {
	if len(keys) != len(vals) {
		return nil, invalidarg.WrongSize("values slice", "Pair list", len(keys), len(vals))
	}

	pairs := make([]Pair[K, V], len(keys))
	for i := range keys {
		pairs[i] = NewPair(keys[i], vals[i])
	}

	return pairs, nil
}
