package maps

import (
	"cmp"
	"slices"
)

// Keys returns the keys of `m` in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)
	return keys
}

// Difference returns the sorted keys of `a` that are not keys of `b`.
func Difference[K cmp.Ordered, A any, B any](a map[K]A, b map[K]B) []K {
	out := make([]K, 0)

	for _, k := range Keys(a) {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}

	return out
}
