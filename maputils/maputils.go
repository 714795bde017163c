// Package maputils provides small map helpers.
package maputils

import (
	"sort"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

func Keys[K comparable, V any](m map[K]V) []K {
	return lo.Keys(m)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func Values[K comparable, V any](m map[K]V) []V {
	return lo.Values(m)
}

// Filter returns a new map with the entries for which predicate holds.
func Filter[K comparable, V any](m map[K]V, predicate func(key K, value V) bool) map[K]V {
	return lo.PickBy(m, predicate)
}

// Merge returns a new map combining all given maps; later maps win on
// key conflicts.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	return lo.Assign(maps...)
}

// Invert returns a new map with keys and values swapped; on duplicate
// values the last key wins.
func Invert[K comparable, V comparable](m map[K]V) map[V]K {
	return lo.Invert(m)
}

// TransformValues returns a new map with every value replaced by the
// result of the transformer.
func TransformValues[K comparable, V any](m map[K]V, transform func(key K, value V) V) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = transform(k, v)
	}
	return result
}
