// Package sliceutil provides slice predicates and a bounded
// concurrent mapper.
package sliceutil

import (
	"github.com/samber/lo"
)

func Contains[T comparable](in []T, item T) bool {
	return lo.Contains(in, item)
}

func ContainsBy[T any](in []T, predicate func(item T) bool) bool {
	return lo.ContainsBy(in, predicate)
}

// All reports whether predicate holds for every item. True for an
// empty slice.
func All[T any](in []T, predicate func(item T) bool) bool {
	return lo.EveryBy(in, predicate)
}

// Any reports whether predicate holds for at least one item.
func Any[T any](in []T, predicate func(item T) bool) bool {
	return lo.SomeBy(in, predicate)
}

// None reports whether predicate holds for no item.
func None[T any](in []T, predicate func(item T) bool) bool {
	return lo.NoneBy(in, predicate)
}

// Unique returns in without duplicates, keeping first occurrences in
// order.
func Unique[T comparable](in []T) []T {
	return lo.Uniq(in)
}

// Chunk splits in into slices of at most size items.
func Chunk[T any](in []T, size int) [][]T {
	return lo.Chunk(in, size)
}

// Without returns in excluding all given items.
func Without[T comparable](in []T, exclude ...T) []T {
	return lo.Without(in, exclude...)
}
