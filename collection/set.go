// Package collection provides mutable generic sets for in-process
// bookkeeping. For the immutable, string-encodable set used in query
// strings see the delimset package.
package collection

// Set is the common surface of the hash-backed and the
// insertion-ordered implementations.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertSlice(items []T) (modified bool)
	InsertSet(other Set[T]) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
}

// SubsetOf reports whether every item of s is contained in other.
func SubsetOf[T comparable](s, other Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for _, item := range s.Items() {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Overlaps reports whether s and other share at least one item.
func Overlaps[T comparable](s, other Set[T]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, item := range small.Items() {
		if large.Has(item) {
			return true
		}
	}
	return false
}

// Equal reports whether s and other contain exactly the same items.
func Equal[T comparable](s, other Set[T]) bool {
	return s.Len() == other.Len() && SubsetOf(s, other)
}
