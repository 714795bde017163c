package collection

// Hash is an unordered set backed by a map.
type Hash[T comparable] struct {
	m map[T]struct{}
}

var _ Set[int] = (*Hash[int])(nil)

func NewHash[T comparable](items ...T) *Hash[T] {
	s := &Hash[T]{m: make(map[T]struct{}, len(items))}
	s.InsertSlice(items)
	return s
}

func (s *Hash[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *Hash[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *Hash[T]) InsertSet(other Set[T]) (modified bool) {
	for _, item := range other.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *Hash[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *Hash[T]) Clear() {
	s.m = make(map[T]struct{})
}

func (s *Hash[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *Hash[T]) Len() int {
	return len(s.m)
}

func (s *Hash[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// Union returns a new set with the items of both s and other.
func (s *Hash[T]) Union(other Set[T]) *Hash[T] {
	result := NewHash(s.Items()...)
	result.InsertSet(other)
	return result
}

// Intersect returns a new set with the items present in both s and other.
func (s *Hash[T]) Intersect(other Set[T]) *Hash[T] {
	result := NewHash[T]()
	for item := range s.m {
		if other.Has(item) {
			result.Insert(item)
		}
	}
	return result
}

// Difference returns a new set with the items of s not present in other.
func (s *Hash[T]) Difference(other Set[T]) *Hash[T] {
	result := NewHash[T]()
	for item := range s.m {
		if !other.Has(item) {
			result.Insert(item)
		}
	}
	return result
}
