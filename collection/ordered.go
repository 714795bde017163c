package collection

import (
	"github.com/denismitr/dll"
)

// Ordered is a set that iterates in insertion order.
type Ordered[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*Ordered[int])(nil)

func NewOrdered[T comparable](items ...T) *Ordered[T] {
	s := &Ordered[T]{
		m:    make(map[T]*dll.Element[T], len(items)),
		list: dll.New[T](),
	}
	s.InsertSlice(items)
	return s
}

func (s *Ordered[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		el := dll.NewElement(item)
		s.m[item] = el
		s.list.PushTail(el)
		modified = true
	}

	return modified
}

func (s *Ordered[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *Ordered[T]) InsertSet(other Set[T]) (modified bool) {
	for _, item := range other.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *Ordered[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *Ordered[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *Ordered[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *Ordered[T]) Len() int {
	return len(s.m)
}

func (s *Ordered[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

// Union returns a new set holding the items of s followed by the
// items of other that s does not contain, preserving insertion order.
func (s *Ordered[T]) Union(other Set[T]) *Ordered[T] {
	result := NewOrdered(s.Items()...)
	result.InsertSet(other)
	return result
}

// Intersect returns a new set with the items present in both s and
// other, in s's insertion order.
func (s *Ordered[T]) Intersect(other Set[T]) *Ordered[T] {
	result := NewOrdered[T]()
	for _, item := range s.Items() {
		if other.Has(item) {
			result.Insert(item)
		}
	}
	return result
}

// Difference returns a new set with the items of s not present in
// other, in s's insertion order.
func (s *Ordered[T]) Difference(other Set[T]) *Ordered[T] {
	result := NewOrdered[T]()
	for _, item := range s.Items() {
		if !other.Has(item) {
			result.Insert(item)
		}
	}
	return result
}
