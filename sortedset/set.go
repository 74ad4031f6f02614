package sortedset

import (
	"iter"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// degree is the B-tree node degree used by every Set.
const degree = 16

// Set is an ordered set of unique T.
//
// The zero value is an empty set that can be read but not added to: its
// ordering is only known once built with [New] or [NewFunc]. A Set is not
// safe for concurrent mutation.
type Set[T any] struct {
	tree *btree.BTreeG[T]
}

// New creates a Set ordered by T's natural order, populated with items.
func New[T constraints.Ordered](items ...T) *Set[T] {
	return NewFunc(func(a, b T) bool { return a < b }, items...)
}

// NewFunc creates a Set ordered by less, populated with items.
// When items holds equal elements, the first one is kept.
func NewFunc[T any](less func(a, b T) bool, items ...T) *Set[T] {
	s := &Set[T]{tree: btree.NewG(degree, btree.LessFunc[T](less))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was not already present.
// An existing equal element is kept.
// It panics on a zero-value Set.
func (s *Set[T]) Add(item T) bool {
	if s.tree == nil {
		panic("sortedset: Add on a Set not created by New or NewFunc")
	}
	if s.tree.Has(item) {
		return false
	}
	s.tree.ReplaceOrInsert(item)
	return true
}

// Has reports whether an element equal to item is present.
func (s *Set[T]) Has(item T) bool { return s.tree != nil && s.tree.Has(item) }

// Delete removes item and reports whether it was present.
func (s *Set[T]) Delete(item T) bool {
	if s.tree == nil {
		return false
	}
	_, ok := s.tree.Delete(item)
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Min returns the smallest element, or the zero value and false when empty.
func (s *Set[T]) Min() (T, bool) {
	if s.tree == nil {
		var zero T
		return zero, false
	}
	return s.tree.Min()
}

// Max returns the largest element, or the zero value and false when empty.
func (s *Set[T]) Max() (T, bool) {
	if s.tree == nil {
		var zero T
		return zero, false
	}
	return s.tree.Max()
}

// All yields every element in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.tree == nil {
			return
		}
		s.tree.Ascend(func(item T) bool { return yield(item) })
	}
}

// Values returns the elements in ascending order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.Len())
	if s.tree == nil {
		return out
	}
	s.tree.Ascend(func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}
