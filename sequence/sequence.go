package sequence

import (
	"fmt"
	"iter"

	"github.com/mohae/deepcopy"
)

// Sequence is an ordered, finite, read-only list of T.
//
// The zero value is an empty Sequence ready to use.
type Sequence[T any] struct {
	items []T
}

// Of creates a Sequence from a variadic list of items (copied).
func Of[T any](items ...T) Sequence[T] {
	return From(items)
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return Sequence[T]{items: dst}
}

// Own wraps items without copying. Ownership of the slice moves to the
// Sequence: the caller must not modify items afterwards.
func Own[T any](items []T) Sequence[T] {
	return Sequence[T]{items: items}
}

// DeepCopy creates a Sequence whose elements are deep copies of items.
//
// Copying follows github.com/mohae/deepcopy: exported struct fields, maps,
// slices and pointers are cloned recursively; unexported struct fields are
// left at their zero value.
func DeepCopy[T any](items []T) Sequence[T] {
	if len(items) == 0 {
		return Sequence[T]{}
	}
	return Sequence[T]{items: deepcopy.Copy(items).([]T)}
}

// Len returns the number of elements.
func (s Sequence[T]) Len() int { return len(s.items) }

// IsEmpty reports whether s has no elements.
func (s Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// At returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s Sequence[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// First returns the first element, or the zero value and false when empty.
func (s Sequence[T]) First() (T, bool) { return s.At(0) }

// Last returns the last element, or the zero value and false when empty.
func (s Sequence[T]) Last() (T, bool) { return s.At(len(s.items) - 1) }

// Values returns a copy of the elements as a plain slice.
func (s Sequence[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Slice returns a new Sequence holding a copy of the elements in [lo, hi).
// Both bounds are clamped into [0, Len()]; hi below lo yields an empty
// Sequence.
func (s Sequence[T]) Slice(lo, hi int) Sequence[T] {
	lo = max(0, min(lo, len(s.items)))
	hi = max(lo, min(hi, len(s.items)))
	return From(s.items[lo:hi])
}

// String renders the elements the way fmt prints a slice, e.g. "[1 2 3]".
func (s Sequence[T]) String() string { return fmt.Sprint(s.items) }

// All yields every element in order.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward yields every element from last to first.
func (s Sequence[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Equal reports whether s and other hold the same elements in the same order
// according to eq.
func (s Sequence[T]) Equal(other Sequence[T], eq func(a, b T) bool) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if !eq(s.items[i], other.items[i]) {
			return false
		}
	}
	return true
}
