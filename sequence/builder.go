package sequence

// Builder accumulates elements for a new Sequence.
//
//	b := sequence.NewBuilder[int](3)
//	b.Append(1, 2)
//	b.Append(3)
//	s := b.Build() // → [1 2 3]
//
// A Builder is not safe for concurrent use.
type Builder[T any] struct {
	items []T
}

// NewBuilder returns a Builder with room for capacity elements.
// A negative capacity is treated as 0.
func NewBuilder[T any](capacity int) *Builder[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder[T]{items: make([]T, 0, capacity)}
}

// Append adds items to the end of the pending Sequence.
func (b *Builder[T]) Append(items ...T) {
	b.items = append(b.items, items...)
}

// Len returns the number of elements appended since the last Build.
func (b *Builder[T]) Len() int { return len(b.items) }

// Build hands the accumulated buffer to a new Sequence and resets b.
// Later appends never reach the returned Sequence.
func (b *Builder[T]) Build() Sequence[T] {
	s := Sequence[T]{items: b.items}
	b.items = nil
	return s
}
