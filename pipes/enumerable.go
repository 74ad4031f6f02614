package pipes

// Enumerable is the read-side interface satisfied by [Pipe][T].
//
// Accept Enumerable in your own functions so that callers can pass a Pipe
// or an alternative implementation without depending on the concrete type.
type Enumerable[T any] interface {
	// ToSlice returns a copy of every element as a plain Go slice.
	ToSlice() []T

	// Size returns the number of elements.
	Size() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// ForEach calls fn for every element in order.
	ForEach(fn func(T))

	// Find returns the first element satisfying fn.
	Find(fn func(T) bool) (T, bool)

	// Exists reports whether at least one element satisfies fn.
	Exists(fn func(T) bool) bool

	// ForAll reports whether every element satisfies fn.
	ForAll(fn func(T) bool) bool
}
