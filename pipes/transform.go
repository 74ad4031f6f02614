package pipes

import "github.com/hasbyte1/go-pipes/sequence"

// Filter returns a new pipe with only the elements for which fn returns true,
// in their original order.
func (p *Pipe[T]) Filter(fn func(T) bool) *Pipe[T] {
	b := sequence.NewBuilder[T](p.seq.Len())
	for item := range p.seq.All() {
		if fn(item) {
			b.Append(item)
		}
	}
	return derive(p, "filter", b.Build())
}

// Reject returns a new pipe with the elements for which fn returns true
// removed. It is the complement of [Pipe.Filter].
func (p *Pipe[T]) Reject(fn func(T) bool) *Pipe[T] {
	return p.Filter(func(item T) bool { return !fn(item) })
}

// Map returns a new pipe with each element replaced by fn(element).
//
// For transformation to a different element type, use the package-level
// [Map] function instead.
func (p *Pipe[T]) Map(fn func(T) T) *Pipe[T] { return Map(p, fn) }

// FlatMap replaces each element with the elements of fn(element), flattened
// one level in source order.
//
// For flat-mapping to a different element type, use the package-level
// [FlatMap] function.
func (p *Pipe[T]) FlatMap(fn func(T) []T) *Pipe[T] { return FlatMap(p, fn) }

// Take returns the first n elements. A negative n yields an empty pipe;
// an n beyond Size() yields every element.
func (p *Pipe[T]) Take(n int) *Pipe[T] {
	n = clamp(n, 0, p.seq.Len())
	return derive(p, "take", p.seq.Slice(0, n))
}

// Drop returns every element after the first n. The count is clamped the
// same way as [Pipe.Take].
func (p *Pipe[T]) Drop(n int) *Pipe[T] {
	n = clamp(n, 0, p.seq.Len())
	return derive(p, "drop", p.seq.Slice(n, p.seq.Len()))
}

// TakeWhile returns the longest prefix whose elements all satisfy fn.
// The first failing element and everything after it are excluded.
func (p *Pipe[T]) TakeWhile(fn func(T) bool) *Pipe[T] {
	b := sequence.NewBuilder[T](p.seq.Len())
	for item := range p.seq.All() {
		if !fn(item) {
			break
		}
		b.Append(item)
	}
	return derive(p, "takeWhile", b.Build())
}

// DropWhile skips elements from the start while fn holds. Once fn fails,
// that element and every later element are kept, whether or not they
// satisfy fn.
func (p *Pipe[T]) DropWhile(fn func(T) bool) *Pipe[T] {
	b := sequence.NewBuilder[T](p.seq.Len())
	taking := false
	for item := range p.seq.All() {
		if !taking && fn(item) {
			continue
		}
		taking = true
		b.Append(item)
	}
	return derive(p, "dropWhile", b.Build())
}

// Reverse returns a new pipe with the elements in reverse order.
func (p *Pipe[T]) Reverse() *Pipe[T] {
	b := sequence.NewBuilder[T](p.seq.Len())
	for item := range p.seq.Backward() {
		b.Append(item)
	}
	return derive(p, "reverse", b.Build())
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
