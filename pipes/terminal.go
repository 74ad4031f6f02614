package pipes

import (
	"fmt"
	"strings"
)

// ForEach calls fn for every element in order.
func (p *Pipe[T]) ForEach(fn func(T)) {
	p.trace("forEach")
	for item := range p.seq.All() {
		fn(item)
	}
}

// Collect folds the elements from left to right, starting from seed:
// acc = combine(acc, element) for each element.
//
// For folds that change the type, use the package-level [Collect] function.
func (p *Pipe[T]) Collect(seed T, combine func(acc, item T) T) T {
	return Collect(p, seed, combine)
}

// Find returns the first element satisfying fn.
// Returns the zero value and false when no element matches.
func (p *Pipe[T]) Find(fn func(T) bool) (T, bool) {
	p.trace("find")
	for item := range p.seq.All() {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Exists reports whether at least one element satisfies fn.
// It stops at the first match.
func (p *Pipe[T]) Exists(fn func(T) bool) bool {
	p.trace("exists")
	for item := range p.seq.All() {
		if fn(item) {
			return true
		}
	}
	return false
}

// ForAll reports whether every element satisfies fn. It stops at the first
// failure and is true for an empty pipe.
func (p *Pipe[T]) ForAll(fn func(T) bool) bool {
	p.trace("forAll")
	for item := range p.seq.All() {
		if !fn(item) {
			return false
		}
	}
	return true
}

// MaxFunc returns the largest element according to cmp, which reports a
// negative number when a < b, zero when equal and a positive number when
// a > b. Among equal maxima the first one wins.
// Returns the zero value and false when the pipe is empty.
func (p *Pipe[T]) MaxFunc(cmp func(a, b T) int) (T, bool) {
	p.trace("max")
	return extreme(p, func(item, best T) bool { return cmp(item, best) > 0 })
}

// MinFunc returns the smallest element according to cmp. Among equal
// minima the first one wins.
// Returns the zero value and false when the pipe is empty.
func (p *Pipe[T]) MinFunc(cmp func(a, b T) int) (T, bool) {
	p.trace("min")
	return extreme(p, func(item, best T) bool { return cmp(item, best) < 0 })
}

// Join renders every element with fmt.Sprint and concatenates them with sep
// between consecutive elements. An empty pipe yields "".
func (p *Pipe[T]) Join(sep string) string {
	return p.JoinFunc(sep, func(item T) string { return fmt.Sprint(item) })
}

// JoinFunc is like [Pipe.Join] but renders each element with fn.
func (p *Pipe[T]) JoinFunc(sep string, fn func(T) string) string {
	p.trace("join")
	var sb strings.Builder
	first := true
	for item := range p.seq.All() {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		sb.WriteString(fn(item))
	}
	return sb.String()
}

// Partition splits the elements into those satisfying fn and the rest,
// both in source order.
func (p *Pipe[T]) Partition(fn func(T) bool) PartitionResult[T] {
	p.trace("partition")
	return partition(p, fn)
}

// extreme seeds the candidate with the first element and replaces it only
// when better(item, candidate) holds.
func extreme[T any](p *Pipe[T], better func(item, best T) bool) (T, bool) {
	best, ok := p.seq.First()
	if !ok {
		return best, false
	}
	for item := range p.seq.All() {
		if better(item, best) {
			best = item
		}
	}
	return best, true
}
