package pipes

// This file contains package-level generic functions for operations that
// change the element type or need an ordering constraint on it.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	labels := pipes.Map(
//	    pipes.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-pipes/sequence"
	"github.com/hasbyte1/go-pipes/sortedset"
)

// Map applies fn to every element and returns a new Pipe[D] of the same
// length.
//
//	labels := pipes.Map(pipes.New(1, 2, 3), strconv.Itoa)
func Map[T, D any](p *Pipe[T], fn func(T) D) *Pipe[D] {
	b := sequence.NewBuilder[D](p.seq.Len())
	for item := range p.seq.All() {
		b.Append(fn(item))
	}
	return derive(p, "map", b.Build())
}

// FlatMap applies fn to every element and concatenates the resulting slices
// in source order.
//
//	words := pipes.FlatMap(pipes.New("hello world", "foo"), strings.Fields)
//	// → [hello world foo]
func FlatMap[T, D any](p *Pipe[T], fn func(T) []D) *Pipe[D] {
	b := sequence.NewBuilder[D](p.seq.Len())
	for item := range p.seq.All() {
		b.Append(fn(item)...)
	}
	return derive(p, "flatMap", b.Build())
}

// Collect folds p from left to right into a value of type D.
//
//	csv := pipes.Collect(pipes.New(1, 2, 3), "", func(acc string, n int) string {
//	    return acc + strconv.Itoa(n)
//	})
func Collect[T, D any](p *Pipe[T], seed D, combine func(acc D, item T) D) D {
	p.trace("collect")
	acc := seed
	for item := range p.seq.All() {
		acc = combine(acc, item)
	}
	return acc
}

// Max returns the largest element, or the zero value and false for an empty
// pipe. Among equal maxima the first one wins.
func Max[T constraints.Ordered](p *Pipe[T]) (T, bool) {
	p.trace("max")
	return extreme(p, func(item, best T) bool { return item > best })
}

// Min returns the smallest element, or the zero value and false for an empty
// pipe. Among equal minima the first one wins.
func Min[T constraints.Ordered](p *Pipe[T]) (T, bool) {
	p.trace("min")
	return extreme(p, func(item, best T) bool { return item < best })
}

// GroupBy groups elements by the key extracted by fn. Keys are ordered by
// their natural order; each group keeps its members in source order.
//
//	byFirst := pipes.GroupBy(pairs, func(p pipes.Pair[int, int]) int { return p.First })
func GroupBy[T any, K constraints.Ordered](p *Pipe[T], fn func(T) K) *GroupMap[K, T] {
	return GroupByFunc(p, fn, func(a, b K) bool { return a < b })
}

// GroupByFunc is like [GroupBy] for keys without a natural order: less
// defines the key order, and keys a, b are the same group when neither
// less(a, b) nor less(b, a) holds.
func GroupByFunc[T, K any](p *Pipe[T], fn func(T) K, less func(a, b K) bool) *GroupMap[K, T] {
	p.trace("groupBy")
	m := newGroupMap[K, T](less, p.log)
	for item := range p.seq.All() {
		m.add(fn(item), item)
	}
	return m
}

// ToSet returns the distinct elements as a map set. Iteration order of the
// result is unspecified.
func ToSet[T comparable](p *Pipe[T]) map[T]struct{} {
	p.trace("toSet")
	out := make(map[T]struct{}, p.seq.Len())
	for item := range p.seq.All() {
		out[item] = struct{}{}
	}
	return out
}

// ToSortedSet returns the distinct elements as an ordered set.
func ToSortedSet[T constraints.Ordered](p *Pipe[T]) *sortedset.Set[T] {
	p.trace("toSortedSet")
	return sortedset.New(p.seq.Values()...)
}
