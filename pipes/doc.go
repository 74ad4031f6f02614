// Package pipes provides Pipe, a generic, fluent wrapper for transforming
// finite in-memory collections.
//
// # Overview
//
// A [Pipe][T] wraps one ordered, immutable [sequence.Sequence][T] and exposes
// a chainable API of transformations and terminal operations:
//
//	doubledEvens := pipes.New(1, 2, 3, 4, 5).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Map(func(n int) int { return n * 2 }).
//	    ToSlice() // → [4 8]
//
// # Eager, copy-producing stages
//
// Every transformation (Filter, Take, Drop, TakeWhile, DropWhile, Reverse,
// Map, FlatMap) reads the current sequence in full and returns a *new* Pipe
// over a freshly allocated sequence. No stage mutates its input. Each stage
// costs O(n) time and allocation.
//
// Because a Sequence has no mutating operations, [FromSequence] may wrap an
// existing Sequence without copying: two pipes sharing one Sequence can never
// observe each other.
//
// # Sources
//
// Pipes are built from slices and fixed-size arrays ([New], [From],
// [FromArray], [Own]), ordered sets ([FromSet]), iterators ([FromSeq]),
// gods containers ([FromContainer]) and sequences ([FromSequence]). The
// source's own iteration order is preserved.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type or need an ordering constraint are
// package-level functions:
//
//	lens := pipes.Map(pipes.New("a", "bb"), func(s string) int { return len(s) })
//	groups := pipes.GroupBy(pairs, func(p pipes.Pair[int, int]) int { return p.First })
//	top, ok := pipes.Max(lens)
//
// Package-level functions: [Map], [FlatMap], [Collect], [GroupBy],
// [GroupByFunc], [Max], [Min], [ToSet], [ToSortedSet], [FromContainer].
//
// # Empty results
//
// Operations that may have no answer (Find, Max, Min and their Func variants)
// return (T, bool); false means "no result", never an error. The only
// fallible extraction is [Pipe.ToArray], which reports [ErrSizeMismatch].
//
// # Tracing
//
// Attach a zerolog logger with [Pipe.WithLogger] to record every stage at
// debug level. The logger follows the pipe through all derived pipes.
package pipes
