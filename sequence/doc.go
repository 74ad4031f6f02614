// Package sequence provides Sequence, the immutable ordered buffer that backs
// every pipes.Pipe.
//
// A Sequence has no mutating methods. Once built, its contents never change,
// so any number of pipes may reference the same Sequence without copying:
//
//	s := sequence.Of(1, 2, 3)
//	s.Len()            // → 3
//	v, ok := s.At(1)   // → 2, true
//	for v := range s.All() {
//	    fmt.Println(v)
//	}
//
// # Construction
//
// [Of] and [From] copy their input. [Own] takes ownership of a slice without
// copying; the caller must not read or write the slice afterwards. [DeepCopy]
// additionally clones reference-typed elements (maps, slices, pointers) so the
// Sequence shares no mutable state with its source.
//
// # Building
//
// [Builder] accumulates elements and hands its buffer to a new Sequence on
// [Builder.Build]. It is the only way to grow a Sequence in place.
package sequence
