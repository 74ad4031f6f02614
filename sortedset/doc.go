// Package sortedset provides Set, an ordered collection of unique elements
// backed by a B-tree (github.com/google/btree).
//
// Iteration always runs in ascending order of the set's comparison:
//
//	s := sortedset.New(5, 1, 3, 1)
//	s.Values() // → [1 3 5]
//
// For element types without a natural order, supply a less function:
//
//	byLen := sortedset.NewFunc(func(a, b string) bool { return len(a) < len(b) })
//
// Two elements a and b are considered equal when neither less(a, b) nor
// less(b, a) holds.
package sortedset
