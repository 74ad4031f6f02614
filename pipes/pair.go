package pipes

import "fmt"

// Pair holds two values of possibly different types.
// [GroupMap.Entries] returns one Pair per key, with the group as Second.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Unpack returns both values, for use in multi-value assignments:
//
//	key, group := entry.Unpack()
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
