package pipes

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/emirpasic/gods/containers"
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-pipes/sequence"
	"github.com/hasbyte1/go-pipes/sortedset"
)

// Pipe is a handle over one ordered, immutable sequence of T.
//
// Every transformation returns a *new* Pipe over a freshly allocated
// sequence, leaving the receiver unchanged. A Pipe is safe for concurrent
// reads; the functions passed to its operations run on the caller's
// goroutine.
//
// # Creating a pipe
//
//	p := pipes.New(1, 2, 3)
//	p := pipes.From([]string{"a", "b"})
//	p := pipes.FromArray(arr[:])
//	p := pipes.FromSet(sortedset.New(3, 1, 2))
//
// The zero value is an empty Pipe ready to use.
type Pipe[T any] struct {
	seq sequence.Sequence[T]
	log *zerolog.Logger
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Pipe from a variadic list of items (copied).
func New[T any](items ...T) *Pipe[T] {
	return &Pipe[T]{seq: sequence.From(items)}
}

// From creates a Pipe from a slice (the slice is copied).
func From[T any](items []T) *Pipe[T] {
	return &Pipe[T]{seq: sequence.From(items)}
}

// FromArray creates a Pipe from a fixed-size array passed as arr[:].
// The elements are copied, so later writes to the array are not observed.
func FromArray[T any](arr []T) *Pipe[T] { return From(arr) }

// Own creates a Pipe that takes ownership of items without copying.
// The caller must not modify items afterwards.
func Own[T any](items []T) *Pipe[T] {
	return &Pipe[T]{seq: sequence.Own(items)}
}

// FromDeep creates a Pipe over deep copies of items, so that elements
// holding maps, slices or pointers share no state with the source.
// See [sequence.DeepCopy] for the copy rules.
func FromDeep[T any](items []T) *Pipe[T] {
	return &Pipe[T]{seq: sequence.DeepCopy(items)}
}

// FromSequence creates a Pipe over s without copying it.
func FromSequence[T any](s sequence.Sequence[T]) *Pipe[T] {
	return &Pipe[T]{seq: s}
}

// FromSet creates a Pipe holding the elements of s in ascending order.
func FromSet[T any](s *sortedset.Set[T]) *Pipe[T] {
	return &Pipe[T]{seq: sequence.Own(s.Values())}
}

// FromSeq drains seq into a new Pipe. seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) *Pipe[T] {
	return &Pipe[T]{seq: sequence.Own(slices.Collect(seq))}
}

// FromContainer creates a Pipe from any gods container (lists, tree sets,
// stacks, …), in the order returned by its Values method.
//
// A nil container yields an empty Pipe. Returns [ErrElementType] if an
// element is not a T.
//
//	set := treeset.NewWithIntComparator(3, 1, 2)
//	p, err := pipes.FromContainer[int](set) // → [1 2 3]
func FromContainer[T any](c containers.Container) (*Pipe[T], error) {
	if c == nil {
		return Empty[T](), nil
	}
	values := c.Values()
	items := make([]T, len(values))
	for i, v := range values {
		item, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T, want %T", ErrElementType, i, v, item)
		}
		items[i] = item
	}
	return Own(items), nil
}

// Empty creates an empty Pipe of type T.
func Empty[T any]() *Pipe[T] {
	return &Pipe[T]{}
}

// Clone returns a Pipe over deep copies of p's elements.
//
// Copying follows [sequence.DeepCopy]: exported fields, maps, slices and
// pointers are cloned, but unexported struct fields come back as their zero
// value. For element types with unexported state, share the immutable
// sequence instead with FromSequence(p.ToSequence()).
func (p *Pipe[T]) Clone() *Pipe[T] {
	return derive(p, "clone", sequence.DeepCopy(p.seq.Values()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & extraction
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of elements.
func (p *Pipe[T]) Size() int { return p.seq.Len() }

// IsEmpty reports whether the pipe holds no elements.
func (p *Pipe[T]) IsEmpty() bool { return p.seq.IsEmpty() }

// ToSlice returns a copy of the elements as a plain slice.
func (p *Pipe[T]) ToSlice() []T { return p.seq.Values() }

// ToSequence returns the backing sequence. Sequences are immutable, so no
// copy is made.
func (p *Pipe[T]) ToSequence() sequence.Sequence[T] { return p.seq }

// ToArray copies the elements into dst, which must have exactly Size()
// elements. Pass a fixed-size array as arr[:]:
//
//	var arr [3]int
//	err := pipes.New(1, 2, 3).ToArray(arr[:])
//
// Returns [ErrSizeMismatch] and leaves dst untouched when the lengths differ.
func (p *Pipe[T]) ToArray(dst []T) error {
	if len(dst) != p.seq.Len() {
		return fmt.Errorf("%w: pipe holds %d, destination holds %d", ErrSizeMismatch, p.seq.Len(), len(dst))
	}
	i := 0
	for item := range p.seq.All() {
		dst[i] = item
		i++
	}
	return nil
}

// All yields every element in order.
func (p *Pipe[T]) All() iter.Seq[T] { return p.seq.All() }

// ToJSON serialises the elements to a JSON array.
func (p *Pipe[T]) ToJSON() ([]byte, error) {
	return json.Marshal(p.seq.Values())
}

// String returns a JSON representation of the pipe.
// It implements [fmt.Stringer].
func (p *Pipe[T]) String() string {
	b, err := p.ToJSON()
	if err != nil {
		return p.seq.String()
	}
	return string(b)
}
