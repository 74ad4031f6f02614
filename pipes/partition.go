package pipes

import "github.com/hasbyte1/go-pipes/sequence"

// PartitionResult is the outcome of [Pipe.Partition]: the elements that
// satisfied the predicate and those that did not, each in source order.
type PartitionResult[T any] struct {
	Satisfies    sequence.Sequence[T]
	NotSatisfies sequence.Sequence[T]
}

// Len returns the combined number of elements, which always equals the size
// of the partitioned pipe.
func (r PartitionResult[T]) Len() int {
	return r.Satisfies.Len() + r.NotSatisfies.Len()
}

// Pipes returns both halves as pipes, satisfying half first.
func (r PartitionResult[T]) Pipes() (*Pipe[T], *Pipe[T]) {
	return FromSequence(r.Satisfies), FromSequence(r.NotSatisfies)
}

func partition[T any](p *Pipe[T], fn func(T) bool) PartitionResult[T] {
	pass := sequence.NewBuilder[T](0)
	fail := sequence.NewBuilder[T](0)
	for item := range p.seq.All() {
		if fn(item) {
			pass.Append(item)
		} else {
			fail.Append(item)
		}
	}
	return PartitionResult[T]{Satisfies: pass.Build(), NotSatisfies: fail.Build()}
}
