package pipes

import (
	"iter"

	"github.com/google/btree"
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-pipes/sequence"
)

const groupDegree = 8

type group[K, T any] struct {
	key   K
	items []T
}

// GroupMap maps keys to the ordered elements sharing that key. Keys are
// unique and iterate in ascending key order, not first-appearance order.
//
// A GroupMap is built by [GroupBy] or [GroupByFunc] and never changes
// afterwards.
type GroupMap[K, T any] struct {
	tree *btree.BTreeG[*group[K, T]]
	log  *zerolog.Logger
}

func newGroupMap[K, T any](less func(a, b K) bool, log *zerolog.Logger) *GroupMap[K, T] {
	return &GroupMap[K, T]{
		tree: btree.NewG[*group[K, T]](groupDegree, func(a, b *group[K, T]) bool { return less(a.key, b.key) }),
		log:  log,
	}
}

func (m *GroupMap[K, T]) add(key K, item T) {
	if g, ok := m.tree.Get(&group[K, T]{key: key}); ok {
		g.items = append(g.items, item)
		return
	}
	m.tree.ReplaceOrInsert(&group[K, T]{key: key, items: []T{item}})
}

// Len returns the number of distinct keys.
func (m *GroupMap[K, T]) Len() int { return m.tree.Len() }

// Total returns the number of elements across all groups.
func (m *GroupMap[K, T]) Total() int {
	total := 0
	m.tree.Ascend(func(g *group[K, T]) bool {
		total += len(g.items)
		return true
	})
	return total
}

// Keys returns the keys in ascending order.
func (m *GroupMap[K, T]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Ascend(func(g *group[K, T]) bool {
		keys = append(keys, g.key)
		return true
	})
	return keys
}

// Get returns the group for key together with a presence flag.
func (m *GroupMap[K, T]) Get(key K) (sequence.Sequence[T], bool) {
	g, ok := m.tree.Get(&group[K, T]{key: key})
	if !ok {
		return sequence.Sequence[T]{}, false
	}
	return sequence.Own(g.items), true
}

// Group returns the group for key as a Pipe, empty when key is absent.
func (m *GroupMap[K, T]) Group(key K) *Pipe[T] {
	s, _ := m.Get(key)
	return &Pipe[T]{seq: s, log: m.log}
}

// All yields every key and its group in ascending key order.
func (m *GroupMap[K, T]) All() iter.Seq2[K, sequence.Sequence[T]] {
	return func(yield func(K, sequence.Sequence[T]) bool) {
		m.tree.Ascend(func(g *group[K, T]) bool {
			return yield(g.key, sequence.Own(g.items))
		})
	}
}

// Entries returns every key and its group as pairs, in ascending key order.
func (m *GroupMap[K, T]) Entries() []Pair[K, sequence.Sequence[T]] {
	out := make([]Pair[K, sequence.Sequence[T]], 0, m.tree.Len())
	for k, s := range m.All() {
		out = append(out, Pair[K, sequence.Sequence[T]]{First: k, Second: s})
	}
	return out
}
