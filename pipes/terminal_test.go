package pipes_test

import (
	"cmp"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-pipes/pipes"
)

// ranked carries an id so tie-breaking between equal ranks is observable.
type ranked struct {
	Rank int
	ID   string
}

func byRank(a, b ranked) int { return cmp.Compare(a.Rank, b.Rank) }

func TestForEach(t *testing.T) {
	sum := 0
	var order []int
	ints(1, 2, 3, 4, 5).ForEach(func(n int) {
		sum += n
		order = append(order, n)
	})
	assert.Equal(t, 15, sum)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
}

func TestCollect(t *testing.T) {
	sum := ints(1, 2, 3, 4, 5).Collect(0, func(acc, n int) int { return acc + n })
	assert.Equal(t, 15, sum)
	assert.Equal(t, 7, pipes.Empty[int]().Collect(7, func(acc, n int) int { return acc + n }))
}

func TestCollectFunc_LeftFold(t *testing.T) {
	got := pipes.Collect(ints(1, 2, 3), "", func(acc string, n int) string {
		return fmt.Sprintf("(%s+%d)", acc, n)
	})
	assert.Equal(t, "(((+1)+2)+3)", got)
}

func TestFind(t *testing.T) {
	first, ok := ints(1, 2, 3, 4, 5).Find(isEven)
	require.True(t, ok)
	assert.Equal(t, 2, first)

	_, ok = ints(1, 2, 3, 4, 5).Find(func(n int) bool { return n > 10 })
	assert.False(t, ok)

	_, ok = pipes.Empty[int]().Find(isEven)
	assert.False(t, ok)
}

func TestExists(t *testing.T) {
	p := ints(1, 2, 3, 4, 5)
	assert.True(t, p.Exists(isEven))
	assert.False(t, p.Exists(func(n int) bool { return n == 0 }))
	assert.False(t, pipes.Empty[int]().Exists(isEven))
}

func TestExists_ShortCircuits(t *testing.T) {
	calls := 0
	ints(2, 4, 6).Exists(func(n int) bool {
		calls++
		return isEven(n)
	})
	assert.Equal(t, 1, calls)
}

func TestForAll(t *testing.T) {
	p := ints(1, 2, 3, 4, 5)
	assert.True(t, p.ForAll(func(n int) bool { return n < 10 }))
	assert.False(t, p.ForAll(isEven))
	assert.True(t, pipes.Empty[int]().ForAll(func(int) bool { return false }))
}

func TestForAll_ShortCircuits(t *testing.T) {
	calls := 0
	ints(1, 2, 3).ForAll(func(n int) bool {
		calls++
		return isEven(n)
	})
	assert.Equal(t, 1, calls)
}

func TestMaxMin(t *testing.T) {
	for _, s := range samples {
		p := pipes.From(s)
		hi, okHi := pipes.Max(p)
		lo, okLo := pipes.Min(p)
		assert.Equal(t, len(s) > 0, okHi)
		assert.Equal(t, len(s) > 0, okLo)
		if len(s) == 0 {
			continue
		}
		assert.Contains(t, s, hi)
		assert.Contains(t, s, lo)
		for _, v := range s {
			assert.LessOrEqual(t, v, hi)
			assert.GreaterOrEqual(t, v, lo)
		}
	}
}

func TestMaxMin_Empty(t *testing.T) {
	_, ok := pipes.Max(pipes.Empty[int]())
	assert.False(t, ok)
	_, ok = pipes.Min(pipes.Empty[int]())
	assert.False(t, ok)
	_, ok = pipes.Empty[ranked]().MaxFunc(byRank)
	assert.False(t, ok)
	_, ok = pipes.Empty[ranked]().MinFunc(byRank)
	assert.False(t, ok)
}

func TestMaxFunc_FirstWinsOnTie(t *testing.T) {
	p := pipes.New(
		ranked{1, "a"}, ranked{3, "b"}, ranked{0, "c"}, ranked{3, "d"},
	)
	best, ok := p.MaxFunc(byRank)
	require.True(t, ok)
	assert.Equal(t, ranked{3, "b"}, best)
}

func TestMinFunc_FirstWinsOnTie(t *testing.T) {
	p := pipes.New(
		ranked{2, "a"}, ranked{1, "b"}, ranked{5, "c"}, ranked{1, "d"},
	)
	least, ok := p.MinFunc(byRank)
	require.True(t, ok)
	assert.Equal(t, ranked{1, "b"}, least)
}

func TestMax_NaNNeverReplaces(t *testing.T) {
	hi, ok := pipes.Max(pipes.New(1.5, math.NaN(), 2.5))
	require.True(t, ok)
	assert.Equal(t, 2.5, hi)
}

func TestMaxMin_Strings(t *testing.T) {
	p := pipes.New("pear", "apple", "zucchini")
	hi, _ := pipes.Max(p)
	lo, _ := pipes.Min(p)
	assert.Equal(t, "zucchini", hi)
	assert.Equal(t, "apple", lo)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "12345", ints(1, 2, 3, 4, 5).Join(""))
	assert.Equal(t, "1, 2, 3", ints(1, 2, 3).Join(", "))
	assert.Equal(t, "7", ints(7).Join(", "))
}

func TestJoin_Empty(t *testing.T) {
	for _, sep := range []string{"", ", ", "--"} {
		assert.Equal(t, "", pipes.Empty[int]().Join(sep))
	}
}

func TestJoin_Stringer(t *testing.T) {
	p := pipes.New(pipes.Pair[int, string]{First: 1, Second: "a"})
	assert.Equal(t, "(1, a)", p.Join(";"))
}

func TestJoinFunc(t *testing.T) {
	got := ints(1, 2, 3).JoinFunc("|", func(n int) string { return fmt.Sprintf("#%d", n) })
	assert.Equal(t, "#1|#2|#3", got)
}

func TestPartition(t *testing.T) {
	r := ints(1, 2, 3, 4, 5).Partition(isEven)
	assert.Equal(t, []int{2, 4}, r.Satisfies.Values())
	assert.Equal(t, []int{1, 3, 5}, r.NotSatisfies.Values())
	assert.Equal(t, 5, r.Len())

	evens, odds := r.Pipes()
	assert.Equal(t, "[2,4]", evens.String())
	assert.Equal(t, "[1,3,5]", odds.String())
}

func TestPartition_SizesSum(t *testing.T) {
	for _, s := range samples {
		r := pipes.From(s).Partition(isEven)
		assert.Equal(t, len(s), r.Satisfies.Len()+r.NotSatisfies.Len())
	}
}

func TestPartition_Empty(t *testing.T) {
	r := pipes.Empty[int]().Partition(isEven)
	assert.True(t, r.Satisfies.IsEmpty())
	assert.True(t, r.NotSatisfies.IsEmpty())
}
