package seqs_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	g "github.com/anacrolix/generics"
	"go.llib.dev/testcase/assert"

	"enumerable/seqs"
)

// shelf implements only Each; everything else comes from seqs.From.
type shelf struct {
	books []string
}

func (s shelf) Each(yield func(string) bool) {
	for _, b := range s.books {
		if !yield(b) {
			return
		}
	}
}

func TestFrom_DerivesEverythingFromEach(t *testing.T) {
	e := seqs.From[string](shelf{books: []string{"dune", "emma", "ulysses", "beloved"}})
	hasU := func(s string) bool { return strings.Contains(s, "u") }

	assert.True(t, e.Any(hasU))
	assert.False(t, e.All(hasU))
	assert.False(t, e.None(hasU))
	assert.False(t, e.One(hasU))
	assert.True(t, e.OneMatch(seqs.Eq("emma")))
	assert.Equal(t, 4, e.Count())
	assert.Equal(t, 2, e.CountFunc(hasU))
	assert.Equal(t, g.Some("dune"), e.Find(hasU))
	assert.Equal(t, g.Some(2), e.Index(func(s string) bool { return s == "ulysses" }))
	assert.Equal(t, g.Some("beloved"), e.Last())
	assert.Equal(t, "dune/emma/ulysses/beloved", e.Join("/"))
	assert.Equal(t, []string{"beloved", "dune", "emma", "ulysses"}, e.SortFunc(strings.Compare))

	longest, err := e.MaxFunc(func(a, b string) int { return len(a) - len(b) })
	assert.NoError(t, err)
	assert.Equal(t, "ulysses", longest)

	pairs, err := e.EachCons(2)
	assert.NoError(t, err)
	assert.Equal(t, 3, seqs.Count(pairs))

	top, err := e.MaxNFunc(2, strings.Compare)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ulysses", "emma"}, top)
}

func TestFrom_KeepsEnumerable(t *testing.T) {
	e := seqs.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, seqs.From[int](e).ToSlice())
}

func TestEnumerable_Chaining(t *testing.T) {
	e := seqs.FromSeq(seqs.Range(1, 100, 1))

	multiples, err := e.Filter(func(n int) bool { return n%3 == 0 }).Take(4)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9, 12}, multiples.ToSlice())

	tail, err := e.SkipWhile(func(n int) bool { return n < 97 }).Skip(1)
	assert.NoError(t, err)
	assert.Equal(t, []int{98, 99}, tail.ToSlice())

	stepped, err := e.TakeWhile(func(n int) bool { return n <= 10 }).EachStep(5, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 6}, stepped.ToSlice())

	cycled, err := seqs.Of("a", "b").Cycle().Take(3)
	assert.NoError(t, err)
	assert.Equal(t, "a,b,a", cycled.Join(","))
}

func TestEnumerable_Methods(t *testing.T) {
	e := seqs.Of(4, 8, 15, 16, 23, 42)

	first, err := e.First()
	assert.NoError(t, err)
	assert.Equal(t, 4, first)

	head, err := e.FirstN(2)
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 8}, head)

	even, odd := e.Partition(isEven)
	assert.Equal(t, []int{4, 8, 16, 42}, even)
	assert.Equal(t, []int{15, 23}, odd)
	assert.Equal(t, odd, e.Reject(isEven))
	assert.Equal(t, even, e.Select(isEven))

	sum, err := e.ReduceFirst(add)
	assert.NoError(t, err)
	assert.Equal(t, 108, sum)
	assert.Equal(t, []int{4, 12, 27, 43, 66, 108}, e.AccumulateFunc(add))

	groups, err := e.InGroupsOf(4, 0)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{4, 8, 15, 16}, {23, 42, 0, 0}}, groups)

	runs := e.ChunkWhile(func(prev, cur int) bool { return isEven(prev) == isEven(cur) })
	assert.Equal(t, [][]int{{4, 8}, {15}, {16}, {23}, {42}}, runs)

	pick, err := e.Sample(seqs.WithRand(rand.New(rand.NewPCG(1, 2))))
	assert.NoError(t, err)
	assert.True(t, e.Any(func(n int) bool { return n == pick }))

	rows, err := e.ZipN(seqs.Slice[int]{1, 2, 3, 4, 5, 6})
	assert.NoError(t, err)
	assert.Equal(t, []int{42, 6}, rows[5])

	empty := seqs.Of[int]()
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsPresent())
	assert.False(t, empty.ReduceFirstOpt(add).Ok)
	_, err = empty.MinFunc(func(a, b int) int { return a - b })
	assert.ErrorIs(t, err, seqs.ErrEmpty)
}
