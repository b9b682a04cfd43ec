package seqs_test

import (
	"errors"
	"slices"
	"testing"

	g "github.com/anacrolix/generics"
	"go.llib.dev/testcase/assert"

	"enumerable/seqs"
)

func add(a, b int) int { return a + b }

func TestReduce(t *testing.T) {
	empty := slices.Values([]int{})

	_, err := seqs.ReduceFirst(empty, add)
	assert.ErrorIs(t, err, seqs.ErrEmpty)
	assert.Equal(t, g.None[int](), seqs.ReduceFirstOpt(empty, add))
	assert.Equal(t, 10, seqs.Reduce(empty, 10, add))
	assert.Equal(t, 15, seqs.Reduce(slices.Values([]int{5}), 10, add))

	nums := slices.Values([]int{1, 2, 3, 4})
	sum, err := seqs.ReduceFirst(nums, add)
	assert.NoError(t, err)
	assert.Equal(t, 10, sum)
	assert.Equal(t, 20, seqs.Reduce(nums, 10, add))

	joined := seqs.Reduce(nums, "", func(acc string, n int) string {
		return acc + string(rune('a'+n-1))
	})
	assert.Equal(t, "abcd", joined)
}

func TestTryReduce(t *testing.T) {
	errTooBig := errors.New("too big")
	reducer := func(acc, n int) (int, error) {
		if n > 2 {
			return 0, errTooBig
		}
		return acc + n, nil
	}

	acc, err := seqs.TryReduce(slices.Values([]int{1, 2, 3, 4}), 0, reducer)
	assert.ErrorIs(t, err, errTooBig)
	assert.Equal(t, 3, acc)

	acc, err = seqs.TryReduce(slices.Values([]int{1, 1}), 0, reducer)
	assert.NoError(t, err)
	assert.Equal(t, 2, acc)
}

func TestAccumulate(t *testing.T) {
	nums := slices.Values([]int{1, 2, 3, 4})

	assert.Equal(t, []int{1, 3, 6, 10}, seqs.Accumulate(nums))
	assert.Equal(t, []int{100, 101, 103, 106, 110}, seqs.AccumulateFrom(nums, 100))
	assert.Equal(t, []int{1, 2, 6, 24}, seqs.AccumulateFunc(nums, func(a, b int) int { return a * b }))
	assert.Equal(t, []string{"a", "ab", "abc"}, seqs.Accumulate(slices.Values([]string{"a", "b", "c"})))

	lengths := seqs.AccumulateFuncFrom(slices.Values([]string{"go", "lang"}), 0, func(acc int, s string) int {
		return acc + len(s)
	})
	assert.Equal(t, []int{0, 2, 6}, lengths)

	assert.Empty(t, seqs.Accumulate(slices.Values([]int{})))
	assert.Equal(t, []int{5}, seqs.AccumulateFrom(slices.Values([]int{}), 5))
}

func TestScan_StopsEarly(t *testing.T) {
	visited := 0
	var got []int
	for acc := range seqs.Scan(counting(&visited, 1, 2, 3, 4), 0, add) {
		got = append(got, acc)
		if acc >= 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 3}, got)
	assert.Equal(t, 2, visited)
}

type money struct{ Cents int64 }

func (m money) Add(o money) money { return money{m.Cents + o.Cents} }
func (m money) Mul(o money) money { return money{m.Cents * o.Cents} }

func TestSumAndProduct(t *testing.T) {
	t.Run("identities on empty sources", func(t *testing.T) {
		assert.Equal(t, 0, seqs.Sum(slices.Values([]int{})))
		assert.Equal(t, 0.0, seqs.Sum(slices.Values([]float64{})))
		assert.Equal(t, "", seqs.Sum(slices.Values([]string{})))
		assert.Equal(t, 1, seqs.Product(slices.Values([]int{})))
		assert.Equal(t, complex(1, 0), seqs.Product(slices.Values([]complex128{})))
	})

	t.Run("values", func(t *testing.T) {
		nums := slices.Values([]int{1, 2, 3, 4})
		assert.Equal(t, 10, seqs.Sum(nums))
		assert.Equal(t, 15, seqs.SumFrom(nums, 5))
		assert.Equal(t, 24, seqs.Product(nums))
		assert.Equal(t, 48, seqs.ProductFrom(nums, 2))
		assert.Equal(t, "abc", seqs.Sum(slices.Values([]string{"a", "b", "c"})))
	})

	t.Run("of a projection", func(t *testing.T) {
		words := slices.Values([]string{"go", "is", "fun"})
		length := func(s string) int { return len(s) }
		assert.Equal(t, 7, seqs.SumOf(words, length))
		assert.Equal(t, 17, seqs.SumOfFrom(words, 10, length))
		assert.Equal(t, 12, seqs.ProductOf(words, length))
		assert.Equal(t, 0, seqs.ProductOfFrom(words, 0, length))
	})

	t.Run("user types with an explicit identity", func(t *testing.T) {
		wallet := slices.Values([]money{{150}, {250}, {5}})
		assert.Equal(t, money{405}, seqs.SumWith(wallet, money{}))
		assert.Equal(t, money{187500}, seqs.ProductWith(wallet, money{1}))
		assert.Equal(t, money{7}, seqs.SumWith(slices.Values([]money{}), money{7}))
	})
}
