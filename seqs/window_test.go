package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"go.llib.dev/testcase/assert"

	"enumerable/seqs"
)

func collectWindows[T any](t *testing.T, windows iter.Seq[[]T]) [][]T {
	t.Helper()
	var out [][]T
	for w := range windows {
		out = append(out, slices.Clone(w))
	}
	return out
}

func TestEachCons(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		windows, err := seqs.EachCons(seqs.Range(1, 6, 1), 2)
		assert.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, collectWindows(t, windows))
	})

	t.Run("window count is size-n+1", func(t *testing.T) {
		for size := 0; size < 8; size++ {
			for n := 1; n < 5; n++ {
				windows, err := seqs.EachCons(seqs.Range(0, size, 1), n)
				assert.NoError(t, err)
				assert.Equal(t, max(size-n+1, 0), seqs.Count(windows))
			}
		}
	})

	t.Run("fresh slices survive the next window", func(t *testing.T) {
		windows, err := seqs.EachCons(seqs.Range(1, 5, 1), 3)
		assert.NoError(t, err)
		var kept [][]int
		for w := range windows {
			kept = append(kept, w)
		}
		assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}}, kept)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := seqs.EachCons(seqs.Range(1, 5, 1), 0)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)

		_, err = seqs.EachCons(seqs.Range(1, 5, 1), -3)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
	})
}

func TestEachConsInto(t *testing.T) {
	buf := make([]int, 3)
	windows, err := seqs.EachConsInto(seqs.Range(1, 6, 1), buf)
	assert.NoError(t, err)

	var got [][]int
	for w := range windows {
		assert.True(t, &w[0] == &buf[0])
		got = append(got, slices.Clone(w))
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, got)
	assert.Equal(t, []int{3, 4, 5}, buf)

	_, err = seqs.EachConsInto(seqs.Range(1, 6, 1), nil)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}

func TestEachConsPair(t *testing.T) {
	var diffs []int
	for prev, cur := range seqs.EachConsPair(slices.Values([]int{1, 4, 9, 16})) {
		diffs = append(diffs, cur-prev)
	}
	assert.Equal(t, []int{3, 5, 7}, diffs)

	for range seqs.EachConsPair(slices.Values([]int{1})) {
		t.Fatal("a single element has no neighbour")
	}
}

func TestEachSlice(t *testing.T) {
	t.Run("last slice is shorter", func(t *testing.T) {
		slicesOf, err := seqs.EachSlice(seqs.Range(1, 8, 1), 3)
		assert.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, collectWindows(t, slicesOf))
	})

	t.Run("concatenation restores the input", func(t *testing.T) {
		input := seqs.ToSlice(seqs.Range(0, 23, 1))
		for n := 1; n < 30; n += 4 {
			slicesOf, err := seqs.EachSlice(slices.Values(input), n)
			assert.NoError(t, err)
			var flat []int
			for s := range slicesOf {
				assert.True(t, len(s) <= n)
				flat = append(flat, s...)
			}
			assert.Equal(t, input, flat)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		slicesOf, err := seqs.EachSlice(seqs.Range(0, 0, 1), 3)
		assert.NoError(t, err)
		assert.Equal(t, 0, seqs.Count(slicesOf))
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := seqs.EachSlice(seqs.Range(0, 3, 1), 0)
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
	})
}

func TestEachSliceInto(t *testing.T) {
	buf := make([]string, 2)
	slicesOf, err := seqs.EachSliceInto(slices.Values([]string{"a", "b", "c", "d", "e"}), buf)
	assert.NoError(t, err)

	var got [][]string
	for s := range slicesOf {
		assert.True(t, &s[0] == &buf[0])
		got = append(got, slices.Clone(s))
	}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, got)

	_, err = seqs.EachSliceInto(slices.Values([]string{"a"}), []string{})
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}

func TestEachStep(t *testing.T) {
	stepped, err := seqs.EachStep(seqs.Range(0, 10, 1), 3, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 4, 7}, seqs.ToSlice(stepped))

	stepped, err = seqs.EachStep(seqs.Range(0, 3, 1), 2, 5)
	assert.NoError(t, err)
	assert.Equal(t, []int{}, seqs.ToSlice(stepped))

	_, err = seqs.EachStep(seqs.Range(0, 3, 1), 0, 0)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)

	_, err = seqs.EachStep(seqs.Range(0, 3, 1), 1, -1)
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}

func TestInGroupsOf(t *testing.T) {
	groups, err := seqs.InGroupsOf(slices.Values([]string{"a", "b", "c", "d"}), 3, "-")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "-", "-"}}, groups)

	groups, err = seqs.InSlicesOf(slices.Values([]string{"a", "b", "c", "d"}), 3)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, groups)

	_, err = seqs.InGroupsOf(slices.Values([]string{"a"}), -1, "-")
	assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
}
