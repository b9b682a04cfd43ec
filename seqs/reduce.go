package seqs

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Reduce folds the elements into initial with reducer. An empty source
// returns initial unchanged.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// TryReduce is Reduce with a reducer that can fail. The first error stops
// the traversal and is returned with the accumulator built so far.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// ReduceFirst folds the elements using the first one as the seed.
// It fails with ErrEmpty on an empty source.
func ReduceFirst[T any](seq iter.Seq[T], reducer func(T, T) T) (T, error) {
	res := ReduceFirstOpt(seq, reducer)
	if !res.Ok {
		return res.Value, emptySource("reduce")
	}
	return res.Value, nil
}

func ReduceFirstOpt[T any](seq iter.Seq[T], reducer func(T, T) T) g.Option[T] {
	acc := g.None[T]()
	for v := range seq {
		if acc.Ok {
			acc.Value = reducer(acc.Value, v)
		} else {
			acc = g.Some(v)
		}
	}
	return acc
}

// Scan yields the accumulator after each element.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// Accumulate returns the running sums: the first element, then the first
// two summed, and so on.
func Accumulate[T Addable](seq iter.Seq[T]) []T {
	return AccumulateFunc(seq, func(a, b T) T { return a + b })
}

// AccumulateFrom returns initial followed by the running sums seeded with it.
func AccumulateFrom[T Addable](seq iter.Seq[T], initial T) []T {
	return AccumulateFuncFrom(seq, initial, func(a, b T) T { return a + b })
}

// AccumulateFunc is Accumulate with a custom combiner.
func AccumulateFunc[T any](seq iter.Seq[T], f func(T, T) T) []T {
	var out []T
	for v := range seq {
		if len(out) > 0 {
			v = f(out[len(out)-1], v)
		}
		out = append(out, v)
	}
	return out
}

// AccumulateFuncFrom is AccumulateFrom with a custom combiner.
func AccumulateFuncFrom[T, R any](seq iter.Seq[T], initial R, f func(R, T) R) []R {
	out := []R{initial}
	for acc := range Scan(seq, initial, f) {
		out = append(out, acc)
	}
	return out
}
