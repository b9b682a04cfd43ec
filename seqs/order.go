package seqs

import (
	"errors"
	"iter"
	"slices"

	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"

	"enumerable/sliceutil"
)

// isNaN reports whether v is unordered with itself, which among the
// ordered types only a floating-point NaN is.
func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}

// compare orders NaNs before every other value so sorting stays total.
func compare[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// extremeBy scans for the element whose key is strictly greatest (or least).
// The first of several equal extremes wins.
func extremeBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K, greatest bool) (g.Option[T], K, error) {
	best := g.None[T]()
	var bestKey K
	for v := range seq {
		k := key(v)
		if isNaN(k) {
			return g.None[T](), bestKey, uncomparable(k)
		}
		if !best.Ok || (greatest && k > bestKey) || (!greatest && k < bestKey) {
			best, bestKey = g.Some(v), k
		}
	}
	return best, bestKey, nil
}

func identity[T any](v T) T { return v }

func required[T any](res g.Option[T], err error, op string) (T, error) {
	if err != nil {
		return res.Value, err
	}
	if !res.Ok {
		return res.Value, emptySource(op)
	}
	return res.Value, nil
}

// Max returns the greatest element. It fails with ErrEmpty on an empty
// source and ErrUncomparable when it meets a NaN.
func Max[T constraints.Ordered](seq iter.Seq[T]) (T, error) {
	res, err := MaxOpt(seq)
	return required(res, err, "max")
}

// MaxOpt is Max with absence instead of ErrEmpty.
func MaxOpt[T constraints.Ordered](seq iter.Seq[T]) (g.Option[T], error) {
	best, _, err := extremeBy(seq, identity[T], true)
	return best, err
}

func Min[T constraints.Ordered](seq iter.Seq[T]) (T, error) {
	res, err := MinOpt(seq)
	return required(res, err, "min")
}

func MinOpt[T constraints.Ordered](seq iter.Seq[T]) (g.Option[T], error) {
	best, _, err := extremeBy(seq, identity[T], false)
	return best, err
}

// MaxBy returns the element with the greatest key(v).
func MaxBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	res, err := MaxByOpt(seq, key)
	return required(res, err, "max_by")
}

func MaxByOpt[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (g.Option[T], error) {
	best, _, err := extremeBy(seq, key, true)
	return best, err
}

func MinBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	res, err := MinByOpt(seq, key)
	return required(res, err, "min_by")
}

func MinByOpt[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (g.Option[T], error) {
	best, _, err := extremeBy(seq, key, false)
	return best, err
}

// MaxOf returns the greatest f(v) rather than the element producing it.
func MaxOf[T any, K constraints.Ordered](seq iter.Seq[T], f func(T) K) (K, error) {
	res, err := MaxOfOpt(seq, f)
	return required(res, err, "max_of")
}

func MaxOfOpt[T any, K constraints.Ordered](seq iter.Seq[T], f func(T) K) (g.Option[K], error) {
	best, k, err := extremeBy(seq, f, true)
	if err != nil || !best.Ok {
		return g.None[K](), err
	}
	return g.Some(k), nil
}

func MinOf[T any, K constraints.Ordered](seq iter.Seq[T], f func(T) K) (K, error) {
	res, err := MinOfOpt(seq, f)
	return required(res, err, "min_of")
}

func MinOfOpt[T any, K constraints.Ordered](seq iter.Seq[T], f func(T) K) (g.Option[K], error) {
	best, k, err := extremeBy(seq, f, false)
	if err != nil || !best.Ok {
		return g.None[K](), err
	}
	return g.Some(k), nil
}

// MaxFunc returns the greatest element under cmp. cmp is trusted to be a
// total order, so the only failure is ErrEmpty.
func MaxFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, error) {
	return extremeFunc(seq, cmp, 1, "max")
}

func MinFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) (T, error) {
	return extremeFunc(seq, cmp, -1, "min")
}

func extremeFunc[T any](seq iter.Seq[T], cmp func(a, b T) int, sign int, op string) (T, error) {
	best := g.None[T]()
	for v := range seq {
		if !best.Ok || cmp(v, best.Value)*sign > 0 {
			best = g.Some(v)
		}
	}
	return required(best, nil, op)
}

// MinMax returns the least and greatest elements in one pass.
func MinMax[T constraints.Ordered](seq iter.Seq[T]) (lo, hi T, err error) {
	return MinMaxBy(seq, identity[T])
}

// MinMaxOpt is MinMax with absence instead of ErrEmpty. V1 is the least
// element, V2 the greatest.
func MinMaxOpt[T constraints.Ordered](seq iter.Seq[T]) (g.Option[Pair[T, T]], error) {
	lo, hi, err := MinMax(seq)
	if err != nil {
		if errors.Is(err, ErrEmpty) {
			err = nil
		}
		return g.None[Pair[T, T]](), err
	}
	return g.Some(Pair[T, T]{V1: lo, V2: hi}), nil
}

// MinMaxBy returns the elements with the least and greatest key(v).
func MinMaxBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (lo, hi T, err error) {
	loV, hiV, _, _, err := minMaxBy(seq, key)
	return loV, hiV, err
}

// MinMaxOf returns the least and greatest f(v).
func MinMaxOf[T any, K constraints.Ordered](seq iter.Seq[T], f func(T) K) (lo, hi K, err error) {
	_, _, lo, hi, err = minMaxBy(seq, f)
	return lo, hi, err
}

func minMaxBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (lo, hi T, loKey, hiKey K, err error) {
	found := false
	for v := range seq {
		k := key(v)
		if isNaN(k) {
			return lo, hi, loKey, hiKey, uncomparable(k)
		}
		if !found || k < loKey {
			lo, loKey = v, k
		}
		if !found || k > hiKey {
			hi, hiKey = v, k
		}
		found = true
	}
	if !found {
		err = emptySource("minmax")
	}
	return lo, hi, loKey, hiKey, err
}

// MaxN returns the n greatest elements, greatest first. The source is
// copied once into a workspace and each rank is found by quickselect.
// n larger than the source returns every element.
func MaxN[T constraints.Ordered](seq iter.Seq[T], n int) ([]T, error) {
	data, err := orderedWorkspace(seq, n)
	if err != nil {
		return nil, err
	}
	return sliceutil.LargestN(data, n, compare[T]), nil
}

// MinN returns the n least elements, least first.
func MinN[T constraints.Ordered](seq iter.Seq[T], n int) ([]T, error) {
	data, err := orderedWorkspace(seq, n)
	if err != nil {
		return nil, err
	}
	return sliceutil.SmallestN(data, n, compare[T]), nil
}

func orderedWorkspace[T constraints.Ordered](seq iter.Seq[T], n int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("count %d must not be negative", n)
	}
	var data []T
	if n == 0 {
		return data, nil
	}
	for v := range seq {
		if isNaN(v) {
			return nil, uncomparable(v)
		}
		data = append(data, v)
	}
	return data, nil
}

// MaxNFunc is MaxN under a caller-supplied order.
func MaxNFunc[T any](seq iter.Seq[T], n int, cmp func(a, b T) int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("count %d must not be negative", n)
	}
	if n == 0 {
		return []T{}, nil
	}
	return sliceutil.LargestN(slices.Collect(seq), n, cmp), nil
}

func MinNFunc[T any](seq iter.Seq[T], n int, cmp func(a, b T) int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("count %d must not be negative", n)
	}
	if n == 0 {
		return []T{}, nil
	}
	return sliceutil.SmallestN(slices.Collect(seq), n, cmp), nil
}

// Sort returns the elements in ascending order. NaNs sort first.
func Sort[T constraints.Ordered](seq iter.Seq[T]) []T {
	return SortFunc(seq, compare[T])
}

// SortFunc returns the elements stably sorted by cmp.
func SortFunc[T any](seq iter.Seq[T], cmp func(a, b T) int) []T {
	data := slices.Collect(seq)
	slices.SortStableFunc(data, cmp)
	return data
}

// SortBy returns the elements stably sorted by key(v). key is called once
// per element.
func SortBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) []T {
	keyed := make([]Pair[K, T], 0)
	for v := range seq {
		keyed = append(keyed, Pair[K, T]{V1: key(v), V2: v})
	}
	slices.SortStableFunc(keyed, func(a, b Pair[K, T]) int { return compare(a.V1, b.V1) })
	out := make([]T, len(keyed))
	for i, p := range keyed {
		out[i] = p.V2
	}
	return out
}
