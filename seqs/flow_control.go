package seqs

import "iter"

// Take lazily yields at most n leading elements.
func Take[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if n < 0 {
		return nil, invalidArgument("count %d must not be negative", n)
	}
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}, nil
}

// Skip lazily yields everything after the first n elements.
func Skip[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if n < 0 {
		return nil, invalidArgument("count %d must not be negative", n)
	}
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// TakeWhile yields elements as long as predicate holds, then stops the
// traversal.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) || !yield(v) {
				return
			}
		}
	}
}

// SkipWhile skips elements as long as predicate holds, then yields the rest.
func SkipWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipping := true
		for v := range seq {
			if skipping {
				if predicate(v) {
					continue
				}
				skipping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}
