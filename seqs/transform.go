package seqs

import (
	"fmt"
	"iter"
	"strings"
)

// Map lazily applies transform to each element.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies a transform that can fail. An error is yielded with the
// zero R, and iteration continues for as long as the consumer keeps asking.
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// MapWithIndex is Map with the zero-based position passed along.
func MapWithIndex[T, R any](seq iter.Seq[T], transform func(T, int) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		i := 0
		for v := range seq {
			if !yield(transform(v, i)) {
				return
			}
			i++
		}
	}
}

func FlatMap[S, T any](seq iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range seq {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// CompactMap keeps the results f reports as present.
func CompactMap[T, R any](seq iter.Seq[T], f func(T) (R, bool)) []R {
	out := []R{}
	for v := range seq {
		if r, ok := f(v); ok {
			out = append(out, r)
		}
	}
	return out
}

// Enumerate pairs each element with its zero-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// EachWithObject calls f with every element and memo, then returns memo.
func EachWithObject[T, U any](seq iter.Seq[T], memo U, f func(T, U)) U {
	for v := range seq {
		f(v, memo)
	}
	return memo
}

// Peek performs action on each element as it passes through.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// CountFunc counts the elements that satisfy pred.
func CountFunc[T any](seq iter.Seq[T], pred func(T) bool) int {
	count := 0
	for v := range seq {
		if pred(v) {
			count++
		}
	}
	return count
}

// CountOf counts the elements equal to target.
func CountOf[T comparable](seq iter.Seq[T], target T) int {
	return CountFunc(seq, func(v T) bool { return v == target })
}

// IsEmpty reports whether the source has no elements. It stops after one.
func IsEmpty[T any](seq iter.Seq[T]) bool {
	for range seq {
		return false
	}
	return true
}

func IsPresent[T any](seq iter.Seq[T]) bool { return !IsEmpty(seq) }

// ToSlice collects the elements. An empty source gives an empty, non-nil
// slice.
func ToSlice[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Join formats each element with fmt's %v and joins them with sep.
func Join[T any](seq iter.Seq[T], sep string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	return sb.String()
}

// Cycle repeats the source forever. The source is traversed again for each
// round; an empty source yields nothing.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			empty := true
			for v := range seq {
				empty = false
				if !yield(v) {
					return
				}
			}
			if empty {
				return
			}
		}
	}
}

// CycleN repeats the source n times.
func CycleN[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
