package seqs

import "iter"

// Of returns an Enumerable over the given values.
func Of[T any](values ...T) Enumerable[T] {
	return FromSlice(values)
}

// FromSlice returns an Enumerable over s. The slice is not copied.
func FromSlice[T any](s []T) Enumerable[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice is a slice that is also a positional source: zipping against it
// indexes directly instead of pulling.
type Slice[T any] []T

func (s Slice[T]) Each(yield func(T) bool) {
	for _, v := range s {
		if !yield(v) {
			return
		}
	}
}

func (s Slice[T]) Size() int { return len(s) }

func (s Slice[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(s) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return s[index], nil
}

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
			if !yield(i) {
				return
			}
		}
	}
}

func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Concat traverses each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
