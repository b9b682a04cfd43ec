package seqs

import (
	"iter"

	"enumerable/queues"
)

// EachCons yields every run of n consecutive elements, advancing one
// element at a time. The first n-1 elements yield nothing. Each window is a
// fresh slice.
func EachCons[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	if n <= 0 {
		return nil, invalidArgument("window size %d must be positive", n)
	}
	return eachCons(seq, n, nil), nil
}

// EachConsInto is EachCons with a window the size of buf, written into buf
// itself. A yielded window is only valid until the next one.
func EachConsInto[T any](seq iter.Seq[T], buf []T) (iter.Seq[[]T], error) {
	if len(buf) == 0 {
		return nil, invalidArgument("window buffer must not be empty")
	}
	return eachCons(seq, len(buf), buf), nil
}

func eachCons[T any](seq iter.Seq[T], n int, buf []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		window := queues.NewArrayQueue[T](n + 1)
		for v := range seq {
			window.Enqueue(v)
			if window.Size() > n {
				window.Dequeue()
			}
			if window.Size() < n {
				continue
			}
			out := buf
			if out == nil {
				out = make([]T, n)
			}
			window.CopyTo(out)
			if !yield(out) {
				return
			}
		}
	}
}

// EachConsPair yields each pair of neighbours. Only the previous element is
// kept, so nothing is allocated.
func EachConsPair[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		started := false
		for v := range seq {
			if started && !yield(prev, v) {
				return
			}
			prev = v
			started = true
		}
	}
}

// EachSlice splits the input into consecutive slices of n elements.
// The last slice may be shorter.
func EachSlice[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	if n <= 0 {
		return nil, invalidArgument("slice size %d must be positive", n)
	}
	return eachSlice(seq, n, nil), nil
}

// EachSliceInto is EachSlice with slices the size of buf, written into buf.
// A yielded slice is only valid until the next one.
func EachSliceInto[T any](seq iter.Seq[T], buf []T) (iter.Seq[[]T], error) {
	if len(buf) == 0 {
		return nil, invalidArgument("slice buffer must not be empty")
	}
	return eachSlice(seq, len(buf), buf[:0]), nil
}

func eachSlice[T any](seq iter.Seq[T], n int, buf []T) iter.Seq[[]T] {
	reuse := buf != nil
	return func(yield func([]T) bool) {
		batch := buf
		if !reuse {
			batch = make([]T, 0, n)
		}
		for v := range seq {
			batch = append(batch, v)
			if len(batch) < n {
				continue
			}
			if !yield(batch) {
				return
			}
			if reuse {
				batch = batch[:0]
			} else {
				batch = make([]T, 0, n)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// EachStep yields every n-th element starting with the one at offset.
func EachStep[T any](seq iter.Seq[T], n, offset int) (iter.Seq[T], error) {
	if n <= 0 {
		return nil, invalidArgument("step %d must be positive", n)
	}
	if offset < 0 {
		return nil, invalidArgument("offset %d must not be negative", offset)
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i >= offset && (i-offset)%n == 0 {
				if !yield(v) {
					return
				}
			}
			i++
		}
	}, nil
}

// InSlicesOf collects the slices of [EachSlice].
func InSlicesOf[T any](seq iter.Seq[T], n int) ([][]T, error) {
	slices, err := EachSlice(seq, n)
	if err != nil {
		return nil, err
	}
	var out [][]T
	for s := range slices {
		out = append(out, s)
	}
	return out, nil
}

// InGroupsOf is InSlicesOf with the last group padded to n with filler.
func InGroupsOf[T any](seq iter.Seq[T], n int, filler T) ([][]T, error) {
	groups, err := InSlicesOf(seq, n)
	if err != nil {
		return nil, err
	}
	if k := len(groups); k > 0 {
		for len(groups[k-1]) < n {
			groups[k-1] = append(groups[k-1], filler)
		}
	}
	return groups, nil
}
