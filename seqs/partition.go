package seqs

import "iter"

// Filter lazily yields the elements that satisfy predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// TryFilter is Filter with a predicate that can fail.
//
// The resulting sequence yields pairs of (element, error). An error is
// yielded together with the element that caused it, and iteration continues
// for as long as the consumer keeps asking.
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if keep && !yield(v, nil) {
				return
			}
		}
	}
}

// Select returns the elements that satisfy pred, in order.
func Select[T any](seq iter.Seq[T], pred func(T) bool) []T {
	out := []T{}
	for v := range seq {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reject returns the elements that do not satisfy pred, in order.
func Reject[T any](seq iter.Seq[T], pred func(T) bool) []T {
	return Select(seq, func(v T) bool { return !pred(v) })
}

// Partition splits the elements in one pass: those satisfying pred and the
// rest. Both keep the source order.
func Partition[T any](seq iter.Seq[T], pred func(T) bool) (matched, rest []T) {
	matched, rest = []T{}, []T{}
	for v := range seq {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

func SelectMatch[T any](seq iter.Seq[T], p Pattern[T]) []T { return Select(seq, p.Matches) }
func RejectMatch[T any](seq iter.Seq[T], p Pattern[T]) []T { return Reject(seq, p.Matches) }

func PartitionMatch[T any](seq iter.Seq[T], p Pattern[T]) (matched, rest []T) {
	return Partition(seq, p.Matches)
}

// SelectType returns the dynamic values of type U, typed as U.
func SelectType[U any](seq iter.Seq[any]) []U {
	out := []U{}
	for v := range seq {
		if u, ok := v.(U); ok {
			out = append(out, u)
		}
	}
	return out
}

// RejectType returns the dynamic values that are not of type U.
func RejectType[U any](seq iter.Seq[any]) []any {
	return RejectMatch(seq, IsType[U]())
}

// PartitionType splits dynamic values into those of type U and the rest.
func PartitionType[U any](seq iter.Seq[any]) (matched []U, rest []any) {
	matched, rest = []U{}, []any{}
	for v := range seq {
		if u, ok := v.(U); ok {
			matched = append(matched, u)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}
