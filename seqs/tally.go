package seqs

import "iter"

// Tally counts the occurrences of each distinct element.
func Tally[T comparable](seq iter.Seq[T]) map[T]int {
	return TallyInto(seq, nil)
}

// TallyInto adds the occurrences to counts and returns it, so counts can be
// merged across several sources. A nil counts starts a new map.
func TallyInto[T comparable](seq iter.Seq[T], counts map[T]int) map[T]int {
	return TallyByInto(seq, counts, identity[T])
}

// TallyBy counts elements per key(v).
func TallyBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K]int {
	return TallyByInto(seq, nil, key)
}

func TallyByInto[T any, K comparable](seq iter.Seq[T], counts map[K]int, key func(T) K) map[K]int {
	if counts == nil {
		counts = make(map[K]int)
	}
	for v := range seq {
		counts[key(v)]++
	}
	return counts
}

// GroupBy collects the elements per key(v). Each group keeps source order.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for v := range seq {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// ToMap builds a map from the pairs f returns. Later keys overwrite
// earlier ones.
func ToMap[T any, K comparable, V any](seq iter.Seq[T], f func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	for v := range seq {
		k, val := f(v)
		out[k] = val
	}
	return out
}

func ToSet[T comparable](seq iter.Seq[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range seq {
		set[v] = struct{}{}
	}
	return set
}

// Distinct lazily yields each element the first time it is seen.
// It keeps a set of what it has seen, so memory grows with the number of
// distinct elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Uniq returns the distinct elements in first-seen order.
func Uniq[T comparable](seq iter.Seq[T]) []T {
	return UniqBy(seq, identity[T])
}

// UniqBy keeps the first element for each key(v).
func UniqBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []T {
	seen := make(map[K]struct{})
	out := []T{}
	for v := range seq {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
