package seqs

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Find returns the first element satisfying pred.
func Find[T any](seq iter.Seq[T], pred func(T) bool) g.Option[T] {
	for v := range seq {
		if pred(v) {
			return g.Some(v)
		}
	}
	return g.None[T]()
}

// FindOr is Find with def returned when nothing matches.
func FindOr[T any](seq iter.Seq[T], pred func(T) bool, def T) T {
	if found := Find(seq, pred); found.Ok {
		return found.Value
	}
	return def
}

// FindOrErr is Find failing with ErrNotFound when nothing matches.
func FindOrErr[T any](seq iter.Seq[T], pred func(T) bool) (T, error) {
	found := Find(seq, pred)
	if !found.Ok {
		return found.Value, ErrNotFound
	}
	return found.Value, nil
}

// FindValue returns the first result f reports as present.
func FindValue[T, R any](seq iter.Seq[T], f func(T) (R, bool)) g.Option[R] {
	for v := range seq {
		if r, ok := f(v); ok {
			return g.Some(r)
		}
	}
	return g.None[R]()
}

func FindValueOr[T, R any](seq iter.Seq[T], f func(T) (R, bool), def R) R {
	if found := FindValue(seq, f); found.Ok {
		return found.Value
	}
	return def
}

// Index returns the zero-based position of the first element satisfying pred.
func Index[T any](seq iter.Seq[T], pred func(T) bool) g.Option[int] {
	i := 0
	for v := range seq {
		if pred(v) {
			return g.Some(i)
		}
		i++
	}
	return g.None[int]()
}

// IndexOf returns the position of the first element equal to target.
func IndexOf[T comparable](seq iter.Seq[T], target T) g.Option[int] {
	return Index(seq, func(v T) bool { return v == target })
}

// IndexOrErr is Index failing with ErrNotFound when nothing matches.
func IndexOrErr[T any](seq iter.Seq[T], pred func(T) bool) (int, error) {
	found := Index(seq, pred)
	if !found.Ok {
		return -1, ErrNotFound
	}
	return found.Value, nil
}

// IndexBy maps key(v) to v for every element. Later elements overwrite
// earlier ones with the same key.
func IndexBy[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K]T {
	out := make(map[K]T)
	for v := range seq {
		out[key(v)] = v
	}
	return out
}

// First returns the first element, or ErrEmpty.
func First[T any](seq iter.Seq[T]) (T, error) {
	first := FirstOpt(seq)
	if !first.Ok {
		return first.Value, emptySource("first")
	}
	return first.Value, nil
}

func FirstOpt[T any](seq iter.Seq[T]) g.Option[T] {
	for v := range seq {
		return g.Some(v)
	}
	return g.None[T]()
}

// FirstN returns up to n leading elements.
func FirstN[T any](seq iter.Seq[T], n int) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("count %d must not be negative", n)
	}
	out := make([]T, 0, min(n, 64))
	if n == 0 {
		return out, nil
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

// Last traverses the whole source and returns its final element.
func Last[T any](seq iter.Seq[T]) g.Option[T] {
	last := g.None[T]()
	for v := range seq {
		last = g.Some(v)
	}
	return last
}
