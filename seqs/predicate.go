package seqs

import "iter"

// All reports whether pred holds for every element. It stops at the first
// element that fails and is true for an empty source.
func All[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element, stopping at the
// first one that does.
func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// None reports whether pred holds for no element.
func None[T any](seq iter.Seq[T], pred func(T) bool) bool {
	return !Any(seq, pred)
}

// One reports whether pred holds for exactly one element. The first match
// does not end the traversal; a second one does.
func One[T any](seq iter.Seq[T], pred func(T) bool) bool {
	matched := false
	for v := range seq {
		if !pred(v) {
			continue
		}
		if matched {
			return false
		}
		matched = true
	}
	return matched
}

func AllMatch[T any](seq iter.Seq[T], p Pattern[T]) bool  { return All(seq, p.Matches) }
func AnyMatch[T any](seq iter.Seq[T], p Pattern[T]) bool  { return Any(seq, p.Matches) }
func NoneMatch[T any](seq iter.Seq[T], p Pattern[T]) bool { return None(seq, p.Matches) }
func OneMatch[T any](seq iter.Seq[T], p Pattern[T]) bool  { return One(seq, p.Matches) }

// nonZero is the truthiness test of the argument-less predicate forms:
// the zero value is false, everything else is true.
func nonZero[T comparable](v T) bool {
	var zero T
	return v != zero
}

// AllNonZero reports whether no element is the zero value of T.
func AllNonZero[T comparable](seq iter.Seq[T]) bool  { return All(seq, nonZero[T]) }
func AnyNonZero[T comparable](seq iter.Seq[T]) bool  { return Any(seq, nonZero[T]) }
func NoneNonZero[T comparable](seq iter.Seq[T]) bool { return None(seq, nonZero[T]) }
func OneNonZero[T comparable](seq iter.Seq[T]) bool  { return One(seq, nonZero[T]) }

// Includes reports whether some element equals v.
func Includes[T comparable](seq iter.Seq[T], v T) bool {
	for e := range seq {
		if e == v {
			return true
		}
	}
	return false
}
