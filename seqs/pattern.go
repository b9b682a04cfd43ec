package seqs

import (
	"regexp"

	"golang.org/x/exp/constraints"
)

// Pattern tests a single element for a structural or containment match.
type Pattern[T any] interface {
	Matches(v T) bool
}

// PatternFunc adapts a plain predicate to Pattern.
type PatternFunc[T any] func(T) bool

func (f PatternFunc[T]) Matches(v T) bool { return f(v) }

// Eq matches elements equal to want.
func Eq[T comparable](want T) Pattern[T] {
	return PatternFunc[T](func(v T) bool { return v == want })
}

// OneOf matches elements equal to any of values.
func OneOf[T comparable](values ...T) Pattern[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return PatternFunc[T](func(v T) bool {
		_, ok := set[v]
		return ok
	})
}

// Between matches elements in the closed range [lo, hi].
func Between[T constraints.Ordered](lo, hi T) Pattern[T] {
	return PatternFunc[T](func(v T) bool { return lo <= v && v <= hi })
}

// Regexp matches strings that contain a match of re.
func Regexp(re *regexp.Regexp) Pattern[string] {
	return PatternFunc[string](re.MatchString)
}

// IsType matches dynamic values whose type is U (or implements U when U is
// an interface).
func IsType[U any]() Pattern[any] {
	return PatternFunc[any](func(v any) bool {
		_, ok := v.(U)
		return ok
	})
}
