package seqs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("seqs: empty source")

	// ErrNotFound is returned by the strict search operations when no
	// element satisfies the condition.
	ErrNotFound = errors.New("seqs: no element matches")

	// ErrInvalidArgument is returned, before any traversal, for negative
	// counts and non-positive sizes.
	ErrInvalidArgument = errors.New("seqs: invalid argument")

	// ErrUncomparable is returned when two values have no order, i.e. a NaN
	// met an ordering comparison.
	ErrUncomparable = errors.New("seqs: values cannot be compared")

	// ErrIndexOutOfRange is returned when a position does not exist, such as
	// a zipped source running out before the primary one.
	ErrIndexOutOfRange = errors.New("seqs: index out of range")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func emptySource(op string) error {
	return fmt.Errorf("%w: %s", ErrEmpty, op)
}

func uncomparable(v any) error {
	return fmt.Errorf("%w: %v", ErrUncomparable, v)
}
