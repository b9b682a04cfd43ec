package lists

import (
	"errors"

	"enumerable/seqs"
)

var ErrIndexOutOfBounds = errors.New("lists: index out of bounds")

// List is a container that can be enumerated. Implementations provide only
// the traversal primitive Each; every query on top of it comes from seqs
// through Enum.
type List[T any] interface {
	seqs.Source[T]

	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear removes every element and releases references to them
	Clear()

	// ToSlice copies the list into a native slice
	ToSlice() []T

	// Enum returns the list as an Enumerable
	Enum() seqs.Enumerable[T]
}
