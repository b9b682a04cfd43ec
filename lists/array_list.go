package lists

import (
	"fmt"
	"iter"
	"slices"

	"enumerable/seqs"
)

// ArrayList is a slice-backed list. Besides Each it offers positional
// lookup (Size and Get), so seqs.Zip reads it by index instead of pulling.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// ArrayListOf returns a list holding a copy of values.
func ArrayListOf[T any](values ...T) *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(values)}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Each visits the elements front to back.
func (al *ArrayList[T]) Each(yield func(T) bool) {
	for _, v := range al.data {
		if !yield(v) {
			return
		}
	}
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return al.Each
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

func (al *ArrayList[T]) Enum() seqs.Enumerable[T] {
	return seqs.From[T](al)
}

// Sort sorts the list in place.
func (al *ArrayList[T]) Sort(compare func(a, b T) int) {
	slices.SortFunc(al.data, compare)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

var (
	_ List[int]           = (*ArrayList[int])(nil)
	_ seqs.Indexable[int] = (*ArrayList[int])(nil)
)
