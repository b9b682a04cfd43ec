package queues

import "math/bits"

// ArrayQueue is a FIFO backed by a circular array (ring buffer).
// Capacity is always a power of two so positions wrap with a mask.
//
// It is the window buffer of sliding traversals: push at the tail,
// drop from the head once the window is over size, copy the window out.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1
}

// NewArrayQueue creates an ArrayQueue able to hold at least initialCapacity
// elements before growing.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := roundUpPow2(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func roundUpPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the buffer and unwraps the elements to start at index 0.
func (aq *ArrayQueue[T]) grow() {
	newBuf := make([]T, len(aq.buf)*2)
	aq.CopyTo(newBuf)
	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = len(newBuf) - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow()
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// At returns the i-th element counted from the front.
func (aq *ArrayQueue[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= aq.size {
		return value, false
	}
	return aq.buf[(aq.head+i)&aq.mask], true
}

// CopyTo copies up to len(dst) elements, front first, into dst.
// It never allocates, so the caller can reuse dst between calls.
func (aq *ArrayQueue[T]) CopyTo(dst []T) int {
	n := min(len(dst), aq.size)
	if n == 0 {
		return 0
	}
	if aq.head+n <= len(aq.buf) {
		return copy(dst[:n], aq.buf[aq.head:aq.head+n])
	}
	// wrapped around
	first := copy(dst[:n], aq.buf[aq.head:])
	copy(dst[first:n], aq.buf[:n-first])
	return n
}

// Each visits the queued elements front first without removing them.
func (aq *ArrayQueue[T]) Each(yield func(T) bool) {
	for i := 0; i < aq.size; i++ {
		if !yield(aq.buf[(aq.head+i)&aq.mask]) {
			return
		}
	}
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

var _ Queue[int] = (*ArrayQueue[int])(nil)
