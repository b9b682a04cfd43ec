package lists

import (
	"fmt"
	"iter"
	"strings"

	"enumerable/seqs"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list. It has no cheap positional lookup, so
// seqs treats it as a purely sequential source.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// LinkedListOf returns a list holding values in order.
func LinkedListOf[T any](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	ll.Add(values...)
	return ll
}

// insertAfter links newNode right after at.
func (ll *LinkedList[T]) insertAfter(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// unlink removes n from the list, clears its pointers and returns its value.
func (ll *LinkedList[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	res := n.val
	var zero T
	n.prev, n.next, n.val = nil, nil, zero
	ll.size--
	return res
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) RemoveFirst() (T, error) {
	if ll.size == 0 {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.headSentinel.next), nil
}

func (ll *LinkedList[T]) RemoveLast() (T, error) {
	if ll.size == 0 {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.tailSentinel.prev), nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// Clear all nodes to help GC
	current := ll.headSentinel.next
	var zero T
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

// Each visits the elements front to back.
func (ll *LinkedList[T]) Each(yield func(T) bool) {
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		if !yield(current.val) {
			return
		}
	}
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return ll.Each
}

// Backward visits the elements back to front.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	ll.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (ll *LinkedList[T]) Enum() seqs.Enumerable[T] {
	return seqs.From[T](ll)
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	ll.Each(func(v T) bool {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
		first = false
		return true
	})
	sb.WriteString("]")
	return sb.String()
}

var _ List[int] = (*LinkedList[int])(nil)
