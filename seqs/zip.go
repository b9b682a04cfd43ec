package seqs

import (
	"fmt"
	"iter"

	g "github.com/anacrolix/generics"
)

// Pair holds two values of possibly different types.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Indexable is a source with direct positional lookup. Zipping against one
// reads positions instead of pulling elements.
type Indexable[T any] interface {
	Size() int
	Get(index int) (T, error)
}

// tandem advances a secondary source one position per primary element.
type tandem[U any] struct {
	indexed Indexable[U]
	pos     int

	next func() (U, bool)
	stop func()
}

func newTandem[U any](src Source[U]) *tandem[U] {
	if ix, ok := src.(Indexable[U]); ok {
		return &tandem[U]{indexed: ix}
	}
	// iter.Pull only starts the source on the first call to next
	next, stop := iter.Pull(iter.Seq[U](src.Each))
	return &tandem[U]{next: next, stop: stop}
}

func (t *tandem[U]) advance() (U, bool) {
	if t.indexed == nil {
		return t.next()
	}
	i := t.pos
	t.pos++
	if i >= t.indexed.Size() {
		var zero U
		return zero, false
	}
	v, err := t.indexed.Get(i)
	return v, err == nil
}

func (t *tandem[U]) close() {
	if t.stop != nil {
		t.stop()
	}
}

func exhausted(pos int) error {
	return fmt.Errorf("%w: zipped source exhausted at position %d", ErrIndexOutOfRange, pos)
}

// Zip pairs every element with the element at the same position in other.
// It fails with ErrIndexOutOfRange as soon as other runs out first; extra
// elements in other are ignored.
func Zip[T, U any](seq iter.Seq[T], other Source[U]) ([]Pair[T, U], error) {
	t := newTandem(other)
	defer t.close()

	out := []Pair[T, U]{}
	for v := range seq {
		u, ok := t.advance()
		if !ok {
			return nil, exhausted(len(out))
		}
		out = append(out, Pair[T, U]{V1: v, V2: u})
	}
	return out, nil
}

// ZipOpt is Zip driven only by seq: positions missing from other are None.
func ZipOpt[T, U any](seq iter.Seq[T], other Source[U]) []Pair[T, g.Option[U]] {
	t := newTandem(other)
	defer t.close()

	out := []Pair[T, g.Option[U]]{}
	done := false
	for v := range seq {
		u := g.None[U]()
		if !done {
			if val, ok := t.advance(); ok {
				u = g.Some(val)
			} else {
				done = true
			}
		}
		out = append(out, Pair[T, g.Option[U]]{V1: v, V2: u})
	}
	return out
}

// ZipN advances seq and every source in others in lockstep. Each row holds
// the element of seq followed by one element per other source.
func ZipN[T any](seq iter.Seq[T], others ...Source[T]) ([][]T, error) {
	ts := make([]*tandem[T], len(others))
	for i, o := range others {
		ts[i] = newTandem(o)
		defer ts[i].close()
	}

	out := [][]T{}
	for v := range seq {
		row := make([]T, 1, len(ts)+1)
		row[0] = v
		for _, t := range ts {
			u, ok := t.advance()
			if !ok {
				return nil, exhausted(len(out))
			}
			row = append(row, u)
		}
		out = append(out, row)
	}
	return out, nil
}

// ZipNOpt is ZipN with None for positions a source does not have.
func ZipNOpt[T any](seq iter.Seq[T], others ...Source[T]) [][]g.Option[T] {
	ts := make([]*tandem[T], len(others))
	done := make([]bool, len(others))
	for i, o := range others {
		ts[i] = newTandem(o)
		defer ts[i].close()
	}

	out := [][]g.Option[T]{}
	for v := range seq {
		row := make([]g.Option[T], 1, len(ts)+1)
		row[0] = g.Some(v)
		for i, t := range ts {
			cell := g.None[T]()
			if !done[i] {
				if u, ok := t.advance(); ok {
					cell = g.Some(u)
				} else {
					done[i] = true
				}
			}
			row = append(row, cell)
		}
		out = append(out, row)
	}
	return out
}
