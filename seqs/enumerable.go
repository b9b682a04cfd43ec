package seqs

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// Source is the one capability a type needs to become enumerable: visit
// each element in its natural order, stopping early when yield returns
// false. Visiting again must produce the same sequence unless the source
// documents itself as single-pass.
type Source[T any] interface {
	Each(yield func(T) bool)
}

// Enumerable is a Source with the derived operations attached. It is an
// iter.Seq, so it can be ranged over directly.
type Enumerable[T any] iter.Seq[T]

// From wraps src.
func From[T any](src Source[T]) Enumerable[T] {
	if e, ok := src.(Enumerable[T]); ok {
		return e
	}
	return src.Each
}

// FromSeq wraps a plain iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) Enumerable[T] {
	return Enumerable[T](seq)
}

func (e Enumerable[T]) Each(yield func(T) bool) { e(yield) }

// Seq returns e as an iter.Seq for the package-level functions.
func (e Enumerable[T]) Seq() iter.Seq[T] { return iter.Seq[T](e) }

func (e Enumerable[T]) All(pred func(T) bool) bool  { return All(e.Seq(), pred) }
func (e Enumerable[T]) Any(pred func(T) bool) bool  { return Any(e.Seq(), pred) }
func (e Enumerable[T]) None(pred func(T) bool) bool { return None(e.Seq(), pred) }
func (e Enumerable[T]) One(pred func(T) bool) bool  { return One(e.Seq(), pred) }

func (e Enumerable[T]) AllMatch(p Pattern[T]) bool  { return AllMatch(e.Seq(), p) }
func (e Enumerable[T]) AnyMatch(p Pattern[T]) bool  { return AnyMatch(e.Seq(), p) }
func (e Enumerable[T]) NoneMatch(p Pattern[T]) bool { return NoneMatch(e.Seq(), p) }
func (e Enumerable[T]) OneMatch(p Pattern[T]) bool  { return OneMatch(e.Seq(), p) }

func (e Enumerable[T]) Find(pred func(T) bool) g.Option[T] { return Find(e.Seq(), pred) }
func (e Enumerable[T]) FindOr(pred func(T) bool, def T) T  { return FindOr(e.Seq(), pred, def) }
func (e Enumerable[T]) FindOrErr(pred func(T) bool) (T, error) {
	return FindOrErr(e.Seq(), pred)
}

func (e Enumerable[T]) Index(pred func(T) bool) g.Option[int]     { return Index(e.Seq(), pred) }
func (e Enumerable[T]) IndexOrErr(pred func(T) bool) (int, error) { return IndexOrErr(e.Seq(), pred) }

func (e Enumerable[T]) First() (T, error)               { return First(e.Seq()) }
func (e Enumerable[T]) FirstOpt() g.Option[T]           { return FirstOpt(e.Seq()) }
func (e Enumerable[T]) FirstN(n int) ([]T, error)       { return FirstN(e.Seq(), n) }
func (e Enumerable[T]) Last() g.Option[T]               { return Last(e.Seq()) }
func (e Enumerable[T]) Count() int                      { return Count(e.Seq()) }
func (e Enumerable[T]) CountFunc(pred func(T) bool) int { return CountFunc(e.Seq(), pred) }
func (e Enumerable[T]) IsEmpty() bool                   { return IsEmpty(e.Seq()) }
func (e Enumerable[T]) IsPresent() bool                 { return IsPresent(e.Seq()) }
func (e Enumerable[T]) ToSlice() []T                    { return ToSlice(e.Seq()) }
func (e Enumerable[T]) Join(sep string) string          { return Join(e.Seq(), sep) }

func (e Enumerable[T]) Select(pred func(T) bool) []T { return Select(e.Seq(), pred) }
func (e Enumerable[T]) Reject(pred func(T) bool) []T { return Reject(e.Seq(), pred) }
func (e Enumerable[T]) Partition(pred func(T) bool) (matched, rest []T) {
	return Partition(e.Seq(), pred)
}

// Filter is the lazy Select.
func (e Enumerable[T]) Filter(pred func(T) bool) Enumerable[T] {
	return FromSeq(Filter(e.Seq(), pred))
}

func (e Enumerable[T]) Peek(action func(T)) Enumerable[T] {
	return FromSeq(Peek(e.Seq(), action))
}

func (e Enumerable[T]) Take(n int) (Enumerable[T], error) {
	seq, err := Take(e.Seq(), n)
	return FromSeq(seq), err
}

func (e Enumerable[T]) Skip(n int) (Enumerable[T], error) {
	seq, err := Skip(e.Seq(), n)
	return FromSeq(seq), err
}

func (e Enumerable[T]) TakeWhile(pred func(T) bool) Enumerable[T] {
	return FromSeq(TakeWhile(e.Seq(), pred))
}

func (e Enumerable[T]) SkipWhile(pred func(T) bool) Enumerable[T] {
	return FromSeq(SkipWhile(e.Seq(), pred))
}

func (e Enumerable[T]) Cycle() Enumerable[T] { return FromSeq(Cycle(e.Seq())) }

func (e Enumerable[T]) EachCons(n int) (iter.Seq[[]T], error)  { return EachCons(e.Seq(), n) }
func (e Enumerable[T]) EachSlice(n int) (iter.Seq[[]T], error) { return EachSlice(e.Seq(), n) }
func (e Enumerable[T]) EachConsPair() iter.Seq2[T, T]          { return EachConsPair(e.Seq()) }

func (e Enumerable[T]) EachStep(n, offset int) (Enumerable[T], error) {
	seq, err := EachStep(e.Seq(), n, offset)
	return FromSeq(seq), err
}

func (e Enumerable[T]) InSlicesOf(n int) ([][]T, error) { return InSlicesOf(e.Seq(), n) }
func (e Enumerable[T]) InGroupsOf(n int, filler T) ([][]T, error) {
	return InGroupsOf(e.Seq(), n, filler)
}

func (e Enumerable[T]) ChunkWhile(keep func(prev, cur T) bool) [][]T {
	return ChunkWhile(e.Seq(), keep)
}

func (e Enumerable[T]) SliceWhen(split func(prev, cur T) bool) [][]T {
	return SliceWhen(e.Seq(), split)
}

func (e Enumerable[T]) ReduceFirst(reducer func(T, T) T) (T, error) {
	return ReduceFirst(e.Seq(), reducer)
}

func (e Enumerable[T]) ReduceFirstOpt(reducer func(T, T) T) g.Option[T] {
	return ReduceFirstOpt(e.Seq(), reducer)
}

func (e Enumerable[T]) AccumulateFunc(f func(T, T) T) []T { return AccumulateFunc(e.Seq(), f) }

func (e Enumerable[T]) MaxFunc(cmp func(a, b T) int) (T, error) { return MaxFunc(e.Seq(), cmp) }
func (e Enumerable[T]) MinFunc(cmp func(a, b T) int) (T, error) { return MinFunc(e.Seq(), cmp) }

func (e Enumerable[T]) MaxNFunc(n int, cmp func(a, b T) int) ([]T, error) {
	return MaxNFunc(e.Seq(), n, cmp)
}

func (e Enumerable[T]) MinNFunc(n int, cmp func(a, b T) int) ([]T, error) {
	return MinNFunc(e.Seq(), n, cmp)
}

func (e Enumerable[T]) SortFunc(cmp func(a, b T) int) []T { return SortFunc(e.Seq(), cmp) }

func (e Enumerable[T]) Sample(opts ...SampleOption) (T, error) { return Sample(e.Seq(), opts...) }
func (e Enumerable[T]) SampleN(n int, opts ...SampleOption) ([]T, error) {
	return SampleN(e.Seq(), n, opts...)
}

// ZipN zips e with sources of the same element type.
func (e Enumerable[T]) ZipN(others ...Source[T]) ([][]T, error) { return ZipN(e.Seq(), others...) }
