package seqs

import "iter"

type chunkKind uint8

const (
	chunkKey chunkKind = iota
	chunkDrop
	chunkAlone
)

// ChunkKey is the result of a chunk classifier: either a key, or one of the
// two controls [Drop] and [Alone]. Keeping the controls out of K means no
// legitimate key can be mistaken for one.
type ChunkKey[K comparable] struct {
	kind chunkKind
	key  K
}

// Key classifies an element under k. Consecutive elements with equal keys
// share a chunk.
func Key[K comparable](k K) ChunkKey[K] {
	return ChunkKey[K]{kind: chunkKey, key: k}
}

// Drop removes the element from the output. It also closes the open chunk,
// so equal keys on both sides of a dropped element end up in two chunks.
func Drop[K comparable]() ChunkKey[K] {
	return ChunkKey[K]{kind: chunkDrop}
}

// Alone puts the element in a chunk of its own regardless of its neighbours.
func Alone[K comparable]() ChunkKey[K] {
	return ChunkKey[K]{kind: chunkAlone}
}

// Value returns the key and whether k is a plain key rather than a control.
func (k ChunkKey[K]) Value() (K, bool) {
	return k.key, k.kind == chunkKey
}

func (k ChunkKey[K]) IsDrop() bool  { return k.kind == chunkDrop }
func (k ChunkKey[K]) IsAlone() bool { return k.kind == chunkAlone }

// Chunk is a maximal run of consecutive elements sharing a key.
// Chunks produced by [Alone] have Alone set and a zero Key.
type Chunk[K comparable, T any] struct {
	Key   K
	Alone bool
	Items []T
}

// chunkAccumulator holds the open chunk while the source is traversed.
type chunkAccumulator[K comparable, T any] struct {
	key   ChunkKey[K]
	items []T
	open  bool
}

func (a *chunkAccumulator[K, T]) init(key ChunkKey[K], v T) {
	if key.kind == chunkDrop {
		panic("seqs: chunk opened with a Drop key")
	}
	a.key = key
	a.items = []T{v}
	a.open = true
}

// extends reports whether an element classified as key belongs to the open
// chunk. Controls never extend a chunk.
func (a *chunkAccumulator[K, T]) extends(key ChunkKey[K]) bool {
	return a.open && key.kind == chunkKey && a.key.kind == chunkKey && a.key.key == key.key
}

func (a *chunkAccumulator[K, T]) fetch() (Chunk[K, T], bool) {
	if !a.open {
		return Chunk[K, T]{}, false
	}
	c := Chunk[K, T]{Key: a.key.key, Alone: a.key.kind == chunkAlone, Items: a.items}
	*a = chunkAccumulator[K, T]{}
	return c, true
}

// ChunkSeq lazily groups consecutive elements by the key classify returns.
// A new key closes the open chunk; the last one is emitted once the source
// is exhausted.
func ChunkSeq[T any, K comparable](seq iter.Seq[T], classify func(T) ChunkKey[K]) iter.Seq[Chunk[K, T]] {
	return func(yield func(Chunk[K, T]) bool) {
		var acc chunkAccumulator[K, T]
		for v := range seq {
			key := classify(v)
			if acc.extends(key) {
				acc.items = append(acc.items, v)
				continue
			}
			if c, ok := acc.fetch(); ok {
				if !yield(c) {
					return
				}
			}
			if key.kind != chunkDrop {
				acc.init(key, v)
			}
		}
		if c, ok := acc.fetch(); ok {
			yield(c)
		}
	}
}

// Chunks is the eager form of [ChunkSeq].
func Chunks[T any, K comparable](seq iter.Seq[T], classify func(T) ChunkKey[K]) []Chunk[K, T] {
	var out []Chunk[K, T]
	for c := range ChunkSeq(seq, classify) {
		out = append(out, c)
	}
	return out
}

// ChunksBy groups consecutive elements by a plain key, with no controls.
func ChunksBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []Chunk[K, T] {
	return Chunks(seq, func(v T) ChunkKey[K] { return Key(key(v)) })
}

// ChunkWhile splits the source between neighbours prev and cur for which
// keep(prev, cur) is false.
func ChunkWhile[T any](seq iter.Seq[T], keep func(prev, cur T) bool) [][]T {
	return splitBetween(seq, func(prev, cur T) bool { return !keep(prev, cur) })
}

// SliceWhen splits the source between neighbours prev and cur for which
// split(prev, cur) is true.
func SliceWhen[T any](seq iter.Seq[T], split func(prev, cur T) bool) [][]T {
	return splitBetween(seq, split)
}

func splitBetween[T any](seq iter.Seq[T], split func(prev, cur T) bool) [][]T {
	var (
		out  [][]T
		cur  []T
		prev T
	)
	for v := range seq {
		if len(cur) > 0 && split(prev, v) {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, v)
		prev = v
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
