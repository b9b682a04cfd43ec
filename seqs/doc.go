/*
Package seqs derives a full enumerable library from one primitive: a push
iterator, iter.Seq[T] (Go 1.23+). Anything that can visit its elements one at
a time gets every operation here for free, without indexing, a known length,
or materialized storage.

A source only has to implement [Source]:

	type Source[T any] interface {
		Each(yield func(T) bool)
	}

[From] turns a Source into an [Enumerable], a named iter.Seq that carries the
operations that keep the element type as methods. Operations that change the
element type ([Map], [GroupBy], [Tally], [Zip], [SumOf], [MaxBy], ...) are
package-level functions, since Go methods cannot declare type parameters.

  - **Predicates**: [All], [Any], [None], [One], [Includes], plus pattern and
    non-zero forms. All of them stop as soon as the answer is known.
  - **Chunking and windows**: [Chunks], [EachCons], [EachConsPair],
    [EachSlice], [EachStep], [InGroupsOf].
  - **Search**: [Find], [FindValue], [Index], [IndexBy].
  - **Reduction**: [Reduce], [ReduceFirst], [Accumulate], [Sum], [Product].
  - **Order statistics**: [Max], [Min], [MaxBy], [MinMax], [MaxN], [MinN].
  - **Partitioning and grouping**: [Select], [Reject], [Partition],
    [Tally], [GroupBy].
  - **Sampling**: [Sample], [SampleN].
  - **Tandem traversal**: [Zip], [ZipOpt], [ZipN].

# Results and errors

Operations that can have no result come in several forms. One returns a
g.Option from github.com/anacrolix/generics, one returns an error wrapping a
package sentinel ([ErrEmpty], [ErrNotFound], [ErrInvalidArgument],
[ErrUncomparable], [ErrIndexOutOfRange]), and an Or form takes a default.
When the plain name fails ([First], [Max], [ReduceFirst]) the Option form has
an Opt suffix; when the plain name returns an Option ([Find], [Index]) the
failing form has an OrErr suffix. Argument errors are reported before the
source is touched.

Many functions also come in "Try" variants ([TryMap], [TryFilter],
[TryReduce]) for callbacks that can fail.

Every operation runs synchronously on the calling goroutine and owns its
scratch buffers. Operations that need the whole input at once (MaxN, MinN,
Sort) traverse the source exactly once to build a private copy.
*/
package seqs
