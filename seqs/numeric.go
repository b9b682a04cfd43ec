package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is any built-in numeric type. Its zero value is the additive
// identity and T(1) the multiplicative one.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Addable is any type with a built-in + whose zero value is the identity.
type Addable interface {
	Number | ~string
}

// Adder is implemented by types that sum through a method. There is no way
// to infer their identity, so they are always summed from an explicit
// initial value.
type Adder[T any] interface {
	Add(T) T
}

// Multiplier is the product counterpart of Adder.
type Multiplier[T any] interface {
	Mul(T) T
}

// Sum adds up the elements. An empty source sums to the zero value.
func Sum[T Addable](seq iter.Seq[T]) T {
	var zero T
	return SumFrom(seq, zero)
}

func SumFrom[T Addable](seq iter.Seq[T], initial T) T {
	total := initial
	for v := range seq {
		total += v
	}
	return total
}

// SumOf adds up f(v) over the elements.
func SumOf[T any, R Addable](seq iter.Seq[T], f func(T) R) R {
	var zero R
	return SumOfFrom(seq, zero, f)
}

func SumOfFrom[T any, R Addable](seq iter.Seq[T], initial R, f func(T) R) R {
	total := initial
	for v := range seq {
		total += f(v)
	}
	return total
}

// SumWith sums types that only know how to add themselves.
func SumWith[T Adder[T]](seq iter.Seq[T], initial T) T {
	return Reduce(seq, initial, func(acc, v T) T { return acc.Add(v) })
}

// Product multiplies the elements. An empty source gives 1.
func Product[T Number](seq iter.Seq[T]) T {
	return ProductFrom(seq, T(1))
}

func ProductFrom[T Number](seq iter.Seq[T], initial T) T {
	total := initial
	for v := range seq {
		total *= v
	}
	return total
}

// ProductOf multiplies f(v) over the elements.
func ProductOf[T any, R Number](seq iter.Seq[T], f func(T) R) R {
	return ProductOfFrom(seq, R(1), f)
}

func ProductOfFrom[T any, R Number](seq iter.Seq[T], initial R, f func(T) R) R {
	total := initial
	for v := range seq {
		total *= f(v)
	}
	return total
}

// ProductWith multiplies types that only know how to multiply themselves.
func ProductWith[T Multiplier[T]](seq iter.Seq[T], initial T) T {
	return Reduce(seq, initial, func(acc, v T) T { return acc.Mul(v) })
}
