package sliceutil_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"enumerable/sliceutil"
)

func TestShuffle_KeepsElements(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	data := slices.Clone(input)
	sliceutil.Shuffle(data, rand.New(rand.NewPCG(7, 7)))

	slices.Sort(data)
	if !slices.Equal(data, input) {
		t.Errorf("Shuffle() lost or duplicated elements: %v", data)
	}
}

func TestShuffle_NilSource(t *testing.T) {
	data := []string{"a", "b", "c"}
	sliceutil.Shuffle(data, nil)
	slices.Sort(data)
	if !slices.Equal(data, []string{"a", "b", "c"}) {
		t.Errorf("Shuffle(nil) = %v", data)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6}
	b := slices.Clone(a)
	sliceutil.Shuffle(a, rand.New(rand.NewPCG(42, 1)))
	sliceutil.Shuffle(b, rand.New(rand.NewPCG(42, 1)))
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestShuffle_Small(t *testing.T) {
	var empty []int
	sliceutil.Shuffle(empty, nil)

	one := []int{9}
	sliceutil.Shuffle(one, nil)
	if one[0] != 9 {
		t.Errorf("Shuffle of one element changed it to %d", one[0])
	}
}
