package sliceutil

// NthElement reorders data in place so that data[k] holds the element that
// would be at index k if data were sorted by cmp, and returns it.
// Every element before k compares <= data[k] and every element after it
// compares >= data[k]. It panics if k is out of range.
func NthElement[T any](data []T, k int, cmp func(a, b T) int) T {
	return nthElement(data, 0, len(data)-1, k, cmp)
}

// nthElement is quickselect restricted to data[left:right+1].
func nthElement[T any](data []T, left, right, k int, cmp func(a, b T) int) T {
	_ = data[k] // bounds check up front
	for left < right {
		// median-of-range pivot keeps sorted input from degrading
		pivot := partition(data, left, right, left+(right-left)/2, cmp)
		switch {
		case k == pivot:
			return data[k]
		case k < pivot:
			right = pivot - 1
		default:
			left = pivot + 1
		}
	}
	return data[k]
}

// partition moves everything less than data[pivot] in front of it and
// returns the pivot's final index.
func partition[T any](data []T, left, right, pivot int, cmp func(a, b T) int) int {
	value := data[pivot]
	data[pivot], data[right] = data[right], data[pivot]
	store := left
	for i := left; i < right; i++ {
		if cmp(data[i], value) < 0 {
			data[store], data[i] = data[i], data[store]
			store++
		}
	}
	data[right], data[store] = data[store], data[right]
	return store
}

// SmallestN returns the n smallest elements of data in ascending order.
// data is used as the workspace and is reordered. n is clamped to len(data).
func SmallestN[T any](data []T, n int, cmp func(a, b T) int) []T {
	n = clampN(n, len(data))
	res := make([]T, n)
	for i := range n {
		// ranks below i are already settled in front of i
		res[i] = nthElement(data, i, len(data)-1, i, cmp)
	}
	return res
}

// LargestN returns the n largest elements of data in descending order.
// data is used as the workspace and is reordered. n is clamped to len(data).
func LargestN[T any](data []T, n int, cmp func(a, b T) int) []T {
	n = clampN(n, len(data))
	res := make([]T, n)
	last := len(data) - 1
	for i := range n {
		res[i] = nthElement(data, 0, last-i, last-i, cmp)
	}
	return res
}

func clampN(n, size int) int {
	if n < 0 {
		return 0
	}
	return min(n, size)
}
