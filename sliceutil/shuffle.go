package sliceutil

import "math/rand/v2"

// Shuffle permutes data in place uniformly at random (Fisher-Yates).
// A nil r uses the package-level source of math/rand/v2.
func Shuffle[T any](data []T, r *rand.Rand) {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := len(data) - 1; i > 0; i-- {
		j := intN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
