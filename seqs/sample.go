package seqs

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"enumerable/sliceutil"
)

type sampleConfig struct {
	rand *rand.Rand
}

// SampleOption configures Sample and SampleN.
type SampleOption func(*sampleConfig)

// WithRand draws from r instead of the math/rand/v2 package source.
// Seeded sources make sampling reproducible.
func WithRand(r *rand.Rand) SampleOption {
	return func(c *sampleConfig) {
		c.rand = r
	}
}

func newSampleConfig(opts []SampleOption) *sampleConfig {
	c := &sampleConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *sampleConfig) intN(n int) int {
	if c.rand != nil {
		return c.rand.IntN(n)
	}
	return rand.IntN(n)
}

// Sample returns one element chosen uniformly at random in a single pass:
// the i-th element replaces the held one with probability 1/i.
// It fails with ErrIndexOutOfRange on an empty source.
func Sample[T any](seq iter.Seq[T], opts ...SampleOption) (T, error) {
	cfg := newSampleConfig(opts)
	var picked T
	seen := 0
	for v := range seq {
		seen++
		if cfg.intN(seen) == 0 {
			picked = v
		}
	}
	if seen == 0 {
		return picked, fmt.Errorf("%w: sample from empty source", ErrIndexOutOfRange)
	}
	return picked, nil
}

// SampleN returns min(n, size) elements chosen uniformly at random without
// replacement, using reservoir sampling. The reservoir is shuffled at the
// end since reservoir order alone is not random.
// n == 0 returns without touching the source.
func SampleN[T any](seq iter.Seq[T], n int, opts ...SampleOption) ([]T, error) {
	if n < 0 {
		return nil, invalidArgument("sample size %d must not be negative", n)
	}
	if n == 0 {
		return []T{}, nil
	}
	cfg := newSampleConfig(opts)
	reservoir := make([]T, 0, min(n, 1024))
	i := 0
	for v := range seq {
		if i < n {
			reservoir = append(reservoir, v)
		} else if j := cfg.intN(i + 1); j < n {
			reservoir[j] = v
		}
		i++
	}
	sliceutil.Shuffle(reservoir, cfg.rand)
	return reservoir, nil
}
