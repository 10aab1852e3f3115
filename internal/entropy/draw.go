package entropy

import (
	"math/rand"
	"time"
)

// Seeded is a reproducible Source backed by math/rand.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a seeded source. A zero seed uses the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Float implements Source.
func (s *Seeded) Float() float64 {
	return s.rng.Float64()
}

// Sequence replays scripted values in order and wraps around when exhausted.
// Tests use it to force specific branches.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. An empty sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float implements Source.
func (s *Sequence) Float() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 0.999999
	}
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}

// Chance draws once and reports whether the draw fell under p.
func Chance(src Source, p float64) bool {
	return src.Float() < p
}

// Intn returns an integer in [0, n). It returns 0 without drawing when n <= 1.
func Intn(src Source, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(src.Float() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Range returns an integer in [min, max). Like Intn it does not draw for an
// empty or single-value range.
func Range(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + Intn(src, max-min)
}

// Between returns a float in [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float()*(hi-lo)
}

// Pick returns a uniformly chosen element of items. It panics on an empty
// slice, which is always a table bug.
func Pick[T any](src Source, items []T) T {
	return items[Intn(src, len(items))]
}

// Shuffle permutes items in place (Fisher-Yates, one draw per position).
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := Intn(src, i+1)
		items[i], items[j] = items[j], items[i]
	}
}

// Weighted walks cumulative weights in order and returns the index of the
// first band containing the draw. Ties resolve to the earlier band.
func Weighted(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	r := src.Float() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}
