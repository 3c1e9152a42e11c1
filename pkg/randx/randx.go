package randx

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand wraps a math/rand/v2 generator so handlers can share one instance.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New builds a PCG-backed generator. seed == 0 seeds from the wall clock.
func New(seed int64) *Rand {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (l *Rand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// IntN returns a value in [0, n). n <= 0 yields 0.
func (l *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Range returns an int in [lo, hi]. Reversed bounds are swapped.
func (l *Rand) Range(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + l.IntN(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func (l *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*l.Float64()
}

func (l *Rand) Perm(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Perm(n)
}

// Read fills p with pseudo-random bytes so the generator can back uuid.NewRandomFromReader.
func (l *Rand) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(p); i += 8 {
		v := l.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Pick returns a uniformly chosen element. An empty slice yields the zero value.
func Pick[T any](l *Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[l.IntN(len(items))]
}
