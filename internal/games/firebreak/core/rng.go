package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// A board generated from the same seed is always the same board, on every
// platform and Go release, which math/rand does not promise.
type RNG struct {
	seed  int64
	state uint64
}

// NewRNG creates a new RNG from an integer seed.
// Any seed is valid, including zero and negative values.
func NewRNG(seed int64) *RNG {
	state := splitmix(uint64(seed))
	if state == 0 {
		state = 88172645463325252
	}
	return &RNG{seed: seed, state: state}
}

// splitmix scrambles the seed so neighbouring seeds start far apart.
func splitmix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Seed returns the seed this generator was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	// Top 53 bits fill the mantissa exactly.
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns floor(Float() * n), a random int in [0, n).
// Returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float() * float64(n))
}
