package dialogue

// SeededRand is a tiny additive generator: a single 64-bit state advanced by
// a fixed constant each call. It is reproducible (same seed and call sequence
// give the same picks) and has no cryptographic ambitions.
type SeededRand struct {
	state uint64
}

const (
	seedMultiplier = 6364136223846793005
	seedIncrement  = 1
	stepConstant   = 0x9E3779B97F4A7C15
)

// NewSeededRand creates a generator from seed.
func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{state: seed*seedMultiplier + seedIncrement}
}

// Next advances the state and returns it.
func (r *SeededRand) Next() uint64 {
	r.state += stepConstant
	return r.state
}

// Intn returns a value in [0,n). n must be positive.
func (r *SeededRand) Intn(n int) int {
	return int(r.Next() % uint64(n))
}
