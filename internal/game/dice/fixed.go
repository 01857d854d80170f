package dice

// FixedSource replays scripted values in order. It exists so callers can make
// generation, combat and reward outcomes deterministic in tests.
//
// Ints and Floats cycle independently once exhausted. An empty Ints slice
// yields 0 and an empty Floats slice yields 0.0.
type FixedSource struct {
	Ints   []int
	Floats []float64

	nextInt   int
	nextFloat int
}

// NewFixedSource returns a FixedSource replaying ints and floats.
func NewFixedSource(ints []int, floats []float64) *FixedSource {
	return &FixedSource{Ints: ints, Floats: floats}
}

// Intn returns the next scripted int reduced modulo n.
//
// Precondition: n > 0.
// Postcondition: result is in [0, n).
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[f.nextInt%len(f.Ints)]
	f.nextInt++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next scripted float.
func (f *FixedSource) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[f.nextFloat%len(f.Floats)]
	f.nextFloat++
	return v
}
