package rng

// FixedSource replays a fixed sequence of values, for tests that need a
// scripted stream. Intn returns the next value modulo n; Float returns
// the next value scaled into [0, 1). The sequence wraps around.
type FixedSource struct {
	seq []int
	pos int
}

// Fixed returns a FixedSource over the given values. An empty sequence
// behaves as a stream of zeros.
func Fixed(seq ...int) *FixedSource {
	return &FixedSource{seq: seq}
}

func (f *FixedSource) next() int {
	if len(f.seq) == 0 {
		return 0
	}
	v := f.seq[f.pos]
	f.pos = (f.pos + 1) % len(f.seq)
	return v
}

// Intn returns the next scripted value modulo n.
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := f.next() % n
	if v < 0 {
		v += n
	}
	return v
}

// Float returns the next scripted value scaled into [0, 1) out of 100.
func (f *FixedSource) Float() float64 {
	return float64(f.Intn(100)) / 100.0
}
