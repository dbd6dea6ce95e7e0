package noise

import "math"

// Hash returns a deterministic value in [0, 1) for integer lattice
// coordinates and a seed. Identical inputs always produce identical
// output; there is no internal state, so it is safe to call from any
// number of readers.
func Hash(x, y, seed int) float64 {
	h := uint32(seed)
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	h = mix32(h)
	return float64(h) / (1 << 32)
}

// mix32 avalanches a 32-bit value (Murmur finalizer constants).
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Source samples seeded 2D value noise. The zero value is unusable;
// construct with New.
type Source struct {
	seed      int
	frequency float64
}

// New creates a noise source with the given seed and lattice frequency.
func New(seed int, frequency float64) *Source {
	return &Source{seed: seed, frequency: frequency}
}

// At samples value noise at (x, y): the four lattice hashes surrounding
// the frequency-scaled point, bilinearly interpolated. Result is in [0, 1).
func (s *Source) At(x, y float64) float64 {
	fx := x * s.frequency
	fy := y * s.frequency

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := Hash(x0, y0, s.seed)
	v10 := Hash(x0+1, y0, s.seed)
	v01 := Hash(x0, y0+1, s.seed)
	v11 := Hash(x0+1, y0+1, s.seed)

	top := lerp(v00, v10, tx)
	bottom := lerp(v01, v11, tx)
	return lerp(top, bottom, ty)
}

// Fractal sums octaves of At with doubling frequency and halving
// amplitude, normalized back to [0, 1).
func (s *Source) Fractal(x, y float64, octaves int) float64 {
	var total, maxAmp float64
	amp := 1.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		total += s.At(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= 2
		amp *= 0.5
	}
	return total / maxAmp
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
