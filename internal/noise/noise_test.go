package noise

import "testing"

// TestHashDeterministic verifies that identical inputs always hash to the
// same value and that the seed actually changes the output.
func TestHashDeterministic(t *testing.T) {
	coords := [][2]int{{0, 0}, {1, 0}, {0, 1}, {-5, 7}, {1000, -1000}}
	for _, c := range coords {
		a := Hash(c[0], c[1], 42)
		b := Hash(c[0], c[1], 42)
		if a != b {
			t.Errorf("Hash(%d, %d, 42) not stable: %g vs %g", c[0], c[1], a, b)
		}
	}

	same := 0
	for _, c := range coords {
		if Hash(c[0], c[1], 1) == Hash(c[0], c[1], 2) {
			same++
		}
	}
	if same == len(coords) {
		t.Error("seed has no effect on hash output")
	}
}

// TestHashRange samples a block of lattice points and checks every value
// lands in [0, 1).
func TestHashRange(t *testing.T) {
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			v := Hash(x, y, 7)
			if v < 0 || v >= 1 {
				t.Fatalf("Hash(%d, %d, 7) = %g, want [0, 1)", x, y, v)
			}
		}
	}
}

// TestSourceAt checks the interpolated field stays in range, is stable for
// a fixed seed, and equals the lattice hash exactly on lattice points.
func TestSourceAt(t *testing.T) {
	src := New(9, 0.1)

	for i := 0; i < 100; i++ {
		x := float64(i) * 3.7
		y := float64(i) * -1.3
		v := src.At(x, y)
		if v < 0 || v >= 1 {
			t.Fatalf("At(%g, %g) = %g, want [0, 1)", x, y, v)
		}
		if v != src.At(x, y) {
			t.Fatalf("At(%g, %g) not stable", x, y)
		}
	}

	// x=30, y=50 at frequency 0.1 sits exactly on lattice point (3, 5).
	if got, want := src.At(30, 50), Hash(3, 5, 9); got != want {
		t.Errorf("At(30, 50) = %g, want lattice hash %g", got, want)
	}
}

// TestFractal checks octave summing keeps the normalized range.
func TestFractal(t *testing.T) {
	src := New(3, 0.05)
	for i := 0; i < 50; i++ {
		v := src.Fractal(float64(i)*2.1, float64(i)*0.9, 4)
		if v < 0 || v >= 1 {
			t.Fatalf("Fractal = %g, want [0, 1)", v)
		}
	}
}
