package vec

import (
	"math"
	"math/rand"
	"testing"
)

func TestVector_Arithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vector{5, 7, 9}) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != (Vector{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", diff)
	}

	prod := a.Mul(b)
	if prod != (Vector{4, 10, 18}) {
		t.Errorf("Mul failed: got %v", prod)
	}

	quot := b.Div(a)
	if quot != (Vector{4, 2.5, 2}) {
		t.Errorf("Div failed: got %v", quot)
	}

	scaled := a.Scale(2)
	if scaled != (Vector{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", scaled)
	}

	shifted := a.AddScalar(1).SubScalar(1)
	if shifted != a {
		t.Errorf("AddScalar/SubScalar round trip failed: got %v", shifted)
	}
}

func TestVector_AddSubRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		a := RandomCentered(rng, 10)
		b := RandomCentered(rng, 10)

		got := a.Add(b).Sub(b)
		if math.Abs(got.X-a.X) > 1e-10 || math.Abs(got.Y-a.Y) > 1e-10 || math.Abs(got.Z-a.Z) > 1e-10 {
			t.Fatalf("a.Add(b).Sub(b) = %v, want %v", got, a)
		}
	}
}

func TestVector_Magnitude(t *testing.T) {
	tests := []struct {
		v        Vector
		expected float64
	}{
		{Vector{3, 4, 0}, 5.0},
		{Vector{1, 0, 0}, 1.0},
		{Vector{0, 0, 0}, 0.0},
		{Vector{1, 1, 1}, math.Sqrt(3)},
	}

	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVector_Normalize(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		v := RandomCentered(rng, 20).AddScalar(0.1)
		if mag := v.Normalize().Magnitude(); math.Abs(mag-1) > 1e-10 {
			t.Fatalf("Normalize(%v).Magnitude() = %v, want 1", v, mag)
		}
	}
}

func TestVector_NormalizeZero(t *testing.T) {
	// The zero vector is deliberately unguarded: the result is non-finite,
	// not a panic.
	n := Zero().Normalize()
	if n.IsFinite() {
		t.Errorf("Normalize(zero) = %v, want non-finite components", n)
	}
}

func TestRandom_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := Random(rng, 3)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < 0 || c >= 3 {
				t.Fatalf("Random(3) component %v out of [0, 3)", c)
			}
		}
	}
}

func TestRandomCentered_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomCentered(rng, 4)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 2 {
				t.Fatalf("RandomCentered(4) component %v out of [-2, 2)", c)
			}
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(99)), 1)
	b := Random(rand.New(rand.NewSource(99)), 1)
	if a != b {
		t.Errorf("same seed produced different vectors: %v vs %v", a, b)
	}
}
