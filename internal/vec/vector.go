package vec

import (
	"math"
	"math/rand"
)

// Vector is an immutable 3-component vector. Every operation returns a
// fresh value; operands are never mutated.
type Vector struct {
	X, Y, Z float64
}

func Zero() Vector { return Vector{} }

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector) Mul(o Vector) Vector { return Vector{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector) Div(o Vector) Vector { return Vector{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Scalar broadcast forms of the component-wise operations.
func (v Vector) AddScalar(s float64) Vector { return Vector{v.X + s, v.Y + s, v.Z + s} }
func (v Vector) SubScalar(s float64) Vector { return Vector{v.X - s, v.Y - s, v.Z - s} }
func (v Vector) Scale(s float64) Vector     { return Vector{v.X * s, v.Y * s, v.Z * s} }
func (v Vector) DivScalar(s float64) Vector { return Vector{v.X / s, v.Y / s, v.Z / s} }

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize divides by the magnitude without guarding the zero vector;
// a zero input yields non-finite components that propagate to the caller.
func (v Vector) Normalize() Vector {
	return v.DivScalar(v.Magnitude())
}

func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Random returns three independent uniform draws in [0, 1) scaled by factor.
func Random(rng *rand.Rand, factor float64) Vector {
	return Vector{rng.Float64() * factor, rng.Float64() * factor, rng.Float64() * factor}
}

// RandomCentered samples Random(1), recenters on the origin and scales,
// giving components in [-factor/2, factor/2). This is a cube sample, not a
// ball sample, so corners are over-represented relative to an isotropic draw.
func RandomCentered(rng *rand.Rand, factor float64) Vector {
	return Random(rng, 1).SubScalar(0.5).Scale(factor)
}
