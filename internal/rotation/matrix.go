package rotation

import (
	"errors"
	"math"

	"github.com/kws/galaxy/internal/vec"
)

// ErrShape indicates matrix data that is not exactly 3x3.
var ErrShape = errors.New("rotation: matrix data must be 3x3")

// Matrix is a 3x3 rotation matrix stored row-major. Factory functions
// return fresh values; a Matrix is never mutated except through Set.
//
// Convention: Mul is the conventional row-by-column product, while
// Transform multiplies with the matrix columns as the basis, i.e. it
// computes v*M for a row vector v. The two are intentionally asymmetric;
// see the tests for the worked contract.
type Matrix struct {
	m [3][3]float64
}

func Identity() Matrix {
	return Matrix{m: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// New builds a Matrix from row-major values, failing unless the data is
// exactly 3x3.
func New(values [][]float64) (Matrix, error) {
	if len(values) != 3 {
		return Matrix{}, ErrShape
	}
	var m Matrix
	for i, row := range values {
		if len(row) != 3 {
			return Matrix{}, ErrShape
		}
		for j, v := range row {
			m.m[i][j] = v
		}
	}
	return m, nil
}

// FromEuler builds the composite matrix for sequential rotations about the
// x, then y, then z axes (Tait-Bryan ZYX composition, closed form).
func FromEuler(x, y, z float64) Matrix {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)

	return Matrix{m: [3][3]float64{
		{cy * cz, sx*sy*cz - cx*sz, cx*sy*cz + sx*sz},
		{cy * sz, sx*sy*sz + cx*cz, cx*sy*sz - sx*cz},
		{-sy, sx * cy, cx * cy},
	}}
}

// FromAxisAngle builds the rotation of angle radians about axis using
// Rodrigues' formula. The axis is used as supplied; callers wanting a
// proper rotation pass a unit axis.
func FromAxisAngle(axis vec.Vector, angle float64) Matrix {
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Matrix{m: [3][3]float64{
		{c + x*x*t, x*y*t - z*s, x*z*t + y*s},
		{y*x*t + z*s, c + y*y*t, y*z*t - x*s},
		{z*x*t - y*s, z*y*t + x*s, c + z*z*t},
	}}
}

// Transform applies the rotation to v using the matrix columns as the
// basis: the result is v*M under the row-major layout, not M*v.
func (m Matrix) Transform(v vec.Vector) vec.Vector {
	return vec.Vector{
		X: v.X*m.m[0][0] + v.Y*m.m[1][0] + v.Z*m.m[2][0],
		Y: v.X*m.m[0][1] + v.Y*m.m[1][1] + v.Z*m.m[2][1],
		Z: v.X*m.m[0][2] + v.Y*m.m[1][2] + v.Z*m.m[2][2],
	}
}

// Mul returns the conventional matrix product m*other.
func (m Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m.m[i][k] * other.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// ToEuler recovers the angles consistent with FromEuler's composition
// order. Only valid away from gimbal lock; no special-casing is done there.
func (m Matrix) ToEuler() (x, y, z float64) {
	x = math.Atan2(m.m[2][1], m.m[2][2])
	y = math.Asin(-m.m[2][0])
	z = math.Atan2(m.m[1][0], m.m[0][0])
	return x, y, z
}

func (m Matrix) Get(i, j int) float64 { return m.m[i][j] }

func (m *Matrix) Set(i, j int, v float64) { m.m[i][j] = v }

// ToArray returns a defensive copy of the backing values.
func (m Matrix) ToArray() [][]float64 {
	out := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = []float64{m.m[i][0], m.m[i][1], m.m[i][2]}
	}
	return out
}
