// Package gen procedurally builds galaxies with a plausible spiral-disk
// star distribution and circular orbital velocities.
package gen

import (
	"math"
	"math/rand"
	"time"

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/physics"
	"github.com/kws/galaxy/internal/rotation"
	"github.com/kws/galaxy/internal/vec"
)

const (
	DefaultMinStarCount             = 1500
	DefaultMinGalaxyRadius          = 1.0
	DefaultMaxInitialSpeed          = 4.0
	DefaultRewindTimeSteps          = 3.0
	DefaultCollisionAvoidanceOffset = 1.5
)

// Options configures RandomGalaxy. Zero fields take the defaults above.
// When a max is unset the corresponding min is used exactly. Rand is the
// entropy source; leaving it nil seeds one from the wall clock, so tests
// wanting reproducibility must inject their own.
type Options struct {
	MinStarCount                    int
	MaxStarCount                    int
	MinGalaxyRadius                 float64
	MaxGalaxyRadius                 float64
	MaxInitialSpeed                 float64
	RewindTimeSteps                 float64
	InitialCollisionAvoidanceOffset float64
	Rand                            *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.MinStarCount == 0 {
		o.MinStarCount = DefaultMinStarCount
	}
	if o.MinGalaxyRadius == 0 {
		o.MinGalaxyRadius = DefaultMinGalaxyRadius
	}
	if o.MaxInitialSpeed == 0 {
		o.MaxInitialSpeed = DefaultMaxInitialSpeed
	}
	if o.RewindTimeSteps == 0 {
		o.RewindTimeSteps = DefaultRewindTimeSteps
	}
	if o.InitialCollisionAvoidanceOffset == 0 {
		o.InitialCollisionAvoidanceOffset = DefaultCollisionAvoidanceOffset
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// RandomGalaxy builds one fully populated galaxy.
//
// The galaxy is rewound backward along its own bulk velocity so it starts
// off-center and approaching, then nudged off a perfect head-on course.
// Its mass is set to the star count: gravitational strength is coupled to
// population size, an observed behavior kept as-is. Orientation is three
// uniform draws in [0, pi] per axis, a bounded Euler sample rather than a
// uniform one over 3D orientations.
func RandomGalaxy(opts Options) *body.Galaxy {
	o := opts.withDefaults()
	rng := o.Rand

	velocity := vec.RandomCentered(rng, o.MaxInitialSpeed)
	position := velocity.Scale(-o.RewindTimeSteps).
		Add(vec.RandomCentered(rng, o.InitialCollisionAvoidanceOffset))
	orientation := vec.Random(rng, math.Pi)

	// Float draw truncated, so the max bound is effectively exclusive.
	starCount := o.MinStarCount
	if o.MaxStarCount > o.MinStarCount {
		starCount = int(float64(o.MinStarCount) + rng.Float64()*float64(o.MaxStarCount-o.MinStarCount))
	}

	radius := o.MinGalaxyRadius
	if o.MaxGalaxyRadius > o.MinGalaxyRadius {
		radius = o.MinGalaxyRadius + rng.Float64()*(o.MaxGalaxyRadius-o.MinGalaxyRadius)
	}

	g := body.NewGalaxy(position, velocity, orientation, float64(starCount))
	rot := rotation.FromEuler(orientation.X, orientation.Y, orientation.Z)

	g.Stars = make([]*body.Star, 0, starCount)
	for i := 0; i < starCount; i++ {
		g.Stars = append(g.Stars, randomStar(rng, g, rot, radius))
	}

	return g
}

// randomStar samples one star in the galaxy's local disk frame and
// transforms it to world space.
//
// The radial draw is uniform in radius, not in disk area, so density is
// higher toward the rim than a true uniform disk. The vertical draw decays
// exponentially away from the center, giving a thin disk with a bulge; the
// /5 scale and -2 exponent are tuning constants, reproduced exactly.
func randomStar(rng *rand.Rand, g *body.Galaxy, rot rotation.Matrix, radius float64) *body.Star {
	angle := rng.Float64() * 2 * math.Pi
	r := rng.Float64() * radius

	height := rng.Float64() * math.Exp(-2*r/radius) / 5 * radius
	if rng.Float64() < 0.5 {
		height = -height
	}

	// Circular-orbit speed from the 3D distance; the vertical offset's
	// dynamical effect is ignored, an accepted approximation.
	dist := math.Sqrt(r*r + height*height)
	orbitalSpeed := math.Sqrt(g.Mass * physics.DefaultG / dist)

	local := vec.Vector{X: r * math.Cos(angle), Y: r * math.Sin(angle), Z: height}
	localVel := vec.Vector{X: -orbitalSpeed * math.Sin(angle), Y: orbitalSpeed * math.Cos(angle)}

	return body.NewStar(
		rot.Transform(local).Add(g.Position),
		rot.Transform(localVel).Add(g.Velocity),
	)
}
