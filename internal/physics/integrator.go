package physics

import (
	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/vec"
)

const (
	// DefaultG is the gravitational constant the generator's orbital-speed
	// formula assumes.
	DefaultG = 0.001
	// DefaultDt is the fixed step size.
	DefaultDt = 0.005
)

// Integrator advances a galaxy collection by fixed semi-implicit Euler
// steps. G and Dt are exposed for tests; the defaults are what the
// initial-condition generator is tuned for.
//
// A step is three strictly ordered phases: star update, galaxy velocity
// update, galaxy position update. The ordering is what makes the scheme
// symplectic; the phases must not be fused or reordered. Star-star forces
// are ignored throughout.
type Integrator struct {
	G  float64
	Dt float64
}

func NewIntegrator() *Integrator {
	return &Integrator{G: DefaultG, Dt: DefaultDt}
}

// UpdateGalaxies advances every star and every galaxy by one step,
// mutating the collection in place. Non-finite inputs propagate as
// non-finite outputs; the call itself always succeeds.
func (in *Integrator) UpdateGalaxies(galaxies []*body.Galaxy) {
	in.stepStars(galaxies)
	in.stepGalaxyVelocities(galaxies)
	in.stepGalaxyPositions(galaxies)
}

// gravityAt sums the acceleration at p contributed by every galaxy except
// exclude. A galaxy exactly coincident with p is skipped rather than
// dividing by zero.
func (in *Integrator) gravityAt(p vec.Vector, galaxies []*body.Galaxy, exclude *body.Galaxy) vec.Vector {
	acc := vec.Zero()
	for _, g := range galaxies {
		if g == exclude {
			continue
		}
		r := g.Position.Sub(p)
		d := r.Magnitude()
		if d == 0 {
			continue
		}
		acc = acc.Add(r.Scale(in.G * g.Mass / (d * d * d)))
	}
	return acc
}

// stepStars updates every star's velocity from the summed galaxy gravity
// (including the star's own parent), then its position from the updated
// velocity. Galaxy positions are still the start-of-step values here.
func (in *Integrator) stepStars(galaxies []*body.Galaxy) {
	for _, g := range galaxies {
		for _, s := range g.Stars {
			acc := in.gravityAt(s.Position, galaxies, nil)
			s.Velocity = s.Velocity.Add(acc.Scale(in.Dt))
			s.Position = s.Position.Add(s.Velocity.Scale(in.Dt))
		}
	}
}

// stepGalaxyVelocities updates each galaxy's velocity from every other
// galaxy's gravity. A galaxy does not act on its own central mass.
func (in *Integrator) stepGalaxyVelocities(galaxies []*body.Galaxy) {
	for _, g := range galaxies {
		acc := in.gravityAt(g.Position, galaxies, g)
		g.Velocity = g.Velocity.Add(acc.Scale(in.Dt))
	}
}

// stepGalaxyPositions moves every galaxy along its updated velocity. Runs
// only after all galaxy velocities have been recomputed.
func (in *Integrator) stepGalaxyPositions(galaxies []*body.Galaxy) {
	for _, g := range galaxies {
		g.Position = g.Position.Add(g.Velocity.Scale(in.Dt))
	}
}
