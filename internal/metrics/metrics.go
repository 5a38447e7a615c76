// Package metrics provides per-step diagnostics over a galaxy collection.
package metrics

import (
	"math"

	"github.com/kws/galaxy/internal/body"
)

// Metric observes the galaxy collection after each step and reduces the
// observations to a single value.
type Metric interface {
	Name() string
	Observe(galaxies []*body.Galaxy, t float64)
	Value() float64
	Reset()
}

// KineticEnergy tracks the collection's kinetic energy at the most recent
// observation. Stars are tracers with zero mass, so they are counted at
// unit mass to make the diagnostic track bulk motion at all.
type KineticEnergy struct {
	last float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(galaxies []*body.Galaxy, t float64) {
	total := 0.0
	for _, g := range galaxies {
		v := g.Velocity.Magnitude()
		total += 0.5 * g.Mass * v * v
	}
	body.AllStars(galaxies, func(s *body.Star, _ *body.Galaxy, _ int) {
		v := s.Velocity.Magnitude()
		total += 0.5 * v * v
	})
	k.last = total
}

func (k *KineticEnergy) Value() float64 { return k.last }
func (k *KineticEnergy) Reset()         { k.last = 0 }

// Momentum tracks the magnitude of the summed galaxy momentum. Tracer
// stars carry none.
type Momentum struct {
	last float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(galaxies []*body.Galaxy, t float64) {
	var px, py, pz float64
	for _, g := range galaxies {
		px += g.Mass * g.Velocity.X
		py += g.Mass * g.Velocity.Y
		pz += g.Mass * g.Velocity.Z
	}
	m.last = math.Sqrt(px*px + py*py + pz*pz)
}

func (m *Momentum) Value() float64 { return m.last }
func (m *Momentum) Reset()         { m.last = 0 }

// Spread tracks the RMS distance of stars from their owning galaxy's
// center, a rough measure of how far the disks have been disrupted.
type Spread struct {
	last float64
}

func NewSpread() *Spread { return &Spread{} }

func (s *Spread) Name() string { return "spread" }

func (s *Spread) Observe(galaxies []*body.Galaxy, t float64) {
	sum := 0.0
	n := 0
	body.AllStars(galaxies, func(star *body.Star, g *body.Galaxy, _ int) {
		d := star.Position.Sub(g.Position).Magnitude()
		sum += d * d
		n++
	})
	if n == 0 {
		s.last = 0
		return
	}
	s.last = math.Sqrt(sum / float64(n))
}

func (s *Spread) Value() float64 { return s.last }
func (s *Spread) Reset()         { s.last = 0 }
