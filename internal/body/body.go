package body

import "github.com/kws/galaxy/internal/vec"

// Star is a tracer particle: it responds to galaxy gravity but, at the
// default zero mass, exerts none. Position and velocity are mutated in
// place by the integrator each step.
type Star struct {
	Position vec.Vector
	Velocity vec.Vector
	Mass     float64
}

func NewStar(pos, vel vec.Vector) *Star {
	return &Star{Position: pos, Velocity: vel}
}

// Galaxy is a massive central body together with the stars it exclusively
// owns. Stars carry no back-reference; traversals pass the owning galaxy
// alongside each star.
type Galaxy struct {
	Position    vec.Vector
	Velocity    vec.Vector
	Orientation vec.Vector // Euler angles, radians
	Mass        float64
	Stars       []*Star
}

func NewGalaxy(pos, vel, orientation vec.Vector, mass float64) *Galaxy {
	return &Galaxy{
		Position:    pos,
		Velocity:    vel,
		Orientation: orientation,
		Mass:        mass,
	}
}

// TotalStars counts stars across all galaxies.
func TotalStars(galaxies []*Galaxy) int {
	n := 0
	for _, g := range galaxies {
		n += len(g.Stars)
	}
	return n
}

// AllStars visits every star of every galaxy in galaxy-sequence then
// star-sequence order, passing the owning galaxy and the star's index
// within it. No ordering guarantee beyond that.
func AllStars(galaxies []*Galaxy, visit func(s *Star, g *Galaxy, i int)) {
	for _, g := range galaxies {
		for i, s := range g.Stars {
			visit(s, g, i)
		}
	}
}
