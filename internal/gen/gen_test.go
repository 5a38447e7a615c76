package gen_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/gen"
	"github.com/kws/galaxy/internal/physics"
	"github.com/kws/galaxy/internal/rotation"
	"github.com/kws/galaxy/internal/vec"
)

// toLocal undoes the galaxy's orientation, mapping a world-space offset
// back into the disk frame.
func toLocal(m rotation.Matrix, world vec.Vector) vec.Vector {
	return vec.Vector{
		X: m.Get(0, 0)*world.X + m.Get(0, 1)*world.Y + m.Get(0, 2)*world.Z,
		Y: m.Get(1, 0)*world.X + m.Get(1, 1)*world.Y + m.Get(1, 2)*world.Z,
		Z: m.Get(2, 0)*world.X + m.Get(2, 1)*world.Y + m.Get(2, 2)*world.Z,
	}
}

var _ = Describe("RandomGalaxy", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(1234))
	})

	It("yields exactly N stars when min and max star count coincide", func() {
		g := gen.RandomGalaxy(gen.Options{MinStarCount: 137, MaxStarCount: 137, Rand: rng})
		Expect(g.Stars).To(HaveLen(137))
	})

	It("uses the min star count when no max is given", func() {
		g := gen.RandomGalaxy(gen.Options{MinStarCount: 42, Rand: rng})
		Expect(g.Stars).To(HaveLen(42))
	})

	It("keeps the star count within the requested range", func() {
		for i := 0; i < 20; i++ {
			g := gen.RandomGalaxy(gen.Options{MinStarCount: 10, MaxStarCount: 30, Rand: rng})
			Expect(len(g.Stars)).To(BeNumerically(">=", 10))
			Expect(len(g.Stars)).To(BeNumerically("<", 30))
		}
	})

	It("couples galaxy mass to the star count", func() {
		g := gen.RandomGalaxy(gen.Options{MinStarCount: 64, MaxStarCount: 64, Rand: rng})
		Expect(g.Mass).To(Equal(float64(len(g.Stars))))
	})

	It("keeps every star's planar radial distance within the disk radius", func() {
		const R = 2.5
		g := gen.RandomGalaxy(gen.Options{
			MinStarCount: 500, MinGalaxyRadius: R, MaxGalaxyRadius: R, Rand: rng,
		})
		m := rotation.FromEuler(g.Orientation.X, g.Orientation.Y, g.Orientation.Z)

		body.AllStars([]*body.Galaxy{g}, func(s *body.Star, owner *body.Galaxy, _ int) {
			local := toLocal(m, s.Position.Sub(owner.Position))
			planar := math.Hypot(local.X, local.Y)
			Expect(planar).To(BeNumerically("<=", R+1e-9))
		})
	})

	It("keeps the disk thin: vertical offsets bounded by radius/5", func() {
		const R = 3.0
		g := gen.RandomGalaxy(gen.Options{
			MinStarCount: 500, MinGalaxyRadius: R, MaxGalaxyRadius: R, Rand: rng,
		})
		m := rotation.FromEuler(g.Orientation.X, g.Orientation.Y, g.Orientation.Z)

		for _, s := range g.Stars {
			local := toLocal(m, s.Position.Sub(g.Position))
			Expect(math.Abs(local.Z)).To(BeNumerically("<=", R/5+1e-9))
		}
	})

	It("gives each star the circular-orbit speed for its 3D distance", func() {
		g := gen.RandomGalaxy(gen.Options{MinStarCount: 200, Rand: rng})

		for _, s := range g.Stars {
			dist := s.Position.Sub(g.Position).Magnitude()
			want := math.Sqrt(g.Mass * physics.DefaultG / dist)
			got := s.Velocity.Sub(g.Velocity).Magnitude()
			Expect(got).To(BeNumerically("~", want, 1e-9))
		}
	})

	It("bounds the bulk velocity by half the max initial speed per axis", func() {
		for i := 0; i < 50; i++ {
			g := gen.RandomGalaxy(gen.Options{MinStarCount: 1, MaxInitialSpeed: 2, Rand: rng})
			for _, c := range []float64{g.Velocity.X, g.Velocity.Y, g.Velocity.Z} {
				Expect(c).To(BeNumerically(">=", -1))
				Expect(c).To(BeNumerically("<", 1))
			}
		}
	})

	It("rewinds the position along the bulk velocity", func() {
		for i := 0; i < 50; i++ {
			g := gen.RandomGalaxy(gen.Options{
				MinStarCount: 1, RewindTimeSteps: 3,
				InitialCollisionAvoidanceOffset: 1.5, Rand: rng,
			})
			offset := g.Position.Add(g.Velocity.Scale(3))
			for _, c := range []float64{offset.X, offset.Y, offset.Z} {
				Expect(math.Abs(c)).To(BeNumerically("<=", 0.75))
			}
		}
	})

	It("samples each orientation angle in [0, pi]", func() {
		for i := 0; i < 50; i++ {
			g := gen.RandomGalaxy(gen.Options{MinStarCount: 1, Rand: rng})
			for _, c := range []float64{g.Orientation.X, g.Orientation.Y, g.Orientation.Z} {
				Expect(c).To(BeNumerically(">=", 0))
				Expect(c).To(BeNumerically("<=", math.Pi))
			}
		}
	})

	It("is reproducible for a fixed seed", func() {
		a := gen.RandomGalaxy(gen.Options{MinStarCount: 50, Rand: rand.New(rand.NewSource(7))})
		b := gen.RandomGalaxy(gen.Options{MinStarCount: 50, Rand: rand.New(rand.NewSource(7))})

		Expect(a.Position).To(Equal(b.Position))
		Expect(a.Velocity).To(Equal(b.Velocity))
		Expect(a.Stars).To(HaveLen(len(b.Stars)))
		for i := range a.Stars {
			Expect(a.Stars[i].Position).To(Equal(b.Stars[i].Position))
			Expect(a.Stars[i].Velocity).To(Equal(b.Stars[i].Velocity))
		}
	})
})
