// Package physics advances the galaxy collection under gravity.
//
// The scheme is semi-implicit (symplectic) Euler with a fixed step:
// velocities are updated from acceleration first, positions from the
// updated velocities second, which keeps long-running orbits stable
// where naive Euler spirals outward.
//
// Only galaxy central masses attract. Stars are massless tracers, so a
// step costs O(stars*galaxies + galaxies^2) with no pairwise star term.
//
//	in := physics.NewIntegrator()
//	for i := 0; i < steps; i++ {
//	    in.UpdateGalaxies(galaxies)
//	}
package physics
