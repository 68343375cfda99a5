package game

import "math"

// Boom spawns an explosion burst at (x, y).
//
// Particle i heads along angle i radians, not 2*pi*i/n. Each axis draws
// its own speed.
func (em *EntityManager) Boom(x, y float64) {
	for i := 0; i < BoomParticles; i++ {
		a := float64(i)
		em.Particles = append(em.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(a) * em.rng.RangeF(BoomMinSpeed, BoomMaxSpeed),
			VY:   math.Sin(a) * em.rng.RangeF(BoomMinSpeed, BoomMaxSpeed),
			R:    em.rng.RangeF(BoomMinRadius, BoomMaxRadius),
			Life: 1,
		})
	}
}
