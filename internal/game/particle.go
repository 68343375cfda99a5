package game

// Particle is an explosion fragment. Velocity is in pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Life   float64 // 1 when spawned, removed at <= 0
}

// TrailPoint is a fading marker left behind by a dash.
type TrailPoint struct {
	X, Y float64
	Life float64
}

// updateParticles moves, fades and swap-removes dead particles in place.
func updateParticles(ps []Particle, dt float64) []Particle {
	fade := dt * LifeDecay
	for i := 0; i < len(ps); {
		p := &ps[i]
		p.X += p.VX
		p.Y += p.VY
		p.Life -= fade
		if p.Life <= 0 {
			ps[i] = ps[len(ps)-1]
			ps = ps[:len(ps)-1]
			continue
		}
		i++
	}
	return ps
}

// ageTrail fades trail points and drops expired ones, keeping order.
func ageTrail(trail []TrailPoint, dt float64) []TrailPoint {
	fade := dt * LifeDecay
	n := 0
	for _, t := range trail {
		t.Life -= fade
		if t.Life <= 0 {
			continue
		}
		trail[n] = t
		n++
	}
	return trail[:n]
}
