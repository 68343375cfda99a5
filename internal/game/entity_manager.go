package game

// EntityManager owns targets, hazards and explosion particles.
type EntityManager struct {
	Targets   []Target
	Hazards   []Hazard
	Particles []Particle

	width, height float64
	rng           *Rand
}

func NewEntityManager(width, height float64, rng *Rand) *EntityManager {
	if rng == nil {
		rng = NewRand(1)
	}
	return &EntityManager{
		Targets:   make([]Target, 0, TargetCount),
		Hazards:   make([]Hazard, 0, HazardMaxCap),
		Particles: make([]Particle, 0, BoomParticles*2),
		width:     width,
		height:    height,
		rng:       rng,
	}
}

// SetBounds updates the play area used for spawning and despawning.
func (em *EntityManager) SetBounds(width, height float64) {
	em.width = width
	em.height = height
}

// SpawnTarget places a target inside the play area, away from the edges.
func (em *EntityManager) SpawnTarget() {
	em.Targets = append(em.Targets, Target{
		X:     em.rng.RangeF(TargetMargin, em.width-TargetMargin),
		Y:     em.rng.RangeF(TargetMargin, em.height-TargetMargin),
		R:     TargetRadius,
		Color: Palette.Target,
	})
}

// SpawnHazard sends a hazard in from just outside a random edge.
func (em *EntityManager) SpawnHazard() {
	r := em.rng.RangeF(HazardMinRadius, HazardMaxRadius)
	speed := em.rng.RangeF(HazardMinSpeed, HazardMaxSpeed)
	hz := Hazard{R: r, Color: Palette.Hazard}

	if em.rng.Chance(0.5) {
		// Left or right edge, drifting vertically.
		hz.X = -HazardEntryOffset
		if em.rng.Chance(0.5) {
			hz.X = em.width + HazardEntryOffset
		}
		hz.Y = em.rng.RangeF(HazardEntryOffset, em.height-HazardEntryOffset)
		hz.VX = speed
		if hz.X > 0 {
			hz.VX = -speed
		}
		hz.VY = em.rng.RangeF(-HazardDrift, HazardDrift)
	} else {
		// Top or bottom edge, drifting horizontally.
		hz.Y = -HazardEntryOffset
		if em.rng.Chance(0.5) {
			hz.Y = em.height + HazardEntryOffset
		}
		hz.X = em.rng.RangeF(HazardEntryOffset, em.width-HazardEntryOffset)
		hz.VY = speed
		if hz.Y > 0 {
			hz.VY = -speed
		}
		hz.VX = em.rng.RangeF(-HazardDrift, HazardDrift)
	}

	em.Hazards = append(em.Hazards, hz)
}

// UpdateHazards moves hazards and drops the ones well outside the play area.
func (em *EntityManager) UpdateHazards() {
	for i := 0; i < len(em.Hazards); {
		hz := &em.Hazards[i]
		hz.X += hz.VX
		hz.Y += hz.VY

		if hz.X < -HazardDespawnMargin || hz.X > em.width+HazardDespawnMargin ||
			hz.Y < -HazardDespawnMargin || hz.Y > em.height+HazardDespawnMargin {
			em.Hazards[i] = em.Hazards[len(em.Hazards)-1]
			em.Hazards = em.Hazards[:len(em.Hazards)-1]
			continue
		}
		i++
	}
}

// UpdateParticles advances and fades explosion particles.
func (em *EntityManager) UpdateParticles(dt float64) {
	em.Particles = updateParticles(em.Particles, dt)
}

// CheckTargetCollisions removes the first target the player overlaps.
// At most one target is collected per call.
func (em *EntityManager) CheckTargetCollisions(p *Player) bool {
	for i := len(em.Targets) - 1; i >= 0; i-- {
		t := em.Targets[i]
		if CirclesOverlap(p.X, p.Y, p.R, t.X, t.Y, t.R) {
			em.Targets[i] = em.Targets[len(em.Targets)-1]
			em.Targets = em.Targets[:len(em.Targets)-1]
			return true
		}
	}
	return false
}

// CheckHazardCollisions reports whether the player touches any hazard.
func (em *EntityManager) CheckHazardCollisions(p *Player) bool {
	for _, hz := range em.Hazards {
		if CirclesOverlap(p.X, p.Y, p.R, hz.X, hz.Y, hz.R) {
			return true
		}
	}
	return false
}

func (em *EntityManager) ClearTargets() { em.Targets = em.Targets[:0] }
func (em *EntityManager) ClearHazards() { em.Hazards = em.Hazards[:0] }
