package game

import "math"

// AxisSource provides the currently held movement direction.
type AxisSource interface {
	MovementAxis() (ax, ay float64)
}

// PlayerManager integrates player physics and owns the dash trail.
type PlayerManager struct {
	Player Player

	initial Player // snapshot taken at construction
}

func NewPlayerManager(p Player) *PlayerManager {
	initial := p
	initial.Trail = nil
	return &PlayerManager{Player: p, initial: initial}
}

// Update advances the player by one frame. dt is in milliseconds and only
// scales acceleration; friction and integration are per frame.
func (pm *PlayerManager) Update(dt, ax, ay, width, height float64) {
	p := &pm.Player

	if ax != 0 || ay != 0 {
		nx, ny := normalize(ax, ay)
		p.VX += nx * p.Speed * (dt * AccelScale)
		p.VY += ny * p.Speed * (dt * AccelScale)
	}

	p.VX *= Friction
	p.VY *= Friction

	speed := math.Hypot(p.VX, p.VY)
	limit := p.MaxSpeed + DashSpeedBonus
	if speed > limit {
		f := limit / speed
		p.VX *= f
		p.VY *= f
	}

	p.X += p.VX
	p.Y += p.VY

	p.bounceWalls(width, height)
	p.Trail = ageTrail(p.Trail, dt)
}

// bounceWalls keeps the player inside [R, dim-R] on both axes, reflecting
// and damping the velocity component for each wall it was pushed off.
func (p *Player) bounceWalls(width, height float64) {
	if p.X < p.R {
		p.X = p.R
		p.VX *= WallBounce
	}
	if p.X > width-p.R {
		p.X = width - p.R
		p.VX *= WallBounce
	}
	if p.Y < p.R {
		p.Y = p.R
		p.VY *= WallBounce
	}
	if p.Y > height-p.R {
		p.Y = height - p.R
		p.VY *= WallBounce
	}
}

// TryDash applies the dash impulse if the cooldown has elapsed.
//
// The impulse follows the current velocity, or the held direction when the
// player is (nearly) still. With neither, the dash still consumes the
// cooldown and leaves a trail but adds no velocity.
func (pm *PlayerManager) TryDash(now float64, axis AxisSource) bool {
	p := &pm.Player
	if now-p.LastDashAt < p.DashCooldownMs {
		return false
	}

	dx, dy := p.VX, p.VY
	if math.Hypot(dx, dy) < MinDashVelocity && axis != nil {
		dx, dy = axis.MovementAxis()
	}

	nx, ny := normalize(dx, dy)
	p.VX += nx * p.DashPower
	p.VY += ny * p.DashPower
	p.LastDashAt = now

	for _i := 0; _i < DashTrailPoints; _i++ {
		p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y, Life: 1})
	}
	return true
}

// CooldownFraction returns dash readiness in [0,1]; 1 means ready.
func (pm *PlayerManager) CooldownFraction(now float64) float64 {
	p := &pm.Player
	if p.DashCooldownMs <= 0 {
		return 1
	}
	return Clamp((now-p.LastDashAt)/p.DashCooldownMs, 0, 1)
}

// ResetPosition centres the player and stops it.
func (pm *PlayerManager) ResetPosition(width, height float64) {
	pm.Player.X = width / 2
	pm.Player.Y = height / 2
	pm.Player.VX = 0
	pm.Player.VY = 0
}

// ResetSpeed restores the base acceleration. MaxSpeed gained from levels
// is kept.
func (pm *PlayerManager) ResetSpeed() {
	pm.Player.Speed = pm.initial.Speed
}

// ResetSize restores the starting radius.
func (pm *PlayerManager) ResetSize() {
	pm.Player.R = pm.initial.R
}

// LevelUp grows the player for reaching a new level.
func (pm *PlayerManager) LevelUp() {
	pm.Player.MaxSpeed += LevelMaxSpeedGain
	pm.Player.R += LevelRadiusGain
}
