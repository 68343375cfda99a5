package desktop

import "orbdash/internal/game"

// Camera maps logical play-area pixels to framebuffer pixels.
type Camera struct {
	X, Y float64 // logical-pixel space, camera centre
	Zoom float64 // framebuffer pixels per logical pixel (device pixel ratio)

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in logical pixels
	ShakeTimer     float64 // remaining shake time, seconds
	ShakeIntensity float64 // max offset magnitude
}

// Fit centres the camera on a width x height play area at the given ratio.
func (c *Camera) Fit(width, height, zoom float64) {
	c.X = width / 2
	c.Y = height / 2
	if zoom <= 0 {
		zoom = 1
	}
	c.Zoom = zoom
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, rng *game.Rand) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rng.RangeF(-mag, mag)
	c.ShakeY = rng.RangeF(-mag, mag)
}

// Shaken returns a copy of the camera with the shake offset applied.
func (c Camera) Shaken() Camera {
	c.X += c.ShakeX
	c.Y += c.ShakeY
	return c
}
