package game

// Player is the user-controlled orb.
type Player struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Color  RGB

	Speed          float64 // acceleration scale
	MaxSpeed       float64
	DashPower      float64
	DashCooldownMs float64
	LastDashAt     float64 // ms timestamp

	Trail []TrailPoint // oldest first
}

// NewPlayer returns a player at (x, y) with the default tuning.
func NewPlayer(x, y float64) Player {
	return Player{
		X:              x,
		Y:              y,
		R:              PlayerRadius,
		Color:          Palette.Player,
		Speed:          PlayerSpeed,
		MaxSpeed:       PlayerMaxSpeed,
		DashPower:      PlayerDashPower,
		DashCooldownMs: PlayerDashCooldownMs,
		LastDashAt:     PlayerNeverDashed,
	}
}

// Target is a collectible.
type Target struct {
	X, Y  float64
	R     float64
	Color RGB
}

// Hazard drifts across the play area and ends the run on contact.
type Hazard struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Color  RGB
}
