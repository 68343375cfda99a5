package game

// Canvas minimum size (in logical pixels).
// The play area never shrinks below this even if the host surface does.
const (
	MinCanvasWidth  = 640
	MinCanvasHeight = 420
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "Orb Dash"
)

// Player defaults.
const (
	PlayerRadius         = 12.0
	PlayerSpeed          = 3.2
	PlayerMaxSpeed       = 5.0
	PlayerDashPower      = 12.0
	PlayerDashCooldownMs = 700.0
	PlayerNeverDashed    = -9999.0
)

// Player physics.
const (
	AccelScale      = 0.06 // acceleration per ms of dt
	Friction        = 0.92 // per frame, not time-scaled
	DashSpeedBonus  = 8.0  // headroom above MaxSpeed while dashing
	WallBounce      = -0.4
	DashTrailPoints = 10
	MinDashVelocity = 0.01
)

// Fade rate for particles and trail points (life per ms).
const LifeDecay = 0.003

// Targets.
const (
	TargetCount  = 3
	TargetRadius = 10.0
	TargetMargin = 30.0
)

// Hazards.
const (
	HazardEntryOffset   = 20.0
	HazardDespawnMargin = 40.0
	HazardMinSpeed      = 1.2
	HazardMaxSpeed      = 2.2
	HazardDrift         = 0.4
	HazardMinRadius     = 6.0
	HazardMaxRadius     = 10.0
	HazardSpawnChance   = 0.02 // per frame
	HazardBaseCap       = 3
	HazardMaxCap        = 10
)

// Explosions.
const (
	BoomParticles = 24
	BoomMinSpeed  = 1.0
	BoomMaxSpeed  = 3.0
	BoomMinRadius = 1.0
	BoomMaxRadius = 3.0
)

// Progression.
const (
	PointsPerLevel    = 5
	LevelMaxSpeedGain = 0.2
	LevelRadiusGain   = 1.0
)

// Rendering.
const (
	GridSpacing     = 40.0
	GridAlpha       = 0.45
	TargetRingGap   = 6.0
	TargetRingAlpha = 0.35
	TrailRadius     = 6.0
	PlayerGlowBlur  = 18.0
)

// Frontend names accepted by Settings.Frontend.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// Settings are the runtime options resolved from .env, environment and flags.
type Settings struct {
	Seed     uint64
	Frontend string
	Muted    bool
	Debug    bool
	Width    int // initial window size in screen coordinates (desktop only)
	Height   int
}

// DefaultSettings returns the built-in settings before any overrides.
func DefaultSettings() Settings {
	return Settings{
		Frontend: FrontendDesktop,
		Width:    WindowWidth,
		Height:   WindowHeight,
	}
}
