package game

import (
	"io"
	"log"
)

// Options configures a Game. Zero values fall back to sensible defaults.
type Options struct {
	Width, Height float64
	Seed          uint64
	Clock         Clock
	HUD           HUD
	Events        *EventBus
	Logger        *log.Logger
}

// Game owns every manager and runs one frame at a time.
// It is not safe for concurrent use; frontends drive it from one goroutine.
type Game struct {
	Entities *EntityManager
	Players  *PlayerManager
	Input    *Input
	Session  *Session
	Events   *EventBus

	width, height float64
	hud           HUD
	clock         Clock
	spawnRng      *Rand
	log           *log.Logger
	lastTime      float64
}

func NewGame(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}
	if opts.HUD == nil {
		opts.HUD = NewHUDState()
	}
	if opts.Events == nil {
		opts.Events = NewEventBus()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	w, h := fitCanvas(opts.Width, opts.Height)

	g := &Game{
		Entities: NewEntityManager(w, h, NewRand(opts.Seed)),
		Players:  NewPlayerManager(NewPlayer(w/2, h/2)),
		Input:    NewInput(),
		Session:  NewSession(),
		Events:   opts.Events,
		width:    w,
		height:   h,
		hud:      opts.HUD,
		clock:    opts.Clock,
		spawnRng: NewRand(opts.Seed ^ 0x5EED5A11),
		log:      opts.Logger,
		lastTime: opts.Clock.NowMs(),
	}
	g.Input.SetDashHandler(g.dash)
	return g
}

// fitCanvas applies the minimum play-area size.
func fitCanvas(w, h float64) (float64, float64) {
	return max(w, MinCanvasWidth), max(h, MinCanvasHeight)
}

// Size returns the logical play-area size.
func (g *Game) Size() (float64, float64) { return g.width, g.height }

// Resize changes the logical play area, keeping the minimum size.
func (g *Game) Resize(w, h float64) {
	g.width, g.height = fitCanvas(w, h)
	g.Entities.SetBounds(g.width, g.height)
}

// Start seeds the first targets and resets the frame timer.
func (g *Game) Start() {
	for _i := 0; _i < TargetCount; _i++ {
		g.Entities.SpawnTarget()
	}
	g.hud.UpdateScore(g.Session.Score)
	g.hud.UpdateLevel(g.Session.Level)
	g.lastTime = g.clock.NowMs()
	g.log.Printf("game started: %.0fx%.0f", g.width, g.height)
}

// Frame runs one tick: measure dt, update, draw.
// dt is not clamped, so a long stall produces one large step.
func (g *Game) Frame(c Canvas) {
	now := g.clock.NowMs()
	dt := now - g.lastTime
	g.lastTime = now

	g.Update(dt)
	g.Draw(c)
}

// Update advances the simulation by dt milliseconds.
func (g *Game) Update(dt float64) {
	ax, ay := g.Input.MovementAxis()
	g.Players.Update(dt, ax, ay, g.width, g.height)
	p := &g.Players.Player

	if g.Entities.CheckTargetCollisions(p) {
		leveled := g.Session.Collect()
		g.hud.UpdateScore(g.Session.Score)
		g.Events.Emit(Event{Type: EventCollect, X: p.X, Y: p.Y, Data: g.Session.Score})
		if leveled {
			g.levelUp()
		}
		g.Entities.SpawnTarget()
	}

	if len(g.Entities.Hazards) < g.Session.HazardCap() && g.spawnRng.Chance(HazardSpawnChance) {
		g.Entities.SpawnHazard()
	}

	g.Entities.UpdateHazards()

	if g.Entities.CheckHazardCollisions(p) {
		g.Entities.Boom(p.X, p.Y)
		g.Events.Emit(Event{Type: EventDeath, X: p.X, Y: p.Y, Data: g.Session.Score})
		g.log.Printf("player hit at (%.1f, %.1f), score %d level %d", p.X, p.Y, g.Session.Score, g.Session.Level)
		g.reset()
	}

	g.Entities.UpdateParticles(dt)
	g.hud.UpdateCooldown(g.Players.CooldownFraction(g.clock.NowMs()))
}

func (g *Game) levelUp() {
	g.hud.UpdateLevel(g.Session.Level)
	g.Players.LevelUp()
	p := &g.Players.Player
	g.Events.Emit(Event{Type: EventLevelUp, X: p.X, Y: p.Y, Data: g.Session.Level})
	g.log.Printf("level %d: max speed %.1f radius %.0f", g.Session.Level, p.MaxSpeed, p.R)
}

// reset starts a fresh run after a death. Particles and the trail survive
// so the explosion plays out.
func (g *Game) reset() {
	g.Session.Reset()
	g.Entities.ClearHazards()
	g.Entities.ClearTargets()
	g.hud.UpdateScore(g.Session.Score)
	g.hud.UpdateLevel(g.Session.Level)

	for _i := 0; _i < TargetCount; _i++ {
		g.Entities.SpawnTarget()
	}

	g.Players.ResetPosition(g.width, g.height)
	g.Players.ResetSpeed()
	g.Players.ResetSize()
}

func (g *Game) dash() {
	if g.Players.TryDash(g.clock.NowMs(), g.Input) {
		p := &g.Players.Player
		g.Events.Emit(Event{Type: EventDash, X: p.X, Y: p.Y})
	}
}

// Scene exposes the current frame's drawable state.
func (g *Game) Scene() Scene {
	return Scene{
		Width:     g.width,
		Height:    g.height,
		Targets:   g.Entities.Targets,
		Hazards:   g.Entities.Hazards,
		Player:    &g.Players.Player,
		Particles: g.Entities.Particles,
	}
}

// Draw renders the current state.
func (g *Game) Draw(c Canvas) {
	DrawScene(c, g.Scene())
}
