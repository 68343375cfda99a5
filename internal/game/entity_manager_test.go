package game

import (
	"math"
	"testing"
)

func TestSpawnTargetStaysAwayFromEdges(t *testing.T) {
	em := NewEntityManager(640, 420, NewRand(3))
	for _i := 0; _i < 500; _i++ {
		em.SpawnTarget()
	}
	for i, tg := range em.Targets {
		if tg.X < TargetMargin || tg.X > 640-TargetMargin || tg.Y < TargetMargin || tg.Y > 420-TargetMargin {
			t.Fatalf("target %d at (%v,%v) outside margin", i, tg.X, tg.Y)
		}
		if tg.R != TargetRadius {
			t.Fatalf("target %d radius %v", i, tg.R)
		}
	}
}

func TestSpawnHazardEntersFromEdge(t *testing.T) {
	const w, h = 640.0, 420.0
	inSpeed := func(v float64) bool { return v >= HazardMinSpeed && v < HazardMaxSpeed }
	inDrift := func(v float64) bool { return math.Abs(v) <= HazardDrift }

	edges := map[string]int{}
	for seed := uint64(0); seed < 400; seed++ {
		em := NewEntityManager(w, h, NewRand(seed))
		em.SpawnHazard()
		hz := em.Hazards[0]

		if hz.R < HazardMinRadius || hz.R >= HazardMaxRadius {
			t.Fatalf("seed %d: radius %v", seed, hz.R)
		}
		switch {
		case hz.X == -HazardEntryOffset:
			edges["left"]++
			if !inSpeed(hz.VX) || !inDrift(hz.VY) {
				t.Fatalf("seed %d: left entry velocity (%v,%v)", seed, hz.VX, hz.VY)
			}
		case hz.X == w+HazardEntryOffset:
			edges["right"]++
			if !inSpeed(-hz.VX) || !inDrift(hz.VY) {
				t.Fatalf("seed %d: right entry velocity (%v,%v)", seed, hz.VX, hz.VY)
			}
		case hz.Y == -HazardEntryOffset:
			edges["top"]++
			if !inSpeed(hz.VY) || !inDrift(hz.VX) {
				t.Fatalf("seed %d: top entry velocity (%v,%v)", seed, hz.VX, hz.VY)
			}
		case hz.Y == h+HazardEntryOffset:
			edges["bottom"]++
			if !inSpeed(-hz.VY) || !inDrift(hz.VX) {
				t.Fatalf("seed %d: bottom entry velocity (%v,%v)", seed, hz.VX, hz.VY)
			}
		default:
			t.Fatalf("seed %d: hazard at (%v,%v) is not on an entry line", seed, hz.X, hz.Y)
		}

		// The free coordinate stays inside the entry band.
		if hz.X == -HazardEntryOffset || hz.X == w+HazardEntryOffset {
			if hz.Y < HazardEntryOffset || hz.Y > h-HazardEntryOffset {
				t.Fatalf("seed %d: entry y %v out of band", seed, hz.Y)
			}
		} else if hz.X < HazardEntryOffset || hz.X > w-HazardEntryOffset {
			t.Fatalf("seed %d: entry x %v out of band", seed, hz.X)
		}
	}
	if len(edges) != 4 {
		t.Fatalf("edges seen = %v, want all four", edges)
	}
}

func TestUpdateHazardsDespawnsOutsideMargin(t *testing.T) {
	em := NewEntityManager(640, 420, NewRand(1))
	em.Hazards = []Hazard{
		{X: -38, Y: 100, VX: -2, R: 8}, // lands exactly on -40: kept
		{X: -39, Y: 100, VX: -2, R: 8}, // -41: removed
		{X: 679, Y: 100, VX: 2, R: 8},  // 681: removed
		{X: 100, Y: 459, VY: 2, R: 8},  // 461: removed
		{X: 100, Y: -39, VY: -2, R: 8}, // -41: removed
		{X: 320, Y: 210, VX: 1, R: 8},  // kept
	}
	em.UpdateHazards()
	if len(em.Hazards) != 2 {
		t.Fatalf("got %d hazards, want 2: %+v", len(em.Hazards), em.Hazards)
	}
	for _, hz := range em.Hazards {
		if hz.X != -40 && hz.X != 321 {
			t.Errorf("unexpected survivor at (%v,%v)", hz.X, hz.Y)
		}
	}
}

func TestCheckTargetCollisionsRemovesOne(t *testing.T) {
	em := NewEntityManager(640, 420, NewRand(1))
	em.Targets = []Target{
		{X: 100, Y: 100, R: 10},
		{X: 105, Y: 100, R: 10},
		{X: 500, Y: 300, R: 10},
	}
	p := NewPlayer(100, 100)

	if !em.CheckTargetCollisions(&p) {
		t.Fatal("no collection with two overlapping targets")
	}
	if len(em.Targets) != 2 {
		t.Fatalf("targets = %d after one collection, want 2", len(em.Targets))
	}
	if !em.CheckTargetCollisions(&p) || len(em.Targets) != 1 {
		t.Fatalf("second call should collect the other overlapping target, %d left", len(em.Targets))
	}
	if em.CheckTargetCollisions(&p) {
		t.Fatal("collected a target the player does not touch")
	}
	if em.Targets[0].X != 500 {
		t.Fatalf("wrong survivor %+v", em.Targets[0])
	}
}

func TestCheckHazardCollisionsKeepsHazards(t *testing.T) {
	em := NewEntityManager(640, 420, NewRand(1))
	p := NewPlayer(100, 100)
	em.Hazards = []Hazard{{X: 100 + p.R + 8, Y: 100, R: 8}} // touching only
	if em.CheckHazardCollisions(&p) {
		t.Fatal("touching hazard counted as a hit")
	}
	em.Hazards = append(em.Hazards, Hazard{X: 110, Y: 100, R: 8})
	if !em.CheckHazardCollisions(&p) {
		t.Fatal("overlapping hazard missed")
	}
	if len(em.Hazards) != 2 {
		t.Fatalf("hazards = %d, collisions must not remove", len(em.Hazards))
	}
}

func TestBoomDirections(t *testing.T) {
	em := NewEntityManager(640, 420, NewRand(9))
	em.Boom(50, 60)
	if len(em.Particles) != BoomParticles {
		t.Fatalf("particles = %d, want %d", len(em.Particles), BoomParticles)
	}
	for i, p := range em.Particles {
		if p.X != 50 || p.Y != 60 || p.Life != 1 {
			t.Fatalf("particle %d = %+v", i, p)
		}
		if p.R < BoomMinRadius || p.R >= BoomMaxRadius {
			t.Fatalf("particle %d radius %v", i, p.R)
		}
		// Velocity follows angle i radians, one speed draw per axis.
		c, s := math.Cos(float64(i)), math.Sin(float64(i))
		if sx := p.VX / c; sx < BoomMinSpeed || sx >= BoomMaxSpeed {
			t.Errorf("particle %d: vx %v is not cos(%d) times a speed", i, p.VX, i)
		}
		if i > 0 {
			if sy := p.VY / s; sy < BoomMinSpeed || sy >= BoomMaxSpeed {
				t.Errorf("particle %d: vy %v is not sin(%d) times a speed", i, p.VY, i)
			}
		} else if p.VY != 0 {
			t.Errorf("particle 0: vy %v, want 0", p.VY)
		}
	}
}

func TestClearAndSetBounds(t *testing.T) {
	em := NewEntityManager(640, 420, NewRand(1))
	em.SpawnTarget()
	em.SpawnHazard()
	em.ClearTargets()
	em.ClearHazards()
	if len(em.Targets) != 0 || len(em.Hazards) != 0 {
		t.Fatal("clear left entities behind")
	}

	em.SetBounds(2000, 1000)
	for _i := 0; _i < 200; _i++ {
		em.SpawnTarget()
	}
	farthest := 0.0
	for _, tg := range em.Targets {
		farthest = max(farthest, tg.X)
	}
	if farthest <= 640 {
		t.Fatalf("targets never used the new width, max x %v", farthest)
	}
}
