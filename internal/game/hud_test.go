package game

import "testing"

func TestHUDState(t *testing.T) {
	h := NewHUDState()
	if h.ScoreText() != "Score: 0" || h.LevelText() != "Level: 1" || h.CooldownPercent() != 100 {
		t.Fatalf("defaults %+v", *h)
	}

	h.UpdateScore(12)
	h.UpdateLevel(3)
	if h.ScoreText() != "Score: 12" || h.LevelText() != "Level: 3" {
		t.Fatalf("text %q %q", h.ScoreText(), h.LevelText())
	}

	for _, tc := range []struct {
		frac float64
		pct  int
	}{
		{-0.5, 0},
		{0, 0},
		{0.254, 25},
		{0.5, 50},
		{1.7, 100},
	} {
		h.UpdateCooldown(tc.frac)
		if got := h.CooldownPercent(); got != tc.pct {
			t.Errorf("cooldown %v: %d%%, want %d%%", tc.frac, got, tc.pct)
		}
	}
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var got []string
	bus.Subscribe(EventCollect, func(e Event) { got = append(got, "a:"+e.Type.String()) })
	bus.Subscribe(EventCollect, func(e Event) { got = append(got, "b:"+e.Type.String()) })
	bus.Subscribe(EventDeath, func(e Event) { got = append(got, "death") })

	bus.Emit(Event{Type: EventCollect})
	bus.Emit(Event{Type: EventDash})
	if len(got) != 2 || got[0] != "a:collect" || got[1] != "b:collect" {
		t.Fatalf("dispatch %v", got)
	}
	if EventType(42).String() != "unknown" || EventLevelUp.String() != "level-up" {
		t.Fatal("event names")
	}
}

func TestPaletteBlend(t *testing.T) {
	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	if black.Blend(white, 0) != black || black.Blend(white, 1) != white {
		t.Fatal("blend endpoints")
	}
	mid := black.Blend(white, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Fatalf("midpoint %+v", mid)
	}
	if Hex("#ff8000") != (RGB{R: 255, G: 128}) {
		t.Fatalf("hex %+v", Hex("#ff8000"))
	}
	if Hex("nope") != black {
		t.Fatal("invalid hex not black")
	}
}
