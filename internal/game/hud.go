package game

import (
	"fmt"
	"math"
)

// HUD receives score, level and dash readiness updates.
type HUD interface {
	UpdateScore(score int)
	UpdateLevel(level int)
	UpdateCooldown(frac float64)
}

// HUDState is a HUD that keeps the latest values for a frontend to draw.
type HUDState struct {
	Score    int
	Level    int
	Cooldown float64 // 0 = just dashed, 1 = ready
}

func NewHUDState() *HUDState {
	return &HUDState{Level: 1, Cooldown: 1}
}

func (h *HUDState) UpdateScore(score int) { h.Score = score }
func (h *HUDState) UpdateLevel(level int) { h.Level = level }

func (h *HUDState) UpdateCooldown(frac float64) {
	h.Cooldown = Clamp(frac, 0, 1)
}

// CooldownPercent is the readiness bar width as a whole percentage.
func (h *HUDState) CooldownPercent() int {
	return int(math.Round(h.Cooldown * 100))
}

func (h *HUDState) ScoreText() string { return fmt.Sprintf("Score: %d", h.Score) }
func (h *HUDState) LevelText() string { return fmt.Sprintf("Level: %d", h.Level) }
