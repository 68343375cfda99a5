package game

// LevelConfig holds per-level difficulty.
type LevelConfig struct {
	HazardCap int
}

// GetLevelConfig returns settings for a given level.
// Hazard pressure grows by one every two levels up to HazardMaxCap.
func GetLevelConfig(level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	return LevelConfig{
		HazardCap: min(HazardBaseCap+level/2, HazardMaxCap),
	}
}

// IsLevelUp reports whether reaching score crosses a level milestone.
func IsLevelUp(score int) bool {
	return score > 0 && score%PointsPerLevel == 0
}
