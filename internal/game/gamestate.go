package game

// Session tracks score and level for the current run.
type Session struct {
	Score int
	Level int
	Best  int // best score since the process started; not persisted
	Runs  int
}

func NewSession() *Session {
	return &Session{Level: 1}
}

// Collect adds a point and reports whether it triggered a level-up.
func (s *Session) Collect() bool {
	s.Score++
	if s.Score > s.Best {
		s.Best = s.Score
	}
	if IsLevelUp(s.Score) {
		s.Level++
		return true
	}
	return false
}

// Reset starts a new run.
func (s *Session) Reset() {
	s.Score = 0
	s.Level = 1
	s.Runs++
}

// HazardCap is the most hazards allowed on screen at the current level.
func (s *Session) HazardCap() int {
	return GetLevelConfig(s.Level).HazardCap
}
