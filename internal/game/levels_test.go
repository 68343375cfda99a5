package game

import "testing"

func TestGetLevelConfig(t *testing.T) {
	tests := []struct {
		level int
		cap   int
	}{
		{0, 3},
		{1, 3},
		{2, 4},
		{3, 4},
		{4, 5},
		{14, 10},
		{100, HazardMaxCap},
	}
	for _, tt := range tests {
		if got := GetLevelConfig(tt.level).HazardCap; got != tt.cap {
			t.Errorf("level %d: cap %d, want %d", tt.level, got, tt.cap)
		}
	}
}

func TestIsLevelUp(t *testing.T) {
	for score, want := range map[int]bool{0: false, 1: false, 4: false, 5: true, 6: false, 10: true, 25: true} {
		if got := IsLevelUp(score); got != want {
			t.Errorf("IsLevelUp(%d) = %v", score, got)
		}
	}
}

func TestSessionCollectAndReset(t *testing.T) {
	s := NewSession()
	for i := 1; i <= 6; i++ {
		leveled := s.Collect()
		if leveled != (i == 5) {
			t.Fatalf("collect %d: leveled = %v", i, leveled)
		}
	}
	if s.Score != 6 || s.Level != 2 || s.Best != 6 {
		t.Fatalf("session %+v", *s)
	}
	s.Reset()
	s.Collect()
	if s.Score != 1 || s.Level != 1 || s.Best != 6 || s.Runs != 1 {
		t.Fatalf("after reset %+v", *s)
	}
}
