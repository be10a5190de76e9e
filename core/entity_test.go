package core

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"EASY", DifficultyEasy},
		{"medium", DifficultyMedium},
		{"hard", DifficultyHard},
		{"", DifficultyMedium},
		{"nightmare", DifficultyMedium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDifficultyRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if got := ParseDifficulty(d.String()); got != d {
			t.Errorf("Expected %v after round trip, got %v", d, got)
		}
	}
}
