package config

import "testing"

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		initial  int
		perSpeed int
		fixed    bool
	}{
		{"", 20, 10, false},
		{DifficultyEasy, 30, 10, false},
		{DifficultyNormal, 20, 10, false},
		{DifficultyHard, 15, 5, false},
		{DifficultyFixed, 20, 10, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)

			if cfg.Speed.InitialTicksPerStep != tt.initial {
				t.Errorf("InitialTicksPerStep = %d, expected %d", cfg.Speed.InitialTicksPerStep, tt.initial)
			}
			if cfg.Speed.PiecesPerSpeedUp != tt.perSpeed {
				t.Errorf("PiecesPerSpeedUp = %d, expected %d", cfg.Speed.PiecesPerSpeedUp, tt.perSpeed)
			}
			if cfg.Speed.Fixed != tt.fixed {
				t.Errorf("Fixed = %v, expected %v", cfg.Speed.Fixed, tt.fixed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset = %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) error = %v", s, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) expected error")
	}
}

func TestApplyTetrisPresetKeepsConfiguredFixed(t *testing.T) {
	for _, preset := range []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultTetrisConfig()
		cfg.Speed.Fixed = true
		ApplyTetrisPreset(&cfg, preset)

		if !cfg.Speed.Fixed {
			t.Errorf("preset %q cleared speed.fixed from the config", preset)
		}
	}
}
