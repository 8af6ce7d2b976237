package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestValidateRejectsOversizedBody(t *testing.T) {
	tn := Default()
	tn.BodyRadius = tn.ArenaRadius
	if err := tn.Validate(); !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got=%v", err)
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	body := `{"arena_radius": 150, "match_duration": 30, "goal_pause_ms": 500}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tn, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tn.ArenaRadius != 150 {
		t.Fatalf("arena radius got=%f want=150", tn.ArenaRadius)
	}
	if tn.MatchDuration != 30 {
		t.Fatalf("match duration got=%d want=30", tn.MatchDuration)
	}
	if tn.GoalPause != 500*time.Millisecond {
		t.Fatalf("goal pause got=%v want=500ms", tn.GoalPause)
	}
	if tn.BodyRadius != BodyRadius {
		t.Fatalf("body radius should keep default, got=%f", tn.BodyRadius)
	}
	if tn.FinalWhistle != FinalWhistleDelay {
		t.Fatalf("final whistle should keep default, got=%v", tn.FinalWhistle)
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(`{"match_duration": 0}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTuning(path); !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got=%v", err)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEnvReadsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	body := "ARENA_SEED=42\nARENA_FRAMES_DIR=/tmp/frames\nARENA_FRAME_EVERY=5\nARENA_SAVE=season.json\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, k := range []string{"ARENA_SEED", "ARENA_FRAMES_DIR", "ARENA_FRAME_EVERY", "ARENA_TUNING", "ARENA_SAVE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	env := LoadEnv(path)
	if env.Seed != 42 {
		t.Fatalf("seed got=%d want=42", env.Seed)
	}
	if env.FramesDir != "/tmp/frames" {
		t.Fatalf("frames dir got=%q", env.FramesDir)
	}
	if env.FrameEvery != 5 {
		t.Fatalf("frame every got=%d want=5", env.FrameEvery)
	}
	if env.SavePath != "season.json" {
		t.Fatalf("save path got=%q want=season.json", env.SavePath)
	}
	tn, err := env.Tuning()
	if err != nil {
		t.Fatalf("tuning: %v", err)
	}
	if tn.ArenaRadius != ArenaRadius {
		t.Fatalf("expected default tuning without ARENA_TUNING")
	}
}
