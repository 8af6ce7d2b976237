package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidTuning is returned when a Tuning fails validation.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every knob of the arena simulation. Durations are given in
// milliseconds in JSON files.
type Tuning struct {
	ArenaRadius  float64 `json:"arena_radius"`
	BodyRadius   float64 `json:"body_radius"`
	GapHalfAngle float64 `json:"gap_half_angle"`
	RotationRate float64 `json:"rotation_rate"`

	WallInset     float64 `json:"wall_inset"`
	WallJitterMin float64 `json:"wall_jitter_min"`
	WallJitterMax float64 `json:"wall_jitter_max"`
	MinSpeed      float64 `json:"min_speed"`
	RecoverSpeed  float64 `json:"recover_speed"`

	CollisionDamping float64 `json:"collision_damping"`
	CollisionJitter  float64 `json:"collision_jitter"`
	SeparationSlop   float64 `json:"separation_slop"`

	RespawnSpread float64 `json:"respawn_spread"`
	RespawnSpeed  float64 `json:"respawn_speed"`
	ExitDepth     float64 `json:"exit_depth"`

	MatchDuration int           `json:"match_duration"`
	TickInterval  time.Duration `json:"-"`
	GoalPause     time.Duration `json:"-"`
	FinalWhistle  time.Duration `json:"-"`
	FrameDuration time.Duration `json:"-"`
}

// Default returns the reference tuning.
func Default() Tuning {
	return Tuning{
		ArenaRadius:      ArenaRadius,
		BodyRadius:       BodyRadius,
		GapHalfAngle:     GapHalfAngle,
		RotationRate:     RotationRate,
		WallInset:        WallInset,
		WallJitterMin:    WallJitterMin,
		WallJitterMax:    WallJitterMax,
		MinSpeed:         MinSpeed,
		RecoverSpeed:     RecoverSpeed,
		CollisionDamping: CollisionDamping,
		CollisionJitter:  CollisionJitter,
		SeparationSlop:   SeparationSlop,
		RespawnSpread:    RespawnSpread,
		RespawnSpeed:     RespawnSpeed,
		ExitDepth:        ExitDepth,
		MatchDuration:    MatchDuration,
		TickInterval:     TickInterval,
		GoalPause:        GoalPause,
		FinalWhistle:     FinalWhistleDelay,
		FrameDuration:    FrameDuration,
	}
}

// Validate checks the tuning for values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.ArenaRadius <= 0 || t.BodyRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidTuning)
	case t.BodyRadius*2 >= t.ArenaRadius:
		return fmt.Errorf("%w: body radius %.1f too large for arena radius %.1f", ErrInvalidTuning, t.BodyRadius, t.ArenaRadius)
	case t.GapHalfAngle <= 0:
		return fmt.Errorf("%w: gap half angle must be positive", ErrInvalidTuning)
	case t.WallJitterMin > t.WallJitterMax:
		return fmt.Errorf("%w: wall jitter band is inverted", ErrInvalidTuning)
	case t.MinSpeed < 0 || t.RecoverSpeed < t.MinSpeed:
		return fmt.Errorf("%w: recover speed must be at least the speed floor", ErrInvalidTuning)
	case t.MatchDuration <= 0:
		return fmt.Errorf("%w: match duration must be positive", ErrInvalidTuning)
	case t.TickInterval <= 0 || t.FrameDuration <= 0:
		return fmt.Errorf("%w: tick and frame durations must be positive", ErrInvalidTuning)
	case t.GoalPause < 0 || t.FinalWhistle < 0:
		return fmt.Errorf("%w: delays cannot be negative", ErrInvalidTuning)
	}
	return nil
}

type tuningFile struct {
	Tuning
	TickIntervalMs *int64 `json:"tick_interval_ms"`
	GoalPauseMs    *int64 `json:"goal_pause_ms"`
	FinalWhistleMs *int64 `json:"final_whistle_ms"`
}

// LoadTuning reads a JSON file and overlays it on the defaults. Fields absent
// from the file keep their default value.
func LoadTuning(path string) (Tuning, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	tf := tuningFile{Tuning: Default()}
	if err := json.Unmarshal(file, &tf); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}

	t := tf.Tuning
	if tf.TickIntervalMs != nil {
		t.TickInterval = time.Duration(*tf.TickIntervalMs) * time.Millisecond
	}
	if tf.GoalPauseMs != nil {
		t.GoalPause = time.Duration(*tf.GoalPauseMs) * time.Millisecond
	}
	if tf.FinalWhistleMs != nil {
		t.FinalWhistle = time.Duration(*tf.FinalWhistleMs) * time.Millisecond
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
