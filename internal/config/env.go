package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env collects the process level settings read from the environment.
type Env struct {
	Seed       int64  // ARENA_SEED, 0 means time based
	TuningPath string // ARENA_TUNING
	TeamsPath  string // ARENA_TEAMS
	FramesDir  string // ARENA_FRAMES_DIR, empty disables PNG frames
	FrameEvery int    // ARENA_FRAME_EVERY
	SavePath   string // ARENA_SAVE, empty keeps the season in memory only
}

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment and reads the ARENA_* variables. Missing files are not
// an error.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("config: skipping %s: %v", f, err)
			}
		}
	}

	env := Env{
		TuningPath: os.Getenv("ARENA_TUNING"),
		TeamsPath:  os.Getenv("ARENA_TEAMS"),
		FramesDir:  os.Getenv("ARENA_FRAMES_DIR"),
		SavePath:   os.Getenv("ARENA_SAVE"),
		FrameEvery: 30,
	}
	if v := os.Getenv("ARENA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("config: ignoring ARENA_SEED=%q: %v", v, err)
		} else {
			env.Seed = seed
		}
	}
	if v := os.Getenv("ARENA_FRAME_EVERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.FrameEvery = n
		}
	}
	return env
}

// Tuning returns the tuning named by ARENA_TUNING, or the defaults.
func (e Env) Tuning() (Tuning, error) {
	if e.TuningPath == "" {
		return Default(), nil
	}
	return LoadTuning(e.TuningPath)
}
