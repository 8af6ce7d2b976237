// cmd/arena_raylib/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"go-arena-league/internal/app"
	"go-arena-league/internal/config"
	"go-arena-league/internal/defs"
	"go-arena-league/internal/league"
	"go-arena-league/internal/logger"
	"go-arena-league/internal/utils"
	"go-arena-league/pkg/render/raysurface"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// viewer plays the season one fixture at a time in a raylib window.
type viewer struct {
	season   *league.Season
	tuning   config.Tuning
	rng      *utils.PRNGService
	log      *logger.Logger
	savePath string

	fixture  league.Fixture
	match    *app.Match
	result   *[2]int
	last     string
	selected int
	resetAsk bool
}

// choose moves the selection among the open fixtures of the current week.
func (v *viewer) choose(step int) {
	pending := v.season.Pending()
	if len(pending) == 0 {
		return
	}
	v.selected = (v.selected + step + len(pending)) % len(pending)
}

func (v *viewer) kickOff() {
	pending := v.season.Pending()
	if len(pending) == 0 {
		return
	}
	f := pending[v.selected%len(pending)]
	v.selected = 0
	v.fixture = f
	v.result = nil
	m, err := app.New(f.Descriptor(), func(a, b int) { v.result = &[2]int{a, b} },
		app.WithTuning(v.tuning),
		app.WithRandom(v.rng.Fork()),
		app.WithLogger(v.log),
	)
	if err != nil {
		v.log.Printf("cannot create %s: %v", f.ID, err)
		return
	}
	if err := m.Start(); err != nil {
		v.log.Printf("cannot start %s: %v", f.ID, err)
		return
	}
	v.match = m
}

func (v *viewer) abandon() {
	if v.match == nil {
		return
	}
	v.match.Stop()
	v.match = nil
	v.last = v.fixture.ID + " abandoned"
}

func (v *viewer) update(dt time.Duration) {
	if v.match == nil {
		return
	}
	v.match.Update(dt)
	if v.result == nil {
		return
	}
	if err := v.season.RecordResult(v.fixture.ID, v.result[0], v.result[1]); err != nil {
		v.log.Printf("result of %s not saved: %v", v.fixture.ID, err)
	}
	v.last = fmt.Sprintf("%s %d-%d %s", v.fixture.Home.Name, v.result[0], v.result[1], v.fixture.Away.Name)
	v.match = nil
	v.save()
}

func (v *viewer) reset() {
	v.season.Reset(v.rng)
	v.selected = 0
	v.last = "league reset"
	v.save()
}

func (v *viewer) save() {
	if v.savePath == "" {
		return
	}
	if err := v.season.Save(v.savePath); err != nil {
		v.log.Printf("season not saved: %v", err)
	}
}

func (v *viewer) draw(surface *raysurface.Surface) {
	if v.match != nil {
		v.match.Draw(surface)
		return
	}
	surface.Clear(config.BackgroundColor)
	w, h := surface.Size()
	if v.resetAsk {
		surface.Text("Reset the whole league? Y - yes, N - no", w/2, h/2, config.TextDarkColor)
		return
	}
	if v.last != "" {
		surface.Text(v.last, w/2, h/2-30, config.TextDarkColor)
	}
	pending := v.season.Pending()
	if len(pending) == 0 {
		surface.Text("Season complete, R - reset", w/2, h/2, config.TextDarkColor)
		return
	}
	f := pending[v.selected%len(pending)]
	surface.Text(fmt.Sprintf("Week %d: %s vs %s", f.Week, f.Home.Name, f.Away.Name), w/2, h/2, config.TextDarkColor)
	surface.Text("Left/Right - choose, Space - kick off, Esc - abandon, R - reset", w/2, h/2+20, config.TextDarkColor)
}

func main() {
	env := config.LoadEnv()
	tuning, err := env.Tuning()
	if err != nil {
		log.Fatal(err)
	}
	teams, err := defs.TeamsFrom(env.TeamsPath)
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(env.Seed)
	season, err := league.OpenSeason(env.SavePath, teams, rng, logger.New("league"))
	if err != nil {
		log.Fatal(err)
	}

	v := &viewer{season: season, tuning: tuning, rng: rng, log: logger.New("match"), savePath: env.SavePath}
	surface := raysurface.New(config.ScreenWidth, config.ScreenHeight)

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Arena League | Space - kick off, Esc - abandon")
	rl.SetExitKey(0)
	rl.SetTargetFPS(config.FrameRate)

	for !rl.WindowShouldClose() {
		switch {
		case v.resetAsk:
			if rl.IsKeyPressed(rl.KeyY) {
				v.reset()
				v.resetAsk = false
			} else if rl.IsKeyPressed(rl.KeyN) || rl.IsKeyPressed(rl.KeyEscape) {
				v.resetAsk = false
			}
		case v.match != nil:
			if rl.IsKeyPressed(rl.KeyEscape) {
				v.abandon()
			}
		default:
			switch {
			case rl.IsKeyPressed(rl.KeySpace):
				v.kickOff()
			case rl.IsKeyPressed(rl.KeyRight):
				v.choose(1)
			case rl.IsKeyPressed(rl.KeyLeft):
				v.choose(-1)
			case rl.IsKeyPressed(rl.KeyR):
				v.resetAsk = true
			}
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		v.update(dt)

		rl.BeginDrawing()
		v.draw(surface)
		rl.EndDrawing()
	}

	v.abandon()
	rl.CloseWindow()
}
