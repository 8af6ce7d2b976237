// cmd/game/main.go
package main

import (
	"log"
	"time"

	"go-arena-league/internal/config"
	"go-arena-league/internal/defs"
	"go-arena-league/internal/league"
	"go-arena-league/internal/logger"
	"go-arena-league/internal/state"
	"go-arena-league/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime)
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
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
	log.Printf("seed %d", rng.Seed())
	season, err := league.OpenSeason(env.SavePath, teams, rng, logger.New("league"))
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewFixtureState(sm, &state.League{
		Season:   season,
		Tuning:   tuning,
		RNG:      rng,
		Log:      logger.New("match"),
		SavePath: env.SavePath,
	}))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth*config.WindowScale, config.ScreenHeight*config.WindowScale)
	ebiten.SetWindowTitle("Arena League")
	ebiten.SetTPS(config.FrameRate)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
