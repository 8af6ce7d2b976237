// cmd/simulate/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go-arena-league/internal/app"
	"go-arena-league/internal/config"
	"go-arena-league/internal/defs"
	"go-arena-league/internal/league"
	"go-arena-league/internal/logger"
	"go-arena-league/internal/loop"
	"go-arena-league/internal/utils"
	"go-arena-league/pkg/render"
	"go-arena-league/pkg/render/pngsurface"

	"github.com/ttacon/chalk"
)

func main() {
	env := config.LoadEnv()

	fixtures := flag.Int("fixtures", 10, "fixtures to play, 0 plays the whole season")
	seed := flag.Int64("seed", env.Seed, "random seed, 0 picks one from the clock")
	framesDir := flag.String("frames", env.FramesDir, "directory for PNG frames, empty disables them")
	every := flag.Int("every", env.FrameEvery, "save every n-th frame")
	verbose := flag.Bool("v", false, "log match events")
	realtime := flag.Bool("realtime", false, "pace matches at the frame rate instead of as fast as possible")
	savePath := flag.String("save", env.SavePath, "season file to resume from and save to, empty keeps it in memory")
	flag.Parse()

	tuning, err := env.Tuning()
	if err != nil {
		log.Fatal(err)
	}
	teams, err := defs.TeamsFrom(env.TeamsPath)
	if err != nil {
		log.Fatal(err)
	}

	rng := utils.NewPRNGService(*seed)
	fmt.Println(chalk.Bold.TextStyle(fmt.Sprintf("Arena League, seed %d", rng.Seed())))

	matchLog := logger.Discard()
	if *verbose {
		matchLog = logger.New("match")
	}
	season, err := league.OpenSeason(*savePath, teams, rng, matchLog)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	played := 0
	for *fixtures == 0 || played < *fixtures {
		f, ok := season.NextFixture()
		if !ok {
			break
		}
		home, away, err := play(ctx, f, tuning, rng.Fork(), matchLog, *framesDir, *every, *realtime)
		if errors.Is(err, context.Canceled) {
			fmt.Println(chalk.Red.Color("interrupted, " + f.ID + " abandoned"))
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		if err := season.RecordResult(f.ID, home, away); err != nil {
			log.Fatal(err)
		}
		printResult(f, home, away)
		played++
		if *savePath != "" {
			if err := season.Save(*savePath); err != nil {
				log.Fatal(err)
			}
		}
	}

	printTable(season.Standings())
}

// play runs one fixture headless and returns its score.
func play(ctx context.Context, f league.Fixture, tuning config.Tuning, rng *utils.PRNGService, matchLog *logger.Logger, framesDir string, every int, realtime bool) (int, int, error) {
	var home, away int
	m, err := app.New(f.Descriptor(), func(a, b int) { home, away = a, b },
		app.WithTuning(tuning),
		app.WithRandom(rng),
		app.WithLogger(matchLog),
	)
	if err != nil {
		return 0, 0, err
	}

	var surface render.Surface = render.Nop{Width: config.ScreenWidth, Height: config.ScreenHeight}
	var frames *pngsurface.FrameWriter
	if framesDir != "" {
		png := pngsurface.New(config.ScreenWidth, config.ScreenHeight)
		frames, err = pngsurface.NewFrameWriter(png, framesDir, f.ID, every)
		if err != nil {
			return 0, 0, err
		}
		surface = png
	}

	driver := loop.NewDriver(m, surface, matchLog)
	if frames != nil {
		driver.AfterDraw = frames.Frame
	}
	var source loop.FrameSource = loop.Fixed{Step: tuning.FrameDuration}
	if realtime {
		ticker := loop.NewTicker(tuning.FrameDuration)
		defer ticker.Stop()
		source = ticker
	}
	if err := driver.Run(ctx, source); err != nil {
		return 0, 0, err
	}
	if frames != nil && frames.Err() != nil {
		return 0, 0, frames.Err()
	}
	return home, away, nil
}

func printResult(f league.Fixture, home, away int) {
	score := fmt.Sprintf("%d-%d", home, away)
	switch {
	case home > away:
		score = chalk.Green.Color(score)
	case home < away:
		score = chalk.Red.Color(score)
	default:
		score = chalk.Yellow.Color(score)
	}
	fmt.Printf("%-10s week %2d  %18s %s %s\n", f.ID, f.Week, f.Home.Name, score, f.Away.Name)
}

func printTable(standings []league.Standing) {
	fmt.Println()
	fmt.Println(chalk.Bold.TextStyle(fmt.Sprintf("%-3s %-18s %3s %3s %3s %3s %4s %4s %4s %4s", "#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")))
	for i, s := range standings {
		line := fmt.Sprintf("%-3d %-18s %3d %3d %3d %3d %4d %4d %4d %4d",
			i+1, s.Team.Name, s.Played, s.Won, s.Drawn, s.Lost, s.GoalsFor, s.GoalsAgainst, s.GoalDifference(), s.Points)
		if i == 0 && s.Played > 0 {
			line = chalk.Green.Color(line)
		}
		fmt.Println(line)
	}
}
