// internal/loop/driver.go
package loop

import (
	"context"
	"time"

	"go-arena-league/internal/config"
	"go-arena-league/internal/logger"
	"go-arena-league/pkg/render"
)

// Simulation is what the driver runs. *app.Match implements it.
type Simulation interface {
	Start() error
	Update(dt time.Duration)
	Draw(surface render.Surface)
	Ended() bool
	Done() bool
	Stop()
}

// Driver is the only caller of a simulation's Update and Draw. It pulls
// frames from a FrameSource, simulates, then draws until the final whistle.
type Driver struct {
	sim     Simulation
	surface render.Surface
	log     *logger.Logger
	frame   int

	// AfterDraw, when set, is called after every drawn frame.
	AfterDraw func(frame int)
}

func NewDriver(sim Simulation, surface render.Surface, log *logger.Logger) *Driver {
	if log == nil {
		log = logger.New("loop")
	}
	return &Driver{sim: sim, surface: surface, log: log}
}

// Run starts the simulation and drives it until it is done. Without a
// surface it does nothing and returns nil. Cancelling ctx tears the
// simulation down and returns ctx.Err().
func (d *Driver) Run(ctx context.Context, frames FrameSource) error {
	if d.surface == nil {
		d.log.Println("no render surface, match not started")
		return nil
	}
	if err := d.sim.Start(); err != nil {
		return err
	}

	for !d.sim.Done() {
		dt, err := frames.Next(ctx)
		if err != nil {
			d.sim.Stop()
			return err
		}
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		d.sim.Update(dt)
		if d.sim.Ended() {
			continue
		}

		d.sim.Draw(d.surface)
		d.frame++
		if d.AfterDraw != nil {
			d.AfterDraw(d.frame)
		}
	}
	return nil
}

// Frames returns how many frames were drawn.
func (d *Driver) Frames() int {
	return d.frame
}
