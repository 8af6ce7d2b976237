// internal/app/descriptor.go
package app

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"go-arena-league/internal/system"
	"go-arena-league/pkg/render"
)

// ErrInvalidDescriptor is returned when a match is created from incomplete
// side data.
var ErrInvalidDescriptor = errors.New("invalid match descriptor")

// ResultFunc receives the final score of a match exactly once.
type ResultFunc = system.ResultFunc

// SideInfo is what the engine knows about a side.
type SideInfo struct {
	Name    string
	Color   string // "#RRGGBB"
	Initial string
}

// Descriptor is the engine input: two opposing sides. Side A is the home
// side.
type Descriptor struct {
	ID    string
	SideA SideInfo
	SideB SideInfo
}

// Validate checks both sides for a colour and an initial.
func (d Descriptor) Validate() error {
	if err := d.SideA.validate(); err != nil {
		return fmt.Errorf("%w: side A: %v", ErrInvalidDescriptor, err)
	}
	if err := d.SideB.validate(); err != nil {
		return fmt.Errorf("%w: side B: %v", ErrInvalidDescriptor, err)
	}
	return nil
}

func (s SideInfo) validate() error {
	if strings.TrimSpace(s.Initial) == "" {
		return errors.New("missing initial")
	}
	if strings.TrimSpace(s.Color) == "" {
		return errors.New("missing colour")
	}
	if _, err := render.ParseHexColor(s.Color); err != nil {
		return err
	}
	return nil
}

// displayName falls back to the initial when no name was given.
func (s SideInfo) displayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Initial
}

// rgba assumes Validate has passed.
func (s SideInfo) rgba() color.RGBA {
	c, _ := render.ParseHexColor(s.Color)
	return c
}
