// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 500
	ScreenHeight = 400
	WindowScale  = 2

	FrameRate     = 60
	FrameDuration = time.Second / FrameRate
	MaxDeltaTime  = 60 * time.Millisecond // longer frames are clamped

	ArenaRadius  = 180.0
	BodyRadius   = 12.0
	GapHalfAngle = 0.2   // radians each side of the gap centre
	RotationRate = 0.008 // radians per frame

	WallInset     = 2.0 // bodies are put back this far inside the wall
	WallJitterMin = 0.95
	WallJitterMax = 1.05
	MinSpeed      = 2.0
	RecoverSpeed  = 2.5

	CollisionDamping = 0.8
	CollisionJitter  = 2.0 // width of the per-axis perturbation band
	SeparationSlop   = 0.1

	RespawnSpread = 80.0
	RespawnSpeed  = 6.0
	ExitDepth     = 0.5 // goal registers at ArenaRadius + BodyRadius*ExitDepth

	MatchDuration     = 90
	TickInterval      = time.Second
	GoalPause         = 1500 * time.Millisecond
	FinalWhistleDelay = 2 * time.Second

	ArenaStrokeWidth = 4.0
	GapStrokeWidth   = 6.0
	BodyStrokeWidth  = 2.0
)

var (
	BackgroundColor = color.RGBA{240, 253, 244, 255}
	ArenaColor      = color.RGBA{55, 0, 60, 255}
	GapColor        = color.RGBA{0, 255, 65, 255}
	PostColor       = color.RGBA{255, 255, 255, 255}
	BodyStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextDarkColor   = color.RGBA{55, 0, 60, 255}
	BannerColor     = color.RGBA{22, 163, 74, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 96}
)
