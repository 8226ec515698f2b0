package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	// Dt is the fixed simulation timestep in seconds (ebiten ticks at 60Hz).
	Dt float64
	// PixelsPerUnit converts burn-sim world units to screen pixels.
	PixelsPerUnit float64
}

// BurnConfig contains the combustion simulation tunables. Lengths and
// thresholds are in world units, rates in units per second.
type BurnConfig struct {
	HeadScale     float64 // initial head scale
	StickLength   float64 // initial stick length
	HeadBurnRate  float64 // default head shrink rate, inherited on handoff
	StickBurnRate float64 // default stick shrink rate, inherited on handoff

	HeadThreshold  float64 // head scale below this ends the HEAD phase
	StickThreshold float64 // stick length below this burns the match out

	StickWidth float64 // collider width in units
}

// RaceConfig contains state machine timing values in seconds.
type RaceConfig struct {
	CountdownSteps      int     // countdown digits (3, 2, 1)
	CountdownInterval   float64 // cadence between digits
	SecondPlayerTimeout float64 // abort join wait when only 1 of 2 arrives
	PostgameShakeFrames int
	PostgameShakePower  float64
}

// FadeConfig contains scene transition choreography timings in seconds.
type FadeConfig struct {
	Duration           float64 // fade-out / fade-in length
	LoadingMinDuration float64 // minimum time the loading screen is shown
	LoadingGraceBefore float64 // pause before the load starts
	LoadingGraceAfter  float64 // pause after the minimum display elapses
}

// MovementConfig contains active-match locomotion tunables (pixels, frames).
type MovementConfig struct {
	Accel        float64
	MaxSpeed     float64
	Friction     float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64
}

// CameraConfig contains follow/shake tunables. Poses are local offsets in
// pixels applied when the camera is reparented to a match.
type CameraConfig struct {
	FollowSmoothing float64

	SoloPose   Offset
	CoopPose   Offset
	VersusPose Offset
}

// Offset is a camera-local position relative to its target match.
type Offset struct {
	X, Y float64
}

// PoseFor returns the fixed camera pose for a mode.
func (c CameraConfig) PoseFor(mode GameModeID) Offset {
	switch mode {
	case GameModeCoop:
		return c.CoopPose
	case GameModeVersus:
		return c.VersusPose
	}
	return c.SoloPose
}

// AudioConfig contains collaborator-facing audio defaults.
type AudioConfig struct {
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// HUDConfig contains HUD layout values.
type HUDConfig struct {
	TimerY       int
	CountdownY   int
	ResultY      int
	OverlayColor color.RGBA
}

// Global configuration instances
var C *Config
var Burn BurnConfig
var Race RaceConfig
var Fade FadeConfig
var Movement MovementConfig
var Camera CameraConfig
var Audio AudioConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Charcoal     = color.RGBA{R: 40, G: 36, B: 34, A: 255}
	MatchWood    = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		Dt:            1.0 / 60.0,
		PixelsPerUnit: 32,
	}

	Burn = BurnConfig{
		HeadScale:      1.0,
		StickLength:    1.6,
		HeadBurnRate:   0.14,
		StickBurnRate:  0.05,
		HeadThreshold:  0.05,
		StickThreshold: 0.1,
		StickWidth:     0.25,
	}

	Race = RaceConfig{
		CountdownSteps:      3,
		CountdownInterval:   1.0,
		SecondPlayerTimeout: 10.0,
		PostgameShakeFrames: 30,
		PostgameShakePower:  4.0,
	}

	Fade = FadeConfig{
		Duration:           2.0,
		LoadingMinDuration: 2.0,
		LoadingGraceBefore: 1.0,
		LoadingGraceAfter:  1.0,
	}

	Movement = MovementConfig{
		Accel:        0.4,
		MaxSpeed:     2.8,
		Friction:     0.3,
		JumpSpeed:    -6.5,
		Gravity:      0.35,
		MaxFallSpeed: 8.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
		SoloPose:        Offset{X: 0, Y: -24},
		CoopPose:        Offset{X: 0, Y: -40},
		VersusPose:      Offset{X: 16, Y: -24},
	}

	Audio = AudioConfig{
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	HUD = HUDConfig{
		TimerY:       20,
		CountdownY:   120,
		ResultY:      150,
		OverlayColor: BlackOverlay,
	}
}
