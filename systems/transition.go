package systems

import (
	"image/color"

	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneSwitcher swaps the active scene by name once a transition's fade-out
// has completed.
type SceneSwitcher interface {
	SwitchTo(target string)
}

var sceneSwitcher SceneSwitcher

// SetSceneSwitcher installs the game shell as the transition sink. Installed
// once at startup, like the persistence manager.
func SetSceneSwitcher(s SceneSwitcher) {
	sceneSwitcher = s
}

// RequestSceneTransition starts the leave choreography: fade to black, hide
// the HUD, then hand off to the scene switcher. Repeat requests while a
// transition is in flight are ignored.
func RequestSceneTransition(e *ecs.ECS, target string) {
	if entry, ok := components.Transition.First(e.World); ok {
		if components.Transition.Get(entry).Started {
			return
		}
	}

	entry := archetypes.Transition.Spawn(e)
	components.Transition.SetValue(entry, components.TransitionData{
		Target:  target,
		Started: true,
	})
	log.Info().Str("target", target).Msg("scene transition")

	StartFadeOut(e)
	StartSequence(e, entry, components.SequenceStep{
		Delay: cfg.Fade.Duration,
		Run: func() {
			SetHUDVisible(e, false)
			if sceneSwitcher != nil {
				sceneSwitcher.SwitchTo(target)
			}
		},
	})
}

// StartFadeOut begins a fade from clear to black over the configured
// duration. A fade already in progress is replaced.
func StartFadeOut(e *ecs.ECS) {
	fade := getFade(e)
	fade.Tween = gween.New(0, 1, float32(cfg.Fade.Duration), ease.Linear)
	fade.Done = false
}

// StartFadeIn begins a fade from black to clear.
func StartFadeIn(e *ecs.ECS) {
	fade := getFade(e)
	fade.Alpha = 1
	fade.Tween = gween.New(1, 0, float32(cfg.Fade.Duration), ease.Linear)
	fade.Done = false
}

func getFade(e *ecs.ECS) *components.FadeData {
	if entry, ok := components.Fade.First(e.World); ok {
		return components.Fade.Get(entry)
	}
	entry := archetypes.Fade.Spawn(e)
	return components.Fade.Get(entry)
}

// FadeDone reports whether the current fade has finished. True when no fade
// was ever started.
func FadeDone(e *ecs.ECS) bool {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return true
	}
	fade := components.Fade.Get(entry)
	return fade.Tween == nil || fade.Done
}

// UpdateFade advances the active fade tween.
func UpdateFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Tween == nil || fade.Done {
		return
	}
	alpha, finished := fade.Tween.Update(float32(cfg.C.Dt))
	fade.Alpha = alpha
	if finished {
		fade.Done = true
	}
}

// DrawFade paints the full-screen overlay at the current fade alpha.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 {
		return
	}

	c := color.RGBA{A: uint8(fade.Alpha * 255)}
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		c,
		false,
	)
}

// SetHUDVisible gates gameplay HUD drawing, e.g. hidden while leaving a
// scene.
func SetHUDVisible(e *ecs.ECS, visible bool) {
	if entry, ok := components.HUD.First(e.World); ok {
		components.HUD.Get(entry).Visible = visible
		return
	}
	entry := archetypes.HUD.Spawn(e)
	components.HUD.SetValue(entry, components.HUDData{Visible: visible})
}
