package main

import (
	"image"
	"os"

	"github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/fonts"
	"github.com/automoto/matchrun/scenes"
	"github.com/automoto/matchrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene

	// lastRaceScene is the course behind the "Current" target, so retry
	// reloads the same race.
	lastRaceScene string
}

// SwitchTo swaps the active scene by name. First loads of a race target go
// through the loading interstitial; retrying the same course swaps directly.
func (g *Game) SwitchTo(target string) {
	if target == config.SceneCurrent {
		target = g.lastRaceScene
		if target == "" {
			target = config.SceneMenu
		}
	}

	switch {
	case target == config.SceneMenu:
		g.scene = scenes.NewMenuScene(g)
	case config.IsRaceScene(target):
		retry := g.lastRaceScene == target
		g.lastRaceScene = target
		course := target
		if retry {
			// Retry of the same course: skip the loading interstitial.
			g.scene = scenes.NewRaceScene(g, course)
			return
		}
		g.scene = scenes.NewLoadingScene(func() {
			g.scene = scenes.NewRaceScene(g, course)
		})
	default:
		log.Warn().Str("target", target).Msg("unknown scene target")
		g.scene = scenes.NewMenuScene(g)
	}
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	systems.SetSceneSwitcher(g)
	g.scene = scenes.NewMenuScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("matchrun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("running without saved settings")
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
