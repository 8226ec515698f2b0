package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/systems"
	"github.com/automoto/matchrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the mode-select menu.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSequences)
	ms.ecs.AddSystem(systems.UpdateFade)

	// The ECS draws only the fade overlay; the menu itself is ebitenui.
	ms.ecs.AddRenderer(cfg.Default, systems.DrawFade)

	ms.menuUI = ui.NewMenuUI(
		func(scene string) {
			systems.QueueCue(ms.ecs, components.SoundMenuSelect)
			systems.RequestSceneTransition(ms.ecs, scene)
		},
		func() {
			os.Exit(0)
		},
	)

	best := systems.LoadBestTimes()
	ms.menuUI.SetBestTimes(best.Solo, best.Coop)

	systems.StartFadeIn(ms.ecs)
}
