package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/courses"
	"github.com/automoto/matchrun/systems"
	"github.com/automoto/matchrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the active scene by name.
type SceneChanger interface {
	SwitchTo(target string)
}

// RaceScene runs one course in one mode. Each scene owns a fresh world, so
// loading a race resets the whole state machine.
type RaceScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	courseName   string
	once         sync.Once
}

// NewRaceScene creates a race scene for a course ("Solo", "Coop", "Versus").
func NewRaceScene(sc SceneChanger, courseName string) *RaceScene {
	return &RaceScene{sceneChanger: sc, courseName: courseName}
}

func (rs *RaceScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RaceScene) configure() {
	course, err := courses.Load(rs.courseName)
	if err != nil {
		log.Error().Err(err).Str("course", rs.courseName).Msg("course load failed")
		rs.sceneChanger.SwitchTo(cfg.SceneMenu)
		rs.ecs = ecs.NewECS(donburi.NewWorld())
		return
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Audio first so cue consumers run even while paused.
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateJoin)
	e.AddSystem(systems.UpdateRace)
	e.AddSystem(systems.UpdateSequences)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdateBurn)
	e.AddSystem(systems.UpdateVFX)
	e.AddSystem(systems.UpdatePostgame)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateFade)
	e.AddSystem(systems.AdvanceRenderTick)

	e.AddRenderer(cfg.Default, systems.DrawCourse)
	e.AddRenderer(cfg.Default, systems.DrawMatches)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawFade)

	rs.ecs = e

	mode := cfg.ModeForScene(rs.courseName)
	systems.SetGameMode(e, mode)
	systems.BindRaceSignals(e)
	systems.BindJoinSignals(e)

	factory.SpawnCourse(e, course)
	factory.CreateCamera(e, mode)
	rs.snapCameraToStart(course)

	systems.SetHUDVisible(e, true)
	systems.StartFadeIn(e)

	// Player 0 joins automatically on the primary keyboard scheme; the
	// second player (if the mode needs one) joins during the pregame wait.
	systems.OnPlayerJoin(e, nil, cfg.ControlSchemeA)
	systems.BeginJoinWait(e)
}

// snapCameraToStart centers the camera on the chain start so the fade-in
// reveals the first matchstick, not the course origin.
func (rs *RaceScene) snapCameraToStart(course *courses.Course) {
	camEntry, ok := components.Camera.First(rs.ecs.World)
	if !ok || len(course.Matches) == 0 {
		return
	}
	camera := components.Camera.Get(camEntry)
	camera.Position.X = course.Matches[0].X
	camera.Position.Y = course.Matches[0].Y
}
