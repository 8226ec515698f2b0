package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the race clock, countdown, join prompt and result text.
// Hidden entirely during scene transitions.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if entry, ok := components.HUD.First(e.World); ok {
		if !components.HUD.Get(entry).Visible {
			return
		}
	}

	race := GetRace(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	switch race.State {
	case cfg.GameStatePregame:
		drawPregame(e, screen, race, width)
	case cfg.GameStateRunning:
		drawClock(screen, race, width)
		drawCountdownGhost(screen, race, width)
	case cfg.GameStatePaused:
		drawClock(screen, race, width)
		drawOverlay(screen, width, height)
		drawCentered(screen, "PAUSED", fonts.Title.Get(), width, cfg.HUD.ResultY, cfg.White)
		drawCentered(screen, "ESC to resume", fonts.Small.Get(), width, cfg.HUD.ResultY+30, cfg.White)
	case cfg.GameStatePostgame:
		drawClock(screen, race, width)
		drawOverlay(screen, width, height)
		resultColor := cfg.Yellow
		if !race.Won {
			resultColor = cfg.Red
		}
		drawCentered(screen, race.Cause, fonts.Bold.Get(), width, cfg.HUD.ResultY, resultColor)
		drawCentered(screen, fmt.Sprintf("Time: %ds", ClockSeconds(e)), fonts.Body.Get(), width, cfg.HUD.ResultY+28, cfg.White)
		drawCentered(screen, "Enter: retry   Backspace: menu", fonts.Small.Get(), width, cfg.HUD.ResultY+52, cfg.White)
	}
}

func drawPregame(e *ecs.ECS, screen *ebiten.Image, race *components.RaceData, width float64) {
	if race.CountdownValue > 0 {
		drawCentered(screen, fmt.Sprintf("%d", race.CountdownValue), fonts.Title.Get(), width, cfg.HUD.CountdownY, cfg.Yellow)
		return
	}
	if race.AwaitingPlayers && race.PlayersJoined < race.PlayersRequired {
		remaining := int(cfg.Race.SecondPlayerTimeout-race.SecondPlayerWait) + 1
		drawCentered(screen, "Waiting for player 2...", fonts.Bold.Get(), width, cfg.HUD.CountdownY, cfg.White)
		drawCentered(screen, fmt.Sprintf("Space or gamepad to join (%d)", remaining), fonts.Small.Get(), width, cfg.HUD.CountdownY+26, cfg.White)
	}
}

// drawCountdownGhost shows the trailing "GO" moment right after the race
// starts, while the countdown value is still fresh.
func drawCountdownGhost(screen *ebiten.Image, race *components.RaceData, width float64) {
	if race.Clock < 1.0 {
		drawCentered(screen, "GO!", fonts.Title.Get(), width, cfg.HUD.CountdownY, cfg.Yellow)
	}
}

func drawClock(screen *ebiten.Image, race *components.RaceData, width float64) {
	clock := fmt.Sprintf("%d", int(race.Clock))
	drawCentered(screen, clock, fonts.Bold.Get(), width, cfg.HUD.TimerY, cfg.White)
}

func drawOverlay(screen *ebiten.Image, width, height float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)
}

// drawCentered draws s horizontally centered at baseline y using the
// measured bound width.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.RGBA) {
	bounds := text.BoundString(face, s)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, s, face, x, y, clr)
}
