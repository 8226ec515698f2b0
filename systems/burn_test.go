package systems

import (
	"testing"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/courses"
	"github.com/automoto/matchrun/systems/factory"
	"github.com/automoto/matchrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnTestMatch(e *ecs.ECS, x float64, order, playerIndex int) *donburi.Entry {
	return factory.CreateMatchstick(e, courses.MatchSpawn{
		X: x, Y: 200, Order: order, PlayerIndex: playerIndex,
	})
}

func makeCurrent(e *ecs.ECS, entry *donburi.Entry) {
	match := components.Match.Get(entry)
	match.IsCurrent = true
	GetRace(e).Current[match.PlayerIndex] = entry
	components.FlameVFX.Get(entry).Ignite()
}

func TestPassFlameIsOneWay(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 0)
	makeCurrent(e, a)

	if !PassFlame(e, a, b) {
		t.Fatalf("first handoff refused")
	}

	am := components.Match.Get(a)
	bm := components.Match.Get(b)
	if am.IsCurrent || !am.IsPrevious {
		t.Fatalf("source flags wrong after handoff: current=%v previous=%v", am.IsCurrent, am.IsPrevious)
	}
	if !bm.IsCurrent || bm.IsPrevious {
		t.Fatalf("target flags wrong after handoff: current=%v previous=%v", bm.IsCurrent, bm.IsPrevious)
	}

	// The spent stub must never reignite.
	if PassFlame(e, b, a) {
		t.Fatalf("flame passed back onto a previous match")
	}
	if got, _ := GetRace(e).CurrentMatch(0); got != b {
		t.Fatalf("registry does not point at the new current match")
	}
}

func TestPassFlameSwapsContactTags(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 0)
	makeCurrent(e, a)
	PassFlame(e, a, b)

	aObj := components.Object.Get(a)
	if aObj.HasTags(tags.ResolvMatch) {
		t.Fatalf("spent match still carries the handoff tag")
	}
	if !aObj.HasTags(tags.ResolvPrevious) {
		t.Fatalf("spent match missing the previous tag")
	}
}

func TestPassFlameInheritsBurnRates(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 0)
	makeCurrent(e, a)

	am := components.Match.Get(a)
	am.HeadBurnRate = 0.5
	am.StickBurnRate = 0.25

	PassFlame(e, a, b)

	bm := components.Match.Get(b)
	if bm.HeadBurnRate != 0.5 || bm.StickBurnRate != 0.25 {
		t.Fatalf("burn rates not inherited: head=%f stick=%f", bm.HeadBurnRate, bm.StickBurnRate)
	}
}

func TestVersusHandoffFlipsControl(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 360, 16, 16)
	SetGameMode(e, cfg.GameModeVersus)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 1)
	c := spawnTestMatch(e, 140, 2, 0)
	makeCurrent(e, a)

	PassFlame(e, a, b)
	race := GetRace(e)
	if got, _ := race.CurrentMatch(1); got != b {
		t.Fatalf("first handoff did not give control to player 1")
	}

	PassFlame(e, b, c)
	if got, _ := race.CurrentMatch(0); got != c {
		t.Fatalf("second handoff did not flip control back to player 0")
	}
	if _, ok := race.CurrentMatch(1); ok {
		t.Fatalf("player 1 still has a current match after handing off")
	}
}

func TestCoopHandoffKeepsPreassignedIndex(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 360, 16, 16)
	SetGameMode(e, cfg.GameModeCoop)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 1)
	makeCurrent(e, a)

	PassFlame(e, a, b)
	race := GetRace(e)
	if got, _ := race.CurrentMatch(1); got != b {
		t.Fatalf("coop handoff did not respect the pre-assigned index")
	}
	if components.Match.Get(b).PlayerIndex != 1 {
		t.Fatalf("coop handoff rewrote the target's player index")
	}
}

func TestCoopCameraTransferKeepsOffset(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 360, 16, 16)
	SetGameMode(e, cfg.GameModeCoop)
	factory.CreateCamera(e, cfg.GameModeCoop)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 1)
	makeCurrent(e, a)

	camEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(camEntry)
	camera.Offset = cfg.Offset{X: 5, Y: 7}

	PassFlame(e, a, b)

	if camera.Target != b {
		t.Fatalf("coop camera did not follow the flame")
	}
	if camera.Offset.X != 5 || camera.Offset.Y != 7 {
		t.Fatalf("coop camera offset reset on handoff: %+v", camera.Offset)
	}
}

func TestStickBurnOutEndsSoloRace(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	BindRaceSignals(e)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	makeCurrent(e, a)

	match := components.Match.Get(a)
	match.Phase = components.PhaseStick
	match.HeadBurned = true
	match.StickLength = cfg.Burn.StickThreshold + 0.0001

	SetGameState(e, cfg.GameStateRunning)
	step(e, 2, UpdateBurn)

	race := GetRace(e)
	if race.State != cfg.GameStatePostgame {
		t.Fatalf("burn-out did not end the race, state %v", race.State)
	}
	if race.Won {
		t.Fatalf("burn-out recorded as a win")
	}
	if race.Cause != "You burned out!" {
		t.Fatalf("unexpected cause %q", race.Cause)
	}
	if match.Phase != components.PhaseBurnedOut {
		t.Fatalf("match phase not burned out: %v", match.Phase)
	}
	if _, ok := race.CurrentMatch(0); ok {
		t.Fatalf("burned-out match still registered as current")
	}
}

func TestWaterDouseVersusCause(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	BindRaceSignals(e)
	SetGameMode(e, cfg.GameModeVersus)

	a := spawnTestMatch(e, 100, 0, 0)
	factory.CreateWater(e, 60, 100, 120, 150)
	makeCurrent(e, a)

	SetGameState(e, cfg.GameStateRunning)
	step(e, 1, UpdateBurn)

	race := GetRace(e)
	if race.State != cfg.GameStatePostgame {
		t.Fatalf("douse did not end the race, state %v", race.State)
	}
	if race.Cause != "Player 2 wins! (Player 1 was doused)" {
		t.Fatalf("unexpected cause %q", race.Cause)
	}
	if race.WinnerTag != "2" {
		t.Fatalf("unexpected winner tag %q", race.WinnerTag)
	}
	if !components.FlameVFX.Get(a).Doused {
		t.Fatalf("douse effect not flagged as water")
	}
}

func TestFlameHandoffThroughContact(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	SetGameMode(e, cfg.GameModeSolo)

	// Colliders overlap: the burning match touches the unlit one.
	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 104, 1, 0)
	makeCurrent(e, a)

	SetGameState(e, cfg.GameStateRunning)
	step(e, 1, UpdateBurn)

	if !components.Match.Get(b).IsCurrent {
		t.Fatalf("contact did not hand the flame to the touching match")
	}
	if !components.Match.Get(a).IsPrevious {
		t.Fatalf("giving match not spent after contact handoff")
	}
	if got, _ := GetRace(e).CurrentMatch(0); got != b {
		t.Fatalf("registry does not point at the contact handoff target")
	}
}

func TestHandoffTargetDoesNotBurnSameFrame(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 104, 1, 0)
	makeCurrent(e, a)

	SetGameState(e, cfg.GameStateRunning)
	step(e, 1, UpdateBurn)

	bm := components.Match.Get(b)
	if !bm.IsCurrent {
		t.Fatalf("flame not handed over")
	}
	// The receiving match starts burning on the next frame, not within the
	// frame of the handoff itself.
	if bm.HeadScale != cfg.Burn.HeadScale {
		t.Fatalf("target ticked in the handoff frame: head scale %f", bm.HeadScale)
	}
}

func TestBonfireContactWinsThroughCollision(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	BindRaceSignals(e)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	factory.CreateBonfire(e, courses.Rect{X: 90, Y: 140, W: 40, H: 80})
	makeCurrent(e, a)

	SetGameState(e, cfg.GameStateRunning)
	step(e, 1, UpdateBurn)

	race := GetRace(e)
	if race.State != cfg.GameStatePostgame {
		t.Fatalf("bonfire contact did not end the race, state %v", race.State)
	}
	if !race.Won {
		t.Fatalf("bonfire contact not recorded as a win")
	}
	if race.Cause != "You reached the bonfire!" {
		t.Fatalf("unexpected cause %q", race.Cause)
	}
}

func TestHeadPhaseTransitionsToStick(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	SetGameMode(e, cfg.GameModeSolo)

	a := spawnTestMatch(e, 100, 0, 0)
	makeCurrent(e, a)

	match := components.Match.Get(a)
	match.HeadScale = cfg.Burn.HeadThreshold + 0.0001

	SetGameState(e, cfg.GameStateRunning)
	step(e, 2, UpdateBurn)

	if match.Phase != components.PhaseStick {
		t.Fatalf("head did not hand over to stick phase: %v", match.Phase)
	}
	if !match.HeadBurned {
		t.Fatalf("head not marked burned")
	}
	if match.HeadScale != 0 {
		t.Fatalf("head scale not clamped to zero: %f", match.HeadScale)
	}
}

func TestActivateStartingMatchesLightsChainStarts(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 360, 16, 16)
	SetGameMode(e, cfg.GameModeVersus)

	a := spawnTestMatch(e, 100, 0, 0)
	spawnTestMatch(e, 120, 1, 1)
	spawnTestMatch(e, 140, 2, 0)

	ActivateStartingMatches(e)

	race := GetRace(e)
	got, ok := race.CurrentMatch(0)
	if !ok || got != a {
		t.Fatalf("chain start not registered for player 0")
	}
	if !components.Match.Get(a).IsCurrent {
		t.Fatalf("chain start not current")
	}
	if !components.FlameVFX.Get(a).Lit {
		t.Fatalf("chain start not lit")
	}
	count := 0
	tags.Matchstick.Each(e.World, func(entry *donburi.Entry) {
		if components.Match.Get(entry).IsCurrent {
			count++
		}
	})
	if count != 1 {
		t.Fatalf("expected exactly one current match, got %d", count)
	}
}
