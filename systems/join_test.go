package systems

import (
	"testing"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/systems/factory"
)

func TestJoinAssignsSequentialIndices(t *testing.T) {
	e := newTestECS()

	if idx := OnPlayerJoin(e, nil, cfg.ControlSchemeA); idx != 0 {
		t.Fatalf("first join got index %d", idx)
	}
	if idx := OnPlayerJoin(e, nil, cfg.ControlSchemeB); idx != 1 {
		t.Fatalf("second join got index %d", idx)
	}
	if got := GetRace(e).PlayersJoined; got != 2 {
		t.Fatalf("joined count %d", got)
	}
}

func TestSecondJoinDisablesRedundantListener(t *testing.T) {
	e := newTestECS()

	OnPlayerJoin(e, nil, cfg.ControlSchemeA)
	if GetAudio(e).SecondListenerDisabled {
		t.Fatalf("listener disabled with one player")
	}
	OnPlayerJoin(e, nil, cfg.ControlSchemeB)
	if !GetAudio(e).SecondListenerDisabled {
		t.Fatalf("second listener not disabled with two players")
	}
}

func TestHandoffRebindsControllingPlayer(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 640, 360, 16, 16)
	factory.CreateCamera(e, cfg.GameModeSolo)
	BindJoinSignals(e)
	SetGameMode(e, cfg.GameModeSolo)
	OnPlayerJoin(e, nil, cfg.ControlSchemeA)

	a := spawnTestMatch(e, 100, 0, 0)
	b := spawnTestMatch(e, 120, 1, 0)
	makeCurrent(e, a)
	BindPlayerToMatch(e, 0, a)

	PassFlame(e, a, b)

	entry, ok := playerEntry(e, 0)
	if !ok {
		t.Fatalf("player 0 missing")
	}
	if components.Player.Get(entry).Match != b {
		t.Fatalf("player relation not rebound to the new match")
	}

	camEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(camEntry)
	if camera.Target != b {
		t.Fatalf("camera not retargeted on handoff")
	}
	if camera.Offset != cfg.Camera.PoseFor(cfg.GameModeSolo) {
		t.Fatalf("solo camera offset not reset to the mode pose: %+v", camera.Offset)
	}
}

func TestTimeoutReArmsWhenJoinCountReentersOne(t *testing.T) {
	e := newTestECS()

	SetGameMode(e, cfg.GameModeCoop)
	BeginJoinWait(e)
	OnPlayerJoin(e, nil, cfg.ControlSchemeA)

	step(e, 300, UpdateRace) // 5s of waiting
	race := GetRace(e)
	if race.SecondPlayerWait < 4.9 {
		t.Fatalf("wait did not accrue: %f", race.SecondPlayerWait)
	}

	// Joins are monotonic, so the count can only re-enter one on a fresh
	// scene; the re-arm is observed through NoteJoinCount directly.
	race.PlayersJoined = 0
	race.NoteJoinCount()
	race.PlayersJoined = 1
	race.NoteJoinCount()
	if race.SecondPlayerWait != 0 {
		t.Fatalf("wait not re-armed: %f", race.SecondPlayerWait)
	}
}
