package systems

import (
	"testing"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/signals"
)

func TestSetGameStateObservableFromListener(t *testing.T) {
	e := newTestECS()

	var seen []cfg.GameStateID
	GetHub(e).StateChanged.Subscribe(func(sc signals.StateChange) {
		// A listener told about V must read the canonical state as V.
		if got := GetRace(e).State; got != sc.State {
			t.Errorf("listener observed %v but canonical state is %v", sc.State, got)
		}
		seen = append(seen, sc.State)
	})

	SetGameState(e, cfg.GameStatePregame)
	SetGameState(e, cfg.GameStateRunning)

	if len(seen) != 2 || seen[0] != cfg.GameStatePregame || seen[1] != cfg.GameStateRunning {
		t.Fatalf("unexpected notification sequence: %v", seen)
	}
}

func TestTogglePauseOnlyFlipsRunningAndPaused(t *testing.T) {
	e := newTestECS()

	SetGameState(e, cfg.GameStatePregame)
	TogglePause(e)
	if got := GetRace(e).State; got != cfg.GameStatePregame {
		t.Fatalf("pause during pregame changed state to %v", got)
	}

	SetGameState(e, cfg.GameStateRunning)
	TogglePause(e)
	if got := GetRace(e).State; got != cfg.GameStatePaused {
		t.Fatalf("expected Paused, got %v", got)
	}
	TogglePause(e)
	if got := GetRace(e).State; got != cfg.GameStateRunning {
		t.Fatalf("expected Running after second toggle, got %v", got)
	}

	SetGameState(e, cfg.GameStatePostgame)
	TogglePause(e)
	if got := GetRace(e).State; got != cfg.GameStatePostgame {
		t.Fatalf("pause during postgame changed state to %v", got)
	}
}

func TestClockAccrualAndReset(t *testing.T) {
	e := newTestECS()

	SetGameState(e, cfg.GameStateRunning)
	step(e, 60, UpdateRace)
	if secs := ClockSeconds(e); secs != 1 {
		t.Fatalf("expected 1s on the clock, got %d", secs)
	}

	SetGameState(e, cfg.GameStatePaused)
	step(e, 120, UpdateRace)
	if secs := ClockSeconds(e); secs != 1 {
		t.Fatalf("clock advanced while paused: %d", secs)
	}

	SetGameState(e, cfg.GameStatePregame)
	if got := GetRace(e).Clock; got != 0 {
		t.Fatalf("clock not reset on pregame: %f", got)
	}
}

func TestJoinQuorumGatesCountdown(t *testing.T) {
	e := newTestECS()

	SetGameMode(e, cfg.GameModeCoop)
	BeginJoinWait(e)
	OnPlayerJoin(e, nil, cfg.ControlSchemeA)

	step(e, 120, UpdateRace, UpdateSequences)
	race := GetRace(e)
	if race.CountdownStarted {
		t.Fatalf("countdown started with 1 of %d players", race.PlayersRequired)
	}

	OnPlayerJoin(e, nil, cfg.ControlSchemeB)
	step(e, 1, UpdateRace)
	if !race.CountdownStarted {
		t.Fatalf("countdown did not start once quorum was met")
	}
	if race.CountdownValue != cfg.Race.CountdownSteps {
		t.Fatalf("expected countdown value %d, got %d", cfg.Race.CountdownSteps, race.CountdownValue)
	}
}

func TestCountdownReachesRunning(t *testing.T) {
	e := newTestECS()

	SetGameMode(e, cfg.GameModeSolo)
	BeginJoinWait(e)
	OnPlayerJoin(e, nil, cfg.ControlSchemeA)

	// 3 x 1s cadence plus slack.
	step(e, 60*4, UpdateRace, UpdateSequences)

	race := GetRace(e)
	if race.State != cfg.GameStateRunning {
		t.Fatalf("expected Running after countdown, got %v", race.State)
	}
	if race.CountdownValue != -1 {
		t.Fatalf("countdown value not cleared: %d", race.CountdownValue)
	}
}

func TestSecondPlayerTimeoutFallsBackToMenu(t *testing.T) {
	e := newTestECS()

	SetGameMode(e, cfg.GameModeVersus)
	BeginJoinWait(e)
	OnPlayerJoin(e, nil, cfg.ControlSchemeA)

	frames := int(cfg.Race.SecondPlayerTimeout*60) + 2
	step(e, frames, UpdateRace, UpdateSequences)

	race := GetRace(e)
	if race.AwaitingPlayers {
		t.Fatalf("still awaiting players after timeout")
	}
	if race.CountdownStarted {
		t.Fatalf("countdown started without quorum")
	}

	entry, ok := components.Transition.First(e.World)
	if !ok {
		t.Fatalf("no scene transition requested after timeout")
	}
	if target := components.Transition.Get(entry).Target; target != cfg.SceneMenu {
		t.Fatalf("expected transition to menu, got %q", target)
	}
}

func TestGoalWinsOnlyWhileRunning(t *testing.T) {
	e := newTestECS()
	BindRaceSignals(e)

	SetGameMode(e, cfg.GameModeSolo)
	SetGameState(e, cfg.GameStatePregame)
	GetHub(e).ReachedBonfire.Emit(signals.GoalReached{PlayerIndex: 0})
	if got := GetRace(e).State; got != cfg.GameStatePregame {
		t.Fatalf("goal during pregame moved state to %v", got)
	}

	SetGameState(e, cfg.GameStateRunning)
	GetHub(e).ReachedBonfire.Emit(signals.GoalReached{PlayerIndex: 0})
	race := GetRace(e)
	if race.State != cfg.GameStatePostgame {
		t.Fatalf("expected Postgame, got %v", race.State)
	}
	if !race.Won {
		t.Fatalf("goal did not record a win")
	}
	if race.Cause != "You reached the bonfire!" {
		t.Fatalf("unexpected win text %q", race.Cause)
	}
}

func TestVersusWinnerTagOnGoal(t *testing.T) {
	e := newTestECS()
	BindRaceSignals(e)

	SetGameMode(e, cfg.GameModeVersus)
	SetGameState(e, cfg.GameStateRunning)
	GetHub(e).ReachedBonfire.Emit(signals.GoalReached{PlayerIndex: 1})

	race := GetRace(e)
	if race.WinnerTag != "2" {
		t.Fatalf("expected winner tag 2, got %q", race.WinnerTag)
	}
	if race.Cause != "Player 2 wins!" {
		t.Fatalf("unexpected win text %q", race.Cause)
	}
}

func TestPauseSignalTogglesState(t *testing.T) {
	e := newTestECS()
	BindRaceSignals(e)

	SetGameState(e, cfg.GameStateRunning)
	GetHub(e).PauseRequested.Emit(signals.PauseRequest{PlayerIndex: 0})
	if got := GetRace(e).State; got != cfg.GameStatePaused {
		t.Fatalf("expected Paused, got %v", got)
	}
	GetHub(e).PauseRequested.Emit(signals.PauseRequest{PlayerIndex: 1})
	if got := GetRace(e).State; got != cfg.GameStateRunning {
		t.Fatalf("expected Running, got %v", got)
	}
}
